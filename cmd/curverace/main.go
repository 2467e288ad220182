package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/curverace/internal/audio"
	"github.com/san-kum/curverace/internal/config"
	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/engine"
	"github.com/san-kum/curverace/internal/export"
	"github.com/san-kum/curverace/internal/gui"
	"github.com/san-kum/curverace/internal/viz"
)

var (
	configFile string
	width      int
	height     int
	fps        int
	speed      float64
	parameter  float64
	theme      string
	sound      bool

	svgTime   float64
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "curverace",
		Short: "brachistochrone curve race visualizer",
		RunE:  runLive,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the race in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the race in a raylib window",
		RunE:  runGUI,
	}

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list registered curves",
		RunE:  listCurves,
	}

	exportCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export a race frame as SVG",
		RunE:  exportSVG,
	}
	exportCmd.Flags().Float64Var(&svgTime, "time", 1.0, "simulated seconds into the race")
	exportCmd.Flags().StringVar(&svgOut, "out", "race.svg", "output file")
	exportCmd.Flags().IntVar(&svgWidth, "svg-width", 640, "image width")
	exportCmd.Flags().IntVar(&svgHeight, "svg-height", 480, "image height")

	for _, cmd := range []*cobra.Command{rootCmd, liveCmd, guiCmd, curvesCmd, exportCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
		cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "speed multiplier")
		cmd.Flags().Float64Var(&parameter, "param", config.DefaultParameter, "weighted cycloid parameter [0,1]")
		cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
		cmd.Flags().BoolVar(&sound, "sound", false, "play finish chimes")
	}

	rootCmd.AddCommand(liveCmd, guiCmd, curvesCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with CLI flags; explicit
// flags win over file values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("param") {
		cfg.Parameter = parameter
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound = sound
	}
	return cfg, cfg.Validate()
}

func newChimes(cfg *config.Config) *audio.Chimes {
	if !cfg.Sound {
		return nil
	}
	chimes := audio.NewChimes()
	if err := chimes.Start(); err != nil {
		// Sound is best-effort; the race runs fine without a device.
		fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		return nil
	}
	return chimes
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctrl := engine.NewController(cfg.Parameter)
	ctrl.SetSpeed(cfg.Speed)

	chimes := newChimes(cfg)
	defer func() {
		if chimes != nil && chimes.Active() {
			chimes.Stop()
		}
	}()

	p := tea.NewProgram(viz.NewModel(cfg, ctrl, chimes))
	_, err = p.Run()
	return err
}

func listCurves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	set := curve.NewSet(cfg.Parameter)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDURATION\tCOLOR")
	for _, c := range set.Curves() {
		fmt.Fprintf(w, "%s\t%.2fs\t%s\n", c.Name, c.Duration, c.Color)
	}
	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctrl := engine.NewController(cfg.Parameter)

	// Keep the frame inside the run so markers sit at the requested
	// positions rather than parked at the start.
	at := svgTime
	if max := ctrl.Set().MaxDuration(); at >= max {
		at = max * 0.999
	}
	if at < 0 {
		at = 0
	}

	ctrl.Start()
	base := time.Now()
	ctrl.Step(base)
	frame := ctrl.Step(base.Add(time.Duration(at * float64(time.Second))))

	svg := export.FrameToSVG(ctrl.Set(), frame, svgWidth, svgHeight)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs)\n", svgOut, frame.Elapsed)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chimes := newChimes(cfg)
	defer func() {
		if chimes != nil && chimes.Active() {
			chimes.Stop()
		}
	}()

	gui.Run(cfg, chimes)
	return nil
}
