package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/curverace/internal/render"
)

// dotSize is the square of image pixels drawn per canvas dot.
const dotSize = 4

// recorder accumulates paletted frames for GIF export.
type recorder struct {
	frames []*image.Paletted
}

func newRecorder() *recorder {
	return &recorder{frames: make([]*image.Paletted, 0, historyCapacity)}
}

// capture rasterizes the canvas dots into a black-and-white frame.
func (r *recorder) capture(c *render.Canvas) {
	w, h := c.DotWidth()*dotSize, c.DotHeight()*dotSize
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})

	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if !c.DotSet(x, y) {
				continue
			}
			for py := 0; py < dotSize; py++ {
				for px := 0; px < dotSize; px++ {
					img.SetColorIndex(x*dotSize+px, y*dotSize+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *recorder) save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
