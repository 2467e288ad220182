// Package viz provides the terminal visualization for curve races.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: the live race view with canvas, ranking panel and chart
//   - theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Start / pause / resume the race
//	R     - Reset to the idle state
//	+/-   - Adjust the speed multiplier
//	↑/↓   - Tune the weighted cycloid (while not running)
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// Race sessions can be captured as GIF animations with the G key.
// Recordings are saved to the current directory.
package viz
