// Package viz renders capital paths in the terminal.
//
// A [Figure] is the hand-off between simulation and rendering: a dashed
// steady-state reference replicated over the horizon plus one labelled
// line per simulated economy. [RenderASCII] draws it with asciigraph;
// [LiveModel] animates the same figure with Bubble Tea.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial capitals
//	+/-   - Raise/lower the savings rate by 0.05 and restart
//	T     - Cycle color themes
//	Q     - Quit
package viz
