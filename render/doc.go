// Package render draws a traced scene as a PNG diagram: the optical axis,
// one polyline per ray and a symbol per element.
//
// It carries no optics of its own; everything it plots comes from
// scene.Scene.Elements and tracer.Path.Points. Symbols:
//
//   - ThinLens:   blue double-headed arrow spanning ±Radius.
//   - FlatMirror: gray bar spanning ±Radius.
//   - Generic:    dark tick spanning ±Radius/2.
//   - FreeSpace:  nothing (the gap between symbols is the free space).
//
// Ray colors cycle red, green, cyan, magenta. No text is drawn: focal-length
// labels, axis titles and grid lines are left to the caller.
package render
