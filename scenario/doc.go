// Package scenario describes an optical scene in a TOML file and builds the
// corresponding scene.Scene.
//
// The file lists items in the order they are added to the scene; rays are
// placed at the cursor position reached so far:
//
//	output = "example.png"
//	strict = false
//	unit   = "mm"
//
//	[[item]]
//	kind   = "ray"
//	height = 0
//	angle  = 0.1
//
//	[[item]]
//	kind     = "freespace"
//	distance = 100
//
//	[[item]]
//	kind  = "lens"
//	focus = 50
//
// Recognized kinds: "ray", "freespace", "lens", "mirror", "matrix"
// (with a = .., b = .., c = .., d = ..).
//
// Keys absent from the file keep the values of DefaultConfig, except the
// item list, which is replaced as a whole when the file has any [[item]].
package scenario
