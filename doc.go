// Package paraxial is a small toolkit for paraxial (Gaussian) optics with
// ray-transfer ("ABCD") matrices: build an optical train, trace rays through
// it and draw the result.
//
// What is in the box?
//
//	optics/:   Ray, TransferMatrix and the element variants
//	           (FreeSpace, ThinLens, FlatMirror, Generic)
//	scene/:    axial layout: a cursor that turns "lens, then 100 mm, then
//	           lens" into absolute positions
//	tracer/:   propagates every ray through every element, producing
//	           (z, height) polylines
//	scenario/: TOML scenario files → scenes
//	render/:   PNG diagrams of traced scenes
//	cmd/paraxial: trace a scenario from the command line
//
// Quick example:
//
//	s := scene.New()
//	_ = s.AddAll(
//		optics.NewRay(0, 0.1),
//		optics.NewFreeSpace(100),
//		optics.MustThinLens(50),
//		optics.NewFreeSpace(100),
//	)
//	paths, _ := tracer.Trace(s)
//	fmt.Println(paths[0].Points()) // [[0 0] [100 10] [100 10] [200 0]]
//
// Scope: small-angle, meridional rays only. No exact ray tracing,
// diffraction, skew rays or thick lenses; lengths are in whatever unit the
// caller uses consistently.
//
//	go get github.com/katalvlaran/paraxial
package paraxial
