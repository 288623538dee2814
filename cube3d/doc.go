// Package cube3d is the transform-and-project core of spincube.
//
// It rotates the fixed cube model, pushes it away from the camera, divides by
// depth and maps the result into pixel space. It does not draw: output goes to a
// caller-provided Sink.
//
// Pipeline (fixed, per vertex):
//
//	Rotate → Translate (+Distance on z) → Project (x/z, y/z) → ToScreen.
//
// Two rotation strategies exist and they are not interchangeable for arbitrary
// axes: Euler (a plane rotation about +Y) and quaternion conjugation about any
// non-zero axis. All functions are pure; the only state is AnimationState, owned
// by the caller's frame loop.
package cube3d
