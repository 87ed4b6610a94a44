// Package tracer propagates every ray of a scene.Scene through the scene's
// elements and returns the piecewise-linear path of each ray.
//
// Algorithm (per ray entry, start position z0, initial ray r0):
//  1. path = [(z0, r0.height)], z = z0, ray = r0.
//  2. For each element entry in axial order:
//     z   += element.Advance()        (FreeSpace only; before sampling)
//     ray  = element.Matrix().Apply(ray)
//     path = append(path, (z, ray.height))
//  3. Return path.
//
// The fold is exposed as Step(State, optics.Element) so a single transform
// can be tested or reused in isolation.
//
// Modes:
//
//   - AllElements (default): every element is applied to every ray, even
//     elements that were added to the scene before the ray. This matches
//     the long-standing behavior of scenes that add all rays first.
//   - FromRayPosition: a ray only passes through elements added after it
//     (RayEntry.FirstElement onward).
//
// Complexity: O(R·E) time, O(R·E) memory for the returned samples.
//
// Trace is pure: it never mutates the scene and holds no state between calls.
package tracer
