// Package spatial converts batches of positions through a transform.
//
// The math itself lives in the vector, matrix, rotation and transform packages; this
// package only fans the per-point work out over a fixed number of goroutines.
package spatial

import (
	"github.com/akmonengine/spatial/transform"
	"github.com/akmonengine/spatial/vector"
)

const DefaultWorkers = 1

// ToWorldAll maps every local point to world space.
// t must not be mutated until ToWorldAll returns.
func ToWorldAll(t transform.Transform, points []vector.Vec3, workers int) []vector.Vec3 {
	return mapAll(points, workers, t.ToWorld)
}

// ToLocalAll maps every world point into t's local space.
// t must not be mutated until ToLocalAll returns.
func ToLocalAll(t transform.Transform, points []vector.Vec3, workers int) []vector.Vec3 {
	return mapAll(points, workers, t.ToLocal)
}

func mapAll(points []vector.Vec3, workers int, fn func(vector.Vec3) vector.Vec3) []vector.Vec3 {
	workers = max(DefaultWorkers, workers)
	out := make([]vector.Vec3, len(points))
	task(workers, points, func(i int, p vector.Vec3) {
		out[i] = fn(p)
	})
	return out
}
