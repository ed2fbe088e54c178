package viewer

import (
	"errors"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// ErrRayParallel is returned when the pointer ray does not meet the
// sketch plane. Callers must report the miss, never substitute a
// guessed point.
var ErrRayParallel = errors.New("viewer: pointer ray is parallel to the sketch plane")

// rayParallelEpsilon bounds the dot product of ray direction and plane
// normal below which the ray counts as parallel.
const rayParallelEpsilon = 1e-6

// ProjectToPlane converts a screen-space pointer position in
// normalized device coordinates into a 2D point on the sketch plane.
//
// It casts a ray from the camera through ndc and intersects the
// infinite plane, then expresses the hit in the plane basis. The
// operation is exact under round-trip: a known local point taken to
// world space and back through the camera recovers its coordinates to
// within floating-point tolerance.
func ProjectToPlane(ndc geometry.Point2, camera *Camera, plane sketch.Plane) (geometry.Point2, error) {
	origin, dir, err := camera.Unproject(ndc)
	if err != nil {
		return geometry.Point2{}, err
	}

	normal := plane.Normal()
	denom := dir.Dot(normal)
	if math.Abs(denom) < rayParallelEpsilon {
		return geometry.Point2{}, ErrRayParallel
	}

	// normal·P + d = 0 with d = -normal·origin.
	d := -normal.Dot(plane.Origin)
	t := -(normal.Dot(origin) + d) / denom
	hit := origin.Add(dir.Mul(t))

	return plane.ToLocal(hit), nil
}
