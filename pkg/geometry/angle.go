package geometry

import "math"

// ParallelDenomEpsilon gates the 2x2 determinant of the line-line
// intersection. Below it the lines are treated as parallel.
const ParallelDenomEpsilon = 1e-4

// AngleResult describes the angle between two line segments.
type AngleResult struct {
	// Vertex is the intersection of the two infinite lines. For
	// parallel lines it falls back to the midpoint of the first
	// segment's End and the second segment's Start and carries no
	// geometric meaning.
	Vertex Point2
	// Degrees is the non-reflex angle in [0, 180]. For parallel lines
	// it is within floating-point noise of 0 or 180; callers must
	// route that case to a distance, not an angle.
	Degrees float64
	// Dir1 and Dir2 are the disambiguated direction vectors from
	// Vertex along each segment.
	Dir1 Point2
	Dir2 Point2
	// Parallel reports that the intersection determinant was below
	// ParallelDenomEpsilon.
	Parallel bool
}

// AngleBetween computes the intersection vertex of two segments and
// the angle between them, in degrees.
//
// The direction of each segment is never taken from its endpoint
// order. A segment is an unordered pair of endpoints, so the direction
// vector points from the vertex toward whichever endpoint lies farther
// from it. Trusting End blindly gives a wrong angle whenever one
// segment's endpoint order is reversed relative to the other; all four
// orientation permutations of the same geometric configuration must
// agree.
func AngleBetween(line1, line2 Segment) AngleResult {
	d1 := line1.Delta()
	d2 := line2.Delta()

	denom := d1.Cross(d2)
	if math.Abs(denom) <= ParallelDenomEpsilon {
		// Parallel or near-parallel: no usable intersection. The angle
		// comes straight from the segment deltas so it lands on 0 or
		// 180 exactly as the caller expects for the degenerate case.
		diff := normalizeAngle(d2.Angle() - d1.Angle())
		return AngleResult{
			Vertex:   line1.End.Midpoint(line2.Start),
			Degrees:  math.Abs(diff) * 180 / math.Pi,
			Dir1:     d1,
			Dir2:     d2,
			Parallel: true,
		}
	}

	// Standard 2x2 determinant intersection on the four endpoints.
	t := line2.Start.Sub(line1.Start).Cross(d2) / denom
	vertex := line1.Start.Add(d1.Mul(t))

	dir1 := fartherDirection(vertex, line1)
	dir2 := fartherDirection(vertex, line2)

	diff := normalizeAngle(dir2.Angle() - dir1.Angle())
	return AngleResult{
		Vertex:  vertex,
		Degrees: math.Abs(diff) * 180 / math.Pi,
		Dir1:    dir1,
		Dir2:    dir2,
	}
}

// fartherDirection returns the vector from vertex toward whichever of
// the segment's endpoints is farther from it.
func fartherDirection(vertex Point2, s Segment) Point2 {
	if vertex.DistanceSq(s.Start) > vertex.DistanceSq(s.End) {
		return s.Start.Sub(vertex)
	}
	return s.End.Sub(vertex)
}
