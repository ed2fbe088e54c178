package geometry

import (
	"fmt"
	"math"
)

// DegenerateEpsilon is the endpoint distance below which a segment is
// considered degenerate and rejected at creation.
const DegenerateEpsilon = 1e-9

// Segment represents a straight line segment between two endpoints.
// Start and End carry no semantic order: no operation on a Segment may
// treat one endpoint as a distinguished anchor.
type Segment struct {
	Start Point2
	End   Point2
}

// NewSegment creates a segment, rejecting degenerate ones whose
// endpoints coincide within DegenerateEpsilon.
func NewSegment(start, end Point2) (Segment, error) {
	if start.DistanceSq(end) < DegenerateEpsilon*DegenerateEpsilon {
		return Segment{}, fmt.Errorf("degenerate segment: endpoints coincide at (%g, %g)", start.X, start.Y)
	}
	return Segment{Start: start, End: end}, nil
}

// Length returns the distance between the two endpoints
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the point halfway between the two endpoints
func (s Segment) Midpoint() Point2 {
	return s.Start.Midpoint(s.End)
}

// Delta returns the un-normalized direction End - Start.
// Callers must not assume this points "forward" in any user-visible
// sense; endpoint order is arbitrary.
func (s Segment) Delta() Point2 {
	return s.End.Sub(s.Start)
}

// ClosestOnLine returns the projection of p onto the infinite line
// through the segment's endpoints.
func (s Segment) ClosestOnLine(p Point2) Point2 {
	d := s.Delta()
	t := p.Sub(s.Start).Dot(d) / d.LengthSq()
	return s.Start.Add(d.Mul(t))
}

// ClosestOnSegment returns the point on the segment nearest to p.
// Unlike ClosestOnLine the result is clamped to the endpoints.
func (s Segment) ClosestOnSegment(p Point2) Point2 {
	d := s.Delta()
	t := p.Sub(s.Start).Dot(d) / d.LengthSq()
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.Start.Add(d.Mul(t))
}

// PerpendicularDistance returns the distance from p to the infinite
// line through the segment's endpoints.
func (s Segment) PerpendicularDistance(p Point2) float64 {
	d := s.Delta()
	return math.Abs(d.Cross(p.Sub(s.Start))) / d.Length()
}

// AngleTo returns the smallest angle between the directions of two
// segments in degrees, in [0, 90]. Endpoint order of either segment
// does not affect the result.
func (s Segment) AngleTo(other Segment) float64 {
	a := s.Delta().Angle()
	b := other.Delta().Angle()
	diff := math.Abs(normalizeAngle(b - a))
	deg := diff * 180 / math.Pi
	if deg > 90 {
		deg = 180 - deg
	}
	return deg
}

// normalizeAngle wraps an angle in radians into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
