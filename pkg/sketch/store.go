package sketch

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// SnapPoint is a pickable point of an existing entity, used for
// coincident snapping and selection resolution.
type SnapPoint struct {
	Entity   ID // zero for the sketch origin
	Role     Role
	Position geometry.Point2
}

// Store holds the entities of one sketch in insertion order.
//
// The inference engine treats the store as read-only: it looks
// entities up, queries snap points and enumerates recent lines, but
// never mutates entity data in place. Only the surrounding command
// layer adds geometry.
type Store struct {
	entities map[ID]Entity
	order    []ID
	nextID   ID
}

// NewStore creates an empty sketch store
func NewStore() *Store {
	return &Store{
		entities: make(map[ID]Entity),
		nextID:   1,
	}
}

// Len returns the number of entities
func (s *Store) Len() int {
	return len(s.order)
}

// Get returns the entity with the given id
func (s *Store) Get(id ID) (Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Entities returns all entities in insertion order
func (s *Store) Entities() []Entity {
	result := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.entities[id])
	}
	return result
}

func (s *Store) add(build func(ID) Entity) Entity {
	id := s.nextID
	s.nextID++
	e := build(id)
	s.entities[id] = e
	s.order = append(s.order, id)
	return e
}

// AddPoint adds a free point
func (s *Store) AddPoint(position geometry.Point2) Point {
	return s.add(func(id ID) Entity { return Point{ID: id, Position: position} }).(Point)
}

// AddLine adds a line, rejecting degenerate ones whose endpoints
// coincide.
func (s *Store) AddLine(start, end geometry.Point2) (Line, error) {
	if err := validateLine(start, end); err != nil {
		return Line{}, err
	}
	return s.add(func(id ID) Entity { return Line{ID: id, Start: start, End: end} }).(Line), nil
}

// AddCircle adds a circle with a positive radius
func (s *Store) AddCircle(center geometry.Point2, radius float64) (Circle, error) {
	if err := validateRadius(radius); err != nil {
		return Circle{}, err
	}
	return s.add(func(id ID) Entity { return Circle{ID: id, Center: center, Radius: radius} }).(Circle), nil
}

// AddArc adds an arc with a positive radius
func (s *Store) AddArc(center geometry.Point2, radius, startAngle, endAngle float64) (Arc, error) {
	if err := validateRadius(radius); err != nil {
		return Arc{}, err
	}
	return s.add(func(id ID) Entity {
		return Arc{ID: id, Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
	}).(Arc), nil
}

// SnapPoints enumerates every pickable point in the sketch: entity
// positions, line endpoints and midpoints, circle and arc centers,
// plus the sketch origin.
func (s *Store) SnapPoints() []SnapPoint {
	points := []SnapPoint{{Role: RoleOrigin, Position: geometry.NewPoint2(0, 0)}}
	for _, id := range s.order {
		switch e := s.entities[id].(type) {
		case Point:
			points = append(points, SnapPoint{Entity: id, Role: RoleCenter, Position: e.Position})
		case Line:
			points = append(points,
				SnapPoint{Entity: id, Role: RoleEndpointStart, Position: e.Start},
				SnapPoint{Entity: id, Role: RoleEndpointEnd, Position: e.End},
				SnapPoint{Entity: id, Role: RoleMidpoint, Position: e.Midpoint()},
			)
		case Circle:
			points = append(points, SnapPoint{Entity: id, Role: RoleCenter, Position: e.Center})
		case Arc:
			points = append(points, SnapPoint{Entity: id, Role: RoleCenter, Position: e.Center})
		}
	}
	return points
}

// NearestPointWithin returns the snap point closest to p if it lies
// within radius.
func (s *Store) NearestPointWithin(p geometry.Point2, radius float64) (SnapPoint, bool) {
	var nearest SnapPoint
	minDist := math.MaxFloat64

	for _, sp := range s.SnapPoints() {
		dist := p.Distance(sp.Position)
		if dist < minDist {
			minDist = dist
			nearest = sp
		}
	}

	if minDist <= radius {
		return nearest, true
	}
	return SnapPoint{}, false
}

// NearestEdgeWithin returns an edge selection for the entity whose
// curve passes closest to p, if that closest approach is within
// radius. Points are never returned; they are picked through
// NearestPointWithin.
func (s *Store) NearestEdgeWithin(p geometry.Point2, radius float64) (SelectionItem, bool) {
	var nearest SelectionItem
	minDist := math.MaxFloat64

	for _, id := range s.order {
		var dist float64
		switch e := s.entities[id].(type) {
		case Line:
			dist = p.Distance(e.Segment().ClosestOnSegment(p))
		case Circle:
			dist = math.Abs(p.Distance(e.Center) - e.Radius)
		case Arc:
			dist = arcDistance(e, p)
		default:
			continue
		}
		if dist < minDist {
			minDist = dist
			nearest = SelectionItem{Entity: id, Role: RoleEdgeCurve}
		}
	}

	if minDist <= radius {
		return nearest, true
	}
	return SelectionItem{}, false
}

// arcDistance measures from p to the arc's curve. Off the angular
// span the nearest curve point is one of the arc's ends.
func arcDistance(a Arc, p geometry.Point2) float64 {
	angle := p.Sub(a.Center).Angle()
	if angleOnArc(angle, a.StartAngle, a.EndAngle) {
		return math.Abs(p.Distance(a.Center) - a.Radius)
	}
	start := a.Center.Add(geometry.NewPoint2(math.Cos(a.StartAngle), math.Sin(a.StartAngle)).Mul(a.Radius))
	end := a.Center.Add(geometry.NewPoint2(math.Cos(a.EndAngle), math.Sin(a.EndAngle)).Mul(a.Radius))
	return math.Min(p.Distance(start), p.Distance(end))
}

// angleOnArc reports whether angle lies on the counter-clockwise
// sweep from start to end.
func angleOnArc(angle, start, end float64) bool {
	norm := func(a float64) float64 {
		for a < 0 {
			a += 2 * math.Pi
		}
		for a >= 2*math.Pi {
			a -= 2 * math.Pi
		}
		return a
	}
	sweep := norm(end - start)
	return norm(angle-start) <= sweep
}

// RecentLines returns up to n lines, most recently added first. Used
// for parallel/perpendicular inference against the latest geometry.
func (s *Store) RecentLines(n int) []Line {
	var lines []Line
	for i := len(s.order) - 1; i >= 0 && len(lines) < n; i-- {
		if l, ok := s.entities[s.order[i]].(Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// PointAt resolves a point-like selection item to its sketch-local
// coordinates.
func (s *Store) PointAt(item SelectionItem) (geometry.Point2, bool) {
	if item.Role == RoleOrigin {
		return geometry.NewPoint2(0, 0), true
	}
	e, ok := s.entities[item.Entity]
	if !ok {
		return geometry.Point2{}, false
	}

	switch e := e.(type) {
	case Point:
		if item.Role.IsPointLike() {
			return e.Position, true
		}
	case Line:
		switch item.Role {
		case RoleEndpointStart:
			return e.Start, true
		case RoleEndpointEnd:
			return e.End, true
		case RoleMidpoint:
			return e.Midpoint(), true
		}
	case Circle:
		if item.Role == RoleCenter {
			return e.Center, true
		}
	case Arc:
		if item.Role == RoleCenter {
			return e.Center, true
		}
	}
	return geometry.Point2{}, false
}
