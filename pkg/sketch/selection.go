package sketch

// Role describes which geometric feature of an entity a selection item
// refers to.
type Role int

const (
	// RoleEndpointStart and RoleEndpointEnd pick one endpoint of a
	// line. The names mirror the storage slots only; neither endpoint
	// is semantically "first".
	RoleEndpointStart Role = iota
	RoleEndpointEnd
	// RoleMidpoint picks the midpoint of a line
	RoleMidpoint
	// RoleCenter picks the center of a circle or arc
	RoleCenter
	// RoleEdgeCurve picks the curve of a line, circle or arc itself
	RoleEdgeCurve
	// RoleOrigin picks the sketch origin. The item's Entity is zero.
	RoleOrigin
)

// String returns a short name for the role
func (r Role) String() string {
	switch r {
	case RoleEndpointStart:
		return "endpoint-start"
	case RoleEndpointEnd:
		return "endpoint-end"
	case RoleMidpoint:
		return "midpoint"
	case RoleCenter:
		return "center"
	case RoleEdgeCurve:
		return "edge"
	case RoleOrigin:
		return "origin"
	}
	return "unknown"
}

// IsPointLike reports whether the role resolves to a single point
// rather than a curve.
func (r Role) IsPointLike() bool {
	switch r {
	case RoleEndpointStart, RoleEndpointEnd, RoleMidpoint, RoleCenter, RoleOrigin:
		return true
	}
	return false
}

// SelectionItem is one picked feature: an entity reference tagged with
// the geometric role that was picked. A dimensioning selection is an
// ordered sequence of at most two items.
type SelectionItem struct {
	Entity ID
	Role   Role
}
