package dimension

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Session is a measurement session. It runs the same classification
// and resolution pipeline as dimensioning but its output is a
// Measurement, which never reaches the constraint solver and never
// affects degrees of freedom.
//
// Its selection is independent of the dimension tools: entering the
// measure tool starts with an empty session, leaving it discards any
// partial selection and any computed but uncommitted measurement.
type Session struct {
	store    *sketch.Store
	resolver *Resolver
	items    []sketch.SelectionItem
}

// NewSession creates an empty measurement session over a store
func NewSession(store *sketch.Store) *Session {
	return &Session{
		store:    store,
		resolver: NewResolver(),
	}
}

// Select adds a selection item. A third pick starts a fresh selection
// with that item, matching how repeated measuring feels in the tool.
func (s *Session) Select(item sketch.SelectionItem) {
	if len(s.items) >= 2 {
		s.items = s.items[:0]
	}
	s.items = append(s.items, item)
}

// Selection returns the current selection items
func (s *Session) Selection() []sketch.SelectionItem {
	return s.items
}

// MeasureAt computes the measurement for the current selection with
// the given placement point. The selection is kept so the value can be
// recomputed while the pointer moves.
func (s *Session) MeasureAt(placement geometry.Point2) (Measurement, error) {
	pair, err := Classify(s.store, s.items)
	if err != nil {
		return Measurement{}, err
	}
	proposal, err := s.resolver.Resolve(pair, placement)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Kind:      proposal.Kind,
		Subjects:  proposal.Subjects,
		Value:     proposal.Value,
		Anchor:    proposal.Anchor,
		Placement: proposal.Placement,
	}, nil
}

// Reset discards the selection and any pending measurement. Called on
// tool switch and when a new measurement selection starts.
func (s *Session) Reset() {
	s.items = s.items[:0]
}
