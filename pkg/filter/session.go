package filter

import (
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// Session is the pending/applied two-stage filter model. Edits accumulate in
// the pending copy; only Commit makes them visible through Applied. This keeps
// half-edited filter states from ever reaching the network layer. Whether a
// host commits on every edit or behind an Apply button is its own policy.
//
// A Session is not safe for concurrent use; the host's event loop serializes
// edits.
type Session struct {
	pending types.FilterState
	applied types.FilterState
}

func NewSession() *Session {
	return &Session{
		pending: types.DefaultFilterState(),
		applied: types.DefaultFilterState(),
	}
}

// Edit routes a field change through the reconciler into the pending state.
func (s *Session) Edit(key Key, value any) {
	s.pending = Update(s.pending, key, value)
}

// Pending returns a copy of the uncommitted state.
func (s *Session) Pending() types.FilterState {
	return s.pending.Clone()
}

// Applied returns a copy of the last committed state.
func (s *Session) Applied() types.FilterState {
	return s.applied.Clone()
}

// Commit promotes the pending state and returns the new applied state.
func (s *Session) Commit() types.FilterState {
	s.applied = s.pending.Clone()
	return s.Applied()
}

// Reset discards pending edits, reverting to the applied state.
func (s *Session) Reset() {
	s.pending = s.applied.Clone()
}

// Clear resets both states to the session-start defaults.
func (s *Session) Clear() {
	s.pending = types.DefaultFilterState()
	s.applied = types.DefaultFilterState()
}
