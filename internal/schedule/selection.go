package schedule

// Proposal is a day/boundary interval proposed by a gesture, handed to the
// booking form for pre-filling. The selector performs no ordering
// validation: the form is responsible for rejecting inverted or degenerate
// intervals before submission.
type Proposal struct {
	Day   string
	Start string
	End   string
}

type pressPoint struct {
	day  string
	slot string
}

// Selector is the press/release gesture state machine of the desktop grid.
// It is either idle or dragging from the cell where a press began; the
// drag memory is cleared unconditionally when a release is processed.
type Selector struct {
	index *Index
	drag  *pressPoint
}

// NewSelector creates a selector over the given coordinate index.
func NewSelector(ix *Index) *Selector {
	return &Selector{index: ix}
}

// Dragging reports whether a press is awaiting its release.
func (s *Selector) Dragging() bool { return s.drag != nil }

// Press begins a drag at (day, slot) and immediately proposes the default
// one-boundary-wide interval. A press on the terminal boundary is a no-op:
// no bookable interval starts there.
func (s *Selector) Press(day, slot string) (Proposal, bool) {
	next, ok := s.index.NextSlot(slot)
	if !ok {
		return Proposal{}, false
	}

	s.drag = &pressPoint{day: day, slot: slot}
	return Proposal{Day: day, Start: slot, End: next}, true
}

// Release completes the drag begun by Press, proposing the interval from
// the press cell to the release boundary. The release day is ignored and
// the interval is not validated; start may not precede end. A release with
// no matching press is a no-op.
func (s *Selector) Release(day, slot string) (Proposal, bool) {
	if s.drag == nil {
		return Proposal{}, false
	}

	p := Proposal{Day: s.drag.day, Start: s.drag.slot, End: slot}
	s.drag = nil
	return p, true
}
