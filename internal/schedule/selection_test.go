package schedule

import "testing"

func TestSelector_PressProposesDefaultInterval(t *testing.T) {
	s := NewSelector(DefaultIndex())

	p, ok := s.Press("Monday", "09:00")
	if !ok {
		t.Fatal("press on a non-terminal boundary must propose")
	}
	if p != (Proposal{Day: "Monday", Start: "09:00", End: "09:50"}) {
		t.Errorf("unexpected default proposal: %+v", p)
	}
	if !s.Dragging() {
		t.Error("selector should be dragging after press")
	}
}

func TestSelector_TerminalBoundaryPressIsNoOp(t *testing.T) {
	s := NewSelector(DefaultIndex())

	if _, ok := s.Press("Monday", "17:00"); ok {
		t.Error("press on the terminal boundary must not propose")
	}
	if s.Dragging() {
		t.Error("selector must stay idle after a terminal-boundary press")
	}
}

func TestSelector_DragCompleteness(t *testing.T) {
	s := NewSelector(DefaultIndex())

	if _, ok := s.Press("Monday", "09:00"); !ok {
		t.Fatal("press failed")
	}

	// release on a different day: the press day wins
	p, ok := s.Release("Tuesday", "11:30")
	if !ok {
		t.Fatal("release after press must propose")
	}
	if p != (Proposal{Day: "Monday", Start: "09:00", End: "11:30"}) {
		t.Errorf("unexpected proposal: %+v", p)
	}
	if s.Dragging() {
		t.Error("drag memory must be cleared after release")
	}
}

func TestSelector_InvertedIntervalEmittedVerbatim(t *testing.T) {
	s := NewSelector(DefaultIndex())

	s.Press("Monday", "09:00")
	p, ok := s.Release("Monday", "08:00")
	if !ok {
		t.Fatal("release must propose even for an inverted interval")
	}
	// no ordering validation here; the consuming form rejects it
	if p != (Proposal{Day: "Monday", Start: "09:00", End: "08:00"}) {
		t.Errorf("unexpected proposal: %+v", p)
	}
	if s.Dragging() {
		t.Error("drag memory must be cleared even for invalid releases")
	}
}

func TestSelector_ReleaseWhileIdleIsNoOp(t *testing.T) {
	s := NewSelector(DefaultIndex())

	if _, ok := s.Release("Monday", "09:00"); ok {
		t.Error("release with no matching press must be a no-op")
	}
}

func TestSelector_SecondPressOverwritesDrag(t *testing.T) {
	s := NewSelector(DefaultIndex())

	s.Press("Monday", "08:00")
	s.Press("Friday", "14:00")

	p, ok := s.Release("Friday", "16:00")
	if !ok {
		t.Fatal("release failed")
	}
	if p.Day != "Friday" || p.Start != "14:00" {
		t.Errorf("latest press must win, got %+v", p)
	}
}
