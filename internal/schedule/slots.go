// Package schedule implements the weekly calendar core: the fixed slot and
// day catalogs, the geometry mapping that turns bookings into positioned
// grid blocks, and the drag-to-select interval state machine.
//
// Slot labels mark boundaries between bookable periods, not the periods
// themselves: N boundaries bound N-1 bookable intervals, and no interval
// can start at the final boundary.
package schedule

import "fmt"

// Day is one column of the weekly grid.
type Day struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

// DefaultSlots are the bookable-period boundaries of the working day.
var DefaultSlots = []string{
	"08:00",
	"09:00",
	"09:50",
	"10:40",
	"11:30",
	"12:20",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// DefaultDays are the columns of the booking week.
var DefaultDays = []Day{
	{Name: "Monday", Date: "12 Jan 2026"},
	{Name: "Tuesday", Date: "13 Jan 2026"},
	{Name: "Wednesday", Date: "14 Jan 2026"},
	{Name: "Thursday", Date: "15 Jan 2026"},
	{Name: "Friday", Date: "16 Jan 2026"},
	{Name: "Saturday", Date: "17 Jan 2026"},
	{Name: "Sunday", Date: "18 Jan 2026"},
}

// Index is the immutable coordinate system of the grid: an ordered catalog
// of slot boundaries and an ordered catalog of days. All lookups return
// sentinel values instead of failing.
type Index struct {
	slots   []string
	days    []Day
	slotPos map[string]int
	dayPos  map[string]int
}

// NewIndex builds an Index from the given catalogs.
// Slot labels must be strictly increasing and duplicate-free; day names
// must be unique.
func NewIndex(slots []string, days []Day) (*Index, error) {
	if len(slots) < 2 {
		return nil, fmt.Errorf("schedule: need at least two slot boundaries, got %d", len(slots))
	}

	slotPos := make(map[string]int, len(slots))
	for i, s := range slots {
		if _, dup := slotPos[s]; dup {
			return nil, fmt.Errorf("schedule: duplicate slot boundary %q", s)
		}
		if i > 0 && slots[i-1] >= s {
			return nil, fmt.Errorf("schedule: slot boundaries not increasing at %q", s)
		}
		slotPos[s] = i
	}

	dayPos := make(map[string]int, len(days))
	for i, d := range days {
		if _, dup := dayPos[d.Name]; dup {
			return nil, fmt.Errorf("schedule: duplicate day %q", d.Name)
		}
		dayPos[d.Name] = i
	}

	ix := &Index{
		slots:   append([]string(nil), slots...),
		days:    append([]Day(nil), days...),
		slotPos: slotPos,
		dayPos:  dayPos,
	}
	return ix, nil
}

// DefaultIndex returns the catalog the application ships with.
func DefaultIndex() *Index {
	ix, err := NewIndex(DefaultSlots, DefaultDays)
	if err != nil {
		panic(err) // defaults are static and known valid
	}
	return ix
}

// SlotPosition returns the position of a slot boundary, or -1 when the
// boundary is not in the catalog.
func (ix *Index) SlotPosition(slot string) int {
	if p, ok := ix.slotPos[slot]; ok {
		return p
	}
	return -1
}

// NextSlot returns the boundary immediately after slot.
// ok is false when slot is the last boundary or not in the catalog.
func (ix *Index) NextSlot(slot string) (string, bool) {
	p, found := ix.slotPos[slot]
	if !found || p+1 >= len(ix.slots) {
		return "", false
	}
	return ix.slots[p+1], true
}

// DayPosition returns the position of a day by name, or -1 when the day is
// not in the catalog.
func (ix *Index) DayPosition(day string) int {
	if p, ok := ix.dayPos[day]; ok {
		return p
	}
	return -1
}

// DayByName returns the full day entry for a name.
func (ix *Index) DayByName(name string) (Day, bool) {
	p, ok := ix.dayPos[name]
	if !ok {
		return Day{}, false
	}
	return ix.days[p], true
}

// Slots returns the ordered boundary catalog.
func (ix *Index) Slots() []string {
	return append([]string(nil), ix.slots...)
}

// Days returns the ordered day catalog.
func (ix *Index) Days() []Day {
	return append([]Day(nil), ix.days...)
}

// SlotCount returns the number of boundaries.
func (ix *Index) SlotCount() int { return len(ix.slots) }

// DayCount returns the number of days.
func (ix *Index) DayCount() int { return len(ix.days) }
