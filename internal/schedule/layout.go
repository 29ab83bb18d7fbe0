package schedule

import "encoding/json"

// UserRef is an owner reference as it appears on the wire: either a bare
// id string or an object carrying an id. Both decode to the bare id.
type UserRef string

// UnmarshalJSON accepts "42", {"_id":"42"} and {"id":"42"}.
// Anything else decodes to the empty reference rather than erroring.
func (r *UserRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = UserRef(s)
		return nil
	}
	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		if obj.MongoID != "" {
			*r = UserRef(obj.MongoID)
		} else {
			*r = UserRef(obj.ID)
		}
		return nil
	}
	*r = ""
	return nil
}

// Booking is the calendar core's view of a persisted booking record.
// JSON tags match the original booking API wire format.
type Booking struct {
	ID         string  `json:"_id"`
	Owner      UserRef `json:"userId"`
	Professor  string  `json:"professor"`
	Department string  `json:"department"`
	School     string  `json:"school"`
	Room       string  `json:"room"`
	Day        string  `json:"day"`
	Start      string  `json:"startTime"`
	End        string  `json:"endTime"`
}

// Feed is a booking collection decoded tolerantly: the payload may be a
// bare array or an object wrapping one under "bookings". Any other shape
// decodes as empty.
type Feed []Booking

// UnmarshalJSON implements the tolerant decode.
func (f *Feed) UnmarshalJSON(b []byte) error {
	var arr []Booking
	if err := json.Unmarshal(b, &arr); err == nil {
		*f = arr
		return nil
	}
	var wrapped struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Bookings != nil {
		*f = wrapped.Bookings
		return nil
	}
	*f = Feed{}
	return nil
}

// Session identifies the logged-in user to the core. A zero UserID means
// the viewer owns nothing.
type Session struct {
	UserID string
	Name   string
}

// OwnedBy reports whether the booking belongs to the given user id,
// comparing normalized owner references by string equality.
func (b Booking) OwnedBy(userID string) bool {
	return userID != "" && string(b.Owner) == userID
}

// Metrics are the fixed pixel dimensions the grid is laid out against.
type Metrics struct {
	RowHeight    float64
	TimeColWidth float64
	TotalWidth   float64
}

// Mode selects the presentation strategy. The data and selection core is
// shared; only the rendering of it differs.
type Mode int

const (
	ModeGrid Mode = iota // positioned blocks, drag selection enabled
	ModeList             // plain ordered list, drag disabled
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == ModeList {
		return "list"
	}
	return "grid"
}

// ModeForWidth maps a viewport width to a presentation mode.
func ModeForWidth(width, breakpoint float64) Mode {
	if width < breakpoint {
		return ModeList
	}
	return ModeGrid
}

// Block is one booking positioned on the grid. Offsets are absolute within
// the calendar surface; row 0 is the day-header row, which is why the top
// offset is shifted down by one row height.
type Block struct {
	Booking    Booking
	Top        float64
	Height     float64
	Left       float64
	Width      float64
	Owned      bool
	ShowDelete bool
}

// ListItem is one booking in list mode.
type ListItem struct {
	Booking    Booking
	Owned      bool
	ShowDelete bool
}

// GridView is the desktop presentation.
type GridView struct {
	Blocks []Block
}

// ListView is the narrow-viewport presentation.
type ListView struct {
	Items []ListItem
}

// ActiveTracker remembers the last-clicked booking. Only activating a
// different booking replaces the active one; there is no automatic
// deactivation.
type ActiveTracker struct {
	id string
}

// Activate marks a booking as the active one.
func (t *ActiveTracker) Activate(id string) { t.id = id }

// ActiveID returns the currently active booking id, or "".
func (t *ActiveTracker) ActiveID() string { return t.id }

// Clear drops the active booking (detail-modal close path).
func (t *ActiveTracker) Clear() { t.id = "" }

// Engine lays out bookings against an Index. It holds no booking state;
// every call sees a fully-replaced snapshot of the list.
type Engine struct {
	index *Index
}

// NewEngine creates a layout engine over the given coordinate index.
func NewEngine(ix *Index) *Engine {
	return &Engine{index: ix}
}

// Index returns the engine's coordinate index.
func (e *Engine) Index() *Index { return e.index }

// valid re-checks that both boundaries and the day of a booking exist in
// the catalogs and that the interval has positive extent. This is the only
// defense against partially corrupt remote data; corrupt records are
// dropped, never rendered.
func (e *Engine) valid(b Booking) bool {
	start := e.index.SlotPosition(b.Start)
	end := e.index.SlotPosition(b.End)
	if start < 0 || end < 0 || end <= start {
		return false
	}
	return e.index.DayPosition(b.Day) >= 0
}

// Grid positions the bookings for the desktop view. Bookings referencing
// unknown days or boundaries, or with non-positive extent, are excluded.
// The delete affordance shows only on the viewer's own, currently active
// booking.
func (e *Engine) Grid(bookings []Booking, sess Session, m Metrics, activeID string) GridView {
	colWidth := (m.TotalWidth - m.TimeColWidth) / float64(e.index.DayCount())

	blocks := make([]Block, 0, len(bookings))
	for _, b := range bookings {
		if !e.valid(b) {
			continue
		}

		start := e.index.SlotPosition(b.Start)
		end := e.index.SlotPosition(b.End)
		dayPos := e.index.DayPosition(b.Day)

		owned := b.OwnedBy(sess.UserID)
		blocks = append(blocks, Block{
			Booking:    b,
			Top:        float64(start+1) * m.RowHeight,
			Height:     float64(end-start) * m.RowHeight,
			Left:       m.TimeColWidth + float64(dayPos)*colWidth,
			Width:      colWidth,
			Owned:      owned,
			ShowDelete: owned && activeID != "" && activeID == b.ID,
		})
	}

	return GridView{Blocks: blocks}
}

// List renders the bookings for the narrow-viewport view, ordered by day
// then start boundary. Every owned booking shows its delete affordance;
// there is no drag selection in this mode.
func (e *Engine) List(bookings []Booking, sess Session) ListView {
	type keyed struct {
		item ListItem
		day  int
		slot int
	}

	rows := make([]keyed, 0, len(bookings))
	for _, b := range bookings {
		if !e.valid(b) {
			continue
		}
		owned := b.OwnedBy(sess.UserID)
		rows = append(rows, keyed{
			item: ListItem{Booking: b, Owned: owned, ShowDelete: owned},
			day:  e.index.DayPosition(b.Day),
			slot: e.index.SlotPosition(b.Start),
		})
	}

	// insertion sort; the week holds at most a few dozen bookings
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0; j-- {
			prev, cur := rows[j-1], rows[j]
			if prev.day < cur.day || (prev.day == cur.day && prev.slot <= cur.slot) {
				break
			}
			rows[j-1], rows[j] = cur, prev
		}
	}

	items := make([]ListItem, len(rows))
	for i, r := range rows {
		items[i] = r.item
	}
	return ListView{Items: items}
}
