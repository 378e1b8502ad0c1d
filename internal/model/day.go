package model

// Mark is the per-slot confirmation state written into the ledger grid.
type Mark string

// Confirmation marks.
const (
	MarkNone      Mark = ""
	MarkConfirmed Mark = "CONFIRMED"
	MarkAnomaly   Mark = "ANOMALY"
)

// Glyph returns the character the ledger prints for the mark.
func (m Mark) Glyph() string {
	switch m {
	case MarkConfirmed:
		return "○"
	case MarkAnomaly:
		return "△"
	default:
		return ""
	}
}

// DaySlot is one direction slot of a day: its confirmation mark and the sum
// of fares folded into it.
type DaySlot struct {
	Mark   Mark
	Amount int // yen
}

// Empty reports whether nothing was folded into the slot.
func (s DaySlot) Empty() bool {
	return s.Mark == MarkNone && s.Amount == 0
}

// DayBucket aggregates one calendar day. The outbound slot holds morning
// legs, the return slot afternoon legs. One bucket exists for every day of
// the target month whether or not any record matched.
type DayBucket struct {
	Outbound DaySlot
	Return   DaySlot
}

// Slot returns the slot for a time-of-day bucket.
func (b *DayBucket) Slot(t TimeBucket) *DaySlot {
	if t == Afternoon {
		return &b.Return
	}
	return &b.Outbound
}

// Empty reports whether both slots are empty.
func (b DayBucket) Empty() bool {
	return b.Outbound.Empty() && b.Return.Empty()
}
