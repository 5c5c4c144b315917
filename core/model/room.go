package model

// Room is a schedulable space from the room inventory.
type Room struct {
	// Name identifies the room and is the join key for sections.
	Name     string
	Capacity Number
}

// Section is one scheduled course occurrence.
type Section struct {
	Room         string
	Program      string
	Period       string
	Day          Day
	Session      Session
	Participants Number
}

// Record is a section joined with the attributes of its room.
type Record struct {
	Section
	// Capacity is undefined when the room is unknown to the inventory.
	Capacity Number
	// Matched reports whether the section room exists in the inventory.
	Matched    bool
	Efficiency Number
}

// NewRecord joins a section with its room. A nil room yields an unmatched
// record with undefined capacity.
func NewRecord(s Section, r *Room) Record {
	rec := Record{Section: s}
	if r != nil {
		rec.Matched = true
		rec.Capacity = r.Capacity
	}
	rec.Efficiency = Efficiency(s.Participants, rec.Capacity)
	return rec
}

// Efficiency returns participants divided by capacity. The result is
// undefined when either side is undefined or the capacity is not positive.
func Efficiency(participants, capacity Number) Number {
	if !participants.Valid || !capacity.Valid || capacity.Value <= 0 {
		return Number{}
	}
	return Valid(participants.Value / capacity.Value)
}
