package models

// Snapshot is the complete persisted state. It is serialized as a single
// JSON blob; readers must tolerate missing keys by treating them as empty
// collections.
type Snapshot struct {
	Students   []Student    `json:"students"`
	Payments   []Payment    `json:"payments"`
	Attendance []Attendance `json:"attendance"`
	Seats      []Seat       `json:"seats"`
	SeatLogs   []SeatLog    `json:"seatLogs"`
	Shifts     []Shift      `json:"shifts"`
}

// Clone returns a deep copy of the snapshot so callers can hand state
// across goroutine or persistence boundaries without aliasing.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Students:   make([]Student, len(s.Students)),
		Payments:   append([]Payment(nil), s.Payments...),
		Attendance: make([]Attendance, len(s.Attendance)),
		Seats:      append([]Seat(nil), s.Seats...),
		SeatLogs:   append([]SeatLog(nil), s.SeatLogs...),
		Shifts:     append([]Shift(nil), s.Shifts...),
	}
	for i, student := range s.Students {
		out.Students[i] = student
		if student.SeatNumber != nil {
			seat := *student.SeatNumber
			out.Students[i].SeatNumber = &seat
		}
	}
	for i, record := range s.Attendance {
		out.Attendance[i] = record
		if record.OutTime != nil {
			outTime := *record.OutTime
			out.Attendance[i].OutTime = &outTime
		}
	}
	return out
}
