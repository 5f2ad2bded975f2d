package models

// Seat is a physical slot identified by a human-facing label such as
// "S-12". Occupancy is never stored on the seat; it is derived per shift
// from the students holding the label.
type Seat struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

// SeatStatus describes the derived occupancy of a seat within one shift.
type SeatStatus string

const (
	SeatVacant   SeatStatus = "VACANT"
	SeatOccupied SeatStatus = "OCCUPIED"
)

// SeatView is the per-shift occupancy projection of a seat.
type SeatView struct {
	Seat
	Status      SeatStatus `json:"status"`
	StudentID   string     `json:"studentId,omitempty"`
	StudentName string     `json:"studentName,omitempty"`
}

// SeatLog is an append-only audit entry recording a change to the total
// seat capacity. Newest entries come first.
type SeatLog struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	PrevCount int    `json:"prevCount"`
	NewCount  int    `json:"newCount"`
	AdminName string `json:"adminName"`
}
