package models

// PunchType is the direction of an attendance punch.
type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

// Attendance is one record per student per day. A record with a nil
// OutTime is "open"; setting OutTime closes it and is terminal for the
// day. ShiftID is a denormalized copy of the student's shift at punch-in
// time and is kept even if the shift is later deleted.
type Attendance struct {
	ID        string  `json:"id"`
	StudentID string  `json:"studentId"`
	Date      string  `json:"date"`
	InTime    string  `json:"inTime"`
	OutTime   *string `json:"outTime"`
	ShiftID   string  `json:"shiftId"`
}
