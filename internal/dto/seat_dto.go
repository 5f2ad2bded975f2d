package dto

// SeatCountRequest changes the total seat capacity.
type SeatCountRequest struct {
	Count int `json:"count" validate:"gte=0,lte=1000"`
}

// SeatAssignRequest places a student on a seat label.
type SeatAssignRequest struct {
	StudentID  string `json:"studentId" validate:"required"`
	SeatNumber string `json:"seatNumber" validate:"required"`
}

// SeatReleaseRequest frees a seat label across all shifts.
type SeatReleaseRequest struct {
	SeatNumber string `json:"seatNumber" validate:"required"`
}
