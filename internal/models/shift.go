package models

// Shift is a named recurring daily time window with its own monthly fee.
// StartTime and EndTime are HH:MM wall-clock strings; an EndTime of
// "00:00" means midnight (24:00) for window math.
type Shift struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MonthlyFee int    `json:"monthlyFee"`
	IsActive   bool   `json:"isActive"`
}
