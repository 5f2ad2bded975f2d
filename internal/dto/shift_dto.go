package dto

// ShiftCreateRequest defines a new shift window.
type ShiftCreateRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	StartTime  string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime    string `json:"endTime" validate:"required,datetime=15:04"`
	MonthlyFee int    `json:"monthlyFee" validate:"gte=0"`
	IsActive   bool   `json:"isActive"`
}

// ShiftUpdateRequest is a partial merge; absent fields stay untouched.
type ShiftUpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=120"`
	StartTime  *string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime    *string `json:"endTime" validate:"omitempty,datetime=15:04"`
	MonthlyFee *int    `json:"monthlyFee" validate:"omitempty,gte=0"`
	IsActive   *bool   `json:"isActive"`
}
