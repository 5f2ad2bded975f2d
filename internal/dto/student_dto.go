package dto

import "github.com/golibhub/golib-api/internal/models"

// StudentCreateRequest is the admission payload.
type StudentCreateRequest struct {
	FullName           string  `json:"fullName" validate:"required,min=2,max=120"`
	FatherName         string  `json:"fatherName" validate:"max=120"`
	Mobile             string  `json:"mobile" validate:"required,min=6,max=20"`
	Address            string  `json:"address" validate:"max=500"`
	SeatNumber         *string `json:"seatNumber"`
	ShiftID            string  `json:"shiftId" validate:"required"`
	IDProofType        string  `json:"idProofType" validate:"max=50"`
	IDProofNumber      string  `json:"idProofNumber" validate:"max=50"`
	PhotoURL           string  `json:"photoUrl" validate:"omitempty,url"`
	JoiningDate        string  `json:"joiningDate" validate:"required,datetime=2006-01-02"`
	PlanFee            int     `json:"planFee" validate:"gte=0"`
	PlanDurationMonths int     `json:"planDurationMonths" validate:"gte=1,lte=12"`
}

// StudentUpdateRequest is a partial merge; absent fields stay untouched.
type StudentUpdateRequest struct {
	FullName           *string                  `json:"fullName" validate:"omitempty,min=2,max=120"`
	FatherName         *string                  `json:"fatherName" validate:"omitempty,max=120"`
	Mobile             *string                  `json:"mobile" validate:"omitempty,min=6,max=20"`
	Address            *string                  `json:"address" validate:"omitempty,max=500"`
	ShiftID            *string                  `json:"shiftId"`
	IDProofType        *string                  `json:"idProofType" validate:"omitempty,max=50"`
	IDProofNumber      *string                  `json:"idProofNumber" validate:"omitempty,max=50"`
	PhotoURL           *string                  `json:"photoUrl" validate:"omitempty,url"`
	JoiningDate        *string                  `json:"joiningDate" validate:"omitempty,datetime=2006-01-02"`
	PlanFee            *int                     `json:"planFee" validate:"omitempty,gte=0"`
	PlanDurationMonths *int                     `json:"planDurationMonths" validate:"omitempty,gte=1,lte=12"`
	Status             *models.MembershipStatus `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED"`
}

// StudentProfileResponse bundles a student with derived balance data.
type StudentProfileResponse struct {
	Student  models.Student      `json:"student"`
	Due      int                 `json:"due"`
	Payments []models.Payment    `json:"payments"`
	History  []models.Attendance `json:"attendance"`
}
