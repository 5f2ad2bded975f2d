package models

// MembershipStatus tracks whether a membership is considered current.
// The value is informational: it is set to ACTIVE on admission and is
// never recomputed from ExpiryDate.
type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "ACTIVE"
	MembershipExpired MembershipStatus = "EXPIRED"
)

// Student is a member of the study space. SeatNumber is a loose seat
// label, not a foreign key; the same label may be held by different
// students in different shifts.
type Student struct {
	ID                 string           `json:"id"`
	Code               string           `json:"studentId"`
	FullName           string           `json:"fullName"`
	FatherName         string           `json:"fatherName"`
	Mobile             string           `json:"mobile"`
	Address            string           `json:"address"`
	SeatNumber         *string          `json:"seatNumber"`
	ShiftID            string           `json:"shiftId"`
	IDProofType        string           `json:"idProofType"`
	IDProofNumber      string           `json:"idProofNumber"`
	PhotoURL           string           `json:"photoUrl"`
	JoiningDate        string           `json:"joiningDate"`
	PlanFee            int              `json:"planFee"`
	PlanDurationMonths int              `json:"planDurationMonths"`
	ExpiryDate         string           `json:"expiryDate"`
	Status             MembershipStatus `json:"status"`
}
