package dto

// PaymentCreateRequest records a fee collection.
type PaymentCreateRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Mode      string `json:"mode" validate:"required,oneof=CASH ONLINE UPI"`
}
