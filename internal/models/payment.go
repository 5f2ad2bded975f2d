package models

// PaymentMode enumerates the accepted collection channels.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentOnline PaymentMode = "ONLINE"
	PaymentUPI    PaymentMode = "UPI"
)

// Payment records a single fee collection against a student. Payments are
// immutable once created; the only follow-up operation is deletion.
type Payment struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"studentId"`
	Amount        int         `json:"amount"`
	Date          string      `json:"date"`
	Mode          PaymentMode `json:"mode"`
	ReceiptNumber string      `json:"receiptNumber"`
}
