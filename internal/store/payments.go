package store

import (
	"fmt"

	"github.com/golibhub/golib-api/internal/models"
)

// NewPayment carries the caller-supplied fields for a collection.
type NewPayment struct {
	StudentID string
	Amount    int
	Date      string
	Mode      models.PaymentMode
}

// AddPayment records a collection against a student and assigns the next
// receipt number from a monotonic counter.
func (s *Store) AddPayment(input NewPayment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Amount <= 0 {
		return models.Payment{}, ErrInvalidAmount
	}
	if s.studentIndex(input.StudentID) < 0 {
		return models.Payment{}, ErrStudentNotFound
	}

	s.receiptSeq++
	payment := models.Payment{
		ID:            s.newID(),
		StudentID:     input.StudentID,
		Amount:        input.Amount,
		Date:          input.Date,
		Mode:          input.Mode,
		ReceiptNumber: fmt.Sprintf("RCP-%06d", s.receiptSeq),
	}
	s.state.Payments = append(s.state.Payments, payment)
	s.persist()

	s.logger.Info().Str("receipt", payment.ReceiptNumber).Str("student_id", payment.StudentID).Int("amount", payment.Amount).Msg("payment recorded")
	return payment, nil
}

// DeletePayment removes the record. Dues recalculate automatically since
// the balance is always derived, never cached.
func (s *Store) DeletePayment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, payment := range s.state.Payments {
		if payment.ID == id {
			s.state.Payments = append(s.state.Payments[:i], s.state.Payments[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrPaymentNotFound
}

// StudentDue computes the outstanding balance: plan fee minus the sum of
// the student's payments. Overpayment yields a negative due.
func (s *Store) StudentDue(studentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(studentID)
	if idx < 0 {
		return 0, ErrStudentNotFound
	}

	paid := 0
	for _, payment := range s.state.Payments {
		if payment.StudentID == studentID {
			paid += payment.Amount
		}
	}
	return s.state.Students[idx].PlanFee - paid, nil
}

// Payments returns all payment records.
func (s *Store) Payments() []models.Payment {
	return s.Snapshot().Payments
}

// PaymentsForStudent returns the student's payment history.
func (s *Store) PaymentsForStudent(studentID string) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Payment, 0)
	for _, payment := range s.state.Payments {
		if payment.StudentID == studentID {
			out = append(out, payment)
		}
	}
	return out
}
