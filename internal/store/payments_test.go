package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golibhub/golib-api/internal/models"
)

func TestStudentDueDerivedFromPayments(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")

	due, err := s.StudentDue(student.ID)
	require.NoError(t, err)
	require.Equal(t, 800, due)

	first, err := s.AddPayment(NewPayment{StudentID: student.ID, Amount: 500, Date: "2026-03-01", Mode: models.PaymentCash})
	require.NoError(t, err)

	due, err = s.StudentDue(student.ID)
	require.NoError(t, err)
	require.Equal(t, 300, due)

	// Overpayment goes negative; no special handling.
	_, err = s.AddPayment(NewPayment{StudentID: student.ID, Amount: 500, Date: "2026-03-02", Mode: models.PaymentUPI})
	require.NoError(t, err)

	due, err = s.StudentDue(student.ID)
	require.NoError(t, err)
	require.Equal(t, -200, due)

	require.NoError(t, s.DeletePayment(first.ID))

	due, err = s.StudentDue(student.ID)
	require.NoError(t, err)
	require.Equal(t, 300, due, "due must recompute after deletion")
}

func TestAddPaymentValidation(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")

	_, err := s.AddPayment(NewPayment{StudentID: student.ID, Amount: 0, Date: "2026-03-01", Mode: models.PaymentCash})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.AddPayment(NewPayment{StudentID: "missing", Amount: 100, Date: "2026-03-01", Mode: models.PaymentCash})
	require.ErrorIs(t, err, ErrStudentNotFound)

	require.Empty(t, s.Payments())
}

func TestReceiptNumbersAreMonotonic(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")

	first, err := s.AddPayment(NewPayment{StudentID: student.ID, Amount: 100, Date: "2026-03-01", Mode: models.PaymentCash})
	require.NoError(t, err)
	second, err := s.AddPayment(NewPayment{StudentID: student.ID, Amount: 100, Date: "2026-03-01", Mode: models.PaymentCash})
	require.NoError(t, err)

	require.Equal(t, "RCP-000001", first.ReceiptNumber)
	require.Equal(t, "RCP-000002", second.ReceiptNumber)
}

func TestReceiptCounterReseedsFromSnapshot(t *testing.T) {
	snapshot := seedSnapshot()
	snapshot.Students = []models.Student{{ID: "s1", ShiftID: "morning", PlanFee: 800}}
	snapshot.Payments = []models.Payment{
		{ID: "p1", StudentID: "s1", Amount: 100, ReceiptNumber: "RCP-000041"},
		{ID: "p2", StudentID: "s1", Amount: 100, ReceiptNumber: "RCP-000007"},
	}
	s := New(snapshot, &fakeSaver{}, testLogger())

	payment, err := s.AddPayment(NewPayment{StudentID: "s1", Amount: 100, Date: "2026-03-01", Mode: models.PaymentOnline})
	require.NoError(t, err)
	require.Equal(t, "RCP-000042", payment.ReceiptNumber)
}

func TestDeletePaymentUnknownID(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	require.ErrorIs(t, s.DeletePayment("missing"), ErrPaymentNotFound)
}
