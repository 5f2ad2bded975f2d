package store

import "errors"

// Domain failures are recoverable: the operation refuses to apply and
// reports why. Handlers surface these verbatim to the caller.
var (
	// ErrForbidden indicates the current session lacks the admin role.
	ErrForbidden = errors.New("admin only")
	// ErrStudentNotFound indicates a dangling student reference.
	ErrStudentNotFound = errors.New("student not found")
	// ErrShiftNotFound indicates a dangling shift reference.
	ErrShiftNotFound = errors.New("shift not found")
	// ErrShiftInUse indicates students are still enrolled in the shift.
	ErrShiftInUse = errors.New("shift has enrolled students")
	// ErrPaymentNotFound indicates the payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrSeatNotFound indicates the seat label is not part of the capacity.
	ErrSeatNotFound = errors.New("seat not found")
	// ErrCannotShrinkSeats indicates a capacity decrease would remove an
	// occupied seat label.
	ErrCannotShrinkSeats = errors.New("seats are occupied in some shifts")
	// ErrSeatAlreadyAssigned indicates the seat label is already held by
	// another student in the same shift.
	ErrSeatAlreadyAssigned = errors.New("seat already assigned in this shift")
	// ErrOutsideShiftWindow indicates a punch outside the shift window.
	ErrOutsideShiftWindow = errors.New("outside shift window")
	// ErrAlreadyPunchedIn indicates an open punch already exists today.
	ErrAlreadyPunchedIn = errors.New("already punched in")
	// ErrInvalidAmount indicates a non-positive payment amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)
