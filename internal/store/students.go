package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/golibhub/golib-api/internal/models"
)

// NewStudent carries the caller-supplied fields for an admission.
type NewStudent struct {
	FullName           string
	FatherName         string
	Mobile             string
	Address            string
	SeatNumber         *string
	ShiftID            string
	IDProofType        string
	IDProofNumber      string
	PhotoURL           string
	JoiningDate        string
	PlanFee            int
	PlanDurationMonths int
}

// StudentUpdate is a partial merge; nil fields are left untouched. There
// is no cross-field validation: changing the shift does not recompute
// the plan fee.
type StudentUpdate struct {
	FullName           *string
	FatherName         *string
	Mobile             *string
	Address            *string
	ShiftID            *string
	IDProofType        *string
	IDProofNumber      *string
	PhotoURL           *string
	JoiningDate        *string
	PlanFee            *int
	PlanDurationMonths *int
	Status             *models.MembershipStatus
}

// AddStudent admits a member: assigns an id, the next sequential display
// code GL-<year>-<n>, the ACTIVE status and the derived expiry date.
func (s *Store) AddStudent(input NewStudent) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := models.Student{
		ID:                 s.newID(),
		Code:               fmt.Sprintf("GL-%d-%d", s.now().Year(), len(s.state.Students)+101),
		FullName:           input.FullName,
		FatherName:         input.FatherName,
		Mobile:             input.Mobile,
		Address:            input.Address,
		SeatNumber:         input.SeatNumber,
		ShiftID:            input.ShiftID,
		IDProofType:        input.IDProofType,
		IDProofNumber:      input.IDProofNumber,
		PhotoURL:           input.PhotoURL,
		JoiningDate:        input.JoiningDate,
		PlanFee:            input.PlanFee,
		PlanDurationMonths: input.PlanDurationMonths,
		ExpiryDate:         expiryFor(input.JoiningDate, input.PlanDurationMonths),
		Status:             models.MembershipActive,
	}
	s.state.Students = append(s.state.Students, student)
	s.persist()

	s.logger.Info().Str("student_id", student.ID).Str("code", student.Code).Msg("student admitted")
	return student
}

// UpdateStudent merges the supplied fields into the student record. The
// expiry date is re-derived when the joining date or plan duration change.
func (s *Store) UpdateStudent(id string, update StudentUpdate) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(id)
	if idx < 0 {
		return models.Student{}, ErrStudentNotFound
	}

	student := &s.state.Students[idx]
	if update.FullName != nil {
		student.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.FatherName != nil {
		student.FatherName = strings.TrimSpace(*update.FatherName)
	}
	if update.Mobile != nil {
		student.Mobile = strings.TrimSpace(*update.Mobile)
	}
	if update.Address != nil {
		student.Address = strings.TrimSpace(*update.Address)
	}
	if update.ShiftID != nil {
		student.ShiftID = *update.ShiftID
	}
	if update.IDProofType != nil {
		student.IDProofType = *update.IDProofType
	}
	if update.IDProofNumber != nil {
		student.IDProofNumber = *update.IDProofNumber
	}
	if update.PhotoURL != nil {
		student.PhotoURL = *update.PhotoURL
	}
	if update.JoiningDate != nil {
		student.JoiningDate = *update.JoiningDate
	}
	if update.PlanFee != nil {
		student.PlanFee = *update.PlanFee
	}
	if update.PlanDurationMonths != nil {
		student.PlanDurationMonths = *update.PlanDurationMonths
	}
	if update.Status != nil {
		student.Status = *update.Status
	}
	if update.JoiningDate != nil || update.PlanDurationMonths != nil {
		student.ExpiryDate = expiryFor(student.JoiningDate, student.PlanDurationMonths)
	}
	s.persist()

	return *student, nil
}

// DeleteStudent removes the student and cascades to every payment and
// attendance record referencing it. Irreversible; no soft delete.
func (s *Store) DeleteStudent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(id)
	if idx < 0 {
		return ErrStudentNotFound
	}

	s.state.Students = append(s.state.Students[:idx], s.state.Students[idx+1:]...)

	payments := s.state.Payments[:0]
	for _, payment := range s.state.Payments {
		if payment.StudentID != id {
			payments = append(payments, payment)
		}
	}
	s.state.Payments = payments

	attendance := s.state.Attendance[:0]
	for _, record := range s.state.Attendance {
		if record.StudentID != id {
			attendance = append(attendance, record)
		}
	}
	s.state.Attendance = attendance
	s.persist()

	s.logger.Info().Str("student_id", id).Msg("student removed with payments and attendance")
	return nil
}

// StudentByID looks a student up by internal id.
func (s *Store) StudentByID(id string) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(id)
	if idx < 0 {
		return models.Student{}, ErrStudentNotFound
	}
	return s.state.Students[idx], nil
}

// StudentByCode resolves a display code such as "GL-2026-101". The QR
// scanning collaborator feeds decoded codes through this lookup.
func (s *Store) StudentByCode(code string) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code = strings.TrimSpace(code)
	for _, student := range s.state.Students {
		if student.Code == code {
			return student, nil
		}
	}
	return models.Student{}, ErrStudentNotFound
}

// Students returns all student records.
func (s *Store) Students() []models.Student {
	return s.Snapshot().Students
}

func (s *Store) studentIndex(id string) int {
	for i, student := range s.state.Students {
		if student.ID == id {
			return i
		}
	}
	return -1
}

// expiryFor derives the membership expiry from the joining date plus the
// plan duration. An unparsable joining date yields an empty expiry.
func expiryFor(joiningDate string, months int) string {
	joined, err := time.Parse("2006-01-02", joiningDate)
	if err != nil {
		return ""
	}
	return joined.AddDate(0, months, 0).Format("2006-01-02")
}
