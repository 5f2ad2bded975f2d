package store

import (
	"strings"

	"github.com/golibhub/golib-api/internal/models"
)

// NewShift carries the caller-supplied fields for a shift definition.
type NewShift struct {
	Name       string
	StartTime  string
	EndTime    string
	MonthlyFee int
	IsActive   bool
}

// ShiftUpdate is a partial merge; nil fields are left untouched. Shift
// windows are not checked for overlap with other shifts.
type ShiftUpdate struct {
	Name       *string
	StartTime  *string
	EndTime    *string
	MonthlyFee *int
	IsActive   *bool
}

// AddShift defines a new shift. Admin only.
func (s *Store) AddShift(input NewShift) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return models.Shift{}, err
	}

	shift := models.Shift{
		ID:         s.newID(),
		Name:       strings.TrimSpace(input.Name),
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		MonthlyFee: input.MonthlyFee,
		IsActive:   input.IsActive,
	}
	s.state.Shifts = append(s.state.Shifts, shift)
	s.persist()
	return shift, nil
}

// UpdateShift merges the supplied fields into the shift. Admin only.
func (s *Store) UpdateShift(id string, update ShiftUpdate) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return models.Shift{}, err
	}

	for i := range s.state.Shifts {
		if s.state.Shifts[i].ID != id {
			continue
		}
		shift := &s.state.Shifts[i]
		if update.Name != nil {
			shift.Name = strings.TrimSpace(*update.Name)
		}
		if update.StartTime != nil {
			shift.StartTime = *update.StartTime
		}
		if update.EndTime != nil {
			shift.EndTime = *update.EndTime
		}
		if update.MonthlyFee != nil {
			shift.MonthlyFee = *update.MonthlyFee
		}
		if update.IsActive != nil {
			shift.IsActive = *update.IsActive
		}
		s.persist()
		return *shift, nil
	}
	return models.Shift{}, ErrShiftNotFound
}

// DeleteShift removes a shift definition. Admin only. Refused while any
// student is enrolled in it; historical attendance keeps its denormalized
// shift id as a snapshot of what was active at punch time.
func (s *Store) DeleteShift(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return err
	}

	for _, student := range s.state.Students {
		if student.ShiftID == id {
			return ErrShiftInUse
		}
	}

	for i, shift := range s.state.Shifts {
		if shift.ID == id {
			s.state.Shifts = append(s.state.Shifts[:i], s.state.Shifts[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrShiftNotFound
}

// Shifts returns all shift definitions.
func (s *Store) Shifts() []models.Shift {
	return s.Snapshot().Shifts
}

// ShiftByID looks a shift up by id.
func (s *Store) ShiftByID(id string) (models.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shift, ok := s.shiftByID(id); ok {
		return shift, nil
	}
	return models.Shift{}, ErrShiftNotFound
}

func (s *Store) shiftByID(id string) (models.Shift, bool) {
	for _, shift := range s.state.Shifts {
		if shift.ID == id {
			return shift, true
		}
	}
	return models.Shift{}, false
}
