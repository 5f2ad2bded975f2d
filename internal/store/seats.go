package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golibhub/golib-api/internal/models"
)

// UpdateSeatCount changes the total seat capacity. Admin only.
//
// Growing appends vacant seats labelled contiguously from the current
// maximum. Shrinking is refused while any student, in any shift, holds
// one of the labels being removed. Every applied change appends one
// capacity log entry; setting the same count is a silent no-op.
func (s *Store) UpdateSeatCount(newCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return err
	}

	current := len(s.state.Seats)
	switch {
	case newCount > current:
		for i := current; i < newCount; i++ {
			s.state.Seats = append(s.state.Seats, models.Seat{
				ID:     strconv.Itoa(i + 1),
				Number: fmt.Sprintf("S-%d", i+1),
			})
		}
	case newCount < current:
		removed := make(map[string]struct{}, current-newCount)
		for _, seat := range s.state.Seats[newCount:] {
			removed[seat.Number] = struct{}{}
		}
		for _, student := range s.state.Students {
			if student.SeatNumber == nil {
				continue
			}
			if _, gone := removed[*student.SeatNumber]; gone {
				return fmt.Errorf("%w: seat %s is held by %s", ErrCannotShrinkSeats, *student.SeatNumber, student.FullName)
			}
		}
		s.state.Seats = s.state.Seats[:newCount]
	default:
		return nil
	}

	s.appendSeatLog(current, newCount)
	s.persist()

	s.logger.Info().Int("prev", current).Int("new", newCount).Msg("seat capacity changed")
	return nil
}

// AssignSeat places a student on a seat label. The label must exist in
// the current capacity and must not be held by another student in the
// same shift; holders in other shifts are legitimate.
func (s *Store) AssignSeat(studentID, seatNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seatNumber = strings.TrimSpace(seatNumber)

	idx := s.studentIndex(studentID)
	if idx < 0 {
		return ErrStudentNotFound
	}
	if !s.seatExists(seatNumber) {
		return ErrSeatNotFound
	}

	target := s.state.Students[idx]
	for _, other := range s.state.Students {
		if other.ID == studentID || other.ShiftID != target.ShiftID || other.SeatNumber == nil {
			continue
		}
		if *other.SeatNumber == seatNumber {
			return fmt.Errorf("%w: seat %s is held by %s", ErrSeatAlreadyAssigned, seatNumber, other.FullName)
		}
	}

	s.state.Students[idx].SeatNumber = &seatNumber
	s.persist()
	return nil
}

// ReleaseSeat clears the label from every student holding it, across all
// shifts.
func (s *Store) ReleaseSeat(seatNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i, student := range s.state.Students {
		if student.SeatNumber != nil && *student.SeatNumber == seatNumber {
			s.state.Students[i].SeatNumber = nil
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// SeatMap projects per-shift occupancy. A seat is OCCUPIED for the shift
// when some student in that shift holds its label; the projection is
// recomputed from student records on every call and never stored.
func (s *Store) SeatMap(shiftID string) []models.SeatView {
	s.mu.Lock()
	defer s.mu.Unlock()

	holders := make(map[string]models.Student, len(s.state.Students))
	for _, student := range s.state.Students {
		if student.ShiftID == shiftID && student.SeatNumber != nil {
			holders[*student.SeatNumber] = student
		}
	}

	views := make([]models.SeatView, 0, len(s.state.Seats))
	for _, seat := range s.state.Seats {
		view := models.SeatView{Seat: seat, Status: models.SeatVacant}
		if holder, ok := holders[seat.Number]; ok {
			view.Status = models.SeatOccupied
			view.StudentID = holder.ID
			view.StudentName = holder.FullName
		}
		views = append(views, view)
	}
	return views
}

// Seats returns the raw capacity labels.
func (s *Store) Seats() []models.Seat {
	return s.Snapshot().Seats
}

// SeatLogs returns the capacity audit trail, newest first.
func (s *Store) SeatLogs() []models.SeatLog {
	return s.Snapshot().SeatLogs
}

func (s *Store) appendSeatLog(prev, next int) {
	entry := models.SeatLog{
		ID:        s.newID(),
		Timestamp: s.now().Format(time.RFC3339),
		PrevCount: prev,
		NewCount:  next,
		AdminName: s.currentUser.Name,
	}
	s.state.SeatLogs = append([]models.SeatLog{entry}, s.state.SeatLogs...)
}

func (s *Store) seatExists(number string) bool {
	number = strings.TrimSpace(number)
	for _, seat := range s.state.Seats {
		if seat.Number == number {
			return true
		}
	}
	return false
}
