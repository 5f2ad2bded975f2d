package store

import "github.com/golibhub/golib-api/internal/models"

// ShiftOccupancy summarises seat usage within one shift.
type ShiftOccupancy struct {
	ShiftID   string `json:"shiftId"`
	ShiftName string `json:"shiftName"`
	Occupied  int    `json:"occupied"`
	Capacity  int    `json:"capacity"`
}

// Stats is the aggregate the dashboard and reports screens render.
type Stats struct {
	TotalStudents    int              `json:"totalStudents"`
	ActiveStudents   int              `json:"activeStudents"`
	SeatCapacity     int              `json:"seatCapacity"`
	ShiftOccupancy   []ShiftOccupancy `json:"shiftOccupancy"`
	TotalCollections int              `json:"totalCollections"`
	TotalDues        int              `json:"totalDues"`
	TodayAttendance  int              `json:"todayAttendance"`
}

// Stats recomputes the dashboard aggregate from current state.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalStudents: len(s.state.Students),
		SeatCapacity:  len(s.state.Seats),
	}

	paidByStudent := make(map[string]int, len(s.state.Students))
	for _, payment := range s.state.Payments {
		stats.TotalCollections += payment.Amount
		paidByStudent[payment.StudentID] += payment.Amount
	}

	occupiedByShift := make(map[string]int, len(s.state.Shifts))
	for _, student := range s.state.Students {
		if student.Status == models.MembershipActive {
			stats.ActiveStudents++
		}
		if student.SeatNumber != nil {
			occupiedByShift[student.ShiftID]++
		}
		stats.TotalDues += student.PlanFee - paidByStudent[student.ID]
	}

	for _, shift := range s.state.Shifts {
		stats.ShiftOccupancy = append(stats.ShiftOccupancy, ShiftOccupancy{
			ShiftID:   shift.ID,
			ShiftName: shift.Name,
			Occupied:  occupiedByShift[shift.ID],
			Capacity:  len(s.state.Seats),
		})
	}

	today := s.today()
	for _, record := range s.state.Attendance {
		if record.Date == today {
			stats.TodayAttendance++
		}
	}
	return stats
}
