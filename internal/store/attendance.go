package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golibhub/golib-api/internal/models"
)

// punchGraceMinutes widens the shift window on both ends.
const punchGraceMinutes = 30

// MarkAttendance applies one step of the per-(student, day) punch state
// machine: no-record -> punched-in -> punched-out, terminal for the day.
//
// Punches are only accepted within the student's shift window plus a 30
// minute grace on either side. An end time of exactly "00:00" is read as
// 24:00; shifts otherwise spanning midnight are not handled. An OUT with
// no open punch is a silent no-op, while a duplicate IN is rejected.
func (s *Store) MarkAttendance(studentID string, punch models.PunchType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.studentIndex(studentID)
	if idx < 0 {
		return ErrStudentNotFound
	}
	student := s.state.Students[idx]

	shift, ok := s.shiftByID(student.ShiftID)
	if !ok {
		return ErrShiftNotFound
	}

	now := s.now()
	minuteOfDay := now.Hour()*60 + now.Minute()
	start, err := minutesOfDay(shift.StartTime, false)
	if err != nil {
		return fmt.Errorf("shift %s: %w", shift.Name, err)
	}
	end, err := minutesOfDay(shift.EndTime, true)
	if err != nil {
		return fmt.Errorf("shift %s: %w", shift.Name, err)
	}
	if minuteOfDay < start-punchGraceMinutes || minuteOfDay > end+punchGraceMinutes {
		return fmt.Errorf("%w: attendance only allowed during shift %s", ErrOutsideShiftWindow, shift.Name)
	}

	today := s.today()
	timeOfPunch := now.Format("15:04:05")

	if punch == models.PunchIn {
		if s.openPunchIndex(studentID, today) >= 0 {
			return ErrAlreadyPunchedIn
		}
		s.state.Attendance = append(s.state.Attendance, models.Attendance{
			ID:        s.newID(),
			StudentID: studentID,
			Date:      today,
			InTime:    timeOfPunch,
			OutTime:   nil,
			ShiftID:   student.ShiftID,
		})
		s.persist()
		return nil
	}

	if open := s.openPunchIndex(studentID, today); open >= 0 {
		s.state.Attendance[open].OutTime = &timeOfPunch
		s.persist()
	}
	return nil
}

// AttendanceForDate returns the records punched on the given date.
func (s *Store) AttendanceForDate(date string) []models.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Attendance, 0)
	for _, record := range s.state.Attendance {
		if record.Date == date {
			out = append(out, cloneAttendance(record))
		}
	}
	return out
}

// AttendanceForStudent returns the student's full punch history.
func (s *Store) AttendanceForStudent(studentID string) []models.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Attendance, 0)
	for _, record := range s.state.Attendance {
		if record.StudentID == studentID {
			out = append(out, cloneAttendance(record))
		}
	}
	return out
}

func (s *Store) openPunchIndex(studentID, date string) int {
	for i, record := range s.state.Attendance {
		if record.StudentID == studentID && record.Date == date && record.OutTime == nil {
			return i
		}
	}
	return -1
}

// minutesOfDay parses an HH:MM wall-clock string. When isEnd is set, an
// hour of exactly 0 means midnight and is treated as 24:00.
func minutesOfDay(clock string, isEnd bool) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", clock)
	}
	if isEnd && hour == 0 {
		hour = 24
	}
	return hour*60 + minute, nil
}

func cloneAttendance(record models.Attendance) models.Attendance {
	if record.OutTime != nil {
		outTime := *record.OutTime
		record.OutTime = &outTime
	}
	return record
}
