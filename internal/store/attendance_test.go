package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/golibhub/golib-api/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.Local)
}

func TestShiftWindowGate(t *testing.T) {
	// Morning shift runs 06:00-12:00 with a 30 minute grace either side.
	cases := []struct {
		name    string
		hour    int
		minute  int
		allowed bool
	}{
		{"before grace", 5, 29, false},
		{"inside leading grace", 5, 31, true},
		{"inside trailing grace", 12, 29, true},
		{"after grace", 12, 31, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testStore(&fakeSaver{}, at(tc.hour, tc.minute))
			student := admitStudent(s, "morning")

			err := s.MarkAttendance(student.ID, models.PunchIn)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrOutsideShiftWindow)
				require.Empty(t, s.AttendanceForStudent(student.ID))
			}
		})
	}
}

func TestMidnightEndTimeReadAsTwentyFour(t *testing.T) {
	// Evening shift ends at "00:00", the one special-cased end time.
	s := testStore(&fakeSaver{}, at(23, 30))
	student := admitStudent(s, "evening")

	require.NoError(t, s.MarkAttendance(student.ID, models.PunchIn))
}

func TestPunchStateMachine(t *testing.T) {
	s := testStore(&fakeSaver{}, at(9, 0))
	student := admitStudent(s, "morning")

	require.NoError(t, s.MarkAttendance(student.ID, models.PunchIn))

	records := s.AttendanceForStudent(student.ID)
	require.Len(t, records, 1)
	require.Equal(t, "09:00:00", records[0].InTime)
	require.Nil(t, records[0].OutTime)
	require.Equal(t, "morning", records[0].ShiftID)

	require.ErrorIs(t, s.MarkAttendance(student.ID, models.PunchIn), ErrAlreadyPunchedIn)

	require.NoError(t, s.MarkAttendance(student.ID, models.PunchOut))
	records = s.AttendanceForStudent(student.ID)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].OutTime)
	require.Equal(t, "09:00:00", *records[0].OutTime)
}

func TestPunchOutWithoutOpenRecordIsSilentNoop(t *testing.T) {
	saver := &fakeSaver{}
	s := testStore(saver, at(9, 0))
	student := admitStudent(s, "morning")
	savesBefore := saver.saves

	require.NoError(t, s.MarkAttendance(student.ID, models.PunchOut))
	require.Empty(t, s.AttendanceForStudent(student.ID), "no record may be created")
	require.Equal(t, savesBefore, saver.saves, "a no-op must not persist")
}

func TestMarkAttendanceDanglingReferences(t *testing.T) {
	s := testStore(&fakeSaver{}, at(9, 0))
	require.ErrorIs(t, s.MarkAttendance("missing", models.PunchIn), ErrStudentNotFound)

	orphan := admitStudent(s, "deleted-shift")
	require.ErrorIs(t, s.MarkAttendance(orphan.ID, models.PunchIn), ErrShiftNotFound)
}

func TestAttendanceForDate(t *testing.T) {
	s := testStore(&fakeSaver{}, at(9, 0))
	student := admitStudent(s, "morning")
	require.NoError(t, s.MarkAttendance(student.ID, models.PunchIn))

	require.Len(t, s.AttendanceForDate("2026-03-10"), 1)
	require.Empty(t, s.AttendanceForDate("2026-03-11"))
}
