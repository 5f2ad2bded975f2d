package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golibhub/golib-api/internal/models"
)

func TestStatsAggregation(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)

	first := admitStudent(s, "morning")
	second := admitStudent(s, "evening")
	require.NoError(t, s.AssignSeat(first.ID, "S-1"))

	expired := models.MembershipExpired
	_, err := s.UpdateStudent(second.ID, StudentUpdate{Status: &expired})
	require.NoError(t, err)

	_, err = s.AddPayment(NewPayment{StudentID: first.ID, Amount: 500, Date: "2026-03-01", Mode: models.PaymentCash})
	require.NoError(t, err)
	require.NoError(t, s.MarkAttendance(first.ID, models.PunchIn))

	stats := s.Stats()
	require.Equal(t, 2, stats.TotalStudents)
	require.Equal(t, 1, stats.ActiveStudents)
	require.Equal(t, 5, stats.SeatCapacity)
	require.Equal(t, 500, stats.TotalCollections)
	// 800 - 500 due for the first student plus 800 for the second.
	require.Equal(t, 1100, stats.TotalDues)
	require.Equal(t, 1, stats.TodayAttendance)

	require.Len(t, stats.ShiftOccupancy, 2)
	require.Equal(t, 1, stats.ShiftOccupancy[0].Occupied)
	require.Equal(t, 0, stats.ShiftOccupancy[1].Occupied)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")
	require.NoError(t, s.AssignSeat(student.ID, "S-1"))

	snapshot := s.Snapshot()
	*snapshot.Students[0].SeatNumber = "S-99"
	snapshot.Shifts[0].Name = "mutated"

	fresh, err := s.StudentByID(student.ID)
	require.NoError(t, err)
	require.Equal(t, "S-1", *fresh.SeatNumber)

	shift, err := s.ShiftByID("morning")
	require.NoError(t, err)
	require.Equal(t, "Morning (6AM - 12PM)", shift.Name)
}
