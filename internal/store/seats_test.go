package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golibhub/golib-api/internal/models"
)

func TestUpdateSeatCountGrowAppendsContiguousLabels(t *testing.T) {
	saver := &fakeSaver{}
	s := testStore(saver, morningNine)

	require.NoError(t, s.UpdateSeatCount(8))

	seats := s.Seats()
	require.Len(t, seats, 8)
	require.Equal(t, "S-6", seats[5].Number)
	require.Equal(t, "S-8", seats[7].Number)

	logs := s.SeatLogs()
	require.Len(t, logs, 1)
	require.Equal(t, 5, logs[0].PrevCount)
	require.Equal(t, 8, logs[0].NewCount)
	require.Less(t, logs[0].PrevCount, logs[0].NewCount)
	require.Equal(t, "Admin", logs[0].AdminName)
}

func TestUpdateSeatCountShrinkRefusedWhileLabelHeldInAnyShift(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "evening")
	require.NoError(t, s.AssignSeat(student.ID, "S-5"))

	err := s.UpdateSeatCount(4)
	require.ErrorIs(t, err, ErrCannotShrinkSeats)
	require.Len(t, s.Seats(), 5, "failed shrink must not change state")
	require.Empty(t, s.SeatLogs(), "failed shrink must not log")
}

func TestUpdateSeatCountShrinkSucceedsWhenUnoccupied(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)

	require.NoError(t, s.UpdateSeatCount(3))
	require.Len(t, s.Seats(), 3)

	logs := s.SeatLogs()
	require.Len(t, logs, 1)
	require.Equal(t, 5, logs[0].PrevCount)
	require.Equal(t, 3, logs[0].NewCount)
}

func TestUpdateSeatCountNoopSkipsLog(t *testing.T) {
	saver := &fakeSaver{}
	s := testStore(saver, morningNine)

	require.NoError(t, s.UpdateSeatCount(5))
	require.Empty(t, s.SeatLogs())
	require.Zero(t, saver.saves)
}

func TestUpdateSeatCountRequiresAdmin(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	s.Login(models.RoleStaff)

	err := s.UpdateSeatCount(10)
	require.ErrorIs(t, err, ErrForbidden)
	require.Len(t, s.Seats(), 5)
}

func TestSeatLogsNewestFirst(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)

	require.NoError(t, s.UpdateSeatCount(6))
	require.NoError(t, s.UpdateSeatCount(7))

	logs := s.SeatLogs()
	require.Len(t, logs, 2)
	require.Equal(t, 7, logs[0].NewCount)
	require.Equal(t, 6, logs[1].NewCount)
}

func TestAssignSeatRejectsDoubleBookingWithinShift(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	first := admitStudent(s, "morning")
	second := admitStudent(s, "morning")
	require.NoError(t, s.AssignSeat(first.ID, "S-2"))

	err := s.AssignSeat(second.ID, "S-2")
	require.ErrorIs(t, err, ErrSeatAlreadyAssigned)
}

func TestAssignSeatAllowsSameLabelAcrossShifts(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	morning := admitStudent(s, "morning")
	evening := admitStudent(s, "evening")

	require.NoError(t, s.AssignSeat(morning.ID, "S-2"))
	require.NoError(t, s.AssignSeat(evening.ID, "S-2"))
}

func TestAssignSeatUnknownLabel(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")

	require.ErrorIs(t, s.AssignSeat(student.ID, "S-99"), ErrSeatNotFound)
	require.ErrorIs(t, s.AssignSeat("missing", "S-1"), ErrStudentNotFound)
}

func TestReleaseSeatClearsEveryHolder(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	morning := admitStudent(s, "morning")
	evening := admitStudent(s, "evening")
	require.NoError(t, s.AssignSeat(morning.ID, "S-3"))
	require.NoError(t, s.AssignSeat(evening.ID, "S-3"))

	s.ReleaseSeat("S-3")

	for _, id := range []string{morning.ID, evening.ID} {
		student, err := s.StudentByID(id)
		require.NoError(t, err)
		require.Nil(t, student.SeatNumber)
	}
}

func TestSeatMapDerivesOccupancyPerShift(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	student := admitStudent(s, "morning")
	require.NoError(t, s.AssignSeat(student.ID, "S-1"))

	morningMap := s.SeatMap("morning")
	require.Equal(t, models.SeatOccupied, morningMap[0].Status)
	require.Equal(t, student.ID, morningMap[0].StudentID)
	require.Equal(t, models.SeatVacant, morningMap[1].Status)

	eveningMap := s.SeatMap("evening")
	require.Equal(t, models.SeatVacant, eveningMap[0].Status, "occupancy is scoped to the shift")
}
