package store

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/models"
)

type fakeSaver struct {
	saves int
	last  models.Snapshot
}

func (f *fakeSaver) Save(snapshot models.Snapshot) error {
	f.saves++
	f.last = snapshot
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// seedSnapshot mirrors a freshly seeded facility: a morning and an
// evening shift plus five seats.
func seedSnapshot() models.Snapshot {
	return models.Snapshot{
		Shifts: []models.Shift{
			{ID: "morning", Name: "Morning (6AM - 12PM)", StartTime: "06:00", EndTime: "12:00", MonthlyFee: 800, IsActive: true},
			{ID: "evening", Name: "Evening (6PM - 12AM)", StartTime: "18:00", EndTime: "00:00", MonthlyFee: 800, IsActive: true},
		},
		Seats: []models.Seat{
			{ID: "1", Number: "S-1"},
			{ID: "2", Number: "S-2"},
			{ID: "3", Number: "S-3"},
			{ID: "4", Number: "S-4"},
			{ID: "5", Number: "S-5"},
		},
	}
}

func testStore(saver Saver, at time.Time) *Store {
	return New(seedSnapshot(), saver, testLogger(), WithClock(func() time.Time { return at }))
}

func admitStudent(s *Store, shiftID string) models.Student {
	return s.AddStudent(NewStudent{
		FullName:           "Ravi Kumar",
		Mobile:             "9876543210",
		ShiftID:            shiftID,
		JoiningDate:        "2026-01-15",
		PlanFee:            800,
		PlanDurationMonths: 1,
	})
}
