package persistence

import (
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/golibhub/golib-api/internal/models"
)

func setupSnapshotStore(t *testing.T, seatCount int) *SnapshotStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store, err := New(db, seatCount, zerolog.New(io.Discard))
	require.NoError(t, err)
	return store
}

func TestLoadEmptySeedsDefaults(t *testing.T) {
	store := setupSnapshotStore(t, 50)

	snapshot := store.Load()
	require.Empty(t, snapshot.Students)
	require.Empty(t, snapshot.Payments)
	require.Empty(t, snapshot.Attendance)
	require.Empty(t, snapshot.SeatLogs)

	require.Len(t, snapshot.Shifts, 4)
	require.Equal(t, "Morning (6AM - 12PM)", snapshot.Shifts[0].Name)
	require.Equal(t, "00:00", snapshot.Shifts[2].EndTime)
	require.Equal(t, 1500, snapshot.Shifts[3].MonthlyFee)

	require.Len(t, snapshot.Seats, 50)
	require.Equal(t, "S-1", snapshot.Seats[0].Number)
	require.Equal(t, "S-50", snapshot.Seats[49].Number)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupSnapshotStore(t, 10)

	seat := "S-4"
	outTime := "11:45:12"
	original := store.Load()
	original.Students = []models.Student{{
		ID:         "s1",
		Code:       "GL-2026-101",
		FullName:   "Ravi Kumar",
		SeatNumber: &seat,
		ShiftID:    "1",
		PlanFee:    800,
		Status:     models.MembershipActive,
	}}
	original.Payments = []models.Payment{{ID: "p1", StudentID: "s1", Amount: 500, Mode: models.PaymentCash, ReceiptNumber: "RCP-000001"}}
	original.Attendance = []models.Attendance{{ID: "a1", StudentID: "s1", Date: "2026-03-10", InTime: "09:00:00", OutTime: &outTime, ShiftID: "1"}}

	require.NoError(t, store.Save(original))

	reloaded := store.Load()
	require.Equal(t, original, reloaded)
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	store := setupSnapshotStore(t, 10)

	first := store.Load()
	first.Students = []models.Student{{ID: "s1", FullName: "First"}}
	require.NoError(t, store.Save(first))

	second := store.Load()
	second.Students = []models.Student{{ID: "s2", FullName: "Second"}}
	require.NoError(t, store.Save(second))

	reloaded := store.Load()
	require.Len(t, reloaded.Students, 1)
	require.Equal(t, "s2", reloaded.Students[0].ID)
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	store := setupSnapshotStore(t, 10)

	record := snapshotRecord{ID: snapshotRowID, Data: "{not json"}
	require.NoError(t, store.db.Create(&record).Error)

	snapshot := store.Load()
	require.Len(t, snapshot.Shifts, 4)
	require.Len(t, snapshot.Seats, 10)
	require.Empty(t, snapshot.Students)
}

func TestLoadToleratesMissingKeys(t *testing.T) {
	store := setupSnapshotStore(t, 10)

	record := snapshotRecord{ID: snapshotRowID, Data: `{"students":[{"id":"s1","fullName":"Ravi"}]}`}
	require.NoError(t, store.db.Create(&record).Error)

	snapshot := store.Load()
	require.Len(t, snapshot.Students, 1)
	require.NotNil(t, snapshot.Payments)
	require.Empty(t, snapshot.Payments)
	require.Len(t, snapshot.Shifts, 4, "absent shifts must trigger the default seed")
	require.Len(t, snapshot.Seats, 10)
}
