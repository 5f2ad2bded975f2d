package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/golibhub/golib-api/internal/models"
)

// snapshotRecord is the single row holding the whole state as a JSON blob.
type snapshotRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

const snapshotRowID = 1

// SnapshotStore loads and saves the complete domain state as one blob.
// Load fails soft: absence or corruption yields the seeded default state,
// never an error to the caller. Save overwrites the prior snapshot
// entirely (last-writer-wins, no merge).
type SnapshotStore struct {
	db        *gorm.DB
	seatCount int
	logger    zerolog.Logger
}

// New prepares the snapshot table. seatCount is the capacity seeded when
// the stored state has no seats.
func New(db *gorm.DB, seatCount int, logger zerolog.Logger) (*SnapshotStore, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &SnapshotStore{
		db:        db,
		seatCount: seatCount,
		logger:    logger.With().Str("component", "snapshot_store").Logger(),
	}, nil
}

// Load reads the last saved snapshot. Missing rows, missing keys and
// unparsable blobs all default to empty collections; empty shift and seat
// collections are then seeded with the canonical defaults.
func (s *SnapshotStore) Load() models.Snapshot {
	var snapshot models.Snapshot

	var record snapshotRecord
	err := s.db.First(&record, snapshotRowID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Info().Msg("no stored snapshot, starting from defaults")
	case err != nil:
		s.logger.Warn().Err(err).Msg("failed to read snapshot, starting from defaults")
	default:
		if unmarshalErr := json.Unmarshal([]byte(record.Data), &snapshot); unmarshalErr != nil {
			s.logger.Warn().Err(unmarshalErr).Msg("corrupt snapshot blob, starting from defaults")
			snapshot = models.Snapshot{}
		}
	}

	return s.withDefaults(snapshot)
}

// Save serializes the complete state and replaces the stored row.
func (s *SnapshotStore) Save(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	record := snapshotRecord{ID: snapshotRowID, Data: string(data), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) withDefaults(snapshot models.Snapshot) models.Snapshot {
	if snapshot.Students == nil {
		snapshot.Students = []models.Student{}
	}
	if snapshot.Payments == nil {
		snapshot.Payments = []models.Payment{}
	}
	if snapshot.Attendance == nil {
		snapshot.Attendance = []models.Attendance{}
	}
	if snapshot.SeatLogs == nil {
		snapshot.SeatLogs = []models.SeatLog{}
	}
	if len(snapshot.Shifts) == 0 {
		snapshot.Shifts = DefaultShifts()
	}
	if len(snapshot.Seats) == 0 {
		snapshot.Seats = DefaultSeats(s.seatCount)
	}
	return snapshot
}

// DefaultShifts returns the four canonical shift definitions seeded into
// an empty facility.
func DefaultShifts() []models.Shift {
	return []models.Shift{
		{ID: "1", Name: "Morning (6AM - 12PM)", StartTime: "06:00", EndTime: "12:00", MonthlyFee: 800, IsActive: true},
		{ID: "2", Name: "Day (12PM - 6PM)", StartTime: "12:00", EndTime: "18:00", MonthlyFee: 800, IsActive: true},
		{ID: "3", Name: "Evening (6PM - 12AM)", StartTime: "18:00", EndTime: "00:00", MonthlyFee: 800, IsActive: true},
		{ID: "4", Name: "Full Day (6AM - 12AM)", StartTime: "06:00", EndTime: "00:00", MonthlyFee: 1500, IsActive: true},
	}
}

// DefaultSeats returns count vacant seats labelled S-1..S-<count>.
func DefaultSeats(count int) []models.Seat {
	seats := make([]models.Seat, 0, count)
	for i := 1; i <= count; i++ {
		seats = append(seats, models.Seat{ID: strconv.Itoa(i), Number: fmt.Sprintf("S-%d", i)})
	}
	return seats
}
