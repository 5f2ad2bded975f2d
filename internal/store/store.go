package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/models"
)

// Saver receives the complete state after every applied mutation. A save
// replaces the previous snapshot wholesale (last-writer-wins).
type Saver interface {
	Save(snapshot models.Snapshot) error
}

// Store is the authoritative in-memory domain state together with every
// mutation and derived query. It is an explicit container: construct one
// and inject it; there is no package-level instance.
//
// Every mutation validates first and only then touches state, so a
// failed operation leaves the state byte-identical. Mutations run under
// a single mutex and finish by handing a deep snapshot to the saver.
type Store struct {
	mu          sync.Mutex
	state       models.Snapshot
	currentUser *models.User
	receiptSeq  int
	saver       Saver
	logger      zerolog.Logger
	now         func() time.Time
}

// Option customises store construction.
type Option func(*Store)

// WithClock overrides the wall clock, used by attendance window tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds a store around a previously loaded snapshot. The session
// starts as a default admin so a fresh process is usable before anyone
// logs in explicitly. The receipt counter is re-seeded from
// the highest receipt number in the snapshot so the sequence stays
// strictly increasing across restarts.
func New(snapshot models.Snapshot, saver Saver, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		state:       snapshot.Clone(),
		currentUser: &models.User{ID: "1", Name: "Admin", Username: "admin", Role: models.RoleAdmin},
		saver:       saver,
		logger:      logger.With().Str("component", "store").Logger(),
		now:         time.Now,
	}
	s.receiptSeq = maxReceiptSeq(s.state.Payments)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// persist hands the state to the saver. Persistence failures are logged
// and swallowed: the in-memory state is authoritative and the next
// mutation will rewrite the whole snapshot anyway.
func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.state.Clone()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

func (s *Store) newID() string {
	return uuid.NewString()
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

func maxReceiptSeq(payments []models.Payment) int {
	max := 0
	for _, payment := range payments {
		raw := strings.TrimPrefix(payment.ReceiptNumber, "RCP-")
		if seq, err := strconv.Atoi(raw); err == nil && seq > max {
			max = seq
		}
	}
	return max
}
