// Package store owns the live record collections and their persistence.
//
// All collections live in one models.Data value that is written to local
// storage as a single JSON blob under a fixed key. Load must run before
// anything reads the store: it adopts the persisted blob, or installs the
// seed data when the blob is missing or corrupt.
//
// Mutations change memory first and are persisted by an explicit Save. When
// Save fails the in-memory change is kept, so memory and storage can differ
// until the next successful Save.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/storage"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
)

// Storage keys.
const (
	DefaultDataKey         = "ipt_demo_v1"
	TokenKey               = "auth_token"
	PendingVerificationKey = "unverified_email"
)

// TimeLayout matches the ISO-8601 form with milliseconds used for createdAt.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type Store struct {
	storage storage.Storage
	key     string
	logger  logging.Logger
	now     func() time.Time

	data   models.Data
	lastID int64
	// unread is set while the persisted blob exists but could not be read.
	// Save refuses to write over it.
	unread bool
}

type Option func(*Store)

// WithClock replaces time.Now, which drives ids and createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey overrides DefaultDataKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func New(st storage.Storage, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		storage: st,
		key:     DefaultDataKey,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.data.Normalize()
	return s
}

// Storage exposes the underlying device storage for the session token and
// the pending-verification marker.
func (s *Store) Storage() storage.Storage {
	return s.storage
}

// Load adopts the persisted blob, or seeds when it is absent or corrupt.
//
// When storage cannot be read at all the seed is used in memory only, the
// error is returned, and Save fails until a later Load succeeds.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Error(ctx, "reading persisted data failed, using seed without saving", "error", err)
		s.data = seedData(s.now())
		s.lastID = maxID(s.data)
		s.unread = true
		return fmt.Errorf("%w: read: %w", common.ErrPersistence, err)
	}
	s.unread = false
	if !ok {
		s.logger.Info(ctx, "no persisted data, seeding", "key", s.key)
		return s.Seed(ctx)
	}

	data, err := decode(raw)
	if err != nil {
		s.logger.Warn(ctx, "persisted data unreadable, seeding", "error", err)
		return s.Seed(ctx)
	}

	s.data = data
	s.lastID = maxID(data)
	s.logger.Debug(ctx, "store loaded",
		"accounts", len(data.Accounts),
		"departments", len(data.Departments),
		"employees", len(data.Employees))
	return nil
}

func decode(raw string) (models.Data, error) {
	var d *models.Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return models.Data{}, fmt.Errorf("%w: %w", common.ErrCorruptState, err)
	}
	if d == nil {
		return models.Data{}, fmt.Errorf("%w: blob is null", common.ErrCorruptState)
	}
	d.Normalize()
	return *d, nil
}

// Seed replaces the live data with the fixed seed content and saves it.
func (s *Store) Seed(ctx context.Context) error {
	s.data = seedData(s.now())
	s.lastID = maxID(s.data)
	return s.Save(ctx)
}

// Save writes the live data under the data key.
func (s *Store) Save(ctx context.Context) error {
	if s.unread {
		return fmt.Errorf("%w: persisted data was not loaded", common.ErrPersistence)
	}
	b, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrPersistence, err)
	}
	if err := s.storage.Set(ctx, s.key, string(b)); err != nil {
		s.logger.Error(ctx, "saving store failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return nil
}

// NextID returns an id derived from the clock in milliseconds. Within one
// process ids strictly increase even when the clock does not move.
func (s *Store) NextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Timestamp formats the current time for createdAt fields.
func (s *Store) Timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

// Snapshot returns a deep copy of the live data.
func (s *Store) Snapshot() models.Data {
	return s.data.Clone()
}

func maxID(d models.Data) int64 {
	var m int64
	for _, a := range d.Accounts {
		m = max(m, a.ID)
	}
	for _, dep := range d.Departments {
		m = max(m, dep.ID)
	}
	for _, e := range d.Employees {
		m = max(m, e.ID)
	}
	return m
}
