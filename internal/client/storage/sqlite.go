package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/dmitrijs2005/staffkeeper/internal/dbx"
)

// SQLiteStorage implements Storage on the "storage" table.
type SQLiteStorage struct {
	db    *sql.DB
	quota int64
}

// NewSQLiteStorage binds a storage to db. A quota of zero or less disables the
// size check.
func NewSQLiteStorage(db *sql.DB, quota int64) *SQLiteStorage {
	return &SQLiteStorage{db: db, quota: quota}
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get storage[%s]: %w", key, err)
	}
	return value, true, nil
}

// Set upserts key. The quota check and the write share one transaction.
func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.quota > 0 {
			var used int64
			err := tx.QueryRowContext(ctx, `
				SELECT COALESCE(SUM(length(CAST(key AS BLOB)) + length(CAST(value AS BLOB))), 0)
				FROM storage WHERE key <> ?`, key).Scan(&used)
			if err != nil {
				return err
			}
			if used+int64(len(key)+len(value)) > s.quota {
				return common.ErrQuotaExceeded
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO storage (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set storage[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove storage[%s]: %w", key, err)
	}
	return nil
}
