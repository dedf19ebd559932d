package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

// MemoryStorage is a Storage that forgets everything when the process exits.
type MemoryStorage struct {
	items map[string]string
	quota int64
}

func NewMemoryStorage(quota int64) *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string), quota: quota}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	if m.quota > 0 {
		var used int64
		for k, v := range m.items {
			if k != key {
				used += int64(len(k) + len(v))
			}
		}
		if used+int64(len(key)+len(value)) > m.quota {
			return fmt.Errorf("failed to set storage[%s]: %w", key, common.ErrQuotaExceeded)
		}
	}
	m.items[key] = value
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	delete(m.items, key)
	return nil
}
