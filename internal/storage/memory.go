package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fintrack/internal/services"
)

// MemoryStorage keeps collections in process memory, for tests and for
// running without a database file.
type MemoryStorage struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{collections: make(map[string][]byte)}
}

func (m *MemoryStorage) Save(_ context.Context, name string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[name] = data
	return nil
}

func (m *MemoryStorage) Load(_ context.Context) (services.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var snapshot services.Snapshot
	if err := decode(m.collections[services.CollectionExpenses], &snapshot.Expenses); err != nil {
		return services.Snapshot{}, err
	}
	if err := decode(m.collections[services.CollectionInvestments], &snapshot.Investments); err != nil {
		return services.Snapshot{}, err
	}
	if err := decode(m.collections[services.CollectionBudgets], &snapshot.Budgets); err != nil {
		return services.Snapshot{}, err
	}
	if err := decode(m.collections[services.CollectionGoals], &snapshot.Goals); err != nil {
		return services.Snapshot{}, err
	}
	if err := decode(m.collections[services.CollectionBills], &snapshot.Bills); err != nil {
		return services.Snapshot{}, err
	}
	return snapshot, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

func decode[T any](data []byte, out *[]T) error {
	if len(data) == 0 {
		*out = []T{}
		return nil
	}
	return json.Unmarshal(data, out)
}
