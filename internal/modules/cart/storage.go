package cart

import (
	"context"
	"sync"
)

// Storage is the persistence port for cart snapshots: a scoped key-value
// mechanism holding the JSON-serialized item sequence per cart key. A
// missing key is not an error; Load reports found=false.
type Storage interface {
	Load(ctx context.Context, key string) (items []Item, found bool, err error)
	Save(ctx context.Context, key string, items []Item) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage, used in tests and as a
// last-resort fallback when no Redis is configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]Item)}
}

func (m *MemoryStorage) Load(_ context.Context, key string) ([]Item, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.carts[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, true, nil
}

func (m *MemoryStorage) Save(_ context.Context, key string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	m.carts[key] = snapshot
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}
