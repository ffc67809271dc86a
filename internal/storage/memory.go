package storage

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-memory DocumentStore for development and tests.
// Documents go through the same BSON encoding as MongoStore.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.Raw)}
}

func (m *MemoryStore) InsertOne(_ context.Context, collection string, doc any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], bson.Raw(data))
	return nil
}

func (m *MemoryStore) FindOne(_ context.Context, collection, key, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(collection, key, id)
	if i < 0 {
		return ErrNotFound
	}
	if err := bson.Unmarshal(m.collections[collection][i], out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func (m *MemoryStore) DeleteOne(_ context.Context, collection, key, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(collection, key, id)
	if i < 0 {
		return 0, nil
	}
	docs := m.collections[collection]
	m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
	return 1, nil
}

// Count returns the number of documents held in collection.
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close(context.Context) error { return nil }

// indexOf must be called with the lock held.
func (m *MemoryStore) indexOf(collection, key, id string) int {
	for i, doc := range m.collections[collection] {
		if v, ok := doc.Lookup(key).StringValueOK(); ok && v == id {
			return i
		}
	}
	return -1
}
