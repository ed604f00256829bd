package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process Store for tests and throwaway sessions. Records are
// kept encoded so decoding behaves exactly like the durable drivers.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data := m.data[collection]
	m.mu.RUnlock()
	return DecodeRecords(data)
}

func (m *Memory) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[collection] = data
	m.mu.Unlock()
	return nil
}

// Raw replaces the stored bytes of a collection without validation.
func (m *Memory) Raw(collection string, data []byte) {
	m.mu.Lock()
	m.data[collection] = data
	m.mu.Unlock()
}

func (m *Memory) Close() error { return nil }
