package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names.
const (
	CollectionUsers   = "users"
	CollectionBatches = "batches"
)

// Store persists named collections of JSON records.
type Store interface {
	// Load returns every record of the collection in stored order.
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Save overwrites the whole collection.
	Save(ctx context.Context, collection string, records []json.RawMessage) error

	Close() error
}

// DecodeRecords parses a stored list of records. Drivers use it so that every
// backend reports the same error for unreadable content.
func DecodeRecords(data []byte) ([]json.RawMessage, error) {
	if len(data) == 0 {
		return []json.RawMessage{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

// EncodeRecords serializes records as a JSON array.
func EncodeRecords(records []json.RawMessage) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	return json.Marshal(records)
}

// LoadAll loads a collection and decodes every record into T.
func LoadAll[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrStorageCorrupt, collection, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// SaveAll encodes items and overwrites the collection with them.
func SaveAll[T any](ctx context.Context, s Store, collection string, items []T) error {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", collection, err)
		}
		raw = append(raw, b)
	}
	return s.Save(ctx, collection, raw)
}

// UpdateByID loads the collection, applies fn to the record whose id matches
// and saves the collection back.
//
// When no record matches the collection is left untouched and updated is
// false. This is not an error: a batch removed from another screen simply
// stops receiving writes.
func UpdateByID[T any](ctx context.Context, s Store, collection, id string, idOf func(T) string, fn func(*T) error) (updated bool, err error) {
	items, err := LoadAll[T](ctx, s, collection)
	if err != nil {
		return false, err
	}

	for i := range items {
		if idOf(items[i]) != id {
			continue
		}
		if err := fn(&items[i]); err != nil {
			return false, err
		}
		updated = true
		break
	}

	if !updated {
		return false, nil
	}

	if err := SaveAll(ctx, s, collection, items); err != nil {
		return false, err
	}
	return true, nil
}
