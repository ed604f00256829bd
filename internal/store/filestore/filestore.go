// Package filestore implements store.Store as one JSON file per collection
// inside a data directory. Writes go to a temporary file that is fsynced and
// renamed over the previous version, so a reader never sees half a collection.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dmitrijs2005/scanbatch/internal/filex"
	"github.com/dmitrijs2005/scanbatch/internal/store"
)

var ErrInvalidCollectionName = errors.New("invalid collection name")

var collectionName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store keeps collections under dir as <collection>.json.
type Store struct {
	dir string
}

var _ store.Store = (*Store)(nil)

// Open makes sure dir exists and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: abs}, nil
}

func (s *Store) path(collection string) (string, error) {
	if !collectionName.MatchString(collection) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollectionName, collection)
	}
	return filepath.Join(s.dir, collection+".json"), nil
}

func (s *Store) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(collection)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	records, err := store.DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", collection, err)
	}
	return records, nil
}

func (s *Store) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(collection)
	if err != nil {
		return err
	}

	data, err := store.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	if err := filex.WriteFileAtomic(p, data, 0o600); err != nil {
		return fmt.Errorf("failed to save collection %s: %w: %w", collection, store.ErrStorageWriteFailed, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
