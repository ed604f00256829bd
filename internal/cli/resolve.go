package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/scanbatch/internal/common"
)

var ErrAmbiguousRef = errors.New("reference matches more than one record")

// resolve picks one of items by 1-based list position, full id or unique id
// prefix.
func resolve[T any](items []T, ref string, idOf func(T) string) (T, error) {
	var zero T

	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], nil
		}
		return zero, fmt.Errorf("no entry %d: %w", n, common.ErrNotFound)
	}

	var (
		found   T
		matches int
	)
	for _, it := range items {
		id := idOf(it)
		if id == ref {
			return it, nil
		}
		if strings.HasPrefix(id, ref) {
			found = it
			matches++
		}
	}

	switch matches {
	case 0:
		return zero, fmt.Errorf("%q: %w", ref, common.ErrNotFound)
	case 1:
		return found, nil
	default:
		return zero, fmt.Errorf("%w: %q", ErrAmbiguousRef, ref)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
