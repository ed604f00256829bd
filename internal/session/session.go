// Package session holds the in-memory selection of the active user and batch.
//
// A Session is created once per process and passed to whatever needs it; it
// is never persisted and starts empty on every run. Consumers that need an
// active user or batch check for nil and send the operator back to the
// matching selection step.
package session

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/models"
)

var ErrBatchUserMismatch = errors.New("batch does not belong to the active user")

// Snapshot is a copy of the current selection.
type Snapshot struct {
	User  *models.User
	Batch *models.Batch
}

// Session stores the active user and batch. The zero value is empty and
// ready to use.
type Session struct {
	mu    sync.RWMutex
	user  *models.User
	batch *models.Batch
}

func New() *Session {
	return &Session{}
}

// SetUser selects u. Selecting a different user drops the active batch.
func (s *Session) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != u.ID {
		s.batch = nil
	}
	s.user = &u
}

// SetBatch selects b. It requires an active user that owns b.
func (s *Session) SetBatch(b models.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return common.ErrNoActiveUser
	}
	if b.UserID != s.user.ID {
		return ErrBatchUserMismatch
	}
	b = b.Clone()
	s.batch = &b
	return nil
}

// ClearBatch forgets the active batch and keeps the user.
func (s *Session) ClearBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = nil
}

// Clear forgets both selections.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.batch = nil
}

// Current returns copies of the active user and batch.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap Snapshot
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.batch != nil {
		b := s.batch.Clone()
		snap.Batch = &b
	}
	return snap
}

func (s *Session) User() *models.User {
	return s.Current().User
}

func (s *Session) Batch() *models.Batch {
	return s.Current().Batch
}
