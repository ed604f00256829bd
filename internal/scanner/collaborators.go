package scanner

import (
	"context"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

// Feedback signals the operator about the result of a detection (haptics,
// sounds, dialogs).
type Feedback interface {
	Success(ctx context.Context, code string)
	Duplicate(ctx context.Context, code string)
}

// Camera is the detection source. The engine pauses it while a detection is
// evaluated.
type Camera interface {
	Resume()
	Pause()
}

// Persister stores the full scan list of a batch. It returns false when the
// batch does not exist anymore.
type Persister interface {
	ReplaceScans(ctx context.Context, batchID string, scans []models.ScanItem) (bool, error)
}

type nopCamera struct{}

func (nopCamera) Resume() {}
func (nopCamera) Pause()  {}

type nopFeedback struct{}

func (nopFeedback) Success(context.Context, string)   {}
func (nopFeedback) Duplicate(context.Context, string) {}
