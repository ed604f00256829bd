package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/dmitrijs2005/scanbatch/internal/session"
)

// DefaultResumeDelay is how long the camera stays paused after an accepted scan.
const DefaultResumeDelay = 800 * time.Millisecond

var (
	ErrScanNotFound = errors.New("scan not found in batch")
	ErrBusy         = errors.New("a scan is being evaluated")
)

// Engine is the scan capture state machine for the batch selected in a
// session. It is safe to feed detections from another goroutine.
type Engine struct {
	mu      sync.Mutex
	state   State
	batchID string
	scans   []models.ScanItem

	session     *session.Session
	persister   Persister
	feedback    Feedback
	camera      Camera
	logger      logging.Logger
	now         func() time.Time
	resumeDelay time.Duration
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithResumeDelay(d time.Duration) Option {
	return func(e *Engine) { e.resumeDelay = d }
}

func WithCamera(c Camera) Option {
	return func(e *Engine) { e.camera = c }
}

func WithFeedback(f Feedback) Option {
	return func(e *Engine) { e.feedback = f }
}

func NewEngine(s *session.Session, p Persister, logger logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		state:       Idle,
		session:     s,
		persister:   p,
		feedback:    nopFeedback{},
		camera:      nopCamera{},
		logger:      logger.With("component", "scanner"),
		now:         time.Now,
		resumeDelay: DefaultResumeDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// fire applies ev; callers hold mu.
func (e *Engine) fire(ev Event) {
	e.state = Next(e.state, ev)
}

// attachLocked binds the engine to the session batch, reloading the in-memory
// scans when the selection changed since the last use. The binding is kept
// while a detection is evaluated.
func (e *Engine) attachLocked() error {
	b := e.session.Batch()
	if b == nil {
		return common.ErrNoActiveBatch
	}
	if b.ID != e.batchID && e.state != Evaluating {
		e.batchID = b.ID
		e.scans = models.CloneScans(b.Scans)
	}
	return nil
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Scans returns a copy of the scans of the active batch, oldest first.
func (e *Engine) Scans() ([]models.ScanItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.attachLocked(); err != nil {
		return nil, err
	}
	return models.CloneScans(e.scans), nil
}

// Start turns the camera on. Without an active batch the engine stays Idle
// and returns common.ErrNoActiveBatch. Starting while already capturing is a
// no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Capturing:
		return nil
	case Evaluating:
		return ErrBusy
	}

	if err := e.attachLocked(); err != nil {
		return err
	}

	e.fire(EventStart)
	e.camera.Resume()
	e.logger.Debug(ctx, "capture started", "batch", e.batchID, "scans", len(e.scans))
	return nil
}

// Stop turns the camera off. It has no effect while a detection is evaluated;
// the evaluation decides the next state itself.
func (e *Engine) Stop(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Capturing {
		return
	}
	e.fire(EventStop)
	e.camera.Pause()
	e.logger.Debug(ctx, "capture stopped", "batch", e.batchID)
}

// Reset stops capturing and forgets the attached batch, e.g. on logout.
func (e *Engine) Reset(ctx context.Context) {
	e.Stop(ctx)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Idle {
		e.batchID = ""
		e.scans = nil
	}
}

// HandleDetection evaluates one decoded barcode.
//
// Detections that arrive while the engine is not Capturing are dropped. If the
// session lost its batch the detection is dropped too and the engine goes
// Idle; a newly selected batch is picked up before the code is checked. A code
// already present in the batch triggers duplicate feedback and leaves the
// engine Idle. A new code triggers success feedback, is appended and persisted,
// and capturing resumes after the resume delay. If persisting fails the scan
// is discarded, the engine goes Idle and the storage error is returned.
func (e *Engine) HandleDetection(ctx context.Context, code string) (Outcome, error) {
	e.mu.Lock()
	if e.state != Capturing {
		e.mu.Unlock()
		return OutcomeDropped, nil
	}
	prev := e.batchID
	if err := e.attachLocked(); err != nil {
		e.fire(EventStop)
		e.camera.Pause()
		e.mu.Unlock()
		e.logger.Warn(ctx, "no active batch, detection dropped", "batch", prev, "code", code)
		return OutcomeDropped, nil
	}
	if e.batchID != prev {
		e.logger.Info(ctx, "active batch changed while capturing", "from", prev, "to", e.batchID)
	}
	e.fire(EventDetect)
	e.camera.Pause()

	if models.IndexOfCode(e.scans, code) >= 0 {
		e.fire(EventDuplicate)
		batchID := e.batchID
		e.mu.Unlock()

		e.feedback.Duplicate(ctx, code)
		e.logger.Info(ctx, "duplicate scan rejected", "batch", batchID, "code", code)
		return OutcomeDuplicate, nil
	}

	batchID := e.batchID
	updated := append(models.CloneScans(e.scans), models.ScanItem{Code: code, ScannedAt: e.now()})
	e.mu.Unlock()

	e.feedback.Success(ctx, code)

	ok, err := e.persister.ReplaceScans(ctx, batchID, updated)

	e.mu.Lock()
	if err != nil {
		e.fire(EventFailed)
		e.mu.Unlock()
		e.logger.Error(ctx, "failed to persist scan", "batch", batchID, "code", code, "error", err)
		return OutcomeFailed, fmt.Errorf("persist scan %q: %w", code, err)
	}
	if !ok {
		e.logger.Warn(ctx, "batch no longer stored, scan kept in memory only", "batch", batchID, "code", code)
	}
	e.scans = updated
	e.mu.Unlock()

	e.syncSession(ctx, batchID, updated)
	e.logger.Info(ctx, "scan accepted", "batch", batchID, "code", code, "total", len(updated))

	if err := e.waitResume(ctx); err != nil {
		e.mu.Lock()
		e.fire(EventFailed)
		e.mu.Unlock()
		return OutcomeAccepted, nil
	}

	e.mu.Lock()
	e.fire(EventAccepted)
	e.camera.Resume()
	e.mu.Unlock()
	return OutcomeAccepted, nil
}

// Remove deletes the scan carrying code from the active batch and persists the
// shorter list. It is rejected while a detection is evaluated.
func (e *Engine) Remove(ctx context.Context, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Evaluating {
		return ErrBusy
	}
	if err := e.attachLocked(); err != nil {
		return err
	}
	if models.IndexOfCode(e.scans, code) < 0 {
		return fmt.Errorf("%w: %q", ErrScanNotFound, code)
	}

	updated := models.WithoutCode(e.scans, code)
	ok, err := e.persister.ReplaceScans(ctx, e.batchID, updated)
	if err != nil {
		e.logger.Error(ctx, "failed to persist scan removal", "batch", e.batchID, "code", code, "error", err)
		return fmt.Errorf("remove scan %q: %w", code, err)
	}
	if !ok {
		e.logger.Warn(ctx, "batch no longer stored, removal kept in memory only", "batch", e.batchID, "code", code)
	}
	e.scans = updated

	e.syncSession(ctx, e.batchID, updated)
	e.logger.Info(ctx, "scan removed", "batch", e.batchID, "code", code, "total", len(updated))
	return nil
}

func (e *Engine) syncSession(ctx context.Context, batchID string, scans []models.ScanItem) {
	b := e.session.Batch()
	if b == nil || b.ID != batchID {
		return
	}
	b.Scans = scans
	if err := e.session.SetBatch(*b); err != nil {
		e.logger.Debug(ctx, "session batch not refreshed", "batch", batchID, "error", err)
	}
}

func (e *Engine) waitResume(ctx context.Context) error {
	if e.resumeDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(e.resumeDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
