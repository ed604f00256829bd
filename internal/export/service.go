package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/filex"
	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/dmitrijs2005/scanbatch/internal/share"
)

type BatchGetter interface {
	Get(ctx context.Context, id string) (*models.Batch, error)
}

type UserGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// Result describes a finished export.
type Result struct {
	Path   string
	Rows   int
	Shared bool
	Link   share.Link
}

// Service writes exports to a directory and shares them.
type Service struct {
	batches BatchGetter
	users   UserGetter
	sharer  share.Sharer
	dir     string
	format  Format
	logger  logging.Logger
	now     func() time.Time
}

func NewService(b BatchGetter, u UserGetter, sharer share.Sharer, dir string, format Format, logger logging.Logger) *Service {
	if sharer == nil {
		sharer = share.Local{}
	}
	return &Service{
		batches: b,
		users:   u,
		sharer:  sharer,
		dir:     dir,
		format:  format,
		logger:  logger.With("module", "export"),
		now:     time.Now,
	}
}

// ExportBatch writes the CSV of the stored batch and shares it. Sharing being
// unavailable is not an error: the result then has Shared false and the file
// stays in the export directory.
func (s *Service) ExportBatch(ctx context.Context, batchID string) (Result, error) {
	batch, err := s.batches.Get(ctx, batchID)
	if err != nil {
		return Result{}, fmt.Errorf("load batch %s: %w", batchID, err)
	}
	user, err := s.users.Get(ctx, batch.UserID)
	if err != nil {
		return Result{}, fmt.Errorf("load owner of batch %s: %w", batchID, err)
	}

	artifact, err := Export(*batch, *user, s.format, s.now())
	if err != nil {
		return Result{}, err
	}

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return Result{}, err
	}
	p := filepath.Join(dir, artifact.FileName)
	if err := filex.WriteFileAtomic(p, artifact.Data, 0o600); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", p, err)
	}

	s.logger.Info(ctx, "batch exported", "batch", batchID, "file", p, "rows", artifact.Rows)

	res := Result{Path: p, Rows: artifact.Rows}

	link, err := s.sharer.Share(ctx, p, MimeType)
	switch {
	case errors.Is(err, share.ErrSharingUnavailable):
		return res, nil
	case err != nil:
		s.logger.Warn(ctx, "export written but not shared", "file", p, "error", err)
		return res, fmt.Errorf("share %s: %w", artifact.FileName, err)
	}

	res.Shared = true
	res.Link = link
	return res, nil
}
