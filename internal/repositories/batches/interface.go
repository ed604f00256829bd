package batches

import (
	"context"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Batch, error)

	// ListByUser returns only the batches owned by userID.
	ListByUser(ctx context.Context, userID string) ([]models.Batch, error)

	Get(ctx context.Context, id string) (*models.Batch, error)

	// Create appends a new empty batch owned by owner.
	Create(ctx context.Context, owner models.User, name, requestFrom string, createdAt time.Time) (models.Batch, error)

	// Update changes name and request reference; CreatedAt, owner and scans are kept.
	Update(ctx context.Context, id, name, requestFrom string) error

	Delete(ctx context.Context, id string) error

	// ReplaceScans overwrites the scans of batch id. It reports false, without
	// error, when the batch does not exist.
	ReplaceScans(ctx context.Context, id string, scans []models.ScanItem) (bool, error)

	// Stats counts batches and scans owned by userID.
	Stats(ctx context.Context, userID string) (models.UserStats, error)
}
