package batches

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/dmitrijs2005/scanbatch/internal/store"
	"github.com/google/uuid"
)

// StoreRepository implements Repository over a store.Store.
type StoreRepository struct {
	store store.Store
}

var _ Repository = (*StoreRepository)(nil)

func NewRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func batchID(b models.Batch) string { return b.ID }

func (r *StoreRepository) List(ctx context.Context) ([]models.Batch, error) {
	return store.LoadAll[models.Batch](ctx, r.store, store.CollectionBatches)
}

func (r *StoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Batch, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Batch, 0, len(all))
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *StoreRepository) Get(ctx context.Context, id string) (*models.Batch, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
}

func (r *StoreRepository) Create(ctx context.Context, owner models.User, name, requestFrom string, createdAt time.Time) (models.Batch, error) {
	b := models.Batch{
		ID:              uuid.NewString(),
		Name:            name,
		UserID:          owner.ID,
		UserRequestFrom: requestFrom,
		CreatedAt:       createdAt,
		Scans:           []models.ScanItem{},
	}
	if err := b.Validate(); err != nil {
		return models.Batch{}, err
	}

	all, err := r.List(ctx)
	if err != nil {
		return models.Batch{}, err
	}

	if err := store.SaveAll(ctx, r.store, store.CollectionBatches, append(all, b)); err != nil {
		return models.Batch{}, fmt.Errorf("failed to save batch: %w", err)
	}
	return b, nil
}

func (r *StoreRepository) Update(ctx context.Context, id, name, requestFrom string) error {
	probe := models.Batch{Name: name, UserRequestFrom: requestFrom, UserID: "-"}
	if err := probe.Validate(); err != nil {
		return err
	}

	ok, err := store.UpdateByID(ctx, r.store, store.CollectionBatches, id, batchID, func(b *models.Batch) error {
		b.Name = name
		b.UserRequestFrom = requestFrom
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update batch: %w", err)
	}
	if !ok {
		return fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Batch, 0, len(all))
	for _, b := range all {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}

	if err := store.SaveAll(ctx, r.store, store.CollectionBatches, kept); err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	return nil
}

func (r *StoreRepository) ReplaceScans(ctx context.Context, id string, scans []models.ScanItem) (bool, error) {
	return store.UpdateByID(ctx, r.store, store.CollectionBatches, id, batchID, func(b *models.Batch) error {
		b.Scans = models.CloneScans(scans)
		return nil
	})
}

func (r *StoreRepository) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	owned, err := r.ListByUser(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}
	stats := models.UserStats{BatchCount: len(owned)}
	for _, b := range owned {
		stats.ScanCount += len(b.Scans)
	}
	return stats, nil
}
