package users

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
	now   func() time.Time
}

var _ Repository = (*StoreRepository)(nil)

func NewRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s, now: time.Now}
}

func userID(u models.User) string { return u.ID }

func (r *StoreRepository) List(ctx context.Context) ([]models.User, error) {
	return store.LoadAll[models.User](ctx, r.store, store.CollectionUsers)
}

func (r *StoreRepository) Get(ctx context.Context, id string) (*models.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, common.ErrNotFound)
}

func (r *StoreRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	all, err := r.List(ctx)
	if err != nil {
		return models.User{}, err
	}

	u.ID = uuid.NewString()
	if u.Date == nil {
		d := r.now()
		u.Date = &d
	}

	if err := store.SaveAll(ctx, r.store, store.CollectionUsers, append(all, u)); err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return u, nil
}

func (r *StoreRepository) Update(ctx context.Context, id, name, phone string) error {
	if err := (models.User{Name: name, Phone: phone}).Validate(); err != nil {
		return err
	}

	ok, err := store.UpdateByID(ctx, r.store, store.CollectionUsers, id, userID, func(u *models.User) error {
		u.Name = name
		u.Phone = phone
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.User, 0, len(all))
	for _, u := range all {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}

	if err := store.SaveAll(ctx, r.store, store.CollectionUsers, kept); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
