package users

import (
	"context"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

// Repository describes CRUD operations on users.
type Repository interface {
	// List returns all users in stored order.
	List(ctx context.Context) ([]models.User, error)

	// Get returns a user by id or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.User, error)

	// Create validates u, assigns an id and appends it.
	Create(ctx context.Context, u models.User) (models.User, error)

	// Update changes the name and phone of an existing user.
	Update(ctx context.Context, id, name, phone string) error

	// Delete removes the user. Batches owned by the user are kept.
	Delete(ctx context.Context, id string) error
}
