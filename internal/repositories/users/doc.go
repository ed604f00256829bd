// Package users provides persistence for operators stored in the "users"
// collection.
//
// Typical usage
//
//	repo := users.NewRepository(st)
//	u, _ := repo.Create(ctx, models.User{Name: "Budi", Phone: "0812"})
//	_ = repo.Update(ctx, u.ID, "Budi S", "0813")
//	list, _ := repo.List(ctx)
//
// Editing a user only changes Name and Phone; the remaining fields are fixed
// once batches reference the user.
package users
