package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/models"
)

func batchID(b models.Batch) string { return b.ID }

func (a *App) requireUser() (*models.User, error) {
	u := a.session.User()
	if u == nil {
		return nil, common.ErrNoActiveUser
	}
	return u, nil
}

func (a *App) requireBatch() (*models.Batch, error) {
	if _, err := a.requireUser(); err != nil {
		return nil, err
	}
	b := a.session.Batch()
	if b == nil {
		return nil, common.ErrNoActiveBatch
	}
	return b, nil
}

// resolveBatch only looks at the active user's batches.
func (a *App) resolveBatch(ctx context.Context, ref string) (models.Batch, error) {
	u, err := a.requireUser()
	if err != nil {
		return models.Batch{}, err
	}
	owned, err := a.batches.ListByUser(ctx, u.ID)
	if err != nil {
		return models.Batch{}, err
	}
	return resolve(owned, ref, batchID)
}

func (a *App) ListBatches(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	owned, err := a.batches.ListByUser(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(owned) == 0 {
		a.printf("No batches for %s. Use 'addbatch'.\n", u.Name)
		return nil
	}

	active := a.session.Batch()
	for i, b := range owned {
		mark := " "
		if active != nil && active.ID == b.ID {
			mark = "*"
		}
		a.printf("%s%3d) %s  %-20s ref %-12s %s  %d scans\n",
			mark, i+1, shortID(b.ID), b.Name, b.UserRequestFrom,
			b.CreatedAt.In(a.location).Format("2006-01-02"), len(b.Scans))
	}
	return nil
}

func (a *App) AddBatch(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "Batch name", a.prompts)
	if err != nil {
		return err
	}
	requestFrom, err := GetWithDefault(a.reader, "Request reference", u.RequestFrom, a.prompts)
	if err != nil {
		return err
	}

	b, err := a.batches.Create(ctx, *u, name, requestFrom, a.now())
	if err != nil {
		return err
	}
	if err := a.session.SetBatch(b); err != nil {
		return err
	}

	a.logger.Info(ctx, "batch created", "batch", b.ID, "user", u.ID)
	a.printf("Batch %s added and selected (%s)\n", b.Name, shortID(b.ID))
	return nil
}

func (a *App) EditBatch(ctx context.Context, ref string) error {
	b, err := a.resolveBatch(ctx, ref)
	if err != nil {
		return err
	}

	name, err := GetWithDefault(a.reader, "Batch name", b.Name, a.prompts)
	if err != nil {
		return err
	}
	requestFrom, err := GetWithDefault(a.reader, "Request reference", b.UserRequestFrom, a.prompts)
	if err != nil {
		return err
	}

	if err := a.batches.Update(ctx, b.ID, name, requestFrom); err != nil {
		return err
	}

	if active := a.session.Batch(); active != nil && active.ID == b.ID {
		active.Name, active.UserRequestFrom = name, requestFrom
		if err := a.session.SetBatch(*active); err != nil {
			return err
		}
	}

	a.printf("Batch %s updated\n", name)
	return nil
}

func (a *App) DeleteBatch(ctx context.Context, ref string) error {
	b, err := a.resolveBatch(ctx, ref)
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete batch %s with %d scans?", b.Name, len(b.Scans)), a.prompts)
	if err != nil || !ok {
		return err
	}

	if err := a.batches.Delete(ctx, b.ID); err != nil {
		return err
	}

	if active := a.session.Batch(); active != nil && active.ID == b.ID {
		a.session.ClearBatch()
		a.engine.Reset(ctx)
	}

	a.logger.Info(ctx, "batch deleted", "batch", b.ID)
	a.printf("Batch %s deleted\n", b.Name)
	return nil
}

func (a *App) SelectBatch(ctx context.Context, ref string) error {
	b, err := a.resolveBatch(ctx, ref)
	if err != nil {
		return err
	}
	if err := a.session.SetBatch(b); err != nil {
		return err
	}
	a.printf("Selected batch %s (%d scans)\n", b.Name, len(b.Scans))
	return nil
}
