package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

func userID(u models.User) string { return u.ID }

func (a *App) resolveUser(ctx context.Context, ref string) (models.User, error) {
	all, err := a.users.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	return resolve(all, ref, userID)
}

func (a *App) ListUsers(ctx context.Context) error {
	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		a.printf("No users yet. Use 'adduser'.\n")
		return nil
	}

	active := a.session.User()
	for i, u := range all {
		mark := " "
		if active != nil && active.ID == u.ID {
			mark = "*"
		}
		a.printf("%s%3d) %s  %-20s %s\n", mark, i+1, shortID(u.ID), u.Name, u.Phone)
	}
	return nil
}

func (a *App) AddUser(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.prompts)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.prompts)
	if err != nil {
		return err
	}
	requestFrom, err := GetSimpleText(a.reader, "Default request reference (optional)", a.prompts)
	if err != nil {
		return err
	}

	u, err := a.users.Create(ctx, models.User{Name: name, Phone: phone, RequestFrom: requestFrom})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "user created", "user", u.ID)
	a.printf("User %s added (%s)\n", u.Name, shortID(u.ID))
	return nil
}

func (a *App) EditUser(ctx context.Context, ref string) error {
	u, err := a.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	name, err := GetWithDefault(a.reader, "Name", u.Name, a.prompts)
	if err != nil {
		return err
	}
	phone, err := GetWithDefault(a.reader, "Phone", u.Phone, a.prompts)
	if err != nil {
		return err
	}

	if err := a.users.Update(ctx, u.ID, name, phone); err != nil {
		return err
	}

	if active := a.session.User(); active != nil && active.ID == u.ID {
		active.Name, active.Phone = name, phone
		a.session.SetUser(*active)
	}

	a.printf("User %s updated\n", name)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, ref string) error {
	u, err := a.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete user %s?", u.Name), a.prompts)
	if err != nil || !ok {
		return err
	}

	if err := a.users.Delete(ctx, u.ID); err != nil {
		return err
	}

	if active := a.session.User(); active != nil && active.ID == u.ID {
		a.session.Clear()
		a.engine.Reset(ctx)
	}

	a.logger.Info(ctx, "user deleted", "user", u.ID)
	a.printf("User %s deleted\n", u.Name)
	return nil
}

func (a *App) SelectUser(ctx context.Context, ref string) error {
	u, err := a.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	stats, err := a.batches.Stats(ctx, u.ID)
	if err != nil {
		return err
	}

	a.session.SetUser(u)
	a.printf("Selected %s: %d batches, %d scans\n", u.Name, stats.BatchCount, stats.ScanCount)
	return nil
}
