package cli

import (
	"context"
)

func (a *App) Export(ctx context.Context) error {
	b, err := a.requireBatch()
	if err != nil {
		return err
	}

	res, err := a.exporter.ExportBatch(ctx, b.ID)
	if res.Path == "" {
		return err
	}

	a.printf("Exported %d scans to %s\n", res.Rows, res.Path)
	switch {
	case res.Shared && res.Link.ExpiresAt.IsZero():
		a.printf("Download: %s\n", res.Link.URL)
	case res.Shared:
		a.printf("Download: %s (valid until %s)\n", res.Link.URL, res.Link.ExpiresAt.In(a.location).Format("2006-01-02 15:04"))
	case err == nil:
		a.printf("Sharing is not available, the file stays on this machine.\n")
	}
	return err
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	a.engine.Reset(ctx)
	a.printf("Logged out\n")
	return nil
}
