package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dmitrijs2005/scanbatch/internal/scanner"
)

// Scan captures codes from input, one per line, until an empty line or EOF.
// After a duplicate the engine pauses; the next code resumes it.
func (a *App) Scan(ctx context.Context) error {
	if _, err := a.requireBatch(); err != nil {
		return err
	}
	if err := a.engine.Start(ctx); err != nil {
		return err
	}
	defer a.engine.Stop(ctx)

	a.printf("Scanning. One code per line, empty line to stop.\n")

	for {
		line, err := readLine(a.reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			break
		}

		if a.engine.State() == scanner.Idle {
			if err := a.engine.Start(ctx); err != nil {
				return err
			}
		}

		out, err := a.engine.HandleDetection(ctx, code)
		if err != nil {
			return err
		}
		if out == scanner.OutcomeDuplicate {
			a.printf("Paused. Scan the next code to continue, empty line to stop.\n")
		}
	}

	scans, err := a.engine.Scans()
	if err != nil {
		return err
	}
	a.printf("Scanning stopped, %d scans in batch\n", len(scans))
	return nil
}

func (a *App) ListScans(ctx context.Context) error {
	if _, err := a.requireBatch(); err != nil {
		return err
	}
	scans, err := a.engine.Scans()
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		a.printf("No scans yet. Use 'scan'.\n")
		return nil
	}
	for i, s := range scans {
		a.printf("%4d) %s  %s\n", i+1, s.ScannedAt.In(a.location).Format("02/01/2006 15:04:05"), s.Code)
	}
	return nil
}

func (a *App) RemoveScan(ctx context.Context, code string) error {
	if _, err := a.requireBatch(); err != nil {
		return err
	}
	if err := a.engine.Remove(ctx, code); err != nil {
		return err
	}
	a.printf("Removed %s\n", code)
	return nil
}
