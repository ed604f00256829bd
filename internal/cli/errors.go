package cli

import (
	"errors"

	"github.com/dmitrijs2005/scanbatch/internal/common"
	"github.com/dmitrijs2005/scanbatch/internal/export"
	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/dmitrijs2005/scanbatch/internal/scanner"
	"github.com/dmitrijs2005/scanbatch/internal/store"
)

// describe turns a command error into the message shown to the operator.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrNoActiveUser):
		return "No user selected. Use 'users' and 'user <n>' first."
	case errors.Is(err, common.ErrNoActiveBatch):
		return "No batch selected. Use 'batches' and 'batch <n>' first."
	case errors.Is(err, export.ErrExportEmpty):
		return "Nothing to export: the batch has no scans."
	case errors.Is(err, store.ErrStorageWriteFailed):
		return "Saving failed, nothing was changed: " + err.Error()
	case errors.Is(err, store.ErrStorageCorrupt):
		return "Stored data cannot be read: " + err.Error()
	case errors.Is(err, models.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, scanner.ErrBusy):
		return "A scan is being processed, try again."
	default:
		return "Error: " + err.Error()
	}
}
