package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/scanbatch/internal/config"
	"github.com/dmitrijs2005/scanbatch/internal/export"
	"github.com/dmitrijs2005/scanbatch/internal/filex"
	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/dmitrijs2005/scanbatch/internal/share"
	"github.com/dmitrijs2005/scanbatch/internal/store"
	"github.com/dmitrijs2005/scanbatch/internal/store/filestore"
	"github.com/dmitrijs2005/scanbatch/internal/store/sqlitestore"
)

// SQLiteFileName is the database file created inside the data directory.
const SQLiteFileName = "scanbatch.db"

func openStore(ctx context.Context, c *config.Config) (store.Store, error) {
	switch c.StorageDriver {
	case config.DriverSQLite:
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, err
		}
		return sqlitestore.Open(ctx, filepath.Join(dir, SQLiteFileName))
	case config.DriverFile:
		return filestore.Open(c.DataDir)
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, c.StorageDriver)
	}
}

// newSharer returns the configured share target. The HTTP target is also
// returned as a server so the caller can run it.
func newSharer(ctx context.Context, c *config.Config, logger logging.Logger) (share.Sharer, *share.HTTP, error) {
	switch c.ShareTarget {
	case config.ShareS3:
		s, err := share.NewS3(ctx, share.S3Config{
			Bucket:          c.S3Bucket,
			Prefix:          c.S3Prefix,
			Region:          c.S3Region,
			Endpoint:        c.S3Endpoint,
			AccessKeyID:     c.S3AccessKeyID,
			SecretAccessKey: c.S3SecretAccessKey,
			LinkTTL:         c.S3LinkTTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case config.ShareHTTP:
		dir, err := filex.EnsureDir(c.ExportDir)
		if err != nil {
			return nil, nil, err
		}
		h := share.NewHTTP(dir, c.HTTPShareBaseURL, logger)
		return h, h, nil
	default:
		return share.Local{}, nil, nil
	}
}

func newFormat(c *config.Config) (export.Format, error) {
	row, header, err := c.Delimiters()
	if err != nil {
		return export.Format{}, err
	}
	loc, err := c.Location()
	if err != nil {
		return export.Format{}, err
	}
	return export.Format{Delimiter: row, HeaderDelimiter: header, Location: loc}, nil
}
