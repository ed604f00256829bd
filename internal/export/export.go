package export

import (
	"bytes"
	"errors"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

// MimeType of the produced artifact.
const MimeType = "text/csv"

var ErrExportEmpty = errors.New("batch has no scans to export")

// Artifact is an encoded export ready to be written or shared.
type Artifact struct {
	FileName string
	Data     []byte
	Rows     int
}

// Export serializes batch. A batch without scans yields ErrExportEmpty and no
// artifact.
func Export(batch models.Batch, user models.User, format Format, now time.Time) (Artifact, error) {
	if len(batch.Scans) == 0 {
		return Artifact{}, ErrExportEmpty
	}

	var buf bytes.Buffer
	if err := Encode(&buf, batch, format); err != nil {
		return Artifact{}, err
	}

	return Artifact{
		FileName: FileName(batch, user, now, format.location()),
		Data:     buf.Bytes(),
		Rows:     len(batch.Scans),
	}, nil
}
