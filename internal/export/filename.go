package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/models"
)

const unknownToken = "unknown"

// clean keeps ASCII letters and digits only.
func clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sanitize(s string) string {
	if t := clean(s); t != "" {
		return t
	}
	return unknownToken
}

// batchToken joins the cleaned batch name and request reference with "_".
// When both are empty the creation day is used instead.
func batchToken(b models.Batch) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{b.Name, b.UserRequestFrom} {
		if t := clean(s); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "_")
	}
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt.Format("20060102")
	}
	return unknownToken
}

// FileName builds Scanner-<user>-<batch>-<count>-<yyyy-mm-dd>.csv. The date is
// taken from now in loc.
func FileName(batch models.Batch, user models.User, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return fmt.Sprintf("Scanner-%s-%s-%d-%s.csv",
		sanitize(user.Name),
		batchToken(batch),
		len(batch.Scans),
		now.In(loc).Format("2006-01-02"),
	)
}
