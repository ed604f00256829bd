package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = `"No SJ","Trx Type","Grade","Dest","Date","Barcode","Gross","Tare","Netto","PT","Kode PT"`

var jakarta = time.FixedZone("WIB", 7*60*60)

func sampleBatch(codes ...string) models.Batch {
	b := models.Batch{
		ID:              "b1",
		Name:            "Batch Pagi",
		UserID:          "u1",
		UserRequestFrom: "REQ-01",
		CreatedAt:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	base := time.Date(2025, 12, 18, 1, 2, 3, 0, time.UTC)
	for i, c := range codes {
		b.Scans = append(b.Scans, models.ScanItem{Code: c, ScannedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	return b
}

func lines(data []byte) []string {
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestEncode_ScenarioB(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBatch("X9", "Y7"), Format{Delimiter: ';', HeaderDelimiter: ',', Location: jakarta}))

	got := lines(buf.Bytes())
	require.Len(t, got, 3)
	assert.Equal(t, wantHeader, got[0])
	assert.Equal(t, `"";"";"";"";"18/12/2025 08:02:03";"X9";"";"";"";"";""`, got[1])
	assert.Equal(t, `"";"";"";"";"18/12/2025 08:03:03";"Y7";"";"";"";"";""`, got[2])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestEncode_LineCountMatchesScans(t *testing.T) {
	for _, n := range []int{1, 2, 7, 50} {
		codes := make([]string, n)
		for i := range codes {
			codes[i] = strings.Repeat("C", i+1)
		}
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, sampleBatch(codes...), DefaultFormat))
		assert.Len(t, lines(buf.Bytes()), n+1)
	}
}

func TestEncode_QuotesAreDoubled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBatch(`AB"12"`), Format{Delimiter: ';', Location: time.UTC}))

	got := lines(buf.Bytes())
	fields := strings.Split(got[1], ";")
	require.Len(t, fields, len(Header))
	assert.Equal(t, `"AB""12"""`, fields[colBarcode])
}

func TestEncode_HeaderDelimiterDefaultsToRowDelimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBatch("A"), Format{Delimiter: '\t', Location: time.UTC}))

	got := lines(buf.Bytes())
	assert.Equal(t, strings.ReplaceAll(wantHeader, ",", "\t"), got[0])
	assert.Len(t, strings.Split(got[1], "\t"), len(Header))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriterError(t *testing.T) {
	require.Error(t, Encode(failingWriter{}, sampleBatch("A"), DefaultFormat))
}

func TestExport_ScenarioC_Empty(t *testing.T) {
	a, err := Export(sampleBatch(), models.User{Name: "Budi"}, DefaultFormat, time.Now())
	require.ErrorIs(t, err, ErrExportEmpty)
	assert.Empty(t, a.Data)
	assert.Empty(t, a.FileName)
}

func TestExport(t *testing.T) {
	now := time.Date(2025, 12, 18, 20, 0, 0, 0, time.UTC)
	a, err := Export(sampleBatch("X9", "Y7"), models.User{Name: "Budi S."}, Format{Delimiter: ';', HeaderDelimiter: ',', Location: jakarta}, now)
	require.NoError(t, err)

	assert.Equal(t, "Scanner-BudiS-BatchPagi_REQ01-2-2025-12-19.csv", a.FileName, "date follows the export location")
	assert.Equal(t, 2, a.Rows)
	assert.Len(t, lines(a.Data), 3)
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 12, 18, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		user  models.User
		batch models.Batch
		want  string
	}{
		{
			name:  "batch name and request reference",
			user:  models.User{Name: "Budi"},
			batch: models.Batch{Name: "Gudang #3", UserRequestFrom: "R1", CreatedAt: created, Scans: make([]models.ScanItem, 4)},
			want:  "Scanner-Budi-Gudang3_R1-4-2025-12-18.csv",
		},
		{
			name:  "name only",
			user:  models.User{Name: "Budi"},
			batch: models.Batch{Name: "Pagi", CreatedAt: created, Scans: make([]models.ScanItem, 2)},
			want:  "Scanner-Budi-Pagi-2-2025-12-18.csv",
		},
		{
			name:  "request reference only",
			user:  models.User{Name: "Ani"},
			batch: models.Batch{Name: "--", UserRequestFrom: "PO/77", CreatedAt: created, Scans: make([]models.ScanItem, 1)},
			want:  "Scanner-Ani-PO77-1-2025-12-18.csv",
		},
		{
			name:  "falls back to creation date",
			user:  models.User{Name: "Ani"},
			batch: models.Batch{CreatedAt: created, Scans: make([]models.ScanItem, 1)},
			want:  "Scanner-Ani-20251130-1-2025-12-18.csv",
		},
		{
			name:  "non ascii names become unknown",
			user:  models.User{Name: "Ñ ✓ ñ"},
			batch: models.Batch{},
			want:  "Scanner-unknown-unknown-0-2025-12-18.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.batch, tt.user, now, time.UTC))
		})
	}
}

func TestFileName_RequestReferenceDistinguishesBatches(t *testing.T) {
	now := time.Date(2025, 12, 18, 9, 0, 0, 0, time.UTC)
	u := models.User{Name: "Budi S."}

	a := models.Batch{Name: "Pagi", UserRequestFrom: "REQ-77", Scans: make([]models.ScanItem, 1)}
	b := a
	b.UserRequestFrom = "REQ-99"

	assert.Equal(t, "Scanner-BudiS-Pagi_REQ77-1-2025-12-18.csv", FileName(a, u, now, time.UTC))
	assert.Equal(t, "Scanner-BudiS-Pagi_REQ99-1-2025-12-18.csv", FileName(b, u, now, time.UTC))
}

func TestFileName_Deterministic(t *testing.T) {
	now := time.Date(2025, 12, 18, 9, 0, 0, 0, time.UTC)
	b := sampleBatch("A", "B")
	u := models.User{Name: "Budi"}
	assert.Equal(t, FileName(b, u, now, time.UTC), FileName(b, u, now, time.UTC))

	b.Scans = append(b.Scans, models.ScanItem{Code: "C"})
	assert.Equal(t, "Scanner-Budi-BatchPagi_REQ01-3-2025-12-18.csv", FileName(b, u, now, time.UTC))
}
