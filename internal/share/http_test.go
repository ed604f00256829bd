package share

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPFixture(t *testing.T) (*HTTP, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("data"), 0o600))
	return NewHTTP(dir, "http://192.168.1.10:8088/", logging.NewDiscardLogger()), dir
}

func TestHTTP_Share(t *testing.T) {
	h, dir := newHTTPFixture(t)

	link, err := h.Share(context.Background(), filepath.Join(dir, "a.csv"), "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.10:8088/exports/a.csv", link.URL)
	assert.True(t, link.ExpiresAt.IsZero())

	_, err = h.Share(context.Background(), filepath.Join(t.TempDir(), "b.csv"), "text/csv")
	require.ErrorIs(t, err, ErrOutsideExportDir)
}

func TestHTTP_Routes(t *testing.T) {
	h, _ := newHTTPFixture(t)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, "OK\n"},
		{"download", http.MethodGet, "/exports/a.csv", http.StatusOK, "data"},
		{"missing", http.MethodGet, "/exports/missing.csv", http.StatusNotFound, ""},
		{"hidden", http.MethodGet, "/exports/.a.csv.tmp", http.StatusNotFound, ""},
		{"traversal", http.MethodGet, "/exports/..%2F..%2Fetc%2Fpasswd", http.StatusNotFound, ""},
		{"wrong method", http.MethodPost, "/exports/a.csv", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestHTTP_DownloadHeaders(t *testing.T) {
	h, _ := newHTTPFixture(t)
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/exports/a.csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="a.csv"`, rec.Header().Get("Content-Disposition"))
}

func TestHTTP_RunStopsOnCancel(t *testing.T) {
	h, _ := newHTTPFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, "127.0.0.1:0") }()

	cancel()
	require.NoError(t, <-done)
}
