package share

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/gorilla/mux"
)

var ErrOutsideExportDir = errors.New("file is outside the export directory")

// HTTP serves the export directory so a phone or laptop on the same network
// can download files by link.
type HTTP struct {
	dir     string
	baseURL string
	logger  logging.Logger
	router  *mux.Router
}

func NewHTTP(dir, baseURL string, logger logging.Logger) *HTTP {
	h := &HTTP{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With("module", "http_share"),
	}
	h.router = h.newRouter()
	return h
}

func (h *HTTP) newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc("/exports/{name}", h.serveExport).Methods(http.MethodGet)
	return r
}

// Handler exposes the router, e.g. for httptest.
func (h *HTTP) Handler() http.Handler { return h.router }

func (h *HTTP) serveExport(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.NotFound(w, r)
		return
	}

	p := filepath.Join(h.dir, name)
	fi, err := os.Stat(p)
	if err != nil || fi.IsDir() {
		http.NotFound(w, r)
		return
	}

	h.logger.Info(r.Context(), "serving export", "name", name, "remote", r.RemoteAddr)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, p)
}

// Share returns the download link of a file already in the export dir.
func (h *HTTP) Share(_ context.Context, filePath, _ string) (Link, error) {
	dir, err := filepath.Abs(h.dir)
	if err != nil {
		return Link{}, err
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return Link{}, err
	}
	if filepath.Dir(abs) != dir {
		return Link{}, fmt.Errorf("%w: %s", ErrOutsideExportDir, filePath)
	}
	return Link{URL: h.baseURL + "/exports/" + url.PathEscape(filepath.Base(abs))}, nil
}

// Run serves on addr until ctx is canceled.
func (h *HTTP) Run(ctx context.Context, addr string) error {
	listen, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: h.router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		h.logger.Info(context.Background(), "Stopping download server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info(ctx, "Starting download server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
