package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/config"
	"github.com/dmitrijs2005/scanbatch/internal/export"
	"github.com/dmitrijs2005/scanbatch/internal/logging"
	"github.com/dmitrijs2005/scanbatch/internal/repositories/batches"
	"github.com/dmitrijs2005/scanbatch/internal/repositories/users"
	"github.com/dmitrijs2005/scanbatch/internal/scanner"
	"github.com/dmitrijs2005/scanbatch/internal/session"
	"github.com/dmitrijs2005/scanbatch/internal/share"
	"github.com/dmitrijs2005/scanbatch/internal/store"
	"golang.org/x/term"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    store.Store
	users    users.Repository
	batches  batches.Repository
	session  *session.Session
	engine   *scanner.Engine
	exporter *export.Service
	download *share.HTTP
	location *time.Location

	reader  *bufio.Reader
	out     io.Writer
	prompts io.Writer
	now     func() time.Time
}

// deps are the pieces NewApp builds from configuration; tests pass their own.
type deps struct {
	store    store.Store
	sharer   share.Sharer
	download *share.HTTP
	logger   logging.Logger
	in       io.Reader
	out      io.Writer
	// interactive enables prompts.
	interactive bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	st, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	sharer, download, err := newSharer(ctx, c, logger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("share init error: %w", err)
	}

	return newApp(c, deps{
		store:       st,
		sharer:      sharer,
		download:    download,
		logger:      logger,
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
}

// newApp takes ownership of d.store and closes it when assembly fails.
func newApp(c *config.Config, d deps) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		_ = d.store.Close()
		return nil, err
	}
	format, err := newFormat(c)
	if err != nil {
		_ = d.store.Close()
		return nil, err
	}

	prompts := io.Discard
	if d.interactive {
		prompts = d.out
	}

	a := &App{
		config:   c,
		logger:   d.logger,
		store:    d.store,
		users:    users.NewRepository(d.store),
		session:  session.New(),
		download: d.download,
		location: loc,
		reader:   bufio.NewReader(d.in),
		out:      d.out,
		prompts:  prompts,
		now:      time.Now,
	}

	br := batches.NewRepository(d.store)
	a.batches = br
	a.engine = scanner.NewEngine(a.session, br, d.logger,
		scanner.WithResumeDelay(c.ResumeDelay),
		scanner.WithClock(func() time.Time { return a.now() }),
		scanner.WithFeedback(newTerminalFeedback(d.out)),
	)
	a.exporter = export.NewService(br, a.users, d.sharer, c.ExportDir, format, d.logger)

	return a, nil
}

// Run starts the optional download server and blocks in the REPL until the
// operator exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	if a.download != nil {
		go func() {
			if err := a.download.Run(ctx, a.config.HTTPShareAddr); err != nil {
				a.logger.Error(ctx, "download server stopped", "error", err)
			}
		}()
	}

	a.logger.Info(ctx, "Starting scanbatch", "driver", a.config.StorageDriver, "data_dir", a.config.DataDir)
	fmt.Fprintln(a.out, "Welcome to scanbatch (type 'help' for commands)")

	runREPL(ctx, a, a.status, a.reader, a.prompts)
}

func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error(context.Background(), "failed to close storage", "error", err)
	}
}

func (a *App) status() string {
	snap := a.session.Current()
	if snap.User == nil {
		return ""
	}
	if snap.Batch == nil {
		return fmt.Sprintf("(%s)", snap.User.Name)
	}
	return fmt.Sprintf("(%s / %s)", snap.User.Name, snap.Batch.Name)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
