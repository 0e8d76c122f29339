package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/chat"
	"github.com/aaywp/portal/internal/client/config"
	"github.com/aaywp/portal/internal/client/photo"
	"github.com/aaywp/portal/internal/client/services"
	"github.com/aaywp/portal/internal/client/session"
	"github.com/aaywp/portal/internal/client/storage"
	"github.com/aaywp/portal/internal/client/validation"
	"github.com/aaywp/portal/internal/client/wizard"
	"github.com/aaywp/portal/internal/filex"
	"github.com/aaywp/portal/internal/logging"
)

// backend is everything the App asks of the portal API. *api.Client
// satisfies it.
type backend interface {
	services.AuthAPI
	services.ContactAPI
	services.HomeAPI
	services.DashboardAPI
	wizard.Registrar
	chat.Assistant
}

type App struct {
	config    *config.Config
	db        *sql.DB
	log       logging.Logger
	auth      services.AuthService
	home      *services.HomeService
	contact   *services.ContactService
	dashboard *services.DashboardService
	wizard    *wizard.Wizard
	validator *validation.Validator
	chat      *chat.Session
	userName  string
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the local store under c.DataDir, builds the API client and
// every service on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogFormat, c.LogLevel, os.Stderr)

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := storage.Open(ctx, c.StorePath())
	if err != nil {
		log.Error(ctx, "error initializing local store", "path", c.StorePath(), "error", err)
		return nil, err
	}

	client, err := api.New(c.ServerBaseURL, session.NewPersistentStore(db),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	var opts []wizard.Option
	if pc := c.Photo(); pc.Enabled() {
		uploader, err := photo.NewS3Uploader(ctx, pc)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("photo storage: %w", err)
		}
		opts = append(opts, wizard.WithPhotoUploader(uploader))
	}

	a := newApp(client, c.Language, log, bufio.NewReader(os.Stdin), os.Stdout, opts...)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(b backend, lang string, log logging.Logger, reader *bufio.Reader, out io.Writer, opts ...wizard.Option) *App {
	v := validation.New()
	a := &App{
		log:       log,
		validator: v,
		auth:      services.NewAuthService(b),
		home:      services.NewHomeService(b),
		contact:   services.NewContactService(b, v),
		dashboard: services.NewDashboardService(b),
		chat:      chat.New(b, lang, log.With("component", "chat")),
		reader:    reader,
		out:       out,
	}
	opts = append(opts, wizard.WithLogger(log.With("component", "wizard")))
	a.wizard = wizard.New(v, b, printNotifier{w: out}, opts...)
	return a
}

// Run restores the admin session from the local store and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if st, err := a.auth.Status(ctx); err == nil && st.LoggedIn && !st.Expired {
		a.userName = st.Subject
	}

	fmt.Fprintln(a.out, "Welcome to the community portal CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return "guest"
	}
	return "admin " + a.userName
}
