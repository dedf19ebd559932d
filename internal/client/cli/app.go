package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/staffkeeper/internal/client/config"
	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/services"
	"github.com/dmitrijs2005/staffkeeper/internal/client/session"
	"github.com/dmitrijs2005/staffkeeper/internal/client/storage"
	"github.com/dmitrijs2005/staffkeeper/internal/client/store"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/filex"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	store   *store.Store
	session *session.Session
	router  *router.Router

	authService       services.AuthService
	accountService    services.AccountService
	departmentService services.DepartmentService
	employeeService   services.EmployeeService

	notifier ui.Notifier
	prompter form.Prompter
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens local storage, loads the store and restores the previous
// session. Nothing is routed until Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		st storage.Storage
		db *sql.DB
	)
	if c.InMemory() {
		st = storage.NewMemoryStorage(c.StorageQuota)
	} else {
		if _, err := filex.EnsureParentDir(c.StoragePath); err != nil {
			return nil, err
		}
		var err error
		db, err = storage.InitDatabase(ctx, c.StoragePath)
		if err != nil {
			logger.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
			return nil, err
		}
		st = storage.NewSQLiteStorage(db, c.StorageQuota)
	}

	reader := bufio.NewReader(os.Stdin)
	a, err := newApp(ctx, c, logger, st, reader, os.Stdout)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, st storage.Storage, reader *bufio.Reader, out io.Writer) (*App, error) {
	s := store.New(st, logger.With("component", "store"), store.WithKey(c.StorageKey))
	if err := s.Load(ctx); err != nil {
		// The seed is live in memory even when storage failed.
		logger.Error(ctx, "loading store failed", "error", err)
	}

	surface := newTerminalSurface(out)
	sess := session.New()
	r := router.New(router.NewLocation(""), sess, s, surface, logger.With("component", "router"))
	prompter := newTerminalPrompter(reader, out)

	deps := &services.Deps{
		Store:    s,
		Session:  sess,
		Router:   r,
		Notifier: surface,
		Prompter: prompter,
		Logger:   logger.With("component", "services"),
	}

	a := &App{
		config:            c,
		logger:            logger,
		store:             s,
		session:           sess,
		router:            r,
		authService:       services.NewAuthService(deps),
		accountService:    services.NewAccountService(deps),
		departmentService: services.NewDepartmentService(deps),
		employeeService:   services.NewEmployeeService(deps),
		notifier:          surface,
		prompter:          prompter,
		reader:            reader,
		out:               out,
	}

	if err := a.authService.Restore(ctx); err != nil {
		logger.Warn(ctx, "session restore failed", "error", err)
	}
	return a, nil
}

// Run routes the initial fragment and serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to staffkeeper (type 'help' for commands)")
	a.router.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing database failed", "error", err)
		}
		a.db = nil
	}
}
