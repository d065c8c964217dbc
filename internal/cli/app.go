// Package cli implements the terminal UI of salonbook: the login gate,
// the service list and the add/update/delete commands. It depends only on
// the abstract session store and application services, never on a concrete
// database client.
package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"salonbook/internal/config"
	"salonbook/internal/logging"
	"salonbook/internal/models"
	"salonbook/internal/services"
	"salonbook/internal/session"
	"salonbook/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	catalog services.CatalogService
	session session.Store
	user    *models.User
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	sessionStore, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	manager, err := storage.NewPostgresManager(c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(manager.Users(), logger)
	cs := services.NewCatalogService(manager.Services(), logger)

	return &App{
		config:  c,
		auth:    as,
		catalog: cs,
		session: sessionStore,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.FullName + ")"
}

// restoreSession checks the local session store once at startup. A stored
// user is trusted as-is, with no revalidation against the remote store.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.session.Load(ctx)
	if err != nil {
		return
	}
	a.user = user
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)

	if a.isLoggedIn() {
		log.Printf("Welcome back, %s", a.user.FullName)
		_ = a.List(ctx)
	} else {
		_ = a.Login(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
