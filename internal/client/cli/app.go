package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/state"
	"github.com/dmitrijs2005/userdir/internal/client/storage"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// authManager is the slice of the auth state manager the shell needs.
type authManager interface {
	Login(ctx context.Context, email, password string) error
	Logout()
	ClearError()
	Authenticated() bool
	Status() state.Status
	Err() string
}

// usersManager is the slice of the collection state manager the shell needs.
type usersManager interface {
	FetchAll(ctx context.Context) error
	Create(ctx context.Context, fields models.UserFields) error
	Update(ctx context.Context, id int64, fields models.UserFields) error
	Delete(ctx context.Context, id int64) error
	ClearError()
	Snapshot() []models.User
	Status() state.Status
	Err() string
}

// App wires the shell to the state managers. query and page are
// presentation-only view inputs: they are never stored in the core and the
// derived view is recomputed from them on every render.
type App struct {
	config *config.Config
	auth   authManager
	users  usersManager
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	query string
	page  int
}

// NewApp builds the gateway, the token store, and the state managers from
// the given configuration.
func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTextLogger(c.Debug)

	dir, err := storage.DefaultDir()
	if err != nil {
		return nil, err
	}
	store := storage.NewFileTokenStore(dir)

	gw := api.NewHTTPGateway(c.BaseURL, c.APIKey, c.PerPage,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
	)

	return &App{
		config: c,
		auth:   state.NewAuth(gw, store, log),
		users:  state.NewUsers(gw, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		page:   1,
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Authenticated()
}

func (a *App) statusLine() string {
	if a.isLoggedIn() {
		return "(authenticated)"
	}
	return "(anonymous)"
}
