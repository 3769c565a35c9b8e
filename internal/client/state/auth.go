package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// TokenStore persists the credential token across process restarts. Load
// returns common.ErrTokenNotFound when no token was ever saved.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Auth owns the credential token and the status of the login intent. The
// token's presence is the sole authorization signal the shell consults.
type Auth struct {
	mu     sync.Mutex
	gw     api.Gateway
	store  TokenStore
	log    logging.Logger
	token  string
	status Status
	errMsg string
}

// NewAuth constructs the auth manager, seeding the token from the store if
// a prior value exists. A store read failure is logged and treated as an
// absent token.
func NewAuth(gw api.Gateway, store TokenStore, log logging.Logger) *Auth {
	a := &Auth{gw: gw, store: store, log: log.With("component", "auth")}

	token, err := store.Load()
	if err != nil {
		if !errors.Is(err, common.ErrTokenNotFound) {
			a.log.Warn(context.Background(), "stored token unreadable", "error", err)
		}
		return a
	}
	a.token = token
	return a
}

// Login authenticates with the remote service. On success the token is
// stored in memory and persisted; on failure the error status is set and
// any prior token is left untouched. A transport-successful response with
// no token counts as a failure.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	a.beginLogin()
	res, err := a.gw.Login(ctx, email, password)
	return a.finishLogin(res, err)
}

func (a *Auth) beginLogin() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = StatusPending
	a.errMsg = ""
}

// finishLogin is the reconciliation step of the login intent.
func (a *Auth) finishLogin(res api.LoginResult, err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.status = StatusError
		a.errMsg = err.Error()
		return err
	}
	if res.Token == "" {
		a.status = StatusError
		a.errMsg = common.ErrNoToken.Error()
		return common.ErrNoToken
	}

	a.token = res.Token
	a.status = StatusIdle
	a.errMsg = ""

	if err := a.store.Save(res.Token); err != nil {
		// The session works for this process; only the restart guarantee is
		// lost, so surface it without dropping the in-memory token.
		a.status = StatusError
		a.errMsg = fmt.Sprintf("persist token: %v", err)
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Logout clears the in-memory token and the persisted copy and resets any
// error. It never fails; a store failure is logged only.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = ""
	a.status = StatusIdle
	a.errMsg = ""

	if err := a.store.Clear(); err != nil {
		a.log.Warn(context.Background(), "clearing stored token failed", "error", err)
	}
}

// ClearError resets an error status back to idle without side effects.
func (a *Auth) ClearError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status == StatusError {
		a.status = StatusIdle
		a.errMsg = ""
	}
}

// Token returns the current credential token, "" when unauthenticated.
func (a *Auth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// Authenticated reports whether a token is present.
func (a *Auth) Authenticated() bool {
	return a.Token() != ""
}

// Status returns the current login-intent status.
func (a *Auth) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Err returns the stored error message, "" unless Status() is StatusError.
func (a *Auth) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}
