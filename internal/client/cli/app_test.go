package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/state"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// fakeAuthMgr is a scripted authManager.
type fakeAuthMgr struct {
	loggedIn bool
	loginErr error
	errMsg   string
	status   state.Status

	loginEmail string
	loginPass  string
	logouts    int
	clears     int
}

func (f *fakeAuthMgr) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		f.errMsg = f.loginErr.Error()
		f.status = state.StatusError
		return f.loginErr
	}
	f.loggedIn = true
	f.status = state.StatusIdle
	return nil
}

func (f *fakeAuthMgr) Logout() {
	f.logouts++
	f.loggedIn = false
	f.errMsg = ""
}

func (f *fakeAuthMgr) ClearError() {
	f.clears++
	f.errMsg = ""
	f.status = state.StatusIdle
}

func (f *fakeAuthMgr) Authenticated() bool  { return f.loggedIn }
func (f *fakeAuthMgr) Status() state.Status { return f.status }
func (f *fakeAuthMgr) Err() string          { return f.errMsg }

// fakeUsersMgr is a scripted usersManager.
type fakeUsersMgr struct {
	users  []models.User
	errMsg string
	status state.Status

	fetches   int
	fetchErr  error
	created   []models.UserFields
	createErr error
	updatedID int64
	updated   *models.UserFields
	updateErr error
	deleted   []int64
	deleteErr error
	clears    int
}

func (f *fakeUsersMgr) FetchAll(context.Context) error {
	f.fetches++
	if f.fetchErr != nil {
		f.errMsg = f.fetchErr.Error()
		f.status = state.StatusError
		return f.fetchErr
	}
	return nil
}

func (f *fakeUsersMgr) Create(_ context.Context, fields models.UserFields) error {
	if f.createErr != nil {
		f.errMsg = f.createErr.Error()
		return f.createErr
	}
	f.created = append(f.created, fields)
	f.users = append(f.users, fields.Merge(models.User{ID: int64(9000 + len(f.created))}))
	return nil
}

func (f *fakeUsersMgr) Update(_ context.Context, id int64, fields models.UserFields) error {
	if f.updateErr != nil {
		f.errMsg = f.updateErr.Error()
		return f.updateErr
	}
	f.updatedID, f.updated = id, &fields
	return nil
}

func (f *fakeUsersMgr) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		f.errMsg = f.deleteErr.Error()
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUsersMgr) ClearError() {
	f.clears++
	f.errMsg = ""
	f.status = state.StatusIdle
}

func (f *fakeUsersMgr) Snapshot() []models.User { return append([]models.User(nil), f.users...) }
func (f *fakeUsersMgr) Status() state.Status    { return f.status }
func (f *fakeUsersMgr) Err() string             { return f.errMsg }

// newTestApp wires an App around fakes, capturing output.
func newTestApp(auth *fakeAuthMgr, users *fakeUsersMgr) (*App, *bytes.Buffer) {
	var buf bytes.Buffer
	a := &App{
		config: &config.Config{PageSize: 5},
		auth:   auth,
		users:  users,
		log:    logging.NewTextLogger(false),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &buf,
		page:   1,
	}
	return a, &buf
}

// stubPrompts replaces getSimpleText with a queue of canned answers.
func stubPrompts(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func stubConfirmation(t *testing.T, answer bool) {
	t.Helper()
	orig := getConfirmation
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return answer, nil }
	t.Cleanup(func() { getConfirmation = orig })
}
