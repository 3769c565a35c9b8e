package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// testLogger keeps test output quiet while still exercising the logging path.
func testLogger() logging.Logger {
	return logging.NewTextLogger(false)
}

// fakeGateway is a scripted api.Gateway for state-manager tests.
type fakeGateway struct {
	loginRes   api.LoginResult
	loginErr   error
	loginCalls int

	listRes api.ListResult
	listErr error

	createErr error
	updateErr error
	deleteErr error

	nextID int64
}

func (f *fakeGateway) Login(_ context.Context, email, password string) (api.LoginResult, error) {
	f.loginCalls++
	return f.loginRes, f.loginErr
}

func (f *fakeGateway) ListUsers(context.Context) (api.ListResult, error) {
	return f.listRes, f.listErr
}

func (f *fakeGateway) CreateUser(_ context.Context, fields models.UserFields) (api.CreateResult, error) {
	if f.createErr != nil {
		return api.CreateResult{}, f.createErr
	}
	f.nextID++
	return api.CreateResult{User: fields.Merge(models.User{ID: 1000 + f.nextID})}, nil
}

func (f *fakeGateway) UpdateUser(_ context.Context, id int64, fields models.UserFields) (api.UpdateResult, error) {
	if f.updateErr != nil {
		return api.UpdateResult{}, f.updateErr
	}
	return api.UpdateResult{ID: id, Fields: fields}, nil
}

func (f *fakeGateway) DeleteUser(_ context.Context, id int64) (api.DeleteResult, error) {
	if f.deleteErr != nil {
		return api.DeleteResult{}, f.deleteErr
	}
	return api.DeleteResult{ID: id}, nil
}

// fakeStore is an in-memory TokenStore.
type fakeStore struct {
	token    string
	hasToken bool

	loadErr  error
	saveErr  error
	clearErr error

	saves  int
	clears int
}

func (s *fakeStore) Load() (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	if !s.hasToken {
		return "", common.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *fakeStore) Save(token string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	s.hasToken = true
	return nil
}

func (s *fakeStore) Clear() error {
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	s.hasToken = false
	return nil
}

var errBoom = errors.New("boom")

func seedUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, models.User{
			ID:        int64(i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Email:     fmt.Sprintf("user%d@example.org", i),
			Avatar:    fmt.Sprintf("https://example.org/%d.jpg", i),
		})
	}
	return users
}
