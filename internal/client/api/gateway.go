package api

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// Gateway is the client-side contract of the remote directory service.
// Every intent has its own method and result type, so callers never infer
// the response shape from the HTTP method.
type Gateway interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ListUsers(ctx context.Context) (ListResult, error)
	CreateUser(ctx context.Context, fields models.UserFields) (CreateResult, error)
	UpdateUser(ctx context.Context, id int64, fields models.UserFields) (UpdateResult, error)
	DeleteUser(ctx context.Context, id int64) (DeleteResult, error)
}

// LoginResult carries the credential token extracted from the login
// response. The token may be empty when the service answered 2xx without
// one; rejecting that is the auth manager's call.
type LoginResult struct {
	Token string
}

// ListResult carries the bulk listing. Users is never nil.
type ListResult struct {
	Users []models.User
}

// CreateResult carries the created record: the caller's fields merged with
// a locally synthesized id. The service-assigned id, if any, is ignored.
type CreateResult struct {
	User models.User
}

// UpdateResult echoes the caller's payload; the remote acknowledgment body
// is discarded and the caller's intended state is treated as authoritative.
type UpdateResult struct {
	ID     int64
	Fields models.UserFields
}

// DeleteResult echoes the id of the removed record.
type DeleteResult struct {
	ID int64
}
