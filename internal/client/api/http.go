package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

const defaultTimeout = 30 * time.Second

// HTTPGateway is the HTTP/JSON implementation of Gateway.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	perPage int
	client  *http.Client
	ids     *idGen
	log     logging.Logger
}

// Option configures an HTTPGateway.
type Option func(*HTTPGateway)

// WithHTTPClient sets a custom HTTP client (for testing or proxies).
func WithHTTPClient(c *http.Client) Option {
	return func(g *HTTPGateway) {
		g.client = c
	}
}

// WithTimeout sets the per-request deadline applied by the underlying
// client. Callers can tighten it further through the context.
func WithTimeout(d time.Duration) Option {
	return func(g *HTTPGateway) {
		g.client.Timeout = d
	}
}

// WithLogger attaches a structured logger for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(g *HTTPGateway) {
		g.log = l.With("component", "gateway")
	}
}

// NewHTTPGateway constructs a gateway against the given base URL (including
// any fixed path prefix, e.g. "https://reqres.in/api"). apiKey is attached
// to every request as the identification header; perPage bounds the bulk
// listing.
func NewHTTPGateway(baseURL, apiKey string, perPage int, opts ...Option) *HTTPGateway {
	g := &HTTPGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		perPage: perPage,
		client:  &http.Client{Timeout: defaultTimeout},
		ids:     newIDGen(),
		log:     logging.NewTextLogger(false),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type listResponse struct {
	Data []models.User `json:"data"`
}

type updateRequest struct {
	ID int64 `json:"id"`
	models.UserFields
}

// Login authenticates with the service. The result carries whatever token
// the service returned, possibly empty.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var resp loginResponse
	if err := g.call(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: resp.Token}, nil
}

// ListUsers performs the single bulk fetch. An absent data array becomes an
// empty sequence.
func (g *HTTPGateway) ListUsers(ctx context.Context) (ListResult, error) {
	var resp listResponse
	path := fmt.Sprintf("/users?per_page=%d", g.perPage)
	if err := g.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return ListResult{}, err
	}
	if resp.Data == nil {
		resp.Data = []models.User{}
	}
	return ListResult{Users: resp.Data}, nil
}

// CreateUser submits the fields and synthesizes the record locally. The id
// the service assigns in its echo is ignored: it is not reflected in later
// listings, so a locally generated one is used instead.
func (g *HTTPGateway) CreateUser(ctx context.Context, fields models.UserFields) (CreateResult, error) {
	if err := g.call(ctx, http.MethodPost, "/users", fields, nil); err != nil {
		return CreateResult{}, err
	}
	user := fields.Merge(models.User{ID: g.ids.Next()})
	return CreateResult{User: user}, nil
}

// UpdateUser sends {id, ...fields} and discards the acknowledgment body;
// the caller's payload is authoritative.
func (g *HTTPGateway) UpdateUser(ctx context.Context, id int64, fields models.UserFields) (UpdateResult, error) {
	payload := updateRequest{ID: id, UserFields: fields}
	if err := g.call(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, nil); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{ID: id, Fields: fields}, nil
}

// DeleteUser sends no body and echoes the id back for reconciliation.
func (g *HTTPGateway) DeleteUser(ctx context.Context, id int64) (DeleteResult, error) {
	if err := g.call(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{ID: id}, nil
}

// call performs one request against the service and decodes a successful
// response into out (when out is non-nil and a body is present). Any
// transport failure or non-2xx status is returned as *RemoteError.
func (g *HTTPGateway) call(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil && method != http.MethodDelete {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.APIKeyHeaderName, g.apiKey)
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	g.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, serviceErrorMessage(data))
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode, Message: common.ErrRemoteCallFailed.Error(), err: err}
	}
	return nil
}

// serviceErrorMessage extracts the {"error": "..."} field from a failure
// body, returning "" when the body is not in that convention.
func serviceErrorMessage(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}
