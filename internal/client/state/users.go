package state

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/api"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Users owns the collection of user records and the status of collection
// operations. Records keep arrival order: a fetch replaces the collection
// wholesale, a create appends at the end. At most one record per id.
//
// Operations may be dispatched while others are in flight; reconciliations
// run in arrival order under the manager's mutex. Every dispatch takes a
// sequence number so a full-overwrite fetch that lost the race against a
// later-dispatched operation is dropped instead of clobbering it.
type Users struct {
	mu     sync.Mutex
	gw     api.Gateway
	log    logging.Logger
	users  []models.User
	status Status
	errMsg string

	nextSeq     uint64 // sequence handed to the next dispatched operation
	lastApplied uint64 // sequence of the most recent reconciled operation
}

// NewUsers constructs the collection manager with an empty collection.
func NewUsers(gw api.Gateway, log logging.Logger) *Users {
	return &Users{gw: gw, log: log.With("component", "users")}
}

// FetchAll performs the bulk listing and, on success, replaces the entire
// collection with the returned sequence. On failure the collection is left
// unchanged and the error status is set.
func (u *Users) FetchAll(ctx context.Context) error {
	seq := u.beginFetch()
	res, err := u.gw.ListUsers(ctx)
	return u.finishFetch(ctx, seq, res, err)
}

func (u *Users) beginFetch() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = StatusPending
	u.errMsg = ""
	u.nextSeq++
	return u.nextSeq
}

func (u *Users) finishFetch(ctx context.Context, seq uint64, res api.ListResult, err error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		u.status = StatusError
		u.errMsg = err.Error()
		return err
	}

	u.status = StatusIdle
	u.errMsg = ""

	if u.lastApplied > seq {
		// A later-dispatched operation already reconciled; overwriting now
		// would silently discard its outcome.
		u.log.Debug(ctx, "stale fetch dropped", "seq", seq, "last_applied", u.lastApplied)
		return nil
	}

	u.users = append(u.users[:0:0], res.Users...)
	u.lastApplied = seq
	return nil
}

// Create submits the fields (no id) and, on success, appends the returned
// record, synthesized id included, to the end of the collection. Create
// does not mark the manager pending; a failure never removes previously
// fetched records.
func (u *Users) Create(ctx context.Context, fields models.UserFields) error {
	seq := u.beginMutation()
	res, err := u.gw.CreateUser(ctx, fields)
	return u.finishCreate(seq, res, err)
}

func (u *Users) beginMutation() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.nextSeq++
	return u.nextSeq
}

func (u *Users) finishCreate(seq uint64, res api.CreateResult, err error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		u.status = StatusError
		u.errMsg = err.Error()
		return err
	}

	u.users = append(u.users, res.User)
	u.applied(seq)
	return nil
}

// Update sends the supplied fields for the given id and, on success,
// shallow-merges them into the matching record. An id not present in the
// collection makes the operation a no-op, still reported as success.
func (u *Users) Update(ctx context.Context, id int64, fields models.UserFields) error {
	seq := u.beginMutation()
	res, err := u.gw.UpdateUser(ctx, id, fields)
	return u.finishUpdate(seq, res, err)
}

func (u *Users) finishUpdate(seq uint64, res api.UpdateResult, err error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		u.status = StatusError
		u.errMsg = err.Error()
		return err
	}

	for i := range u.users {
		if u.users[i].ID == res.ID {
			u.users[i] = res.Fields.Merge(u.users[i])
			break
		}
	}
	u.applied(seq)
	return nil
}

// Delete removes the record whose id equals the echoed value. Ids are
// unique, so at most one record goes away. On failure the collection is
// unchanged.
func (u *Users) Delete(ctx context.Context, id int64) error {
	seq := u.beginMutation()
	res, err := u.gw.DeleteUser(ctx, id)
	return u.finishDelete(seq, res, err)
}

func (u *Users) finishDelete(seq uint64, res api.DeleteResult, err error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		u.status = StatusError
		u.errMsg = err.Error()
		return err
	}

	kept := u.users[:0]
	for _, user := range u.users {
		if user.ID != res.ID {
			kept = append(kept, user)
		}
	}
	u.users = kept
	u.applied(seq)
	return nil
}

// applied records a successful reconciliation. Targeted mutations always
// apply, so only the high-water mark moves.
func (u *Users) applied(seq uint64) {
	u.status = StatusIdle
	u.errMsg = ""
	if seq > u.lastApplied {
		u.lastApplied = seq
	}
}

// ClearError resets an error status back to idle.
func (u *Users) ClearError() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.status == StatusError {
		u.status = StatusIdle
		u.errMsg = ""
	}
}

// Snapshot returns a copy of the collection in arrival order.
func (u *Users) Snapshot() []models.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.User(nil), u.users...)
}

// Status returns the current collection-operation status.
func (u *Users) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// Err returns the stored error message, "" unless Status() is StatusError.
func (u *Users) Err() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.errMsg
}
