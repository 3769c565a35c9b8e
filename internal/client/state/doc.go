// Package state holds the client-side state-synchronization layer: the
// state managers that dispatch intents to the remote gateway and reconcile
// the outcomes into locally held state.
//
// # Overview
//
//  1. Auth owns the credential token and the status of the login intent,
//     and keeps the token in a persistent TokenStore across restarts.
//  2. Users owns the ordered collection of user records and the status of
//     collection operations (fetch/create/update/delete).
//  3. Filter and Paginate are the derived view: pure projections of the
//     collection, recomputed on every read and never stored.
//
// # Reconciliation
//
// Each intent method marks its manager, calls the gateway, and hands the
// outcome to an unexported finish step. Only that step mutates owned state,
// and only on a successful result; a failure sets the error status and
// leaves the state untouched. The finish steps are serialized through the
// manager's mutex, so concurrently dispatched operations reconcile in
// arrival order. A full-overwrite fetch that completes after a
// later-dispatched operation has already been applied is dropped, which
// removes the lost-update anomaly of overwriting a fresh local create with
// stale remote data.
package state
