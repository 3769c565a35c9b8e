// Package api contains the remote gateway of the userdir client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Gateway interface) to talk to
//     the directory service, with one typed method and one result type per
//     intent: Login, ListUsers, CreateUser, UpdateUser, DeleteUser.
//  2. A concrete HTTP/JSON implementation (see HTTPGateway) that attaches
//     the fixed identification header and a request id to every call,
//     normalizes the heterogeneous response shapes into the per-intent
//     results, and maps failures to *RemoteError.
//
// # Error Handling
//
// Transport failures and non-2xx responses are returned as *RemoteError.
// When the service supplies an {"error": "..."} body, that message is
// carried verbatim; otherwise the generic fallback is used. Callers can
// match with errors.As.
//
// # Concurrency & Contexts
//
// HTTPGateway is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; each call is one attempt, awaited
// to completion or failure, with the client-level timeout as the only
// deadline applied by default.
package api
