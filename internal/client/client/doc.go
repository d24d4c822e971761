// Package client talks to the remote tribunal API and bootstraps the local
// database.
//
// # Overview
//
//  1. Client is the transport-agnostic contract of the API: authentication,
//     case search, the hearings calendar and the forms catalog.
//  2. RESTClient implements it over HTTP/JSON with resty. The bearer token of
//     the current session is attached through a token source, every request
//     gets an X-Request-ID, and call counts and latencies are exported as
//     Prometheus metrics.
//  3. InitDatabase and RunMigrations open the SQLite file holding the
//     persisted session token and apply the embedded goose migrations.
//
// # Error Handling
//
// A transport failure wraps ErrUnavailable. A failed response is an *APIError
// carrying the server's error text; it unwraps to ErrUnauthorized (401),
// ErrForbidden (403), ErrNotFound (404) or ErrRequestFailed. No call is
// retried.
package client
