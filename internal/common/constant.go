// Package common contains constants and sentinel errors shared by the
// tribunal client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token in AuthorizationHeaderName.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName correlates portal log lines with API calls.
	RequestIDHeaderName = "X-Request-ID"

	// TokenMetadataKey is the only key the client persists: the bearer token.
	TokenMetadataKey = "token"
)
