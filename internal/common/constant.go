// Package common contains shared constants and sentinel errors used across
// ui-gohan components.
package common

// AuthHeaderName is the HTTP header that carries the bearer auth token on
// sync requests.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the token value in AuthHeaderName.
const BearerPrefix = "Bearer "

// SyncPath is the route the sync server exposes and the client calls.
const SyncPath = "/api/v1/sync"
