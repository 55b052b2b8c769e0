// Package client wires the local durable store and the remote replication
// transport for the planner.
//
// InitDatabase opens the single process-wide SQLite handle, applies pending
// schema migrations, and returns the repository set. Migration failures are
// fatal to initialization: the caller must not operate on a partially
// migrated store.
//
// The Client interface abstracts the remote sync endpoint; HTTPClient is the
// JSON-over-HTTP implementation. Remote failures map onto the sentinel
// errors in errors.go so callers can degrade to local-only operation.
package client
