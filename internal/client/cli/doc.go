// Package cli provides the interactive meal-planner command-line client.
//
// It wires configuration, the local SQLite store, the menu and sync services,
// and an interactive REPL. The planner works fully offline; when a remote
// endpoint is configured, a best-effort sync runs at startup and on demand.
//
// Key features:
//   - List entries for the whole week, a single day, or a meal type
//   - Add / Edit / Delete entries
//   - Sync with the remote endpoint
//   - Seed an empty planner with a demo week
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
