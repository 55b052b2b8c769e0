// Package migrations embeds the ordered schema migration steps for the local
// planner database. Steps are applied exactly once per version gap at
// startup; a failed step aborts initialization.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
