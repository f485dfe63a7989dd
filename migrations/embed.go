// Package migrations embeds the SQL migrations of the logistics schema.
package migrations

import "embed"

// FS holds every *.sql migration in golang-migrate naming
// (<version>_<name>.up.sql / .down.sql).
//
//go:embed *.sql
var FS embed.FS
