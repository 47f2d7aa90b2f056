// Package migrations embeds the goose SQL migrations that define the
// database schema. New migrations are numbered sequentially and applied in
// order on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
