// Package migrations embeds the goose migrations for the local SQLite
// key/value medium.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
