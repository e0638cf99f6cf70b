// Package migrations embeds the goose SQL migrations that create the
// users and userlogs tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
