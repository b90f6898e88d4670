// Package migrations holds the pokedex schema as golang-migrate files.
package migrations

import "embed"

// FS contains every NNNNNN_name.{up,down}.sql file in this directory.
//
//go:embed *.sql
var FS embed.FS
