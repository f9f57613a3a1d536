// Package migrations embeds the schema migrations for the local session store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
