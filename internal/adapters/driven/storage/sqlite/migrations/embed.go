// Package migrations embeds the schema migrations for the vector store.
package migrations

import "embed"

// FS holds the versioned *.sql migration files, applied in order by the
// store on open.
//
//go:embed *.sql
var FS embed.FS
