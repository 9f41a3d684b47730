package migrations

import "embed"

// FS holds the schema files applied in lexical order by db.Migrate.
//
//go:embed *.sql
var FS embed.FS
