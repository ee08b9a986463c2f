package migrations

import "embed"

// Files holds the embedded forward-only SQL migrations, applied in
// numeric filename order at startup.
//
//go:embed *.sql
var Files embed.FS
