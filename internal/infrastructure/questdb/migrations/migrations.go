package migrations

import "embed"

// FS holds the QuestDB schema migrations.
//
//go:embed *.sql
var FS embed.FS
