// Package migrations embeds the SQL schema migrations shipped with the
// binary. The sqlite and postgres subdirectories hold dialect-specific
// copies of the same schema history.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
