// Package db embeds the SQL schema migrations so the compiled binary can
// bootstrap a database without the source tree present.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
