package schemas

import "embed"

// SchemasFS - JSON-схемы событий и запросов, встроенные в бинарник
//
//go:embed events requests
var SchemasFS embed.FS
