package templates

import "embed"

//go:embed templates
var FS embed.FS
