// Package locales embeds the UI string dictionaries.
package locales

import "embed"

//go:embed *.json
var FS embed.FS
