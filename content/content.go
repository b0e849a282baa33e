// Package content embeds the markdown pages and guides served by the site.
package content

import "embed"

//go:embed pages guides
var FS embed.FS
