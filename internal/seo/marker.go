package seo

// MarkerKind names a content-marker attribute family.
type MarkerKind string

const (
	MarkerSection MarkerKind = "section"
	MarkerContent MarkerKind = "content"
)

// ContentMarker returns the single data attribute that tags a region for AI readers,
// e.g. {"data-ai-section": "hero"}.
func ContentMarker(kind MarkerKind, id string) map[string]string {
	return map[string]string{"data-ai-" + string(kind): id}
}
