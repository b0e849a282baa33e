package seo

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultKeywordLimit is the number of keywords returned for meta tags.
const DefaultKeywordLimit = 10

// DefaultDescriptionLength fits a search-result snippet.
const DefaultDescriptionLength = 160

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ExtractKeywords returns up to limit of the most frequent meaningful words in text.
// Words are lowercased ASCII word characters longer than three characters.
// Ties keep first-seen order. A non-positive limit yields no keywords.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < utf8.RuneSelf && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case unicode.IsSpace(r):
			return r
		}
		return -1
	}, strings.ToLower(text))

	type count struct {
		word string
		n    int
	}
	var counts []count
	index := make(map[string]int)
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if i, ok := index[w]; ok {
			counts[i].n++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, count{word: w, n: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].n > counts[j].n })

	if len(counts) > limit {
		counts = counts[:limit]
	}
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.word
	}
	return out
}

type truncateConfig struct {
	hardCut bool
}

type TruncateOption func(*truncateConfig)

// WithHardCut keeps the first maxLength characters when the cut window has no whitespace.
// Without it such input collapses to a bare ellipsis.
func WithHardCut() TruncateOption {
	return func(c *truncateConfig) { c.hardCut = true }
}

// TruncateDescription strips markup and shortens content to maxLength characters on a word
// boundary, appending "...". Content that already fits is returned without the markup.
func TruncateDescription(content string, maxLength int, opts ...TruncateOption) string {
	var cfg truncateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if maxLength < 0 {
		maxLength = 0
	}
	plain := tagPattern.ReplaceAllString(content, "")
	if utf8.RuneCountInString(plain) <= maxLength {
		return plain
	}
	runes := []rune(plain)[:maxLength]
	cut := -1
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	if cut < 0 {
		if cfg.hardCut {
			return string(runes) + "..."
		}
		return "..."
	}
	return string(runes[:cut]) + "..."
}

// IsValidURL reports whether candidate parses as an absolute URL. Web schemes must name a host.
func IsValidURL(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Scheme == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != "" && u.Hostname() != ""
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}
