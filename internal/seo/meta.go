package seo

// DefaultContentType is the og:type used when none is given.
const DefaultContentType = "website"

// TwitterCard is the card kind emitted for every page.
const TwitterCard = "summary_large_image"

type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Image       string `json:"image,omitempty"`
}

type Twitter struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// MetaTagSet is the head metadata for one page.
type MetaTagSet struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// MetaTags derives the OpenGraph and Twitter sets from one title/description pair.
// Empty image and contentType are treated as absent.
func MetaTags(title, description, url, image, contentType string) MetaTagSet {
	if contentType == "" {
		contentType = DefaultContentType
	}
	return MetaTagSet{
		Title:       title,
		Description: description,
		Canonical:   url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			Type:        contentType,
			Image:       image,
		},
		Twitter: Twitter{
			Card:        TwitterCard,
			Title:       title,
			Description: description,
			Image:       image,
		},
	}
}
