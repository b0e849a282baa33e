package seo

import (
	"encoding/xml"
	"strconv"
	"time"
)

type ChangeFrequency string

const (
	ChangeAlways  ChangeFrequency = "always"
	ChangeHourly  ChangeFrequency = "hourly"
	ChangeDaily   ChangeFrequency = "daily"
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeNever   ChangeFrequency = "never"
)

// DefaultPriority applies when no priority option is given.
const DefaultPriority = 0.5

// Valid reports whether f is one of the sitemap protocol values.
func (f ChangeFrequency) Valid() bool {
	switch f {
	case ChangeAlways, ChangeHourly, ChangeDaily, ChangeWeekly, ChangeMonthly, ChangeYearly, ChangeNever:
		return true
	}
	return false
}

type SitemapEntry struct {
	URL             string          `json:"url"`
	LastModified    string          `json:"lastModified"`
	ChangeFrequency ChangeFrequency `json:"changeFrequency"`
	Priority        float64         `json:"priority"`
}

type sitemapConfig struct {
	lastModified string
	changeFreq   ChangeFrequency
	priority     *float64
	now          func() time.Time
}

type SitemapOption func(*sitemapConfig)

// WithLastModified sets an explicit ISO date.
func WithLastModified(date string) SitemapOption {
	return func(c *sitemapConfig) { c.lastModified = date }
}

func WithChangeFrequency(f ChangeFrequency) SitemapOption {
	return func(c *sitemapConfig) { c.changeFreq = f }
}

// WithPriority sets the priority as given. Zero is kept, values are not clamped.
func WithPriority(p float64) SitemapOption {
	return func(c *sitemapConfig) { c.priority = &p }
}

// WithClock replaces the clock used for the default last-modified date.
func WithClock(now func() time.Time) SitemapOption {
	return func(c *sitemapConfig) { c.now = now }
}

// NewSitemapEntry fills in today's UTC date, weekly and 0.5 for anything not set.
func NewSitemapEntry(url string, opts ...SitemapOption) SitemapEntry {
	cfg := sitemapConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := SitemapEntry{
		URL:             url,
		LastModified:    cfg.lastModified,
		ChangeFrequency: cfg.changeFreq,
		Priority:        DefaultPriority,
	}
	if e.LastModified == "" {
		e.LastModified = cfg.now().UTC().Format("2006-01-02")
	}
	if e.ChangeFrequency == "" {
		e.ChangeFrequency = ChangeWeekly
	}
	if cfg.priority != nil {
		e.Priority = *cfg.priority
	}
	return e
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNs   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Location   string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority"`
}

// SitemapXML encodes entries as a sitemaps.org urlset document.
func SitemapXML(entries []SitemapEntry) ([]byte, error) {
	set := urlSet{XMLNs: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Location:   e.URL,
			LastMod:    e.LastModified,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', -1, 64),
		})
	}
	b, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
