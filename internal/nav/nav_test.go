package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMarksActive(t *testing.T) {
	t.Parallel()

	items := Build("/guides/what-is-ai-seo")
	active := map[string]bool{}
	for _, it := range items {
		active[it.Href] = it.Active
	}
	require.True(t, active["/guides"])
	require.False(t, active["/"])
	require.False(t, active["/ai-endpoint"])

	home := Build("")
	require.True(t, home[0].Active)
}

func TestBreadcrumbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Crumb{{Href: "/", LabelKey: "nav.home", Active: true}}, Breadcrumbs("/"))

	got := Breadcrumbs("/guides/what-is-ai-seo")
	require.Equal(t, []Crumb{
		{Href: "/", LabelKey: "nav.home"},
		{Href: "/guides", LabelKey: "nav.guides"},
		{Href: "/guides/what-is-ai-seo", Label: "What is ai seo", Active: true},
	}, got)

	unknown := Breadcrumbs("/press_kit/")
	require.Equal(t, Crumb{Href: "/press_kit", Label: "Press kit", Active: true}, unknown[1])
}

func TestStructured(t *testing.T) {
	t.Parallel()

	translate := func(key string) string { return map[string]string{"nav.home": "Home", "nav.contact": "Contact"}[key] }
	entries := Structured(Breadcrumbs("/contact"), "https://seothon.dev/", translate)
	require.Len(t, entries, 2)
	require.Equal(t, "Home", entries[0].Name)
	require.Equal(t, "https://seothon.dev", entries[0].URL)
	require.Equal(t, "Contact", entries[1].Name)
	require.Equal(t, "https://seothon.dev/contact", entries[1].URL)
}
