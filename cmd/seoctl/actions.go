package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"seothon.dev/web/content"
	"seothon.dev/web/internal/cms"
	"seothon.dev/web/internal/mcpserver"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

// input returns the joined arguments, the --file contents or stdin, in that order.
func input(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	var r io.Reader = c.App.Reader
	if path := c.String("file"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func keywordsAction(c *cli.Context) error {
	text, err := input(c)
	if err != nil {
		return err
	}
	if c.Bool("html") {
		if text, err = seo.PlainText(strings.NewReader(text)); err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
	}
	for _, kw := range seo.ExtractKeywords(text, c.Int("limit")) {
		fmt.Fprintln(c.App.Writer, kw)
	}
	return nil
}

func describeAction(c *cli.Context) error {
	text, err := input(c)
	if err != nil {
		return err
	}
	var opts []seo.TruncateOption
	if c.Bool("hard-cut") {
		opts = append(opts, seo.WithHardCut())
	}
	fmt.Fprintln(c.App.Writer, seo.TruncateDescription(strings.TrimSpace(text), c.Int("max-length"), opts...))
	return nil
}

func validateURLAction(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return cli.Exit("validate-url: at least one URL is required", 2)
	}
	invalid := 0
	for _, u := range c.Args().Slice() {
		status := "valid"
		if !seo.IsValidURL(u) {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", status, u)
	}
	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("validate-url: %d invalid", invalid), 1)
	}
	return nil
}

func validateAction(c *cli.Context) error {
	var (
		text string
		err  error
	)
	switch path := c.Args().First(); path {
	case "":
		text, err = input(c)
	case "-":
		var b []byte
		b, err = io.ReadAll(c.App.Reader)
		text = string(b)
	default:
		var b []byte
		b, err = os.ReadFile(path)
		text = string(b)
	}
	if err != nil {
		return err
	}

	doc, err := seo.Parse(text)
	if err != nil {
		return cli.Exit(fmt.Sprintf("validate: %v", err), 1)
	}
	if !seo.Validate(doc) {
		return cli.Exit("validate: missing @context or @type", 1)
	}
	typ := ""
	if m, ok := doc.(map[string]any); ok {
		typ, _ = m["@type"].(string)
	}
	fmt.Fprintf(c.App.Writer, "valid\t%s\n", typ)
	return nil
}

func sitemapAction(c *cli.Context) error {
	catalog, err := catalogFor(c)
	if err != nil {
		return err
	}
	entries, err := catalog.Sitemap(c.Context, cms.NewStore(content.FS, defaultLang), defaultLang, time.Now())
	if err != nil {
		return fmt.Errorf("sitemap: %w", err)
	}
	switch strings.ToLower(c.String("format")) {
	case "xml":
		b, err := seo.SitemapXML(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, string(b))
		return err
	case "json":
		return writeJSON(c.App.Writer, entries)
	default:
		return cli.Exit(fmt.Sprintf("sitemap: unknown format %q", c.String("format")), 2)
	}
}

func jsonldAction(c *cli.Context) error {
	catalog, err := catalogFor(c)
	if err != nil {
		return err
	}
	var blocks []map[string]any
	switch strings.ToLower(c.String("kind")) {
	case "organization":
		blocks = append(blocks, seo.Organization(catalog.OrganizationInfo()))
	case "website":
		blocks = append(blocks, seo.WebSite(catalog.SiteInfo(c.String("lang"))))
	case "faq":
		blocks = append(blocks, seo.FAQPage(catalog.FAQEntries()))
	case "services":
		for _, s := range catalog.Services() {
			blocks = append(blocks, seo.Service(catalog.ServiceInfo(s)))
		}
	default:
		return cli.Exit(fmt.Sprintf("jsonld: unknown kind %q", c.String("kind")), 2)
	}
	for _, b := range blocks {
		fmt.Fprintln(c.App.Writer, seo.Serialize(b))
	}
	return nil
}

func mcpAction(c *cli.Context) error {
	catalog, err := catalogFor(c)
	if err != nil {
		return err
	}
	return mcpserver.New(catalog).ServeStdio()
}

func catalogFor(c *cli.Context) (*site.Catalog, error) {
	base := c.String("base-url")
	if !seo.IsValidURL(base) {
		return nil, cli.Exit(fmt.Sprintf("invalid --base-url %q", base), 2)
	}
	return site.New(base), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
