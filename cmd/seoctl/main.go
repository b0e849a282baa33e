// Command seoctl runs the SEO helpers from the shell and serves them to MCP clients over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"seothon.dev/web/internal/seo"
)

const (
	defaultBaseURL = "https://seothon.dev"
	defaultLang    = "en"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	baseURL := &cli.StringFlag{
		Name:    "base-url",
		Usage:   "canonical site origin",
		Value:   defaultBaseURL,
		EnvVars: []string{"SITE_BASE_URL"},
	}
	file := &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "read input from `PATH` instead of arguments or stdin",
	}

	return &cli.App{
		Name:  "seoctl",
		Usage: "SEO and structured data helpers",
		Commands: []*cli.Command{
			{
				Name:      "keywords",
				Usage:     "extract the most frequent keywords from text",
				ArgsUsage: "[text]",
				Flags: []cli.Flag{
					file,
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: seo.DefaultKeywordLimit, Usage: "maximum keywords"},
					&cli.BoolFlag{Name: "html", Usage: "treat input as HTML and use its visible text"},
				},
				Action: keywordsAction,
			},
			{
				Name:      "describe",
				Usage:     "truncate text into a meta description",
				ArgsUsage: "[text]",
				Flags: []cli.Flag{
					file,
					&cli.IntFlag{Name: "max-length", Value: seo.DefaultDescriptionLength, Usage: "maximum characters before the \"...\" suffix"},
					&cli.BoolFlag{Name: "hard-cut", Usage: "cut mid-word when no word boundary fits"},
				},
				Action: describeAction,
			},
			{
				Name:      "validate-url",
				Usage:     "check that URLs are absolute",
				ArgsUsage: "URL...",
				Action:    validateURLAction,
			},
			{
				Name:      "validate",
				Usage:     "check a JSON-LD document for @context and @type",
				ArgsUsage: "[PATH|-]",
				Action:    validateAction,
			},
			{
				Name:  "sitemap",
				Usage: "print the site sitemap",
				Flags: []cli.Flag{
					baseURL,
					&cli.StringFlag{Name: "format", Value: "json", Usage: "json or xml"},
				},
				Action: sitemapAction,
			},
			{
				Name:  "jsonld",
				Usage: "print a site-wide JSON-LD block",
				Flags: []cli.Flag{
					baseURL,
					&cli.StringFlag{Name: "kind", Value: "organization", Usage: "organization, website, faq or services"},
					&cli.StringFlag{Name: "lang", Value: "en", Usage: "language for the website block"},
				},
				Action: jsonldAction,
			},
			{
				Name:   "mcp",
				Usage:  "serve the SEO tools over MCP on stdio",
				Flags:  []cli.Flag{baseURL},
				Action: mcpAction,
			},
		},
	}
}
