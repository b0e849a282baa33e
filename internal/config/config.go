package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"seothon.dev/web/internal/seo"
)

const (
	defaultEnvFile = ".env"
	defaultPort    = "8080"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Session   SessionConfig
	Mail      MailConfig
	Analytics AnalyticsConfig
	Features  FeatureFlags
	Log       LogConfig
}

type ServerConfig struct {
	Port              string        `env:"SITE_PORT"`
	ReadHeaderTimeout time.Duration `env:"SITE_SERVER_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"SITE_SERVER_READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout applies to every connection, including streamed /mcp sessions. Zero
	// disables it; page and API routes are bounded by RouteWriteTimeout instead.
	WriteTimeout      time.Duration `env:"SITE_SERVER_WRITE_TIMEOUT" envDefault:"0s"`
	RouteWriteTimeout time.Duration `env:"SITE_SERVER_ROUTE_WRITE_TIMEOUT" envDefault:"40s"`
	IdleTimeout       time.Duration `env:"SITE_SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SITE_SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout    time.Duration `env:"SITE_SERVER_REQUEST_TIMEOUT" envDefault:"30s"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	// BaseURL is the canonical origin without a trailing slash.
	BaseURL       string   `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	Environment   string   `env:"SITE_ENV" envDefault:"local"`
	DefaultLocale string   `env:"SITE_DEFAULT_LOCALE" envDefault:"en"`
	Locales       []string `env:"SITE_LOCALES" envSeparator:"," envDefault:"en,cs"`
}

type SessionConfig struct {
	SigningKey string `env:"SITE_SESSION_SIGNING_KEY"`
	Secure     bool   `env:"SITE_SESSION_SECURE" envDefault:"false"`
}

// MailConfig enables contact notifications through Mailgun when Domain is set.
type MailConfig struct {
	Domain    string `env:"SITE_MAILGUN_DOMAIN"`
	APIKey    string `env:"SITE_MAILGUN_API_KEY"`
	From      string `env:"SITE_MAIL_FROM"`
	Recipient string `env:"SITE_CONTACT_RECIPIENT"`
	// Timeout bounds one send and must leave the request time to redirect.
	Timeout time.Duration `env:"SITE_MAIL_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether Mailgun delivery is configured.
func (m MailConfig) Enabled() bool { return m.Domain != "" }

type AnalyticsConfig struct {
	GA4MeasurementID string `env:"SITE_GA4_ID"`
}

type FeatureFlags struct {
	MCP     bool `env:"SITE_FEATURE_MCP" envDefault:"true"`
	Metrics bool `env:"SITE_FEATURE_METRICS" envDefault:"true"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// IsProduction reports whether the site runs in the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Site.Environment, "production") || strings.EqualFold(c.Site.Environment, "prod")
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	return slices.Clone(e.fields)
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path skips the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvMap injects values that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) { o.useSystemEnv = false }
}

// Load reads configuration with precedence .env < process env < explicit map, applies
// defaults and validates the result.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := environment(options)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: values}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = values["PORT"]
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")
	cfg.Site.Locales = normaliseLocales(cfg.Site.Locales)
	cfg.Site.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.Site.DefaultLocale))

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func environment(options loaderOptions) (map[string]string, error) {
	values := make(map[string]string)
	if options.envFile != "" {
		dot, err := godotenv.Read(options.envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", options.envFile, err)
		default:
			for k, v := range dot {
				values[k] = v
			}
		}
	}
	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if !ok || strings.TrimSpace(key) == "" {
				continue
			}
			values[key] = value
		}
	}
	for k, v := range options.envMap {
		values[k] = v
	}
	return values, nil
}

func normaliseLocales(in []string) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func validate(cfg Config) error {
	var invalid []string

	if cfg.Server.Port == "" {
		invalid = append(invalid, "Server.Port")
	}
	if !seo.IsValidURL(cfg.Site.BaseURL) {
		invalid = append(invalid, "Site.BaseURL")
	} else if u, _ := url.Parse(cfg.Site.BaseURL); u.Scheme != "http" && u.Scheme != "https" {
		invalid = append(invalid, "Site.BaseURL")
	}
	if len(cfg.Site.Locales) == 0 {
		invalid = append(invalid, "Site.Locales")
	} else if !slices.Contains(cfg.Site.Locales, cfg.Site.DefaultLocale) {
		invalid = append(invalid, "Site.DefaultLocale")
	}
	if cfg.Server.RequestTimeout <= 0 {
		invalid = append(invalid, "Server.RequestTimeout")
	}
	if cfg.Server.WriteTimeout != 0 && cfg.Server.WriteTimeout < cfg.Server.RequestTimeout {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.RouteWriteTimeout < cfg.Server.RequestTimeout {
		invalid = append(invalid, "Server.RouteWriteTimeout")
	}
	if cfg.Mail.Enabled() {
		if cfg.Mail.Timeout <= 0 || cfg.Mail.Timeout >= cfg.Server.RequestTimeout {
			invalid = append(invalid, "Mail.Timeout")
		}
		if cfg.Mail.APIKey == "" {
			invalid = append(invalid, "Mail.APIKey")
		}
		if cfg.Mail.From == "" {
			invalid = append(invalid, "Mail.From")
		}
		if cfg.Mail.Recipient == "" {
			invalid = append(invalid, "Mail.Recipient")
		}
	}
	if cfg.IsProduction() && len(cfg.Session.SigningKey) < 32 {
		invalid = append(invalid, "Session.SigningKey")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}
