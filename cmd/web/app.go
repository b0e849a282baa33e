package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"seothon.dev/web/content"
	"seothon.dev/web/internal/cms"
	"seothon.dev/web/internal/config"
	"seothon.dev/web/internal/contact"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/i18n"
	"seothon.dev/web/internal/mcpserver"
	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/site"
	"seothon.dev/web/locales"
)

// app holds the long-lived dependencies shared by handlers.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	catalog   *site.Catalog
	bundle    *i18n.Bundle
	content   *cms.Store
	contact   *contact.Service
	sessions  *middleware.Sessions
	mcp       *mcpserver.Server
	analytics handlers.Analytics
	now       func() time.Time
}

type appOption func(*appOptions)

type appOptions struct {
	notifier contact.Notifier
	clock    func() time.Time
}

func withNotifier(n contact.Notifier) appOption {
	return func(o *appOptions) { o.notifier = n }
}

func withClock(clock func() time.Time) appOption {
	return func(o *appOptions) { o.clock = clock }
}

func newApp(cfg config.Config, logger *zap.Logger, opts ...appOption) (*app, error) {
	options := appOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	bundle, err := i18n.Load(locales.FS, cfg.Site.DefaultLocale, cfg.Site.Locales)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	catalog := site.New(cfg.Site.BaseURL)

	notifier := options.notifier
	if notifier == nil {
		notifier = contact.LogNotifier{}
		if cfg.Mail.Enabled() {
			notifier = contact.NewMailgunNotifier(cfg.Mail.Domain, cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.Recipient).WithTimeout(cfg.Mail.Timeout)
		}
	}
	contactService, err := contact.NewService(contact.ServiceDeps{
		Notifier: notifier,
		Choices:  catalog.ServiceChoices(),
		Clock:    options.clock,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalog,
		bundle:    bundle,
		content:   cms.NewStore(content.FS, cfg.Site.DefaultLocale),
		contact:   contactService,
		sessions:  middleware.NewSessions([]byte(cfg.Session.SigningKey), cfg.Session.Secure),
		mcp:       mcpserver.New(catalog, mcpserver.WithClock(options.clock)),
		analytics: handlers.AnalyticsFromConfig(cfg.Analytics),
		now:       options.clock,
	}, nil
}
