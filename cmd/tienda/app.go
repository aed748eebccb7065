package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/tienda/handler"
	"github.com/dmitrymomot/tienda/modules/storefront"
	"github.com/dmitrymomot/tienda/pkg/catalog"
	"github.com/dmitrymomot/tienda/pkg/clientip"
	"github.com/dmitrymomot/tienda/pkg/config"
	"github.com/dmitrymomot/tienda/pkg/device"
	"github.com/dmitrymomot/tienda/pkg/fragment"
	"github.com/dmitrymomot/tienda/pkg/httpserver"
	"github.com/dmitrymomot/tienda/pkg/logger"
	"github.com/dmitrymomot/tienda/pkg/render"
	"github.com/dmitrymomot/tienda/pkg/requestid"
	"github.com/dmitrymomot/tienda/pkg/telemetry"
)

type appConfig struct {
	Name      string `env:"APP_NAME" envDefault:"tienda"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

type app struct {
	cfg        appConfig
	server     httpserver.Config
	storefront storefront.Config
	telemetry  telemetry.Config

	log        *slog.Logger
	renderer   *render.Renderer
	dispatcher *fragment.Dispatcher
}

func loadApp() (*app, error) {
	a := &app{}
	if err := config.Load(&a.cfg); err != nil {
		return nil, err
	}
	if err := config.Load(&a.server); err != nil {
		return nil, err
	}
	if err := config.Load(&a.storefront); err != nil {
		return nil, err
	}
	if err := config.Load(&a.telemetry); err != nil {
		return nil, err
	}
	if err := a.storefront.Validate(); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			device.LoggerExtractor(),
		),
	}
	if a.cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(a.cfg.LogLevel))
	}
	if a.cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(a.cfg.LogFormat)))
	}
	a.log = logger.New(opts...)

	var renderOpts []render.Option
	if dir := a.storefront.TemplatesDir; dir != "" {
		renderOpts = append(renderOpts, render.WithFS(os.DirFS(dir), "."))
	}
	r, err := render.New(renderOpts...)
	if err != nil {
		return nil, err
	}
	a.renderer = r

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	a.dispatcher = fragment.New(r, cat,
		fragment.WithMobileLimit(a.storefront.SearchMobileLimit),
		fragment.WithDesktopLimit(a.storefront.SearchDesktopLimit),
	)
	return a, nil
}

func (a *app) router() (chi.Router, error) {
	classifier := device.New(
		device.WithDefaultWidth(a.storefront.DefaultScreenWidth),
		device.WithMobileMaxWidth(a.storefront.MobileMaxWidth),
		device.WithTabletMaxWidth(a.storefront.TabletMaxWidth),
	)
	eh := handler.NewErrorHandler(a.log, handler.ErrorHandlerConfig{
		ErrorComponent: storefront.ErrorComponent(a.renderer),
	})

	return storefront.NewRouter(storefront.RouterOptions{
		Logger:       a.log,
		Classifier:   classifier,
		ClientIP:     clientip.New(a.storefront.TrustedProxyHeaders...),
		Compression:  a.storefront.CompressionEnabled,
		ErrorHandler: eh,
		Storefront:   storefront.NewService(a.storefront.Title, a.dispatcher, a.log, eh),
		ReadyChecks: []httpserver.Check{
			{Name: "templates", Fn: a.dispatcher.Check},
		},
	})
}
