package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tienda/pkg/httpserver"
	"github.com/dmitrymomot/tienda/pkg/logger"
	"github.com/dmitrymomot/tienda/pkg/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	_, shutdownTracing, err := telemetry.NewTracerProvider(ctx, a.telemetry, a.cfg.Name)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			a.log.Error("tracer shutdown failed", logger.Error(err))
		}
	}()

	router, err := a.router()
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(a.server, httpserver.WithLogger(a.log))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx, router) })
	if dir := a.storefront.TemplatesDir; dir != "" {
		a.log.Info("watching templates", "dir", dir)
		g.Go(func() error { return a.renderer.Watch(ctx, dir, a.log) })
	}
	return g.Wait()
}
