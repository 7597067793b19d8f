package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/dial/internal/store"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dial rendering over HTTP",
		Long: `Serve exposes the dial over HTTP:

  GET  /healthz   liveness
  GET  /schema    control panel as JSON
  POST /render    chart props JSON in, PNG out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.String("assets", "", "directory with panel images (default: synthetic panels)")
	f.String("cache", "", "SQLite file caching rendered images (default: no cache)")
	f.StringSlice("cors-origins", []string{"*"}, "allowed CORS origins")
	_ = a.v.BindPFlag("serve.addr", f.Lookup("addr"))
	_ = a.v.BindPFlag("render.assets", f.Lookup("assets"))
	_ = a.v.BindPFlag("serve.cache", f.Lookup("cache"))
	_ = a.v.BindPFlag("serve.cors_origins", f.Lookup("cors-origins"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	assets := a.v.GetString("render.assets")
	srv := &server{
		log:         a.log,
		assets:      newAssetLoader(assets),
		assetSource: assetSource(assets),
		origins:     a.v.GetStringSlice("serve.cors_origins"),
	}
	if path := a.v.GetString("serve.cache"); path != "" {
		cache, err := store.Open(path)
		if err != nil {
			return err
		}
		defer cache.Close()
		srv.cache = cache
	}

	httpSrv := &http.Server{
		Addr:         a.v.GetString("serve.addr"),
		Handler:      srv.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", httpSrv.Addr).Msg("listening")
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
