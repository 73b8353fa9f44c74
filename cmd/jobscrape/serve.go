package main

import (
	"context"
	"errors"
	"net/http"

	jobecho "github.com/LuseBiswas/jobscrape/echo"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until deps.Ctx is canceled or
// the listener fails, then drains in-flight requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := jobecho.NewServer(deps.Scraper, deps.Logger,
		jobecho.WithAllowOrigins(c.AllowOrigins...),
		jobecho.WithRequestTimeout(c.RequestTimeout),
	)

	g, ctx := errgroup.WithContext(deps.Ctx)

	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr, "origins", c.AllowOrigins)
		if err := srv.Start(c.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		deps.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
