//go:build !webkit_cgo

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/cli"
	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/infrastructure/hostui/memory"
	"github.com/bnema/paysurface/internal/infrastructure/metrics"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/coordinator"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

// runCheckout drives one checkout on a queue loop. Without GTK the overlay
// elements are in-memory records and the surface places its own window.
func runCheckout(ctx context.Context, app *cli.App, url string, viewport entity.Size) (styles.Outcome, error) {
	cfg := app.Config
	logger := app.Logger

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := mainloop.NewQueue(logger)
	host := memory.NewHost(loop.Post)
	vp := port.ViewportFunc(func() entity.Size { return viewport })
	factory := surface.NewFactory(cli.Platform(cfg), cli.SurfaceOptions(cfg, loop.Post, logger, vp))
	collector := metrics.NewCollector()
	sink := newOutcomeSink(factory.Selected(), logger)

	coord, err := coordinator.New(coordinator.Options{
		Loop:      loop,
		Factory:   factory,
		Host:      host,
		Viewport:  vp,
		Callbacks: sink.callbacks(),
		Settings:  cli.CoordinatorSettings(cfg),
		Metrics:   collector,
		Logger:    logger,
	})
	if err != nil {
		return styles.Outcome{}, fmt.Errorf("create coordinator: %w", err)
	}

	app.Manager.OnConfigChange(func(next *config.Config) {
		coord.SetConfig(cli.CoordinatorSettings(next))
	})
	if err := app.Manager.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config hot reload disabled")
	}

	fmt.Println(styles.NewResultRenderer(app.Theme).RenderOpening(url, factory.Selected()))

	// The loop outlives ctx so a shutdown posted on interrupt still runs.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := loop.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if cfg.Metrics.Enabled {
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.Metrics.ListenAddr, collector, logger)
		})
	}
	g.Go(func() error {
		defer stopLoop()
		coord.Open(url)

		select {
		case <-sink.done:
		case <-gctx.Done():
			coord.Shutdown()
			drained := make(chan struct{})
			loop.Post(func() { close(drained) })
			<-drained
		}
		return errCheckoutDone
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errCheckoutDone) {
		return sink.Outcome(), err
	}
	return sink.Outcome(), nil
}
