//go:build webkit_cgo

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paysurface/internal/cli"
	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/infrastructure/hostui/gtkhost"
	"github.com/bnema/paysurface/internal/infrastructure/metrics"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/coordinator"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

const gtkAppID = "io.github.bnema.paysurface"

// runCheckout hosts the overlay in a GTK window. The coordinator runs on the
// GLib main context and WebKit views are stacked in the window's overlay.
func runCheckout(ctx context.Context, app *cli.App, url string, viewport entity.Size) (styles.Outcome, error) {
	cfg := app.Config
	logger := app.Logger
	loop := mainloop.GLib{}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()
	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddr, collector, logger); err != nil {
				logger.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	var (
		sink     *outcomeSink
		setupErr error
	)
	gtkApp := gtk.NewApplication(gtkAppID, gio.ApplicationNonUnique)
	gtkApp.ConnectActivate(func() {
		win := gtk.NewApplicationWindow(gtkApp)
		win.SetTitle("paysurface")
		win.SetDefaultSize(viewport.W, viewport.H)

		overlay := gtk.NewOverlay()
		overlay.SetChild(gtk.NewBox(gtk.OrientationVertical, 0))
		win.SetChild(overlay)

		host := gtkhost.NewHost(overlay, loop.Post, viewport)
		opts := cli.SurfaceOptions(cfg, loop.Post, logger, host.Viewport())
		factory := surface.NewFactory(cli.Platform(cfg), opts).
			WithBackend(surface.BackendWebKit, surface.NewWebKitBackend(overlay))
		sink = newOutcomeSink(factory.Selected(), logger)

		callbacks := sink.callbacks()
		onClosed := callbacks.OnClosed
		callbacks.OnClosed = func() {
			onClosed()
			gtkApp.Quit()
		}

		coord, err := coordinator.New(coordinator.Options{
			Loop:      loop,
			Factory:   factory,
			Host:      host,
			Viewport:  host.Viewport(),
			Callbacks: callbacks,
			Settings:  cli.CoordinatorSettings(cfg),
			Metrics:   collector,
			Logger:    logger,
		})
		if err != nil {
			setupErr = fmt.Errorf("create coordinator: %w", err)
			gtkApp.Quit()
			return
		}

		app.Manager.OnConfigChange(func(next *config.Config) {
			coord.SetConfig(cli.CoordinatorSettings(next))
		})
		if err := app.Manager.Watch(); err != nil {
			logger.Warn().Err(err).Msg("config hot reload disabled")
		}

		// Closing the window dismisses the checkout; the close animation
		// finishes before OnClosed quits the application.
		win.ConnectCloseRequest(func() bool {
			if coord.State() == entity.ModalClosed {
				return false
			}
			coord.Close()
			return true
		})
		go func() {
			<-ctx.Done()
			coord.Shutdown()
		}()

		fmt.Println(styles.NewResultRenderer(app.Theme).RenderOpening(url, factory.Selected()))
		win.Present()
		coord.Open(url)
	})

	if status := gtkApp.Run([]string{os.Args[0]}); status != 0 {
		return styles.Outcome{}, fmt.Errorf("gtk application exited with status %d", status)
	}
	if setupErr != nil {
		return styles.Outcome{}, setupErr
	}
	if sink == nil {
		return styles.Outcome{}, fmt.Errorf("gtk application never activated")
	}
	return sink.Outcome(), nil
}
