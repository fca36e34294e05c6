//go:build !js

package surface

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/inspector"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

// chromiumBinding is the CDP binding the bootstrap script posts through.
const chromiumBinding = "__paysurface_binding"

// Chromium shows the checkout in a chrome-less Chromium window driven over
// the DevTools protocol. Size and position map to true window bounds, and
// hide minimizes the window.
//
// CDP calls block, so every command runs on a private worker queue; the
// public methods only enqueue.
type Chromium struct {
	*base
	opts    ChromiumOptions
	links   bridge.DeepLinks
	name    string
	worker  *mainloop.Queue
	stopRun context.CancelFunc

	// Owned by the worker.
	tabCtx      context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	windowID    browser.WindowID
	ready       bool
	lastURL     string
}

// NewChromium starts the browser in the background and returns at once.
// Startup failures are reported as an init-failed event.
func NewChromium(ctx context.Context, opts Options) *Chromium {
	c := &Chromium{
		base:  newBase(BackendChromium, opts),
		opts:  opts.Chromium,
		links: opts.DeepLinks,
		name:  opts.bridgeName(),
	}
	c.worker = mainloop.NewQueue(c.logger)

	runCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	c.stopRun = stop
	go func() {
		_ = c.worker.Run(runCtx)
	}()

	c.worker.Post(c.start)
	return c
}

func (c *Chromium) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", false),
		chromedp.Flag("app", "about:blank"),
		chromedp.Flag("start-minimized", true),
		chromedp.Flag("window-position", fmt.Sprintf("%d,%d", c.opts.OriginX, c.opts.OriginY)),
	)
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}
	if c.opts.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(c.opts.UserDataDir))
	}
	for _, flag := range c.opts.Flags {
		name, value, hasValue := strings.Cut(strings.TrimLeft(flag, "-"), "=")
		if name == "" {
			continue
		}
		if hasValue {
			opts = append(opts, chromedp.Flag(name, value))
		} else {
			opts = append(opts, chromedp.Flag(name, true))
		}
	}
	return opts
}

func (c *Chromium) start() {
	if c.isDisposed() {
		return
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), c.allocatorOptions()...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			c.logger.Debug().Msgf(format, args...)
		}),
	)
	c.tabCtx, c.cancelTab, c.cancelAlloc = tabCtx, cancelTab, cancelAlloc

	chromedp.ListenTarget(tabCtx, c.onTargetEvent)

	err := chromedp.Run(tabCtx,
		page.Enable(),
		runtime.Enable(),
		runtime.AddBinding(chromiumBinding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			script := bridge.BootstrapScript(c.name, bridge.BindingTransport(chromiumBinding))
			_, err := page.AddScriptToEvaluateOnNewDocument(script).Do(ctx)
			return err
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			id, _, err := browser.GetWindowForTarget().Do(ctx)
			if err != nil {
				return err
			}
			c.windowID = id
			return nil
		}),
	)
	if err != nil {
		c.logger.Error().Err(err).Msg("chromium startup failed")
		c.teardown()
		c.emit(initFailed(fmt.Sprintf("chromium: %v", err)))
		return
	}
	c.ready = true

	go c.watchClosed(tabCtx)
	c.applyBounds()
}

// watchClosed reports the window going away without Dispose, for example
// the user closing it or the browser crashing.
func (c *Chromium) watchClosed(tabCtx context.Context) {
	<-tabCtx.Done()
	if !c.isDisposed() {
		c.logger.Warn().Msg("chromium window closed externally")
		c.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
	}
}

// onTargetEvent runs on chromedp's event goroutine; it must not issue CDP
// commands itself.
func (c *Chromium) onTargetEvent(ev any) {
	switch ev := ev.(type) {
	case *runtime.EventBindingCalled:
		if ev.Name != chromiumBinding {
			return
		}
		msg, err := bridge.Decode(ev.Payload)
		if err != nil {
			c.logger.Warn().Err(err).Msg("bridge message rejected")
			return
		}
		c.emit(msg)
	case *page.EventFrameNavigated:
		if ev.Frame == nil || ev.Frame.ParentID != "" {
			return
		}
		c.worker.Post(func() { c.lastURL = ev.Frame.URL })
		if msg, ok := c.links.Match(ev.Frame.URL); ok {
			c.emit(msg)
		}
	case *page.EventNavigatedWithinDocument:
		if msg, ok := c.links.Match(ev.URL); ok {
			c.emit(msg)
		}
	case *page.EventLoadEventFired:
		c.worker.Post(func() {
			c.emit(entity.SurfaceEvent{Kind: entity.SurfacePageLoaded, URL: c.lastURL})
		})
	case *inspector.EventDetached:
		if !c.isDisposed() {
			c.emit(entity.SurfaceEvent{Kind: entity.SurfaceClosed})
		}
	}
}

// Load navigates the window.
func (c *Chromium) Load(url string) {
	if c.isDisposed() {
		return
	}
	if msg, ok := c.links.Match(url); ok {
		c.emit(msg)
		return
	}
	c.worker.Post(func() {
		if !c.ready || c.isDisposed() {
			return
		}
		c.lastURL = url
		err := chromedp.Run(c.tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
			_, _, errorText, err := page.Navigate(url).Do(ctx)
			if err != nil {
				return err
			}
			if errorText != "" {
				return errors.New(errorText)
			}
			return nil
		}))
		if err != nil {
			c.emit(entity.SurfaceEvent{Kind: entity.SurfaceError, Message: fmt.Sprintf("load %s: %v", url, err)})
		}
	})
}

// ExecuteScript evaluates code in the page.
func (c *Chromium) ExecuteScript(code string) {
	c.worker.Post(func() {
		if !c.canRunScript(c.ready) {
			return
		}
		err := chromedp.Run(c.tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
			_, exception, err := runtime.Evaluate(code).Do(ctx)
			if err != nil {
				return err
			}
			if exception != nil {
				return fmt.Errorf("script exception: %s", exception.Text)
			}
			return nil
		}))
		if err != nil {
			c.logger.Warn().Err(err).Msg("script failed")
		}
	})
}

func (c *Chromium) SetSize(w, h int) {
	if _, ok := c.recordSize(w, h); ok {
		c.worker.Post(c.applyBounds)
	}
}

func (c *Chromium) SetPosition(x, y int) {
	if _, ok := c.recordPosition(x, y); ok {
		c.worker.Post(c.applyBounds)
	}
}

func (c *Chromium) Show() {
	if c.recordVisible(true) {
		c.worker.Post(c.applyBounds)
	}
}

func (c *Chromium) Hide() {
	if c.recordVisible(false) {
		c.worker.Post(c.applyBounds)
	}
}

// applyBounds pushes the requested placement and visibility to the
// window. Runs on the worker.
func (c *Chromium) applyBounds() {
	if !c.ready || c.isDisposed() {
		return
	}
	rect, visible := c.Bounds(), c.Visible()

	err := chromedp.Run(c.tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		if !visible {
			return browser.SetWindowBounds(c.windowID, &browser.Bounds{
				WindowState: browser.WindowStateMinimized,
			}).Do(ctx)
		}
		// Bounds cannot change while minimized, so restore first.
		if err := browser.SetWindowBounds(c.windowID, &browser.Bounds{
			WindowState: browser.WindowStateNormal,
		}).Do(ctx); err != nil {
			return err
		}
		if rect.Empty() {
			return nil
		}
		return browser.SetWindowBounds(c.windowID, &browser.Bounds{
			Left:   int64(c.opts.OriginX + rect.X),
			Top:    int64(c.opts.OriginY + rect.Y),
			Width:  int64(rect.W),
			Height: int64(rect.H),
		}).Do(ctx)
	}))
	if err != nil {
		c.logger.Warn().Err(err).Stringer("bounds", rectStringer(rect)).Bool("visible", visible).Msg("set window bounds failed")
	}
}

// Dispose closes the browser. Idempotent; the close itself is best-effort.
func (c *Chromium) Dispose() {
	if !c.markDisposed() {
		return
	}
	c.worker.Post(func() {
		c.teardown()
		c.stopRun()
	})
}

func (c *Chromium) teardown() {
	c.ready = false
	if c.tabCtx != nil {
		if err := chromedp.Cancel(c.tabCtx); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Warn().Err(err).Msg("chromium close failed")
		}
	}
	if c.cancelTab != nil {
		c.cancelTab()
	}
	if c.cancelAlloc != nil {
		c.cancelAlloc()
	}
}

type rectStringer entity.Rect

func (r rectStringer) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}
