package cmd

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/ui/coordinator"
)

// Exit codes for open.
const (
	exitPaymentFailed = 2
	exitDismissed     = 3
)

// errCheckoutDone stops the open command's goroutines once the session closed.
var errCheckoutDone = errors.New("checkout done")

var (
	openWidth       int
	openHeight      int
	openBackend     string
	openMetricsAddr string
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Show a checkout URL in the modal overlay",
	Long: `Open a payment provider's checkout page in the embedded surface and wait
for the outcome.

Exit status is 0 when the page completes the payment, 2 when it reports an
error and 3 when the checkout is dismissed.

Examples:
  paysurface open https://checkout.stripe.com/c/pay/cs_test_...
  paysurface open --backend chromium --width 1920 --height 1080 https://pay.example/x`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().IntVar(&openWidth, "width", 1280, "host viewport width in logical pixels")
	openCmd.Flags().IntVar(&openHeight, "height", 800, "host viewport height in logical pixels")
	openCmd.Flags().StringVar(&openBackend, "backend", "", "surface backend (auto, chromium, webkit, headless, none)")
	openCmd.Flags().StringVar(&openMetricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
}

func runOpen(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	url := strings.TrimSpace(args[0])
	if url == "" {
		return errors.New("checkout url is empty")
	}
	viewport := entity.Size{W: openWidth, H: openHeight}
	if !viewport.Valid() {
		return fmt.Errorf("viewport %s must be positive", viewport)
	}
	applyOpenFlags(app.Config)
	if err := config.Validate(app.Config); err != nil {
		return err
	}

	outcome, err := runCheckout(cmd.Context(), app, url, viewport)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewResultRenderer(app.Theme).Render(outcome))
	if code := exitCode(outcome); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func applyOpenFlags(cfg *config.Config) {
	if openBackend != "" {
		cfg.Surface.Backend = config.SurfaceBackend(openBackend)
	}
	if openMetricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddr = openMetricsAddr
	}
}

func exitCode(o styles.Outcome) int {
	switch {
	case o.Completed:
		return 0
	case o.Failed:
		return exitPaymentFailed
	default:
		return exitDismissed
	}
}

// outcomeSink records the first checkout outcome and signals when the
// session closed.
type outcomeSink struct {
	mu      sync.Mutex
	outcome styles.Outcome
	backend string
	done    chan struct{}
	once    sync.Once
	logger  zerolog.Logger
}

func newOutcomeSink(backend string, logger zerolog.Logger) *outcomeSink {
	return &outcomeSink{backend: backend, done: make(chan struct{}), logger: logger}
}

func (s *outcomeSink) callbacks() coordinator.Callbacks {
	return coordinator.Callbacks{
		OnPaymentComplete: func(payload string) {
			s.set(styles.Outcome{Completed: true, Payload: payload})
		},
		OnPaymentError: func(message string) {
			s.set(styles.Outcome{Failed: true, Message: message})
		},
		OnClosed: func() {
			s.once.Do(func() { close(s.done) })
		},
		OnPageLoaded: func(url string) {
			s.logger.Debug().Str("url", url).Msg("checkout page loaded")
		},
	}
}

func (s *outcomeSink) set(o styles.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome.Completed || s.outcome.Failed {
		return
	}
	o.Backend = s.backend
	s.outcome = o
}

// Outcome returns the recorded outcome.
func (s *outcomeSink) Outcome() styles.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}
