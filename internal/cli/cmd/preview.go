package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli"
	"github.com/bnema/paysurface/internal/cli/model"
	"github.com/bnema/paysurface/internal/logging"
)

var (
	previewCellW int
	previewCellH int
)

var previewCmd = &cobra.Command{
	Use:   "preview [url]",
	Short: "Run the checkout overlay in the terminal",
	Long: `Drive the checkout overlay against an in-memory host and the headless
surface, drawing the scrim, panel and close control as terminal cells.

The page bridge is live: 's' completes and 'f' fails the payment from inside
the simulated page. Resize the terminal to watch the modal relayout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewCellW, "cell-width", 10, "logical pixels per terminal column")
	previewCmd.Flags().IntVar(&previewCellH, "cell-height", 20, "logical pixels per terminal row")
}

func runPreview(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	url := "https://checkout.example/session"
	if len(args) > 0 {
		url = args[0]
	}

	// Log lines would tear the alt screen.
	cfg := logging.DefaultConfig()
	cfg.Output = io.Discard

	m, err := model.NewPreviewModel(model.PreviewOptions{
		Theme:      app.Theme,
		URL:        url,
		Settings:   cli.CoordinatorSettings(app.Config),
		BridgeName: app.Config.Surface.BridgeName,
		DeepLinks:  cli.DeepLinks(app.Config),
		Logger:     logging.New(cfg),
		CellW:      previewCellW,
		CellH:      previewCellH,
	})
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
