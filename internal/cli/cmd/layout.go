package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli"
	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/ui/component"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <width> <height>",
	Short: "Print the checkout modal geometry for a viewport",
	Long: `Compute the modal, close control and scrim rectangles for a viewport size
using the layout section of the config file.

Examples:
  paysurface layout 1920 1080
  paysurface layout 390 844`,
	Args: cobra.ExactArgs(2),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	viewport, err := parseViewport(args[0], args[1])
	if err != nil {
		return err
	}

	geo := component.CalculatePaymentModal(viewport, cli.LayoutConfig(app.Config))
	fmt.Println(styles.NewLayoutRenderer(app.Theme).Render(geo))
	return nil
}

func parseViewport(w, h string) (entity.Size, error) {
	var (
		size entity.Size
		err  error
	)
	if size.W, err = strconv.Atoi(w); err != nil {
		return size, fmt.Errorf("invalid width %q: %w", w, err)
	}
	if size.H, err = strconv.Atoi(h); err != nil {
		return size, fmt.Errorf("invalid height %q: %w", h, err)
	}
	if !size.Valid() {
		return size, fmt.Errorf("viewport %s must be positive", size)
	}
	return size, nil
}
