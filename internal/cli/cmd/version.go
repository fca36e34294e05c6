package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, compiled surface backends and the repository URL.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
