package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/infrastructure/config"
)

var (
	configForce     bool
	configSchemaOut string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, validate and initialize the paysurface configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and PAYSURFACE_* environment overrides.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaOut, "output", "o", "", "write the schema to a file instead of stdout")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigInfo(app.Manager.GetConfigFile()))
	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()

	// Loading already wrote a default file when none existed.
	if !configForce {
		if _, err := os.Stat(path); err == nil {
			fmt.Println(renderer.RenderExists(path))
			return nil
		}
	}

	if err := app.Manager.Save(config.DefaultConfig()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return &ExitError{Code: 1}
	}
	fmt.Println(renderer.RenderCreated(path))
	return nil
}

func runConfigValidate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if err := config.Validate(app.Config); err != nil {
		fmt.Println(renderer.RenderError(err))
		return &ExitError{Code: 1}
	}
	fmt.Println(renderer.RenderValid(app.Manager.GetConfigFile()))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaOut != "" {
		if err := config.WriteSchemaFile(configSchemaOut); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		return nil
	}

	data, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
