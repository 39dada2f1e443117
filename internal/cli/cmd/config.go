package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/paneshell/internal/infrastructure/config"
)

var (
	configShowFmt    string
	configSchemaFile string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show where configuration and data live, the effective settings and the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and database paths",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, environment overrides and
normalization have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema used by editors to validate config.toml.

With --output the schema is written to a file instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().StringVarP(&configShowFmt, "format", "f", "toml", "output format: toml, json, yaml")
	configSchemaCmd.Flags().StringVarP(&configSchemaFile, "output", "o", "", "write the schema to this file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	t := app.Theme
	_, err := fmt.Fprintf(out, "%s %s\n%s %s\n",
		t.Subtle.Render("config:  "), app.ConfigManager.ConfigFile(),
		t.Subtle.Render("database:"), app.Config.Database.Path,
	)
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	switch configShowFmt {
	case "toml":
		data, err := config.EncodeTOML(app.Config)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "json":
		return writeJSON(out, app.Config)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(app.Config); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (use: toml, json, yaml)", configShowFmt)
	}
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaFile != "" {
		if err := config.WriteSchemaFile(configSchemaFile); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote schema to %s\n", configSchemaFile)
		return err
	}

	data, err := config.MarshalSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
