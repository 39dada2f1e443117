package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/domain/build"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionJSON {
			return writeJSON(cmd.OutOrStdout(), buildInfo)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", buildInfo, build.RepoURL())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output as JSON")
}
