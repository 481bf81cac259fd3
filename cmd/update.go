package cmd

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update projects-config.yaml and index.html without logos",
	Long: `Fetch repositories, rewrite projects-config.yaml and render index.html.
No logos are written; logo paths already in the config are kept.

Examples:
  showcase update --user octocat

  # Config file only
  showcase update --user octocat --skip-render`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, true)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	addSiteFlags(updateCmd)
	addRenderFlags(updateCmd)
}
