package cmd

import (
	"fmt"

	"github.com/inovacc/showcase/internal/encoding"
	"github.com/inovacc/showcase/internal/store"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the projects in projects-config.yaml",
	Long: `List the projects in projects-config.yaml after normalization.

A missing or malformed file lists no projects.

Examples:
  showcase config show
  showcase config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		projects := store.NewFileStore(path).Load()

		if jsonOutput {
			data, err := encoding.ToJSONIndent(projects)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		}

		if len(projects) == 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No projects in %s.\n", path)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Create it with: showcase update --user <name>")

			return nil
		}

		printProjectsTable(cmd.OutOrStdout(), projects)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringP("config", "c", store.DefaultPath, "Projects config file")
	configShowCmd.Flags().Bool("json", false, "Output in JSON format")
}
