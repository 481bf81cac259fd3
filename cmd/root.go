package cmd

import (
	"log/slog"
	"os"

	"github.com/inovacc/showcase/internal/application"
	"github.com/inovacc/showcase/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	log      = slog.Default()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   application.AppExeName,
	Short: "Build a static portfolio page from your GitHub repositories",
	Long: `Showcase fetches your public GitHub repositories, merges them with a
hand-editable projects-config.yaml, writes a placeholder logo per project and
renders a static index.html.

Edits you make to 'classification' and 'image' in projects-config.yaml are
kept on every run, as are any extra keys you add to a project.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()

		logConfig, _ := cmd.Flags().GetString("log-config")
		logLevel, _ := cmd.Flags().GetString("log-level")

		settings := logger.LoadSettings(logConfig)
		if logLevel != "" {
			settings.Level = logLevel
		}

		l, closer, err := logger.New(settings, os.Stderr)
		if err != nil {
			return err
		}

		log = l
		closeLog = closer
		slog.SetDefault(l)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeLog()
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-config", logger.DefaultSettingsPath, "Logger settings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
}
