package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/showcase/internal/core"
	"github.com/inovacc/showcase/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch repositories, update projects-config.yaml and render index.html",
	Long: `Fetch up to 100 public repositories, merge them into projects-config.yaml,
write one SVG logo per project and render index.html.

Authentication:
  Token is automatically detected from (in order):
  - --token flag
  - GITHUB_TOKEN environment variable
  - GH_TOKEN environment variable
  - gh CLI (if authenticated via 'gh auth login')
  Without a token public repositories are fetched anonymously. With neither
  a token nor --user, a device login is started when an OAuth app client ID
  is given (--oauth-client-id or SHOWCASE_OAUTH_CLIENT_ID).

Page identity:
  SITE_NAME, SITE_TAGLINE and SITE_BIO fill in what the GitHub profile
  does not provide. A .env file in the working directory is loaded first.

Templates:
  <templates-dir>/index.html.tmpl replaces the built-in page template.

Examples:
  # Build the site for a user
  showcase generate --user octocat

  # Build for the authenticated user into ./site
  showcase generate --root ./site`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, false)
	},
}

func runGenerate(cmd *cobra.Command, skipAssets bool) error {
	opts, err := generateOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	if skipAssets {
		opts.SkipAssets = true
	}

	tokenFlag, _ := cmd.Flags().GetString("token")
	apiURL, _ := cmd.Flags().GetString("api-url")
	if apiURL == "" {
		apiURL = os.Getenv("GITHUB_API_URL")
	}

	ctx := context.Background()

	token, source := core.ResolveGitHubToken(tokenFlag, hostFromAPIURL(apiURL))

	if token == "" && opts.Login == "" {
		clientID, _ := cmd.Flags().GetString("oauth-client-id")
		if clientID == "" {
			clientID = os.Getenv("SHOWCASE_OAUTH_CLIENT_ID")
		}

		if clientID == "" {
			return fmt.Errorf("no user given: pass --user, set GITHUB_USERNAME, provide a token, or set --oauth-client-id to sign in")
		}

		login := &core.DeviceLogin{
			Host:     hostFromAPIURL(apiURL),
			ClientID: clientID,
			APIURL:   apiURL,
			DisplayCode: func(code, verificationURL string) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Open %s and enter the code %s\n", verificationURL, headerStyle.Render(code))
			},
		}

		res, err := login.Run(ctx)
		if err != nil {
			return err
		}

		token, source = res.Token, core.TokenSourceDevice
		opts.Login = res.Login
	}

	log.Debug("token resolved", slog.String("source", string(source)))

	client, err := core.NewGitHubClient(ctx, token, apiURL)
	if err != nil {
		return err
	}

	opts.Logger = log

	res, err := core.Generate(ctx, core.NewGitHubSource(client), opts)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), res)

	return nil
}

func generateOptionsFromFlags(cmd *cobra.Command) (core.GenerateOptions, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = os.Getenv("GITHUB_USERNAME")
	}

	root, _ := cmd.Flags().GetString("root")
	configFile, _ := cmd.Flags().GetString("config")
	assetsDir, _ := cmd.Flags().GetString("assets-dir")
	templatesDir, _ := cmd.Flags().GetString("templates-dir")
	output, _ := cmd.Flags().GetString("output")
	skipAssets, _ := cmd.Flags().GetBool("skip-assets")
	skipRender, _ := cmd.Flags().GetBool("skip-render")

	if root != "" {
		info, err := os.Stat(root)
		if err != nil {
			return core.GenerateOptions{}, fmt.Errorf("site root %s: %w", root, err)
		}

		if !info.IsDir() {
			return core.GenerateOptions{}, fmt.Errorf("site root %s is not a directory", root)
		}
	}

	return core.GenerateOptions{
		Login:        user,
		Root:         root,
		ConfigFile:   configFile,
		AssetsDir:    assetsDir,
		TemplatesDir: templatesDir,
		OutputFile:   output,
		SkipAssets:   skipAssets,
		SkipRender:   skipRender,
	}, nil
}

func addSiteFlags(c *cobra.Command) {
	c.Flags().StringP("user", "u", "", "GitHub username (default $GITHUB_USERNAME, else the authenticated user)")
	c.Flags().String("token", "", "GitHub personal access token")
	c.Flags().String("oauth-client-id", "", "OAuth app client ID for device login (default $SHOWCASE_OAUTH_CLIENT_ID)")
	c.Flags().String("api-url", "", "GitHub Enterprise API URL (default $GITHUB_API_URL)")
	c.Flags().String("root", "", "Site root directory (default current directory)")
	c.Flags().StringP("config", "c", store.DefaultPath, "Projects config file")
}

func addRenderFlags(c *cobra.Command) {
	c.Flags().String("templates-dir", core.DefaultTemplatesDir, "Directory holding an index.html.tmpl override")
	c.Flags().StringP("output", "o", core.DefaultOutputFile, "Rendered page path")
	c.Flags().Bool("skip-render", false, "Do not render index.html")
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addSiteFlags(generateCmd)
	addRenderFlags(generateCmd)
	generateCmd.Flags().String("assets-dir", core.DefaultAssetsDir, "Directory for generated logos")
	generateCmd.Flags().Bool("skip-assets", false, "Do not write logos")
}
