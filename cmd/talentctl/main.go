package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/talentscout/internal/config"
	"github.com/agenthands/talentscout/internal/insight"
	"github.com/agenthands/talentscout/internal/logging"
	"github.com/agenthands/talentscout/internal/profile"
	"github.com/agenthands/talentscout/internal/server"
	"github.com/agenthands/talentscout/internal/upstream"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "talentctl",
	Short: "Search the talent graph and inspect profiles",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			if cmd.Flags().Changed("config") {
				return err
			}
			cfg = config.Default()
		}
		cfg.ApplyEnv()
		if verbose {
			cfg.Logging.Level = "debug"
		}

		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search people by free-text query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := upstream.NewHTTPClient(cfg.Upstream, cfg.Search)
		people, err := client.SearchPeople(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), people)
	},
}

var genomeCmd = &cobra.Command{
	Use:   "genome [username]",
	Short: "Print the raw genome bio for a username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := upstream.NewHTTPClient(cfg.Upstream, cfg.Search)
		body, err := client.GenomeBio(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("genome fetch failed: %w", err)
		}
		var doc interface{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile [username]",
	Short: "Resolve a profile through the candidate chain",
	Long: `Resolves a profile the way the profile route does: each configured
candidate is tried in order and demo data is printed when all of them fail.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providers := profile.Providers(cfg, upstream.NewHTTP(0))
		resolver := profile.NewResolver(providers, cfg.Profile.AttemptTimeout(), cfg.Profile.TotalTimeout(), logger)

		res := resolver.Resolve(cmd.Context(), args[0])
		if !res.Live {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: showing demo data: %s\n", res.ErrorMessage())
		}
		return printJSON(cmd.OutOrStdout(), insight.View(res.Profile, res.Source, res.Live, res.ErrorMessage(), res.Attempts))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run(cmd.Context(), cfg, logger)
	},
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.toml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(searchCmd, genomeCmd, profileCmd, serveCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
