package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vnode/internal/config"
	"github.com/vango-dev/vnode/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌┐┌┌─┐┌┬┐┌─┐
  ╚╗╔╝││││ │ ││├┤
   ╚╝ ┘└┘└─┘─┴┘└─┘
`

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configDir string
	logJSON   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vnode",
		Short: "Build and normalize virtual DOM node trees",
		Long: `vnode builds virtual DOM nodes from declarative element descriptions.

Descriptions are YAML or JSON documents. Children are normalized the
way a renderer consumes them:

  • strings and numbers become text nodes
  • booleans and null render nothing
  • components receive their default props
  • Fragment groups children without a wrapper element`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configDir, "config", "c", ".", "Directory containing "+config.ConfigFileName)
	rootCmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Log as JSON instead of text")

	rootCmd.AddCommand(
		normalizeCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads the config and builds the logger it describes.
func loadConfig(flags *globalFlags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flags.configDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg, flags.logJSON), nil
}

// newLogger writes to stderr so stdout stays clean for command output.
func newLogger(cfg *config.Config, forceJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.JSON || forceJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// printBanner prints the ASCII art banner.
func printBanner(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), banner)
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}
