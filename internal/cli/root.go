// SPDX-License-Identifier: MIT

// Package cli implements the dsa command-line interface: a thin demo layer
// that feeds raw numbers, strings, grids and edge lists to the library
// packages and prints the results.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) switches to
// debug level; otherwise the level comes from the config file (default
// info). The logger travels in the command context.
//
// # Configuration
//
// --config points at an optional TOML file (see Config). Flags given on
// the command line override config values.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is printed by --version; release builds set it with
// -ldflags "-X github.com/katalvlaran/dsa/internal/cli.version=...".
var version = "dev"

// NewRootCommand builds the dsa command tree. Results go to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "dsa",
		Short:         "dsa runs classic algorithms on command-line input",
		Long:          `dsa exercises the data-structure and algorithm packages: sorting, searching, string matching, Huffman coding, edit distance, island counting, N-Queens, topological sort and minimum spanning trees.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			level := cfg.level()
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withConfig(withLogger(ctx, logger), cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(
		sortCommand(),
		searchCommand(),
		kmpCommand(),
		huffmanCommand(),
		lcsCommand(),
		editCommand(),
		islandsCommand(),
		nqueensCommand(),
		topoCommand(),
		mstCommand(),
	)

	return root
}

// Execute runs the CLI with ctx, which main cancels on SIGINT.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
