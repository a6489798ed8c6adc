// Package cli implements the deroman command line interface.
//
// The CLI is a thin shell over the conversion engine: it resolves rule
// sources (text files and/or a SQLite rule store), builds the immutable
// repository and script registry once, and dispatches to subcommands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	RuleFiles  []string // ::-delimited rule files
	RulesDB    string   // SQLite rule store path
	ScriptsDir string   // directory of CUE script definitions
	CacheSize  int      // result cache capacity; 0 disables
}

// NewRootCommand creates the root command for the deroman CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "deroman",
		Short: "Convert Latin-script text into non-Latin scripts",
		Long: `deroman converts romanized text back into a native script by matching
spans of the input against prioritized substitution rules.

Rule sources are ::-delimited text files (--rules) and/or a SQLite rule
store (--rules-db). The builtin scripts (Arabic, Devanagari, Swahili) can
be extended with CUE definitions (--scripts-dir).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logger, err := zap.NewDevelopment()
				if err == nil {
					SetLogger(logger)
				}
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().StringSliceVar(&opts.RuleFiles, "rules", nil, "rule file(s) in latin::target::script::priority[::context] format")
	cmd.PersistentFlags().StringVar(&opts.RulesDB, "rules-db", "", "SQLite rule store path")
	cmd.PersistentFlags().StringVar(&opts.ScriptsDir, "scripts-dir", "", "directory of CUE script definitions")
	cmd.PersistentFlags().IntVar(&opts.CacheSize, "cache-size", 65536, "result cache capacity (0 disables caching)")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))
	cmd.AddCommand(NewScriptsCommand(opts))

	return cmd
}
