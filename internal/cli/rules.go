package cli

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/store"
)

// NewRulesCommand creates the rules command group.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and manage rule sources",
	}

	cmd.AddCommand(newRulesValidateCommand())
	cmd.AddCommand(newRulesListCommand(rootOpts))
	cmd.AddCommand(newRulesImportCommand())

	return cmd
}

// newRulesValidateCommand checks rule files for malformed records.
func newRulesValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate rule files, reporting malformed records",
		Long: `Validate rule files, reporting malformed records.

Exits 0 when every record parses, 1 when any record was skipped.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			skipped := 0
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("open %s", path), err)
				}
				records, warnings, err := rules.ParseReader(f, path)
				f.Close()
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("read %s", path), err)
				}
				total += len(records)
				skipped += len(warnings)
				for _, w := range warnings {
					fmt.Fprintln(cmd.OutOrStdout(), w.String())
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d record(s) valid, %d skipped\n", total, skipped)
			if skipped > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d malformed record(s)", skipped))
			}
			return nil
		},
	}
}

// newRulesListCommand prints every rule loaded from the configured sources.
func newRulesListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all rules loaded from the configured sources",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := BuildConverter(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}

			lines := lo.Map(result.Converter.Rules(), func(r rules.RuleEntry, _ int) string {
				line := fmt.Sprintf("%s -> %s  script=%s priority=%d", r.Latin, r.Target, r.Script, r.Priority)
				if r.Context != "" {
					line += " context=" + r.Context
				}
				return line
			})
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d rule(s)\n", result.RuleCount)
			return nil
		},
	}
}

// newRulesImportCommand loads text rule files into a SQLite rule store.
func newRulesImportCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import rule files into a SQLite rule store",
		Long: `Import rule files into a SQLite rule store.

Records are appended in file-then-line order, preserving declaration order
for selection tie-breaking. Malformed records are skipped with a report.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				records  []rules.Record
				warnings []rules.Warning
			)
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("open %s", path), err)
				}
				recs, warns, err := rules.ParseReader(f, path)
				f.Close()
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("read %s", path), err)
				}
				records = append(records, recs...)
				warnings = append(warnings, warns...)
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("open rule store %s", dbPath), err)
			}
			defer st.Close()

			if err := st.ImportRecords(cmd.Context(), records); err != nil {
				return WrapExitError(ExitCommandError, "import records", err)
			}

			for _, w := range warnings {
				fmt.Fprintln(cmd.OutOrStdout(), w.String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d record(s), skipped %d\n", len(records), len(warnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "destination SQLite store path (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}
