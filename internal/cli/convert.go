package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/deroman/internal/lattice"
	"github.com/roach88/deroman/internal/script"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Script  string
	Context string
	Format  string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Convert Latin text into a target script",
		Long: `Convert Latin text into a target script.

Example:
  deroman convert shams --rules arabic.txt --script Arabic
  deroman convert shams --rules arabic.txt --script Arabic --format edges`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Script, "script", "s", "", "target script name (required)")
	cmd.Flags().StringVar(&opts.Context, "context", "", "context tag gating context-restricted rules")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "string", "output format (string|edges|lattice)")
	cmd.MarkFlagRequired("script")

	return cmd
}

func runConvert(opts *ConvertOptions, text string, cmd *cobra.Command) error {
	format, err := lattice.ParseFormat(opts.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --format", err)
	}

	result, err := BuildConverter(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}

	out, err := result.Converter.Convert(text, opts.Script, opts.Context, format)
	if err != nil {
		if script.IsUnknownScript(err) {
			return WrapExitError(ExitFailure, "conversion failed", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
