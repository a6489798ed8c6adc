package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/deroman/internal/script"
)

// NewScriptsCommand creates the scripts command.
func NewScriptsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "scripts",
		Short:         "List registered target scripts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := script.Builtin()
			if rootOpts.ScriptsDir != "" {
				scripts, err := script.LoadCUEDir(rootOpts.ScriptsDir)
				if err != nil {
					return WrapExitError(ExitCommandError, "load script definitions", err)
				}
				for _, s := range scripts {
					if err := registry.Register(s); err != nil {
						return WrapExitError(ExitCommandError, "register script", err)
					}
				}
			}

			for _, name := range registry.Names() {
				s, err := registry.Get(name)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s  direction=%s", s.Name, s.Direction)
				if s.Abugida {
					line += " abugida"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
