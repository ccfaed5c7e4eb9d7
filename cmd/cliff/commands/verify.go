package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/internal/printer"
)

func newVerifyCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a Cayley table snapshot",
		Long: `Read a snapshot, check its checksum and recompute every entry
against the signature stored in its header.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()

			f, err := os.Open(args[0])
			if err != nil {
				return printer.Fprint(stderr, "Failed to open snapshot", err.Error(), nil)
			}
			defer f.Close()

			printer.Step(cmd.OutOrStdout(), "Verifying %s\n", args[0])
			t, err := cayley.ReadSnapshot(cmd.Context(), f)
			if err != nil {
				var suggestions []string
				if errors.Is(err, cayley.ErrInvalidSnapshot) {
					suggestions = []string{"Re-create the file with 'cliff export'"}
				}
				return printer.Fprint(stderr, "Invalid snapshot", err.Error(), suggestions)
			}
			defer t.Release()

			printer.Success(cmd.OutOrStdout(), "%s is valid: %s with %d blades\n",
				args[0], t.Signature().Key(), t.BladeCount())
			return nil
		},
	}
}
