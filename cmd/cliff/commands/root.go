// Package commands implements the cliff command line interface.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/internal/config"
	"github.com/hupe1980/cliffgo/internal/printer"
	"github.com/hupe1980/cliffgo/signature"
)

var versionString = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath  string
	verbose     bool
	noColor     bool
	memoryLimit string

	cfg      *config.Config
	memLimit int64
}

// NewRootCmd builds the command tree. A fresh tree is returned on every call
// so tests can run commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "cliff",
		Short: "cliff - Clifford algebra table tool",
		Long: `cliff builds, inspects and exports the Cayley tables of Clifford
algebras Cl(p,n,z).

Signatures are given as a preset name (vga3, pga3, sta, ...), as "p,n,z",
as "Cl(p,n,z)", or as the name of an algebra from the --config file. An
inner product style may be appended after a slash, e.g. "sta/bidirectional".`,
		Version: versionString,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.noColor {
				printer.DisableColor()
			}
			if g.memoryLimit != "" {
				n, err := humanize.ParseBytes(g.memoryLimit)
				if err != nil {
					return printer.Fprint(cmd.ErrOrStderr(), "Invalid memory limit", err.Error(), []string{
						"Use a size such as 64MiB or 1GB",
					})
				}
				g.memLimit = int64(n)
			}
			if g.configPath == "" {
				return nil
			}
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return printer.Fprint(cmd.ErrOrStderr(), "Configuration error", err.Error(), []string{
					fmt.Sprintf("Check the file at %s", g.configPath),
				})
			}
			g.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to a cliff.yml with named algebras")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log table builds to stderr")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&g.memoryLimit, "memory-limit", "", "cap table memory, e.g. 64MiB (default unlimited)")

	root.AddCommand(
		newTableCmd(g),
		newInfoCmd(g),
		newExportCmd(g),
		newVerifyCmd(g),
		newListCmd(g),
	)
	return root
}

// Execute runs the root command against os.Args.
// This is called by main.main().
func Execute() error {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		printer.DisableColor()
	}
	return NewRootCmd().Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// resolve turns a command argument into a signature. Config names take
// precedence over presets so a config file can shadow them.
func (g *globalOptions) resolve(arg string) (signature.Signature, error) {
	if sig, ok := g.cfg.Lookup(arg); ok {
		return sig, nil
	}
	return signature.Parse(arg)
}

// logger returns the structured logger for library calls.
func (g *globalOptions) logger(w io.Writer) *cliffgo.Logger {
	if !g.verbose {
		return cliffgo.NoopLogger()
	}
	return cliffgo.NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// registry returns a private table registry honouring --memory-limit.
func (g *globalOptions) registry(opts ...cayley.RegistryOption) *cayley.Registry {
	return cayley.NewRegistry(append([]cayley.RegistryOption{cayley.WithMemoryLimit(g.memLimit)}, opts...)...)
}

// algebra resolves arg and builds its algebra on reg.
func (g *globalOptions) algebra(cmd *cobra.Command, arg string, reg *cayley.Registry) (*cliffgo.Algebra[float64], error) {
	sig, err := g.resolve(arg)
	if err != nil {
		return nil, printer.Fprint(cmd.ErrOrStderr(), "Invalid signature", err.Error(), []string{
			"Use a preset name (see 'cliff list'), \"p,n,z\" or \"Cl(p,n,z)\"",
		})
	}
	alg, err := cliffgo.New[float64](sig,
		cliffgo.WithContext(cmd.Context()),
		cliffgo.WithLogger(g.logger(cmd.ErrOrStderr())),
		cliffgo.WithRegistry(reg),
	)
	if err != nil {
		return nil, printer.Fprint(cmd.ErrOrStderr(), "Failed to build algebra", err.Error(), nil)
	}
	return alg, nil
}
