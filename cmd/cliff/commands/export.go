package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/internal/printer"
)

type exportOptions struct {
	output      string
	compression string
	workers     int
	ioRate      int64
}

func newExportCmd(g *globalOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <signature>",
		Short: "Write a Cayley table snapshot",
		Long: `Build the Cayley table of an algebra and write it as a binary snapshot
that can later be loaded with cliffgo.LoadTable instead of rebuilding it.

Examples:
  cliff export pga3 -o pga3.cayl
  cliff export "Cl(4,1,0)" -o cga3.cayl --compression lz4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, g, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "snapshot file to write")
	cmd.Flags().StringVar(&opts.compression, "compression", "zstd", "block compression: none, lz4 or zstd")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel row builders (default GOMAXPROCS)")
	cmd.Flags().Int64Var(&opts.ioRate, "io-rate", 0, "limit write throughput in bytes per second")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runExport(cmd *cobra.Command, g *globalOptions, opts *exportOptions, arg string) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	sig, err := g.resolve(arg)
	if err != nil {
		return printer.Fprint(stderr, "Invalid signature", err.Error(), nil)
	}
	c, err := cayley.ParseCompression(opts.compression)
	if err != nil {
		return printer.Fprint(stderr, "Invalid compression", err.Error(), []string{
			"Use one of: none, lz4, zstd",
		})
	}

	logger := g.logger(stderr)
	start := time.Now()
	reg := g.registry(cayley.WithMaxWorkers(opts.workers))
	t, err := reg.Get(ctx, sig)
	logger.LogTableBuild(ctx, sig.Key(), int(sig.BladeCount()), time.Since(start), err)
	if err != nil {
		return printer.Fprint(stderr, "Failed to build table", err.Error(), nil)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return printer.Fprint(stderr, "Failed to create snapshot", err.Error(), nil)
	}

	snapOpts := []cayley.SnapshotOption{cayley.WithCompression(c)}
	if opts.ioRate > 0 {
		snapOpts = append(snapOpts, cayley.WithSnapshotIORate(opts.ioRate))
	}
	if err := cayley.WriteSnapshot(ctx, f, t, snapOpts...); err != nil {
		f.Close()
		return printer.Fprint(stderr, "Failed to write snapshot", err.Error(), nil)
	}
	if err := f.Close(); err != nil {
		return printer.Fprint(stderr, "Failed to write snapshot", err.Error(), nil)
	}

	stat, err := os.Stat(opts.output)
	if err != nil {
		return fmt.Errorf("failed to stat snapshot: %w", err)
	}
	printer.Success(cmd.OutOrStdout(), "Wrote %s (%d blades, %s, %s)\n",
		opts.output, t.BladeCount(), c, humanize.IBytes(uint64(stat.Size())))
	return nil
}
