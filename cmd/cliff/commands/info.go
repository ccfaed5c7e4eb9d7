package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/internal/printer"
)

func newInfoCmd(g *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info <signature>",
		Short: "Describe an algebra",
		Long: `Show the metric, blade counts per grade, and the memory held by the
Cayley table of an algebra against the registry limits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := g.registry()
			alg, err := g.algebra(cmd, args[0], reg)
			if err != nil {
				return err
			}
			info := describe(alg, reg)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			writeInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

// algebraInfo summarizes an algebra for display.
type algebraInfo struct {
	Signature  string     `json:"signature"`
	Inner      string     `json:"inner"`
	Vectors    int        `json:"vectors"`
	Grades     int        `json:"grades"`
	Blades     int        `json:"blades"`
	Metric     []int      `json:"metric"`
	Degenerate bool       `json:"degenerate"`
	TableBytes int64      `json:"table_bytes"`
	MemLimit   int64      `json:"memory_limit"`
	MaxBuilds  int        `json:"max_builds"`
	DualSigns  []int8     `json:"dual_signs"`
	ByGrade    [][]string `json:"blades_by_grade"`
}

func describe(alg *cliffgo.Algebra[float64], reg *cayley.Registry) algebraInfo {
	sig := alg.Signature()
	t := alg.Table()

	info := algebraInfo{
		Signature:  sig.Key(),
		Inner:      sig.Inner.String(),
		Vectors:    alg.VectorCount(),
		Grades:     alg.GradeCount(),
		Blades:     alg.BladeCount(),
		Metric:     make([]int, alg.VectorCount()),
		Degenerate: sig.IsDegenerate(),
		TableBytes: t.SizeBytes(),
		MemLimit:   reg.MemoryLimit(),
		MaxBuilds:  reg.MaxBuilds(),
		DualSigns:  t.DualSigns(),
		ByGrade:    make([][]string, alg.GradeCount()),
	}
	for i := range info.Metric {
		info.Metric[i] = sig.Metric(i)
	}
	for g := range info.ByGrade {
		names := make([]string, 0, t.GradeSize(g))
		for b := range t.BladesOfGrade(g) {
			names = append(names, alg.BladeName(b))
		}
		info.ByGrade[g] = names
	}
	return info
}

func writeInfo(w io.Writer, info algebraInfo) {
	printer.Heading(w, info.Signature)
	printer.Info(w, "  inner product: %s\n", info.Inner)
	printer.Info(w, "  vectors:       %d\n", info.Vectors)
	printer.Info(w, "  blades:        %d\n", info.Blades)
	printer.Info(w, "  metric:        %s\n", formatMetric(info.Metric))
	printer.Info(w, "  table memory:  %s of %s\n", humanize.IBytes(uint64(info.TableBytes)), formatLimit(info.MemLimit))
	printer.Info(w, "  build slots:   %d\n", info.MaxBuilds)
	if info.Degenerate {
		printer.Warning(w, "degenerate metric: products touching null vectors vanish\n")
	}
	fmt.Fprintln(w)
	printer.Heading(w, "Blades by grade")
	for g, names := range info.ByGrade {
		printer.Info(w, "  %d (%d): %s\n", g, len(names), strings.Join(names, " "))
	}
}

func formatMetric(metric []int) string {
	if len(metric) == 0 {
		return "(scalar only)"
	}
	parts := make([]string, len(metric))
	for i, m := range metric {
		switch m {
		case 1:
			parts[i] = "+"
		case -1:
			parts[i] = "-"
		default:
			parts[i] = "0"
		}
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func formatLimit(limit int64) string {
	if limit <= 0 {
		return "unlimited"
	}
	return humanize.IBytes(uint64(limit))
}
