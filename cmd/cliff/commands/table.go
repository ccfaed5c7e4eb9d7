package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo"
	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/codec"
	"github.com/hupe1980/cliffgo/internal/printer"
)

type tableOptions struct {
	rows     int
	json     bool
	bitOrder bool
}

func newTableCmd(g *globalOptions) *cobra.Command {
	opts := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "table <signature>",
		Short: "Render the Cayley table of an algebra",
		Long: `Render the geometric product of every pair of basis blades.

Each cell holds the signed result blade of row * column, or 0 where the
product vanishes on a null vector. Blades are listed in declaration order
(grade-major) unless --bit-order is given.

Examples:
  cliff table vga3
  cliff table "Cl(3,0,1)" --rows 4
  cliff table sta --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := g.algebra(cmd, args[0], g.registry())
			if err != nil {
				return err
			}
			order := bladeOrder(alg, opts.bitOrder)
			rows := order
			if opts.rows > 0 && opts.rows < len(rows) {
				rows = rows[:opts.rows]
			}
			if opts.json {
				return writeTableJSON(cmd.OutOrStdout(), alg, order, rows)
			}
			return writeTableGrid(cmd.OutOrStdout(), alg, order, rows)
		},
	}
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "only render the first N rows")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&opts.bitOrder, "bit-order", false, "list blades by bit index instead of grade")
	return cmd
}

// bladeOrder returns the blade indices in the requested display order.
func bladeOrder(alg *cliffgo.Algebra[float64], bitOrder bool) []uint64 {
	order := make([]uint64, alg.BladeCount())
	layout := alg.Layout()
	for i := range order {
		if bitOrder {
			order[i] = uint64(i)
		} else {
			order[i] = layout.BladeAt(i)
		}
	}
	return order
}

// cell formats one table entry as a signed blade name.
func cell(alg *cliffgo.Algebra[float64], e cayley.Entry) string {
	switch e.Sign {
	case 0:
		return "0"
	case -1:
		return "-" + alg.BladeName(e.Blade)
	default:
		return alg.BladeName(e.Blade)
	}
}

func writeTableGrid(w io.Writer, alg *cliffgo.Algebra[float64], order, rows []uint64) error {
	t := alg.Table()

	header := make([]any, 0, len(order)+1)
	header = append(header, "*")
	for _, b := range order {
		header = append(header, alg.BladeName(b))
	}

	tw := tablewriter.NewWriter(w)
	tw.Header(header...)
	for _, i := range rows {
		row := make([]string, 0, len(order)+1)
		row = append(row, alg.BladeName(i))
		for _, j := range order {
			e := t.Entry(i, j)
			row = append(row, printer.Sign(e.Sign, cell(alg, e)))
		}
		if err := tw.Append(row); err != nil {
			return fmt.Errorf("failed to render row %s: %w", alg.BladeName(i), err)
		}
	}
	return tw.Render()
}

// tableJSON is the machine-readable form of a rendered table.
type tableJSON struct {
	Signature string     `json:"signature"`
	Blades    []string   `json:"blades"`
	Rows      [][]string `json:"rows"`
}

func writeTableJSON(w io.Writer, alg *cliffgo.Algebra[float64], order, rows []uint64) error {
	t := alg.Table()
	out := tableJSON{
		Signature: alg.Signature().String(),
		Blades:    make([]string, len(order)),
		Rows:      make([][]string, len(rows)),
	}
	for k, b := range order {
		out.Blades[k] = alg.BladeName(b)
	}
	for r, i := range rows {
		out.Rows[r] = make([]string, len(order))
		for k, j := range order {
			out.Rows[r][k] = cell(alg, t.Entry(i, j))
		}
	}
	return writeJSON(w, out)
}

// writeJSON writes v indented, followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := codec.GoJSON{}.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
