package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hupe1980/cliffgo/signature"
)

// listEntry is one row of 'cliff list'.
type listEntry struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

func newListCmd(g *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known algebras",
		Long: `List the built-in presets and, with --config, the algebras defined in
the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := g.listEntries()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return writeList(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func (g *globalOptions) listEntries() []listEntry {
	var entries []listEntry
	for _, name := range signature.PresetNames() {
		sig, _ := signature.Preset(name)
		entries = append(entries, listEntry{Name: name, Signature: sig.String(), Source: "preset"})
	}
	for _, name := range g.cfg.Names() {
		sig, _ := g.cfg.Lookup(name)
		entries = append(entries, listEntry{
			Name:        name,
			Signature:   sig.String(),
			Source:      "config",
			Description: g.cfg.Algebras[name].Description,
		})
	}
	return entries
}

func writeList(w io.Writer, entries []listEntry) error {
	tw := tablewriter.NewWriter(w)
	tw.Header("NAME", "SIGNATURE", "SOURCE", "DESCRIPTION")
	for _, e := range entries {
		if err := tw.Append([]string{e.Name, e.Signature, e.Source, e.Description}); err != nil {
			return err
		}
	}
	return tw.Render()
}
