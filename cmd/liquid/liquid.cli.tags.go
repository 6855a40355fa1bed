package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/itsatony/go-liquid"
)

// builtinBlocks lists the blocks every registry starts with
var builtinBlocks = map[string]bool{
	liquid.BlockNameIf:      true,
	liquid.BlockNameFor:     true,
	liquid.BlockNameComment: true,
	liquid.BlockNameRaw:     true,
}

func newTagsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   CmdNameTags,
		Short: "List registered tags and blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.options()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{TableHeaderName, TableHeaderKind, TableHeaderBuilt})

			for _, name := range opts.Blocks() {
				t.AppendRow(table.Row{name, TableKindBlock, builtinBlocks[name]})
			}
			for _, name := range opts.Tags() {
				t.AppendRow(table.Row{name, TableKindTag, false})
			}

			t.Render()
			return nil
		},
	}
}
