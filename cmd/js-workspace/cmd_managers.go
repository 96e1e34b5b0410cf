package main

import (
	"fmt"

	"github.com/reillysiemens/js-workspace/internal/ui"
	"github.com/reillysiemens/js-workspace/internal/workspace"
	"github.com/spf13/cobra"
)

func newManagersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "managers",
		Short: "List the supported workspace managers in precedence order",
		RunE:  runManagers,
	}
	cmd.Flags().String("format", formatTable, "Output format: table, json, yaml")
	return cmd
}

type managerInfo struct {
	Manager    string `json:"manager" yaml:"manager"`
	MarkerFile string `json:"marker_file" yaml:"marker_file"`
	Precedence int    `json:"precedence" yaml:"precedence"`
}

func runManagers(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")

	order := workspace.SearchOrder()
	infos := make([]managerInfo, 0, len(order))
	for i, m := range order {
		infos = append(infos, managerInfo{
			Manager:    m.String(),
			MarkerFile: m.MarkerFile(),
			Precedence: i + 1,
		})
	}

	out := cmd.OutOrStdout()

	switch format {
	case formatTable:
		tbl := ui.NewTable(out, "MANAGER", "MARKER FILE", "PRECEDENCE")
		for _, info := range infos {
			tbl.Row(info.Manager, info.MarkerFile, info.Precedence)
		}
		return tbl.Flush()
	case formatJSON, formatYAML:
		return encode(out, format, infos)
	}
	return fmt.Errorf("invalid --format %q (must be table, json, or yaml)", format)
}
