package main

import (
	"fmt"
	"strings"

	"github.com/reillysiemens/js-workspace/internal/ui"
	"github.com/reillysiemens/js-workspace/internal/workspace"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show the markers found in every ancestor directory and how they decide detection",
		RunE:  runExplain,
	}
	cmd.Flags().String("manager", "", "Restrict the walk to this manager's marker")
	cmd.Flags().String("format", formatTable, "Output format: table, json, yaml")
	return cmd
}

type explainLevel struct {
	Dir   string   `json:"dir" yaml:"dir"`
	Found []string `json:"found,omitempty" yaml:"found,omitempty"`
}

type explainReport struct {
	Pinned   string         `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	PinnedBy string         `json:"pinned_by,omitempty" yaml:"pinned_by,omitempty"`
	Levels   []explainLevel `json:"levels" yaml:"levels"`
	Result   *detectResult  `json:"result,omitempty" yaml:"result,omitempty"`
}

func runExplain(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	manager, _ := cmd.Flags().GetString("manager")
	format, _ := cmd.Flags().GetString("format")

	report, err := buildExplainReport(dir, manager)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case formatTable:
		if report.Pinned != "" {
			_, _ = fmt.Fprintf(out, "pinned: %s (via %s)\n\n", report.Pinned, report.PinnedBy)
		}
		tbl := ui.NewTable(out, "DIR", "FOUND")
		for _, level := range report.Levels {
			found := "-"
			if len(level.Found) > 0 {
				found = strings.Join(level.Found, ", ")
			}
			tbl.Row(level.Dir, found)
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
		if report.Result == nil {
			_, _ = fmt.Fprintln(out, "\nno workspace root found")
			return nil
		}
		_, _ = fmt.Fprintf(out, "\nresolves to %s at %s\n", report.Result.Manager, report.Result.Root)
		return nil
	case formatJSON, formatYAML:
		return encode(out, format, report)
	}
	return fmt.Errorf("invalid --format %q (must be table, json, or yaml)", format)
}

// buildExplainReport scans the ancestor chain with the same candidate set
// detection would use and derives the outcome from the findings: the first
// level with any marker decides, and the first marker at that level wins.
func buildExplainReport(dir, manager string) (explainReport, error) {
	var report explainReport
	var pinned []workspace.Manager

	switch {
	case manager != "":
		m, err := workspace.ParseManager(manager)
		if err != nil {
			return report, err
		}
		report.Pinned = m.String()
		report.PinnedBy = "--manager"
		pinned = []workspace.Manager{m}
	default:
		m, ok, err := workspace.PreferredManager()
		if err != nil {
			return report, err
		}
		if ok {
			report.Pinned = m.String()
			report.PinnedBy = workspace.EnvPreferredManager
			pinned = []workspace.Manager{m}
		}
	}

	probes, err := workspace.Scan(dir, pinned...)
	if err != nil {
		return report, err
	}

	for _, probe := range probes {
		level := explainLevel{Dir: probe.Dir}
		for _, m := range probe.Found {
			level.Found = append(level.Found, m.String())
		}
		report.Levels = append(report.Levels, level)

		if report.Result == nil && len(probe.Found) > 0 {
			report.Result = &detectResult{Manager: probe.Found[0].String(), Root: probe.Dir}
		}
	}
	return report, nil
}
