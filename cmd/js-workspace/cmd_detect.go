package main

import (
	"fmt"
	"time"

	"github.com/reillysiemens/js-workspace/internal/ui"
	"github.com/reillysiemens/js-workspace/internal/workspace"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Resolve the workspace manager and root for a directory",
		RunE:  runDetect,
	}
	cmd.Flags().String("manager", "", "Search for this manager's marker only (yarn, pnpm, rush, npm, lerna)")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the root path")
	cmd.Flags().String("format", formatText, "Output format: text, json, yaml")
	return cmd
}

type detectResult struct {
	Manager string `json:"manager" yaml:"manager"`
	Root    string `json:"root" yaml:"root"`
}

func runDetect(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	manager, _ := cmd.Flags().GetString("manager")
	quiet, _ := cmd.Flags().GetBool("quiet")
	format, _ := cmd.Flags().GetString("format")

	started := time.Now()
	root, err := resolveRoot(dir, manager)
	if err != nil {
		return err
	}
	log.Debug().
		Str("dir", dir).
		Str("manager", root.Manager.String()).
		Str("root", root.Path).
		Dur("took", time.Since(started)).
		Msg("workspace root resolved")

	out := cmd.OutOrStdout()

	if quiet {
		_, _ = fmt.Fprintln(out, root.Path)
		return nil
	}

	switch format {
	case formatText:
		kv := ui.NewKV(out)
		kv.Pair("manager", root.Manager)
		kv.Pair("root", root.Path)
		return kv.Flush()
	case formatJSON, formatYAML:
		return encode(out, format, detectResult{Manager: root.Manager.String(), Root: root.Path})
	}
	return fmt.Errorf("invalid --format %q (must be text, json, or yaml)", format)
}

// resolveRoot resolves using a single manager when one is named, otherwise
// under the environment preference and full precedence search.
func resolveRoot(dir, manager string) (workspace.Root, error) {
	if manager == "" {
		return workspace.Resolve(dir)
	}
	m, err := workspace.ParseManager(manager)
	if err != nil {
		return workspace.Root{}, err
	}
	return workspace.ResolveWith(dir, m)
}
