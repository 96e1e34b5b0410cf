package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/reillysiemens/js-workspace/internal/workspace"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run -- <command...>",
		Short:              "Run a command from the detected workspace root",
		DisableFlagParsing: true,
		RunE:               runRun,
	}
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Root().Flags().GetString("dir")

	if len(args) == 0 {
		return fmt.Errorf("usage: js-workspace run -- <command...>")
	}

	// Strip leading "--" if present.
	if args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no command specified after --")
	}

	root, err := workspace.Resolve(dir)
	if err != nil {
		return err
	}
	log.Debug().Str("root", root.Path).Strs("command", args).Msg("running at workspace root")

	c := exec.Command(args[0], args[1:]...)
	c.Dir = root.Path
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
