package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reillysiemens/js-workspace/internal/workspace"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick one of the workspace roots above a directory",
		RunE:  runPick,
	}
}

func runPick(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("pick requires a TTY; use detect for non-interactive use")
	}

	roots, err := workspace.Candidates(dir)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		return fmt.Errorf("no workspace root found above %s", dir)
	}
	log.Debug().Int("candidates", len(roots)).Msg("presenting picker")

	chosen, err := promptPick("Workspace roots", roots)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", chosen.Manager, chosen.Path)
	return nil
}

// --- pickModel: bubbletea model for selecting one root from a list ---

type pickModel struct {
	title   string
	roots   []workspace.Root
	cursor  int
	done    bool
	aborted bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.roots)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	for i, root := range m.roots {
		line := fmt.Sprintf("%-6s %s", root.Manager, root.Path)
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(helpStyle.Render("enter select / esc cancel") + "\n")
	return b.String()
}

// --- prompt helper ---

func promptPick(title string, roots []workspace.Root) (workspace.Root, error) {
	m := pickModel{
		title: title,
		roots: roots,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return workspace.Root{}, err
	}
	rm := result.(pickModel)
	if rm.aborted {
		return workspace.Root{}, fmt.Errorf("user aborted")
	}
	return rm.roots[rm.cursor], nil
}
