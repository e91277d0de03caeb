package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ogear"
)

var (
	walkFrom stateFlags
	walkTo   stateFlags
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Step through a solution interactively",
	Long: `Compute the shortest solution and step through it one move at a time,
showing the full gear configuration after each move.

Keyboard shortcuts:
  n / right / space  - Next move
  p / left           - Previous move
  q / Esc            - Quit`,
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)

	walkFrom.register(walkCmd.Flags(), "from", stateFlags{side: 1, axis: "X", tooth: 0, facing: true})
	walkTo.register(walkCmd.Flags(), "to", stateFlags{side: 6, axis: "X", tooth: 4, facing: false})
}

// Styles
var (
	walkTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	walkStateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	walkDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	walkPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	walkCurrentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	walkHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// walkModel steps through a precomputed solution. step is how many
// moves have been applied so far, 0 through len(path).
type walkModel struct {
	origin ogear.State
	target ogear.State
	path   ogear.Path
	step   int
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right", " ":
			if m.step < len(m.path) {
				m.step++
			}
		case "p", "left":
			if m.step > 0 {
				m.step--
			}
		}
	}
	return m, nil
}

func (m walkModel) View() string {
	var b strings.Builder

	b.WriteString(walkTitleStyle.Render("O'Gear Solution Walk"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Origin: %s\n", m.origin))
	b.WriteString(fmt.Sprintf("Target: %s\n\n", m.target))

	current := m.path[:m.step].Replay(m.origin)
	b.WriteString(fmt.Sprintf("After %d of %d moves: %s\n\n",
		m.step, len(m.path), walkStateStyle.Render(current.String())))

	for i, t := range m.path {
		line := fmt.Sprintf("Step %d: %s", i+1, t.Description())
		switch {
		case i < m.step:
			line = walkDoneStyle.Render(line)
		case i == m.step:
			line = walkCurrentStyle.Render("> " + line)
		default:
			line = walkPendingStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.step == len(m.path) {
		b.WriteString(walkDoneStyle.Render("Target reached"))
		b.WriteString("\n")
	}
	b.WriteString(walkHelpStyle.Render("n/→ next  p/← back  q quit"))
	b.WriteString("\n")

	return b.String()
}

func runWalk(cmd *cobra.Command, args []string) error {
	origin, err := walkFrom.state()
	if err != nil {
		return fmt.Errorf("invalid origin: %w", err)
	}
	target, err := walkTo.state()
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	path, err := ogear.Solve(origin, target)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Println("Already there: the origin and target configurations are identical")
		return nil
	}

	model := walkModel{origin: origin, target: target, path: path}
	_, err = tea.NewProgram(model).Run()
	return err
}
