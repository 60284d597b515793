package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MrToKa/traylay/pkg/pipeline"
)

var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// trayRow is one line of the interactive tray browser.
type trayRow struct {
	Name        string
	Dimensions  string
	CableCount  int
	FreePercent float64
	HasSummary  bool
	Warning     string
}

// TrayListModel is the bubbletea model for interactive tray browsing.
type TrayListModel struct {
	Rows     []trayRow
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewTrayListModel creates a new tray list model.
func NewTrayListModel(rows []trayRow) TrayListModel {
	return TrayListModel{Rows: rows, Height: 15}
}

func (m TrayListModel) Init() tea.Cmd {
	return nil
}

func (m TrayListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Rows[m.Cursor].Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TrayListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tray"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		free := "—"
		if r.HasSummary {
			free = fmt.Sprintf("%.1f%%", r.FreePercent)
		}

		status := ""
		if r.Warning != "" {
			status = iconWarning
		}

		rows = append(rows, []string{cursor, r.Name, r.Dimensions,
			fmt.Sprintf("%d", r.CableCount), free, status})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Tray", "Size (mm)", "Cables", "Free", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[actualIdx]

			if col == 4 && r.HasSummary {
				return freeSpaceStyle(r.FreePercent)
			}
			if col == 5 && r.Warning != "" {
				return StyleWarning
			}
			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// traysCommand creates the trays command for interactive browsing.
func (c *CLI) traysCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "trays [project.json]",
		Short: "Browse project trays interactively",
		Long: `Browse the trays of a project in an interactive list.

Each row shows the tray dimensions, cable count, and the free-space figure
of the computed layout. Selecting a tray prints the layout command for it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectPath = args[0]
			return c.runTrays(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "layout configuration file (TOML)")

	return cmd
}

func (c *CLI) runTrays(cmd *cobra.Command, opts pipeline.Options) error {
	opts.Formats = []string{pipeline.FormatJSON}
	opts.Logger = c.Logger

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}

	rows := make([]trayRow, 0, len(result.Project.Trays))
	for _, t := range result.Project.Trays {
		plan := result.Plans[t.Name]
		row := trayRow{
			Name:       t.Name,
			Dimensions: fmt.Sprintf("%.0f × %.0f", t.Width, t.Height),
			CableCount: len(result.Project.Cables(t.Name)),
			Warning:    plan.Warning,
		}
		if plan.Summary != nil && plan.Summary.HasBottomRow {
			row.HasSummary = true
			row.FreePercent = plan.FreeSpacePercent()
		}
		rows = append(rows, row)
	}

	model := NewTrayListModel(rows)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run tray browser: %w", err)
	}

	if m, ok := final.(TrayListModel); ok && m.Selected != "" {
		printNewline()
		printNextStep("Render", fmt.Sprintf("traylay layout %s -t %q", opts.ProjectPath, m.Selected))
	}
	return nil
}
