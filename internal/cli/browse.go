package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/fivewords/pkg/report"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// solutionRow is one line of the browser.
type solutionRow struct {
	worker int
	words  report.Words
}

// SolutionListModel is the bubbletea model for browsing solutions.
type SolutionListModel struct {
	Rows   []solutionRow
	Total  int
	Cursor int
	Height int
	Offset int
	// Filter keeps only solutions with a word containing it.
	Filter string
	view   []int // indices into Rows that match Filter
}

func newSolutionListModel(rep *report.Report) SolutionListModel {
	m := SolutionListModel{Total: rep.Total, Height: 15}
	for _, w := range rep.Workers {
		for _, s := range w.Solutions {
			m.Rows = append(m.Rows, solutionRow{worker: w.Worker, words: s})
		}
	}
	m.applyFilter()
	return m
}

func (m *SolutionListModel) applyFilter() {
	m.view = m.view[:0]
	for i, r := range m.Rows {
		if matches(r.words, m.Filter) {
			m.view = append(m.view, i)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

// matches reports whether some word of w contains filter.
func matches(w report.Words, filter string) bool {
	if filter == "" {
		return true
	}
	for _, word := range w {
		if strings.Contains(word, filter) {
			return true
		}
	}
	return false
}

func (m SolutionListModel) Init() tea.Cmd {
	return nil
}

func (m SolutionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes:
			if len(msg.Runes) == 1 && msg.Runes[0] >= 'a' && msg.Runes[0] <= 'z' {
				m.Filter += string(msg.Runes)
				m.applyFilter()
				return m, nil
			}
		case tea.KeyBackspace:
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.applyFilter()
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc", "Q":
			return m, tea.Quit
		case "up", "K":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "J":
			if m.Cursor < len(m.view)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home":
			m.Cursor, m.Offset = 0, 0
		case "end":
			m.Cursor = max(len(m.view)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m SolutionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%d Solutions", m.Total)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  type to filter  ⌫ erase  esc quit"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString("filter: " + StyleHighlight.Render(m.Filter))
	}
	b.WriteString("\n")

	end := min(m.Offset+m.Height, len(m.view))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[m.view[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprint(m.view[i] + 1),
			r.words.String(),
			r.words.Missing(),
			fmt.Sprint(r.worker),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Words", "Missing", "Worker").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 || col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	pos := 0
	if len(m.view) > 0 {
		pos = m.Cursor + 1
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", pos, len(m.view))))

	return b.String()
}
