package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/resumeforge/resumeforge/pkg/compose"
)

// List styles
var (
	listNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// Detail styles
var (
	detailHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	detailTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	detailSubtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(colorGray)
)

// previewWidth caps the content column in the section list.
const previewWidth = 40

// =============================================================================
// PreviewModel - Interactive section preview
// =============================================================================

// SectionEntry is one previewable section with its composed blocks.
type SectionEntry struct {
	Name   string
	Blocks []compose.Block
}

// PreviewModel is the bubbletea model for browsing composed sections. It has
// two views: the section list, and the block detail of the section under the
// cursor while Inspecting is set.
type PreviewModel struct {
	Entries    []SectionEntry
	Cursor     int
	Height     int
	Offset     int
	Inspecting bool
}

// NewPreviewModel creates a new preview model over composed sections.
func NewPreviewModel(entries []SectionEntry) PreviewModel {
	return PreviewModel{
		Entries: entries,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Inspecting {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "backspace", "enter":
				m.Inspecting = false
			}
			return m, nil
		}
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
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Entries) > 0 {
				m.Inspecting = true
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	if m.Inspecting {
		return m.viewSection()
	}
	return m.viewList()
}

func (m PreviewModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Resume Sections"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{cursor, e.Name, strconv.Itoa(len(e.Blocks)), previewText(e.Blocks)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Section", "Blocks", "Content").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 3 {
				if isCurrent {
					return base.Foreground(colorGray)
				}
				return base.Foreground(colorDim)
			}

			if isCurrent {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

func (m PreviewModel) viewSection() string {
	e := m.Entries[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(sectionTitle(e)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	for _, blk := range e.Blocks {
		b.WriteString(renderBlockLine(blk))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// sectionTitle returns the section's rendered heading, falling back to the
// upper-cased canonical name.
func sectionTitle(e SectionEntry) string {
	for _, blk := range e.Blocks {
		if p, ok := blk.(compose.Paragraph); ok && p.Style == compose.StyleSectionHeader {
			return p.Text()
		}
	}
	return strings.ToUpper(e.Name)
}

// previewText returns the first content line of a section, truncated for the
// list column.
func previewText(blocks []compose.Block) string {
	for _, blk := range blocks {
		switch blk := blk.(type) {
		case compose.TitleRow:
			return truncate(blk.Title, previewWidth)
		case compose.Paragraph:
			if blk.Style == compose.StyleSectionHeader {
				continue
			}
			return truncate(blk.Text(), previewWidth)
		}
	}
	return "—"
}

// renderBlockLine formats one composed block as terminal output. Spacers and
// rules keep their visual role so the detail view reads like the page.
func renderBlockLine(blk compose.Block) string {
	switch blk := blk.(type) {
	case compose.Paragraph:
		return renderParagraphLine(blk) + "\n"
	case compose.TitleRow:
		line := detailTitleStyle.Render(blk.Title)
		if blk.Date != "" {
			line += "  " + listDimStyle.Render(blk.Date)
		}
		return line + "\n"
	case compose.Rule:
		return listDimStyle.Render(strings.Repeat("─", previewWidth)) + "\n"
	case compose.Spacer:
		return "\n"
	default:
		return ""
	}
}

// renderParagraphLine picks a terminal style matching the paragraph's page
// style.
func renderParagraphLine(p compose.Paragraph) string {
	switch p.Style {
	case compose.StyleSectionHeader:
		return detailHeaderStyle.Render(p.Text())
	case compose.StyleName, compose.StyleItemTitle:
		return detailTitleStyle.Render(p.Text())
	case compose.StyleItemSubtitle:
		return detailSubtitleStyle.Render(p.Text())
	case compose.StyleContact, compose.StyleDateRange, compose.StyleFooter:
		return listDimStyle.Render(p.Text())
	default:
		return listNormalStyle.Render(p.Text())
	}
}

// truncate shortens s to at most limit runes, marking the cut with an
// ellipsis.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}
