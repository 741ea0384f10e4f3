package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/record"
)

const (
	burgerGlyph       = "☰"
	burgerActiveGlyph = "✕"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if top, open := m.State().TopModal(); open {
		return m.viewModal(top)
	}
	return m.viewMain()
}

func (m *Model) viewMain() string {
	width := m.viewWidth()
	st := m.State()

	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerLine(width), raw: true})
	if st.BurgerOpen {
		for i, entry := range menuEntries {
			style := styles.MenuItem
			if i == m.menuCursor {
				style = styles.SelectedMenuItem
			}
			label := fmt.Sprintf("  %s", modalTitle(entry))
			lines = append(lines, styledLine{text: padRight(label, width), style: style})
		}
	}
	lines = append(lines, styledLine{text: m.search.View(), raw: true})
	lines = append(lines, styledLine{})
	lines = append(lines, m.bodyLines(width)...)

	bottom := statusRows
	if m.showFooter {
		bottom += footerRows
	}
	lines = limitHeight(lines, m.viewHeight()-bottom, width)

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if info := m.currentInfo(); info != "" {
		status = styledLine{text: info, style: styles.Info}
	}
	lines = append(lines, status)
	if m.showFooter {
		bindings := m.keys.mainHelp()
		if st.BurgerOpen {
			bindings = m.keys.menuHelp()
		}
		m.help.Width = width
		lines = append(lines,
			styledLine{},
			styledLine{text: m.help.ShortHelpView(bindings), raw: true},
			styledLine{text: content.Credit, style: styles.Footer},
		)
	}
	return renderLines(applyWidth(lines, width))
}

// headerLine draws the brand on the left and the burger toggle flush right.
func (m *Model) headerLine(width int) string {
	brand := content.SiteName
	if styles.Brand != nil {
		brand = styles.Brand.Render(brand)
	}
	glyph := burgerGlyph
	glyphStyle := styles.Burger
	if m.State().BurgerOpen {
		glyph = burgerActiveGlyph
		glyphStyle = styles.BurgerActive
	}
	glyphWidth := runewidth.StringWidth(glyph)
	if glyphStyle != nil {
		glyph = glyphStyle.Render(glyph)
	}
	gap := width - lipgloss.Width(brand) - glyphWidth - 1
	if gap < 1 {
		gap = 1
	}
	return brand + strings.Repeat(" ", gap) + glyph + " "
}

// bodyLines renders the area under the search box for the current fetch
// status. The table is only drawn once the fetch has succeeded.
func (m *Model) bodyLines(width int) []styledLine {
	switch m.result.Status {
	case fetch.Pending:
		text := m.spinner.View() + " " + content.Loading
		return []styledLine{{text: text, raw: true}}
	case fetch.Failure:
		return []styledLine{{text: content.FetchFailed, style: styles.Error}}
	}
	heading := fmt.Sprintf("%s (%d件)", content.TableHeading, len(m.list.Rows))
	lines := []styledLine{{text: heading, style: styles.TableHeading}}
	if len(m.list.Rows) == 0 {
		lines = append(lines, styledLine{text: content.NoMatch, style: styles.Info})
		query := m.State().Search
		for _, name := range record.Suggest(m.result.Records, query, maxSuggestions) {
			lines = append(lines, styledLine{text: "  もしかして: " + name, style: styles.Suggestion})
		}
		return lines
	}
	maxRows := m.maxVisibleRows()
	m.list.EnsureCursorVisible(maxRows)
	start := m.list.ViewportOffset
	for i, r := range m.list.Visible(maxRows) {
		lines = append(lines, m.rowLine(r, start+i, width))
	}
	return lines
}

func (m *Model) rowLine(r record.Record, idx, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedIndicator
	}
	return styledLine{
		text:          padRight("▌ "+r.ProductName, width),
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func padRight(text string, width int) string {
	if width <= 0 {
		return text
	}
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to the given display width, counting
// full-width characters as two columns.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
