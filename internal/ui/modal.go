package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/record"
	uistate "github.com/st-little/anshin-meshi/internal/ui/state"
)

const (
	modalMaxWidth = 76
	modalMinWidth = 20
	// border and horizontal padding of the dialog box
	modalFrameWidth = 4
	// title, blank, blank, key help, and the two border rows
	modalChromeRows = 6
)

type modalCacheKey struct {
	modal    uistate.Modal
	selected record.Record
	width    int
	height   int
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (m *Model) modalBoxWidth() int {
	w := m.viewWidth() - 4
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	if w > m.viewWidth() {
		w = m.viewWidth()
	}
	return w
}

func (m *Model) modalInnerWidth() int {
	w := m.modalBoxWidth() - modalFrameWidth
	if w < 1 {
		return 1
	}
	return w
}

// modalBounds returns the screen area covered by the dialog box.
func (m *Model) modalBounds() rect {
	w := m.modalBoxWidth()
	h := m.modalView.Height + modalChromeRows
	x := (m.viewWidth() - w) / 2
	y := (m.viewHeight() - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return rect{x: x, y: y, w: w, h: h}
}

// syncModal loads the copy of the top dialog into the scrollable body
// whenever the dialog, its record, or the screen size changes.
func (m *Model) syncModal() {
	st := m.State()
	top, open := st.TopModal()
	if !open {
		m.modalLoaded = false
		return
	}
	innerW := m.modalInnerWidth()
	key := modalCacheKey{modal: top, selected: st.Selected, width: innerW, height: m.viewHeight()}
	if m.modalLoaded && key == m.modalKey {
		return
	}
	m.modalKey = key
	m.modalLoaded = true
	lines := modalBodyLines(top, st.Selected, innerW)
	bodyH := m.viewHeight() - modalChromeRows - 2
	if bodyH > len(lines) {
		bodyH = len(lines)
	}
	if bodyH < 1 {
		bodyH = 1
	}
	m.modalView.Width = innerW
	m.modalView.Height = bodyH
	m.modalView.SetContent(strings.Join(lines, "\n"))
	m.modalView.GotoTop()
}

func modalTitle(top uistate.Modal) string {
	switch top {
	case uistate.ModalDetail:
		return content.DetailTitle
	case uistate.ModalAbout:
		return content.About().Title
	case uistate.ModalTerms:
		return content.TermsOfUse().Title
	case uistate.ModalPrivacy:
		return content.PrivacyPolicy().Title
	}
	return ""
}

// modalBodyLines returns the styled, wrapped body of a dialog.
func modalBodyLines(top uistate.Modal, selected record.Record, width int) []string {
	var lines []content.Line
	switch top {
	case uistate.ModalDetail:
		lines = detailLines(selected)
	case uistate.ModalAbout:
		lines = content.About().PlainText()
	case uistate.ModalTerms:
		lines = content.TermsOfUse().PlainText()
	case uistate.ModalPrivacy:
		lines = content.PrivacyPolicy().PlainText()
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		style := styles.ModalBody
		switch {
		case line.Heading:
			style = styles.ModalHeading
		case line.Warning:
			style = styles.ModalWarning
		}
		for _, part := range wrapText(line.Text, width) {
			if style != nil && part != "" {
				part = style.Render(part)
			}
			out = append(out, part)
		}
	}
	return out
}

// detailLines lays out the six fields of a record, each label followed by
// its value verbatim.
func detailLines(r record.Record) []content.Line {
	fields := r.Fields()
	lines := make([]content.Line, 0, len(fields)*3)
	for i, f := range fields {
		if i > 0 {
			lines = append(lines, content.Line{})
		}
		lines = append(lines, content.Line{Text: f.Label, Heading: true})
		for _, v := range strings.Split(f.Value, "\n") {
			lines = append(lines, content.Line{Text: v})
		}
	}
	return lines
}

// wrapText breaks text at word boundaries and hard-wraps anything still too
// wide, such as Japanese runs without spaces.
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{""}
	}
	if width <= 0 {
		return []string{text}
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}

func (m *Model) viewModal(top uistate.Modal) string {
	innerW := m.modalInnerWidth()
	title := truncateText(modalTitle(top), innerW)
	if styles.ModalTitle != nil {
		title = styles.ModalTitle.Render(title)
	}
	m.help.Width = innerW
	footer := m.help.ShortHelpView(m.keys.modalHelp(top == uistate.ModalDetail))
	if pct := m.modalView.ScrollPercent(); m.modalView.TotalLineCount() > m.modalView.Height {
		footer = fmt.Sprintf("%s  %3.f%%", footer, pct*100)
	}
	footer = truncate.String(footer, uint(innerW))
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.modalView.View(), "", footer)
	box := body
	if styles.ModalBorder != nil {
		box = styles.ModalBorder.Width(innerW + 2).Render(body)
	}
	return lipgloss.Place(m.viewWidth(), m.viewHeight(), lipgloss.Center, lipgloss.Center, box)
}
