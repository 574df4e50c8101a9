package ui

import (
	"fmt"
	"strings"

	uistate "github.com/atomicstack/groupme-info/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	tabBarRow  = 1
	bodyTop    = 2
	bottomRows = 2 // status + filter prompt

	footerText = "↑/↓ move  enter tooltip  tab panel  ctrl+s sort  ctrl+y copy  ctrl+r reload  esc back  ctrl+c quit"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling
}

// listRow is one screen row of the command list: an entry or one line of
// its tooltip.
type listRow struct {
	entry   int
	pos     int
	tooltip bool
	text    string
}

type tabSpan struct {
	start, end int
	link       int
}

// View implements tea.Model.
func (m *Model) View() string {
	m.resizeViewports()
	m.syncList()
	lines := []styledLine{
		{text: m.headerLine(), style: styles.Header},
		{text: m.tabBar(), raw: true},
	}
	lines = append(lines, m.bodyLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerText, style: styles.Footer})
	}
	bottom := []styledLine{m.statusLine(), {}}
	if m.listShown() {
		bottom[1] = styledLine{text: m.filterPrompt(), raw: true}
	}
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) headerLine() string {
	title := m.headerTitle()
	if m.listShown() {
		title += fmt.Sprintf(" · %d/%d commands", m.list.VisibleCount(), len(m.list.Entries))
	}
	return title
}

func (m *Model) tabSegments() ([]string, []tabSpan) {
	segments := make([]string, 0, len(m.links))
	spans := make([]tabSpan, 0, len(m.links))
	x := 0
	for i, link := range m.links {
		style := styles.Tab
		if i == m.activeLink {
			style = styles.ActiveTab
		}
		seg := link.Label
		if style != nil {
			seg = style.Render(link.Label)
		}
		if i > 0 {
			x++
		}
		w := lipgloss.Width(seg)
		spans = append(spans, tabSpan{start: x, end: x + w, link: i})
		segments = append(segments, seg)
		x += w
	}
	return segments, spans
}

func (m *Model) tabBar() string {
	segments, _ := m.tabSegments()
	return strings.Join(segments, " ")
}

func (m *Model) bodyLines() []styledLine {
	if _, ok := m.currentPanel(); !ok {
		target := ""
		if m.activeLink >= 0 && m.activeLink < len(m.links) {
			target = m.links[m.activeLink].Target
		}
		return []styledLine{{text: fmt.Sprintf("(nothing to show: %q matches no panel)", target), style: styles.Placeholder}}
	}
	if vp := m.textViewport(); vp != nil {
		rows := strings.Split(vp.View(), "\n")
		out := make([]styledLine, 0, len(rows))
		for _, row := range rows {
			out = append(out, styledLine{text: strings.TrimRight(row, " "), style: styles.PanelBody})
		}
		return out
	}
	return m.listLines()
}

func (m *Model) listLines() []styledLine {
	if len(m.list.Entries) == 0 {
		return []styledLine{{text: "(no commands yet)", style: styles.Info}}
	}
	if m.list.VisibleCount() == 0 {
		return []styledLine{{text: fmt.Sprintf("No matches for %q", m.list.Filter), style: styles.Info}}
	}
	rows := m.listRows()
	out := make([]styledLine, 0, len(rows))
	for _, row := range rows {
		if row.tooltip {
			out = append(out, styledLine{text: "    " + row.text, style: styles.Tooltip})
			continue
		}
		out = append(out, m.buildItemLine(row.text, row.pos == m.list.Cursor))
	}
	return out
}

func (m *Model) listRows() []listRow {
	visible := m.list.Visible()
	limit := m.bodyHeight()
	start := m.list.ViewportOffset
	if start < 0 || start >= len(visible) {
		start = 0
	}
	rows := make([]listRow, 0, len(visible))
	for pos := start; pos < len(visible); pos++ {
		idx := visible[pos]
		e := m.list.Entries[idx]
		rows = append(rows, listRow{entry: idx, pos: pos, text: e.Name})
		if e.Tooltip {
			for _, line := range tooltipLines(e) {
				rows = append(rows, listRow{entry: idx, pos: pos, tooltip: true, text: line})
			}
		}
		if limit > 0 && len(rows) >= limit {
			rows = rows[:limit]
			break
		}
	}
	return rows
}

func tooltipLines(e uistate.Entry) []string {
	return strings.Split(uistate.TooltipText(e), "\n")
}

// buildItemLine pads the row so the selected item's background spans the
// full width.
func (m *Model) buildItemLine(label string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: "Backend: " + m.backendLastErr, style: styles.Error}
	case m.verbose:
		return styledLine{text: fmt.Sprintf("group %s · panel %s", m.groupID, m.visiblePanel), style: styles.Footer}
	}
	return styledLine{}
}

// bodyHeight is the number of rows left for the active panel, or -1 while
// the terminal size is unknown.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return -1
	}
	used := bodyTop + bottomRows
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
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

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
