package state

// MoveCursorUp moves the cursor one visible entry up, wrapping to the end.
func (l *List) MoveCursorUp() bool {
	n := len(l.visible)
	if n == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = (l.Cursor - 1 + n) % n
	return old != l.Cursor
}

// MoveCursorDown moves the cursor one visible entry down, wrapping to the top.
func (l *List) MoveCursorDown() bool {
	n := len(l.visible)
	if n == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = (l.Cursor + 1) % n
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first visible entry.
func (l *List) MoveCursorHome() bool {
	return l.setCursor(0)
}

// MoveCursorEnd moves the cursor to the last visible entry.
func (l *List) MoveCursorEnd() bool {
	return l.setCursor(len(l.visible) - 1)
}

// MoveCursorPageUp moves the cursor up by one page.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.setCursor(l.Cursor - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.setCursor(l.Cursor + l.pageSize(maxVisible))
}

// SetCursor places the cursor on a visible position, clamped to range.
func (l *List) SetCursor(pos int) bool {
	return l.setCursor(pos)
}

// ScrollToTop returns cursor and viewport to the first entry.
func (l *List) ScrollToTop() {
	l.Cursor = 0
	l.ViewportOffset = 0
}

func (l *List) setCursor(pos int) bool {
	if len(l.visible) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clampInt(pos, 0, len(l.visible)-1)
	return old != l.Cursor
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.visible)
	if maxVisible <= 0 || maxVisible > total {
		maxVisible = total
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	return maxVisible
}

// EnsureCursorVisible moves the viewport so the cursor row is inside a
// window of maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible int) {
	n := len(l.visible)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clampInt(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clampInt(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = clampInt(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}
