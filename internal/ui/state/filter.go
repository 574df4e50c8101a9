package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matches reports whether an entry is shown for query. The comparison is a
// case-insensitive substring test against the name and the title; the query
// is used exactly as typed.
func Matches(e Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToUpper(query)
	if strings.Contains(strings.ToUpper(e.Name), q) {
		return true
	}
	return e.HasTitle && strings.Contains(strings.ToUpper(e.Title), q)
}

// SetFilter replaces the filter query, re-evaluates visibility of every entry
// and places the cursor on the best match. Clearing the query restores the
// cursor held before filtering started.
func (l *List) SetFilter(query string, caret int) {
	prev := l.Filter
	l.Filter = query
	l.FilterCursor = clampInt(caret, 0, len([]rune(query)))

	switch {
	case query != "" && prev == "":
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case query != "":
		l.Cursor = 0
	}
	l.applyFilter()

	if query != "" {
		if pos := l.BestMatchIndex(query); pos >= 0 {
			l.Cursor = pos
		}
		return
	}
	if prev != "" {
		if l.LastCursor >= 0 && l.LastCursor < len(l.visible) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

// ClearFilter empties the query. It reports whether anything changed.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

func (l *List) applyFilter() {
	l.visible = l.visible[:0]
	for i := range l.Entries {
		shown := Matches(l.Entries[i], l.Filter)
		l.Entries[i].Hidden = !shown
		if shown {
			l.visible = append(l.visible, i)
		}
	}
	if len(l.visible) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clampInt(l.Cursor, 0, len(l.visible)-1)
	if l.ViewportOffset > len(l.visible)-1 {
		l.ViewportOffset = 0
	}
}

// BestMatchIndex returns the visible position that best answers query:
// exact name, name prefix, name substring, title substring, then the closest
// fuzzy match on names. It returns -1 when nothing is visible.
func (l *List) BestMatchIndex(query string) int {
	shown := l.VisibleEntries()
	if len(shown) == 0 {
		return -1
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return 0
	}
	lower := strings.ToLower(q)
	tests := []func(Entry) bool{
		func(e Entry) bool { return strings.EqualFold(e.Name, q) },
		func(e Entry) bool { return strings.HasPrefix(strings.ToLower(e.Name), lower) },
		func(e Entry) bool { return strings.Contains(strings.ToLower(e.Name), lower) },
		func(e Entry) bool { return strings.Contains(strings.ToLower(e.Title), lower) },
	}
	for _, test := range tests {
		for pos, e := range shown {
			if test(e) {
				return pos
			}
		}
	}
	names := make([]string, len(shown))
	for i, e := range shown {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

// FilterCursorPos returns the rune offset of the filter caret.
func (l *List) FilterCursorPos() int {
	return clampInt(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the caret.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (l *List) DeleteFilterRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.cutFilter(pos-1, pos)
	return true
}

// DeleteFilterWordBackward removes the word before the caret.
func (l *List) DeleteFilterWordBackward() bool {
	pos := l.FilterCursorPos()
	start := wordStart([]rune(l.Filter), pos)
	if start == pos {
		return false
	}
	l.cutFilter(start, pos)
	return true
}

func (l *List) cutFilter(from, to int) {
	runes := []rune(l.Filter)
	updated := make([]rune, 0, len(runes)-(to-from))
	updated = append(updated, runes[:from]...)
	updated = append(updated, runes[to:]...)
	l.SetFilter(string(updated), from)
}

// MoveFilterCursorStart moves the caret to the start of the query.
func (l *List) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

// MoveFilterCursorEnd moves the caret to the end of the query.
func (l *List) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the caret to the previous word start.
func (l *List) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the caret past the next word.
func (l *List) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *List) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *List) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() + 1)
}

func (l *List) moveFilterCursor(to int) bool {
	to = clampInt(to, 0, len([]rune(l.Filter)))
	if to == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = to
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
