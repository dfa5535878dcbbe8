// Package tui provides a Bubble Tea terminal UI for inspecting quest items.
package tui

// History is the inspector input line's command scrollback. Fixed
// capacity: once full, each new command overwrites the oldest one.
type History struct {
	buf    []string
	head   int // next write slot
	count  int
	cursor int // steps back from the newest entry; -1 = not navigating
}

// NewHistory creates a scrollback holding up to capacity commands.
func NewHistory(capacity int) *History {
	return &History{
		buf:    make([]string, capacity),
		cursor: -1,
	}
}

// Push records a submitted command. Resubmitting the newest entry is not
// recorded again.
func (h *History) Push(cmd string) {
	if h.count > 0 && h.at(0) == cmd {
		return
	}
	h.buf[h.head] = cmd
	h.head = (h.head + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// at returns the entry age steps behind the newest one. age must be in
// [0, count).
func (h *History) at(age int) string {
	return h.buf[(h.head-1-age+2*len(h.buf))%len(h.buf)]
}

// Prev steps toward older entries and returns the one under the cursor.
// At the oldest entry it stays put. Returns ("", false) when empty.
func (h *History) Prev() (string, bool) {
	if h.count == 0 {
		return "", false
	}
	if h.cursor < h.count-1 {
		h.cursor++
	}
	return h.at(h.cursor), true
}

// Next steps back toward newer entries. Stepping past the newest entry
// returns ("", false) and leaves navigation, restoring fresh input.
func (h *History) Next() (string, bool) {
	if h.cursor <= 0 {
		h.cursor = -1
		return "", false
	}
	h.cursor--
	return h.at(h.cursor), true
}

// ResetCursor leaves navigation so the next Prev starts from the newest
// entry again.
func (h *History) ResetCursor() {
	h.cursor = -1
}

// Len returns the number of commands held.
func (h *History) Len() int {
	return h.count
}
