package editor

// History is an append-only sequence of lines with a current index.
// The index is always within bounds; History starts with one empty line.
type History struct {
	lines   []*Line
	current int
}

// NewHistory creates a history containing a single empty line.
func NewHistory() *History {
	return &History{lines: []*Line{NewLine()}}
}

// Current returns the line at the current index.
func (h *History) Current() *Line {
	return h.lines[h.current]
}

// Line returns the line at index i, or nil if i is out of range.
func (h *History) Line(i int) *Line {
	if i < 0 || i >= len(h.lines) {
		return nil
	}
	return h.lines[i]
}

// Index returns the current index.
func (h *History) Index() int {
	return h.current
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.lines)
}

// Prev moves the current index to the previous entry.
// Returns false when already at the first entry.
func (h *History) Prev() bool {
	if h.current == 0 {
		return false
	}
	h.current--
	return true
}

// Next moves the current index to the next entry. Past the newest entry it
// appends a fresh empty line and makes it current, so Next always succeeds.
func (h *History) Next() {
	if h.current+1 < len(h.lines) {
		h.current++
		return
	}
	h.Append()
}

// Append adds a fresh empty line and makes it current.
func (h *History) Append() {
	h.lines = append(h.lines, NewLine())
	h.current = len(h.lines) - 1
}
