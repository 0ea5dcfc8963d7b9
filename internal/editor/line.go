package editor

// Line is a single editable line of text with a cursor offset.
// The cursor is an index into the rune slice, inclusive of the end position.
type Line struct {
	text   []rune
	cursor int
}

// NewLine creates an empty line with the cursor at position 0.
func NewLine() *Line {
	return &Line{}
}

// Insert inserts a rune at the cursor position and advances the cursor.
func (l *Line) Insert(r rune) {
	l.text = append(l.text, 0)
	copy(l.text[l.cursor+1:], l.text[l.cursor:])
	l.text[l.cursor] = r
	l.cursor++
}

// Backspace removes the rune immediately before the cursor and moves the
// cursor back. No-op when the cursor is at the start.
func (l *Line) Backspace() {
	if l.cursor == 0 {
		return
	}
	l.cursor--
	l.text = append(l.text[:l.cursor], l.text[l.cursor+1:]...)
}

// MoveLeft moves the cursor one position left, stopping at 0.
func (l *Line) MoveLeft() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveRight moves the cursor one position right, stopping at the end of text.
func (l *Line) MoveRight() {
	if l.cursor < len(l.text) {
		l.cursor++
	}
}

// MoveToStart moves the cursor to position 0.
func (l *Line) MoveToStart() {
	l.cursor = 0
}

// MoveToEnd moves the cursor past the last rune.
func (l *Line) MoveToEnd() {
	l.cursor = len(l.text)
}

// Cursor returns the cursor offset.
func (l *Line) Cursor() int {
	return l.cursor
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.text)
}

// Text returns the line's content.
func (l *Line) Text() string {
	return string(l.text)
}

// String implements fmt.Stringer.
func (l *Line) String() string {
	return l.Text()
}
