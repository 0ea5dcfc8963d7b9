package editor

import "testing"

func TestLineInsert(t *testing.T) {
	l := NewLine()
	for _, r := range "abc" {
		l.Insert(r)
	}
	if got := l.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	if l.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", l.Cursor())
	}
}

func TestLineInsertMidLine(t *testing.T) {
	l := NewLine()
	l.Insert('a')
	l.Insert('b')
	l.MoveLeft()
	l.Insert('c')

	if got := l.Text(); got != "acb" {
		t.Errorf("Text() = %q, want %q", got, "acb")
	}
	if l.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", l.Cursor())
	}
}

func TestLineBackspace(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*Line)
		wantText   string
		wantCursor int
	}{
		{
			name:       "empty line",
			setup:      func(l *Line) { l.Backspace() },
			wantText:   "",
			wantCursor: 0,
		},
		{
			name: "at end",
			setup: func(l *Line) {
				l.Insert('a')
				l.Insert('b')
				l.Backspace()
			},
			wantText:   "a",
			wantCursor: 1,
		},
		{
			name: "mid line",
			setup: func(l *Line) {
				l.Insert('a')
				l.Insert('b')
				l.Insert('c')
				l.MoveLeft()
				l.Backspace()
			},
			wantText:   "ac",
			wantCursor: 1,
		},
		{
			name: "at start is no-op",
			setup: func(l *Line) {
				l.Insert('a')
				l.MoveToStart()
				l.Backspace()
			},
			wantText:   "a",
			wantCursor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine()
			tt.setup(l)
			if got := l.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
			if got := l.Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestLineInsertThenBackspaceRoundTrip(t *testing.T) {
	l := NewLine()
	const n = 50
	for i := 0; i < n; i++ {
		l.Insert(rune('a' + i%26))
	}
	for i := 0; i < n; i++ {
		l.Backspace()
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", l.Cursor())
	}
}

func TestLineCursorBounds(t *testing.T) {
	l := NewLine()

	// Every operation must leave the cursor within [0, Len()].
	ops := []func(){
		func() { l.MoveLeft() },
		func() { l.Insert('x') },
		func() { l.MoveRight() },
		func() { l.MoveRight() },
		func() { l.Insert('y') },
		func() { l.MoveToStart() },
		func() { l.Backspace() },
		func() { l.MoveToEnd() },
		func() { l.Backspace() },
		func() { l.Backspace() },
	}
	for i, op := range ops {
		op()
		if c := l.Cursor(); c < 0 || c > l.Len() {
			t.Fatalf("op %d: cursor %d out of range [0,%d]", i, c, l.Len())
		}
	}
}

func TestLineMoveBoundaries(t *testing.T) {
	l := NewLine()
	l.MoveLeft()
	l.MoveRight()
	if l.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 on empty line", l.Cursor())
	}

	l.Insert('a')
	l.MoveRight()
	if l.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1 after MoveRight at end", l.Cursor())
	}
	l.MoveToStart()
	l.MoveLeft()
	if l.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 after MoveLeft at start", l.Cursor())
	}
}

func TestLineEmbeddedNewline(t *testing.T) {
	l := NewLine()
	l.Insert('(')
	l.Insert('\n')
	l.Insert('x')
	if got := l.Text(); got != "(\nx" {
		t.Errorf("Text() = %q, want %q", got, "(\nx")
	}
}
