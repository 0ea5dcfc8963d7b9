package input

// State identifies the classifier's position in an escape sequence.
type State int

const (
	// StateNormal means bytes are plain input.
	StateNormal State = iota
	// StateEscape means an ESC byte was seen and the introducer is pending.
	StateEscape
	// StateEscapeSequence means ESC '[' was seen and the final byte is pending.
	StateEscapeSequence
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateEscape:
		return "Escape"
	case StateEscapeSequence:
		return "EscapeSequence"
	default:
		return "Unknown"
	}
}

// Action tells the engine what to do with a fed byte.
type Action int

const (
	// ActionNone means the byte was consumed by the state machine.
	ActionNone Action = iota
	// ActionDispatch means the byte is plain input for normal handling.
	ActionDispatch
	// ActionEscape means a two-byte CSI completed; the returned byte is its
	// final byte.
	ActionEscape
)

const esc = 0x1B

// Machine classifies incoming bytes one at a time.
// The accumulation buffer is empty whenever the state is StateNormal.
type Machine struct {
	state State
	buf   []byte
}

// NewMachine creates a classifier in StateNormal.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Pending returns the number of accumulated escape bytes.
func (m *Machine) Pending() int {
	return len(m.buf)
}

// Feed classifies one byte. The returned byte is meaningful only when the
// action is ActionDispatch (the byte itself) or ActionEscape (the CSI final
// byte).
func (m *Machine) Feed(b byte) (Action, byte) {
	switch m.state {
	case StateEscape:
		m.buf = append(m.buf, b)
		if b == '[' {
			m.state = StateEscapeSequence
			return ActionNone, 0
		}
		// Bare ESC or an unrecognized introducer: drop it.
		m.reset()
		return ActionNone, 0

	case StateEscapeSequence:
		m.buf = append(m.buf, b)
		if len(m.buf) == 2 && m.buf[0] == '[' {
			m.reset()
			return ActionEscape, b
		}
		return ActionNone, 0

	default: // StateNormal
		if b == esc {
			m.state = StateEscape
			return ActionNone, 0
		}
		return ActionDispatch, b
	}
}

func (m *Machine) reset() {
	m.state = StateNormal
	m.buf = m.buf[:0]
}
