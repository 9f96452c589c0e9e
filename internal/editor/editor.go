package editor

import (
	"strings"

	"github.com/kvasov/ved/internal/config"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
	ModeLeader
)

// leaderMarker is how the leader key is spelled in sequence displays.
const leaderMarker = "SPC"

// Key is one decoded input event delivered by the display
// collaborator.
type Key struct {
	Name string // "esc", "enter", "backspace", "up", "down", "space", or the literal character
	Rune rune   // set when the key carries a printable character
}

// CharKey builds the Key for a printable character.
func CharKey(r rune) Key {
	if r == ' ' {
		return Key{Name: "space", Rune: ' '}
	}
	return Key{Name: string(r), Rune: r}
}

// leaderState tracks one leader sequence. Created when LEADER mode is
// entered, discarded on cancel or dispatch.
type leaderState struct {
	seq  []string
	node *Group
}

// Editor is the modal core: buffer, cursor/viewport, mode machine,
// leader dispatch and palette. All mutation happens on the single
// input-processing path; HandleKey returns the side effects the shell
// must perform before the next event.
type Editor struct {
	buffer   *Buffer
	cursor   Cursor
	scroll   int
	mode     Mode
	keymap   *Group
	registry *Registry
	leader   *leaderState
	palette  *Palette

	leaderKey    string
	paletteLimit int

	statusMessage string
	branch        string
}

func New(cfg config.Config) *Editor {
	leaderKey := strings.TrimSpace(cfg.Editor.LeaderKey)
	if leaderKey == "" {
		leaderKey = "space"
	}
	limit := cfg.Editor.PaletteLimit
	if limit < 1 {
		limit = 50
	}
	return &Editor{
		buffer:       NewBuffer(),
		mode:         ModeNormal,
		keymap:       DefaultKeymap(),
		registry:     NewRegistry(),
		leaderKey:    leaderKey,
		paletteLimit: limit,
	}
}

// HandleKey routes one key event by mode and returns requested
// effects. The cursor is clamped after every event.
func (e *Editor) HandleKey(k Key) []Effect {
	var effects []Effect
	switch {
	case e.palette != nil:
		// The palette pre-empts all mode routing while open.
		effects = e.handlePalette(k)
	case e.mode == ModeInsert:
		e.statusMessage = ""
		e.handleInsert(k)
	case e.mode == ModeLeader:
		e.statusMessage = ""
		effects = e.handleLeader(k)
	default:
		e.statusMessage = ""
		effects = e.handleNormal(k)
	}
	e.cursor = clampCursor(e.buffer, e.cursor)
	return effects
}

// handleNormal serves NORMAL and VISUAL; they share movement and
// differ only in the mode label and the escape transition.
func (e *Editor) handleNormal(k Key) []Effect {
	if e.mode == ModeNormal {
		switch k.Name {
		case e.leaderKey:
			e.mode = ModeLeader
			e.leader = &leaderState{node: e.keymap}
			return nil
		case "i":
			e.mode = ModeInsert
			return nil
		case "v":
			e.mode = ModeVisual
			return nil
		case ":":
			e.openPalette("")
			return nil
		}
	}
	switch k.Name {
	case "esc":
		e.mode = ModeNormal
	case "h", "left":
		e.cursor.Col--
	case "l", "right":
		e.cursor.Col++
	case "j", "down":
		e.cursor.Row++
	case "k", "up":
		e.cursor.Row--
	case "0":
		e.cursor.Col = 0
	case "$":
		e.cursor.Col = e.buffer.LineLen(e.cursor.Row)
	}
	return nil
}

func (e *Editor) handleInsert(k Key) {
	switch k.Name {
	case "esc":
		e.mode = ModeNormal
	case "backspace":
		e.cursor = e.buffer.DeleteBackward(e.cursor.Row, e.cursor.Col)
	case "enter":
		e.cursor = e.buffer.InsertNewline(e.cursor.Row, e.cursor.Col)
	case "left":
		e.cursor.Col--
	case "right":
		e.cursor.Col++
	case "up":
		e.cursor.Row--
	case "down":
		e.cursor.Row++
	default:
		if k.Rune != 0 {
			e.buffer.InsertRune(e.cursor.Row, e.cursor.Col, k.Rune)
			e.cursor.Col++
		}
	}
}

// handleLeader steps the key tree one token at a time. A group
// descends, a binding dispatches its command exactly once, anything
// else cancels with a message naming the full failed sequence.
func (e *Editor) handleLeader(k Key) []Effect {
	st := e.leader
	if k.Name == "esc" {
		e.mode = ModeNormal
		e.leader = nil
		return nil
	}
	child, ok := st.node.Child(k.Name)
	if !ok {
		failed := append(append([]string{leaderMarker}, st.seq...), k.Name)
		e.setStatus("no binding: " + strings.Join(failed, " "))
		e.mode = ModeNormal
		e.leader = nil
		return nil
	}
	st.seq = append(st.seq, k.Name)
	switch node := child.(type) {
	case *Group:
		st.node = node
		return nil
	case *Binding:
		e.mode = ModeNormal
		e.leader = nil
		return e.runCommand(node.Command())
	}
	return nil
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

// SetStatusMessage lets the shell surface non-fatal conditions.
func (e *Editor) SetStatusMessage(msg string) {
	e.setStatus(msg)
}

// SetBranch sets the VCS branch shown on the status line.
func (e *Editor) SetBranch(name string) {
	e.branch = strings.TrimSpace(name)
}

func (e *Editor) Path() string   { return e.buffer.Path() }
func (e *Editor) Dirty() bool    { return e.buffer.Dirty() }
func (e *Editor) Cursor() Cursor { return e.cursor }
func (e *Editor) Scroll() int    { return e.scroll }

// RestoreView places the cursor and scroll, clamped against the
// current buffer. Used by the shell to restore a persisted session.
func (e *Editor) RestoreView(c Cursor, scroll int) {
	e.cursor = clampCursor(e.buffer, c)
	if scroll < 0 {
		scroll = 0
	}
	if max := e.buffer.LineCount() - 1; scroll > max {
		scroll = max
	}
	e.scroll = scroll
}

// ModeLabel is the status-line name of the current mode. The open
// palette is modal on top of the mode and labels itself COMMAND.
func (e *Editor) ModeLabel() string {
	if e.palette != nil {
		return "COMMAND"
	}
	switch e.mode {
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeLeader:
		return "LEADER"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}
