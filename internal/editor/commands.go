package editor

// Command ids are stable identifiers; the palette and the leader tree
// refer to commands by id, titles are what the palette displays.
const (
	cmdFileOpen = "file.open"
	cmdFileSave = "file.save"
	cmdPalette  = "palette.open"
	cmdQuit     = "editor.quit"
)

type Command struct {
	ID    string
	Title string
}

// Registry is the fixed id -> command mapping, built at startup.
// Registration order is the palette's unfiltered display order.
type Registry struct {
	order []Command
	byID  map[string]Command
}

func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Command)}
	r.register(cmdFileOpen, "Open File")
	r.register(cmdFileSave, "Save File")
	r.register(cmdPalette, "Command Palette")
	r.register(cmdQuit, "Quit")
	return r
}

func (r *Registry) register(id, title string) {
	cmd := Command{ID: id, Title: title}
	r.order = append(r.order, cmd)
	r.byID[id] = cmd
}

// Titles returns all command titles in registration order.
func (r *Registry) Titles() []string {
	titles := make([]string, len(r.order))
	for i, cmd := range r.order {
		titles[i] = cmd.Title
	}
	return titles
}

// ByTitle finds the command whose title exactly equals title.
func (r *Registry) ByTitle(title string) (Command, bool) {
	for _, cmd := range r.order {
		if cmd.Title == title {
			return cmd, true
		}
	}
	return Command{}, false
}

// runCommand is the single dispatch point for command effects. The
// command set is data; everything a command does goes through here.
func (e *Editor) runCommand(id string) []Effect {
	switch id {
	case cmdFileOpen:
		e.openPalette(openPrefix)
		return nil
	case cmdFileSave:
		return e.requestSave()
	case cmdPalette:
		e.openPalette("")
		return nil
	case cmdQuit:
		if e.buffer.Dirty() {
			e.setStatus("unsaved changes")
			return nil
		}
		return []Effect{Quit{}}
	default:
		e.setStatus("unknown command: " + id)
		return nil
	}
}

func (e *Editor) requestSave() []Effect {
	if e.buffer.Path() == "" {
		e.setStatus("no file name")
		return nil
	}
	return []Effect{SaveFile{Path: e.buffer.Path(), Data: e.buffer.Content()}}
}
