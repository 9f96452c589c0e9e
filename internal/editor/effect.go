package editor

import (
	"errors"
	"io/fs"
)

// Effect is a side effect requested by the core and executed by the
// shell. The core never touches the filesystem or the process; it
// returns effects from HandleKey and the shell reports completion
// through the Finish*/Failed methods before the next key event.
type Effect interface {
	effect()
}

// LoadFile asks the shell to read path and call FinishLoad or
// LoadFailed.
type LoadFile struct {
	Path string
}

// SaveFile asks the shell to write Data to Path and call FinishSave
// or SaveFailed.
type SaveFile struct {
	Path string
	Data []byte
}

// Quit asks the shell to leave the event loop.
type Quit struct{}

func (LoadFile) effect() {}
func (SaveFile) effect() {}
func (Quit) effect()     {}

// FinishLoad installs freshly read file contents and resets the view.
func (e *Editor) FinishLoad(path string, data []byte) {
	e.buffer.SetContent(path, data)
	e.cursor = Cursor{}
	e.scroll = 0
	e.mode = ModeNormal
	e.setStatus("")
}

// LoadFailed surfaces a failed read; the buffer is left unchanged.
func (e *Editor) LoadFailed(path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		e.setStatus("File not found: " + path)
		return
	}
	e.setStatus(err.Error())
}

// FinishSave records a completed write.
func (e *Editor) FinishSave(path string) {
	e.buffer.markSaved(path)
	e.setStatus("written " + path)
}

// SaveFailed surfaces a failed write; the buffer stays dirty.
func (e *Editor) SaveFailed(err error) {
	e.setStatus(err.Error())
}
