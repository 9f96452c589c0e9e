package app

import (
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/kvasov/ved/internal/config"
	"github.com/kvasov/ved/internal/editor"
	"github.com/kvasov/ved/internal/logger"
	"github.com/kvasov/ved/internal/project"
	"github.com/kvasov/ved/internal/session"
)

// App is the top-level runtime for ved: it owns the terminal, the
// event loop, and every side effect the core requests. The core is
// pure state; all file I/O and the process exit happen here, one key
// event at a time.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(os.Getenv("VED_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	sess, err := session.NewManager()
	if err != nil {
		logger.Warn("session unavailable", "err", err)
		sess = nil
	}

	th := newTheme(cfg.Theme)
	ed := editor.New(cfg)

	switch {
	case len(a.args) > 0:
		openFile(ed, sess, a.args[0])
	default:
		ed.SetStatusMessage("new buffer: i to edit, : for commands, space for keys")
	}

	for {
		w, h := s.Size()
		render(s, ed.Frame(w, h), th)

		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				// Interrupt: exit immediately, no save-on-exit.
				rememberView(ed, sess)
				return nil
			}
			k, ok := translateKey(ev)
			if !ok {
				continue
			}
			for _, eff := range ed.HandleKey(k) {
				switch eff := eff.(type) {
				case editor.LoadFile:
					rememberView(ed, sess)
					openFile(ed, sess, eff.Path)
				case editor.SaveFile:
					if err := os.WriteFile(eff.Path, eff.Data, 0o644); err != nil {
						logger.Error("save failed", "path", eff.Path, "err", err)
						ed.SaveFailed(err)
					} else {
						logger.Info("saved", "path", eff.Path, "bytes", len(eff.Data))
						ed.FinishSave(eff.Path)
					}
				case editor.Quit:
					rememberView(ed, sess)
					return nil
				}
			}
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

// openFile reads path into the editor, restores the remembered view
// for it, and resolves the surrounding project context. Failures are
// recoverable: the buffer is left as it was and a status message
// explains why.
func openFile(ed *editor.Editor, sess *session.Manager, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("open failed", "path", path, "err", err)
		ed.LoadFailed(path, err)
		return
	}
	ed.FinishLoad(path, data)
	logger.Info("opened", "path", path, "bytes", len(data))

	if sess != nil {
		if st, ok := sess.Get(path); ok {
			ed.RestoreView(editor.Cursor{Row: st.CursorRow, Col: st.CursorCol}, st.Scroll)
		}
	}
	ed.SetBranch(project.Branch(path))
}

// rememberView persists the current file's cursor and scroll. Errors
// only get logged; losing a session entry never blocks the editor.
func rememberView(ed *editor.Editor, sess *session.Manager) {
	if sess == nil || ed.Path() == "" {
		return
	}
	c := ed.Cursor()
	sess.Set(ed.Path(), session.FileState{CursorRow: c.Row, CursorCol: c.Col, Scroll: ed.Scroll()})
	if err := sess.Save(); err != nil {
		logger.Warn("session save failed", "err", err)
	}
}
