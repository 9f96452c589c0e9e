package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileState stores the remembered view of a single file.
type FileState struct {
	CursorRow int `json:"cursor_row"`
	CursorCol int `json:"cursor_col"`
	Scroll    int `json:"scroll"`
}

// Session stores the complete persisted editor state.
type Session struct {
	Files     map[string]FileState `json:"files"`
	LastSaved time.Time            `json:"last_saved"`
}

// Manager handles session persistence. All access happens on the
// single input-processing goroutine, so there is no locking.
type Manager struct {
	session Session
	path    string
}

// NewManager loads the persisted session if one exists.
func NewManager() (*Manager, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	m := &Manager{
		session: Session{Files: make(map[string]FileState)},
		path:    path,
	}
	m.load()
	return m, nil
}

func sessionPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "ved", "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	if s.Files == nil {
		s.Files = make(map[string]FileState)
	}
	m.session = s
}

// Get returns the remembered state for path.
func (m *Manager) Get(path string) (FileState, bool) {
	st, ok := m.session.Files[path]
	return st, ok
}

// Set records the state for path. The change is not written until Save.
func (m *Manager) Set(path string, st FileState) {
	if path == "" {
		return
	}
	m.session.Files[path] = st
}

// Save writes the session to disk.
func (m *Manager) Save() error {
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(&m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}
