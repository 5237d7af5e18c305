package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"student-portal-system/internal/model"
)

// Session persists the signed-in profile between runs, the way the pages
// kept it in browser local storage. The server holds no session state.
type Session struct {
	Path string
}

func NewSession(path string) *Session {
	return &Session{Path: path}
}

// Load restores the saved profile. A missing or unparseable file yields the
// logged-out state; a corrupt file is discarded so the next Load does not
// trip over it again.
func (s *Session) Load() (*model.Profile, bool) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, false
	}

	var profile model.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.Clear()
		return nil, false
	}
	return &profile, true
}

// Save persists the profile after a successful login.
func (s *Session) Save(profile *model.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, raw, 0o600)
}

// Clear logs out by removing the session file.
func (s *Session) Clear() {
	_ = os.Remove(s.Path)
}
