package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// load reads the persisted session entry. Anything short of a well-formed
// pair with a usable token is treated as absent: the stale file is removed
// and the store starts unauthenticated.
func (s *Store) load() (Session, bool) {
	var zero Session
	if s.path == "" {
		return zero, false
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return zero, false
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.remove()
		return zero, false
	}
	if sess.User.ID == "" || sess.Token == "" {
		s.remove()
		return zero, false
	}
	if !s.tokenUsable(sess.Token) {
		s.remove()
		return zero, false
	}
	return sess, true
}

// save writes the session as one JSON entry, atomically (temp file plus
// rename) so a crash mid-write never leaves a half-written pair on disk.
func (s *Store) save(sess Session) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "auth-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// remove deletes the persisted entry. A missing file is fine.
func (s *Store) remove() {
	if s.path == "" {
		return
	}
	_ = os.Remove(s.path)
}
