package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/uongozi/uongozi/internal/domain"
)

// sessionFile returns the path the CLI persists its session to so a
// login survives across invocations.
func sessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uongozi", "session.json")
}

func loadSession() (domain.Session, bool) {
	path := sessionFile()
	if path == "" {
		return domain.Session{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Session{}, false
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" {
		return domain.Session{}, false
	}
	return session, true
}

func saveSession(session domain.Session) error {
	path := sessionFile()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func clearSessionFile() {
	if path := sessionFile(); path != "" {
		_ = os.Remove(path)
	}
}
