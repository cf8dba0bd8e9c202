package main

import (
	"carehome-service/internal/app/services/shared/session"
	"errors"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// sessionStore keeps the CLI credentials in a private JSON file.
type sessionStore struct {
	path string
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{path: path}
}

// Load returns empty credentials when nothing was stored yet.
func (s *sessionStore) Load() (session.Credentials, error) {
	var credentials session.Credentials

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return credentials, nil
	}
	if err != nil {
		return credentials, err
	}

	err = json.Unmarshal(data, &credentials)
	return credentials, err
}

func (s *sessionStore) Save(credentials session.Credentials) error {
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		err = os.MkdirAll(dir, 0o700)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *sessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
