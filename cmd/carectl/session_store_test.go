package main

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	t.Run("Missing file loads empty credentials", func(t *testing.T) {
		store := newSessionStore(filepath.Join(t.TempDir(), "session.json"))

		credentials, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, session.Credentials{}, credentials)
	})

	t.Run("Saved credentials round trip with private permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.json")
		store := newSessionStore(path)
		saved := session.Credentials{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         &care_dto.User{ID: "u1", Username: "nurse"},
		}

		require.NoError(t, store.Save(saved))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("Clear removes the file and tolerates a second call", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := newSessionStore(path)
		require.NoError(t, store.Save(session.Credentials{AccessToken: "a"}))

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Corrupt file is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

		_, err := newSessionStore(path).Load()
		assert.Error(t, err)
	})
}
