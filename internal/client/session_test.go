package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"student-portal-system/internal/model"
)

func TestSessionRoundTrip(t *testing.T) {
	session := NewSession(filepath.Join(t.TempDir(), "session.json"))

	_, ok := session.Load()
	require.False(t, ok)

	profile := &model.Profile{
		ID:        "s1",
		FirstName: "Jane",
		RegNumber: "CS/001/2024",
		Token:     "token-123",
	}
	require.NoError(t, session.Save(profile))

	loaded, ok := session.Load()
	require.True(t, ok)
	require.Equal(t, profile, loaded)

	session.Clear()
	_, ok = session.Load()
	require.False(t, ok)
}

func TestSessionDiscardsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session := NewSession(path)
	_, ok := session.Load()
	require.False(t, ok)

	// The corrupt file is gone, so the next load is a clean miss.
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSessionSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	session := NewSession(path)

	require.NoError(t, session.Save(&model.Profile{ID: "s1"}))

	loaded, ok := session.Load()
	require.True(t, ok)
	require.Equal(t, "s1", loaded.ID)
}
