package storefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emstack/go-employee-console/token"
	"github.com/emstack/go-employee-console/token/storefile"
)

func TestSaveAndRead(t *testing.T) {
	store, err := storefile.New(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "", store.AccessToken())
	require.Equal(t, "", store.RefreshToken())

	require.NoError(t, store.Save(token.Pair{Access: "a1", Refresh: "r1"}))
	require.Equal(t, "a1", store.AccessToken())
	require.Equal(t, "r1", store.RefreshToken())

	// Overwrite replaces both tokens together.
	require.NoError(t, store.Save(token.Pair{Access: "a2", Refresh: "r2"}))
	require.Equal(t, "a2", store.AccessToken())
	require.Equal(t, "r2", store.RefreshToken())
}

func TestPairSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := storefile.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(token.Pair{Access: "persisted", Refresh: "also-persisted"}))

	reopened, err := storefile.New(dir)
	require.NoError(t, err)
	require.Equal(t, "persisted", reopened.AccessToken())
	require.Equal(t, "also-persisted", reopened.RefreshToken())
}

func TestClearRemovesBothTokens(t *testing.T) {
	dir := t.TempDir()

	store, err := storefile.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(token.Pair{Access: "a", Refresh: "r"}))

	require.NoError(t, store.Clear())
	require.Equal(t, "", store.AccessToken())
	require.Equal(t, "", store.RefreshToken())

	// Cleared state survives reopen too.
	reopened, err := storefile.New(dir)
	require.NoError(t, err)
	require.Equal(t, "", reopened.AccessToken())
}

func TestClearOnEmptyStore(t *testing.T) {
	store, err := storefile.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Clear())
}

func TestCorruptFileMeansSignedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	store, err := storefile.New(dir)
	require.NoError(t, err)
	require.Equal(t, "", store.AccessToken())
}
