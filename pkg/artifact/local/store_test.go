package local_test

import (
	"context"
	"os"
	"path/filepath"
	"presell/pkg/artifact/local"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := local.New(local.Options{BaseDir: dir})
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "presells/p/t/desktop.jpg", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)

	want := filepath.Join(dir, "presells", "p", "t", "desktop.jpg")
	require.Equal(t, "file://"+filepath.ToSlash(want), ref)

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "jpeg", string(b))

	// overwrite
	_, err = store.Put(context.Background(), "presells/p/t/desktop.jpg", "image/jpeg", strings.NewReader("jpeg2"))
	require.NoError(t, err)
	b, err = os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "jpeg2", string(b))

	entries, err := os.ReadDir(filepath.Dir(want))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStore_PutPublicURL(t *testing.T) {
	store, err := local.New(local.Options{BaseDir: t.TempDir(), PublicBaseURL: "https://cdn.example.com/shots/"})
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "presells/p/t/mobile.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/shots/presells/p/t/mobile.jpg", ref)
}

func TestStore_PutRejectsTraversal(t *testing.T) {
	store, err := local.New(local.Options{BaseDir: t.TempDir()})
	require.NoError(t, err)

	for _, key := range []string{"../escape.jpg", "a/../../escape.jpg", "", " "} {
		_, err := store.Put(context.Background(), key, "image/jpeg", strings.NewReader("x"))
		require.Error(t, err, key)
	}
}

func TestNew(t *testing.T) {
	_, err := local.New(local.Options{})
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = local.New(local.Options{BaseDir: file})
	require.Error(t, err)

	nested := filepath.Join(t.TempDir(), "a", "b")
	_, err = local.New(local.Options{BaseDir: nested})
	require.NoError(t, err)
	require.DirExists(t, nested)
}
