package assetstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gift_registry/internal/infrastructure/assetstore"
)

func TestStoreAndDelete(t *testing.T) {
	rq := require.New(t)

	store, err := assetstore.NewFileStore(t.TempDir())
	rq.NoError(err)

	ref, err := store.Store([]byte("png-bytes"), "PNG")
	rq.NoError(err)
	rq.Regexp(`^static/images/[0-9a-v]{20}\.png$`, ref)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "..", filepath.FromSlash(ref)))
	rq.NoError(err)
	rq.Equal([]byte("png-bytes"), data)

	rq.NoError(store.Delete(ref))
	// Повторное удаление — не ошибка.
	rq.NoError(store.Delete(ref))
	rq.NoError(store.Delete(""))
}

func TestStoreDropsBadExt(t *testing.T) {
	rq := require.New(t)

	store, err := assetstore.NewFileStore(t.TempDir())
	rq.NoError(err)

	ref, err := store.Store([]byte("x"), "../../etc/passwd")
	rq.NoError(err)
	rq.Regexp(`^static/images/[0-9a-v]{20}$`, ref)
}

func TestReplace(t *testing.T) {
	rq := require.New(t)

	root := t.TempDir()
	store, err := assetstore.NewFileStore(root)
	rq.NoError(err)

	oldRef, err := store.Store([]byte("old"), ".jpg")
	rq.NoError(err)

	newRef, err := store.Replace(oldRef, []byte("new"), ".jpg")
	rq.NoError(err)
	rq.NotEqual(oldRef, newRef)

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(oldRef)))
	rq.True(os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(newRef)))
	rq.NoError(err)
	rq.Equal([]byte("new"), data)
}

func TestDeleteRejectsForeignRef(t *testing.T) {
	rq := require.New(t)

	store, err := assetstore.NewFileStore(t.TempDir())
	rq.NoError(err)

	rq.Error(store.Delete("/etc/passwd"))
}
