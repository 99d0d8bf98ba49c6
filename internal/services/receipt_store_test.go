package services

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskReceiptStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskReceiptStore(dir, "/uploads")

	path, err := store.Save(ReceiptFile{
		Content:  bytes.NewReader([]byte("jpeg bytes")),
		Filename: "photo.JPG",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/cow_purchase_"), "got %q", path)
	assert.True(t, strings.HasSuffix(path, ".JPG"))

	onDisk := filepath.Join(dir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskReceiptStore_RemoveMissingFileIsFine(t *testing.T) {
	store := NewDiskReceiptStore(t.TempDir(), "/uploads")

	assert.NoError(t, store.Remove("/uploads/never_existed.png"))
	assert.NoError(t, store.Remove(""))
}

func TestDiskReceiptStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "uploads")
	store := NewDiskReceiptStore(dir, "/uploads")

	_, err := store.Save(ReceiptFile{Content: bytes.NewReader([]byte("x")), Filename: "r.png"})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
