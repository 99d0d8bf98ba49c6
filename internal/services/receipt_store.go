package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskReceiptStore stores receipt files under a public uploads
// directory with generated filenames and returns the relative path the
// frontend serves them from.
type DiskReceiptStore struct {
	dir        string
	publicPath string
}

func NewDiskReceiptStore(dir, publicPath string) *DiskReceiptStore {
	return &DiskReceiptStore{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}
}

// Save writes the uploaded file to disk under a timestamped name,
// keeping only the original extension
func (s *DiskReceiptStore) Save(f ReceiptFile) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads directory: %w", err)
	}

	name := fmt.Sprintf("cow_purchase_%d%s", time.Now().UnixMilli(), filepath.Ext(f.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f.Content); err != nil {
		return "", fmt.Errorf("write receipt file: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// Remove deletes a stored receipt by its public path. Missing files
// are not an error; the record reference is authoritative.
func (s *DiskReceiptStore) Remove(path string) error {
	if path == "" {
		return nil
	}

	// Only the generated filename is trusted from the stored path
	full := filepath.Join(s.dir, filepath.Base(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
