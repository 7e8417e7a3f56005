// Package fs implements the blob store on the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes blobs as files under a fixed root directory. The root is passed
// in at construction time rather than read from the environment at call time.
// Locators are absolute file paths.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a Store rooted there.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("fs blob store: root directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("fs blob store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("fs blob store: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Save writes data under the given name. The write goes to a temp file first
// and is renamed into place, so a returned locator never points at a partial
// file. Duplicate names overwrite.
func (s *Store) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkName(name); err != nil {
		return "", fmt.Errorf("fs blob store: %w", err)
	}

	dst := filepath.Join(s.root, name)
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("fs blob store: create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("fs blob store: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("fs blob store: close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("fs blob store: rename %s: %w", name, err)
	}
	return dst, nil
}

// checkName keeps blob names from escaping the root directory.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("blob name is required")
	}
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		return fmt.Errorf("blob name %q must not contain path elements", name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("blob name contains NUL")
	}
	return nil
}
