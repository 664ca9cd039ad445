// Package filestore stores processed damage photos on local disk.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, errors.New("filestore: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: mkdir %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Save writes data under a fresh uuid-based name and returns that name.
func (l *Local) Save(data []byte, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("filestore: write %s: %w", name, err)
	}
	return name, nil
}

// Path resolves a stored name to an absolute-ish path, rejecting anything that
// could escape the store directory.
func (l *Local) Path(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	p := filepath.Join(l.dir, name)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return p, nil
}

func (l *Local) Remove(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return ErrInvalidName
	}
	return nil
}

// ExtForMime maps stored mime types to file extensions.
func ExtForMime(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}
