package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalUploader writes files under Dir and exposes them below URLPrefix
type LocalUploader struct {
	Dir       string
	URLPrefix string
	now       func() time.Time
	create    func(path string) (io.WriteCloser, error)
}

// NewLocalUploader creates the upload directory if missing
func NewLocalUploader(dir, urlPrefix string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{Dir: dir, URLPrefix: urlPrefix, now: time.Now, create: createFile}, nil
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (u *LocalUploader) Save(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	name := ObjectName(u.now(), filename)
	dst, err := u.create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return u.URLPrefix + "/" + name, nil
}
