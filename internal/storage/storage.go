package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Uploader persists an uploaded file and returns its public reference
type Uploader interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// ObjectName builds the timestamp-prefixed name an upload is stored under.
// Directory components of the client-supplied name are dropped.
func ObjectName(now time.Time, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}
