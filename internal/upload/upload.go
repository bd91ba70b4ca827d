// Package upload manages the local uploads directory: collision-free
// filenames for incoming multipart files and best-effort removal when
// the owning record is deleted.
package upload

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads/"

type Manager struct {
	dir    string
	logger *log.Logger
}

// NewManager creates the uploads directory if missing.
func NewManager(dir string, logger *log.Logger) (*Manager, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Manager{dir: dir, logger: logger}, nil
}

func (m *Manager) Dir() string {
	return m.dir
}

// Save writes the uploaded file to disk under a synthesized name and
// returns the public path to store on the record. Uniqueness comes
// from the timestamp plus a random component, not from locking.
func (m *Manager) Save(field string, fh *multipart.FileHeader) (string, error) {
	name := filename(field, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return PublicPrefix + name, nil
}

// Remove deletes the file behind a stored public path. Failures are
// logged and swallowed: losing an orphan file never fails a request.
func (m *Manager) Remove(ref string) {
	name := strings.TrimPrefix(ref, PublicPrefix)
	if name == "" || name != filepath.Base(name) {
		return
	}
	if err := os.Remove(filepath.Join(m.dir, name)); err != nil && !os.IsNotExist(err) {
		m.logger.Printf("failed to remove uploaded file %s: %v", name, err)
	}
}

func filename(field, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.NewString(), ext)
}
