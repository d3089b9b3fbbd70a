package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// UploadStore keeps uploaded images on local disk. Files are never removed so
// result pages can keep showing them.
type UploadStore struct {
	dir string
}

// NewUploadStore creates a store rooted at dir.
func NewUploadStore(dir string) *UploadStore {
	return &UploadStore{dir: dir}
}

// Dir returns the upload directory.
func (s *UploadStore) Dir() string { return s.dir }

// EnsureDir creates the upload directory when it does not exist.
func (s *UploadStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("storage: failed to create upload dir: %w", err)
	}
	return nil
}

// Save writes the uploaded file under a collision resistant name and returns
// that name and the full path.
func (s *UploadStore) Save(fh *multipart.FileHeader) (name, path string, err error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to open upload: %w", err)
	}
	defer src.Close()

	return s.SaveReader(fh.Filename, src)
}

// SaveReader is Save for an already opened stream.
func (s *UploadStore) SaveReader(original string, r io.Reader) (name, path string, err error) {
	if err := s.EnsureDir(); err != nil {
		return "", "", err
	}

	name, err = UniqueName(original)
	if err != nil {
		return "", "", err
	}
	path = filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", "", fmt.Errorf("storage: failed to write file: %w", err)
	}
	return name, path, nil
}

// UniqueName turns "nasi.jpg" into "nasi_<8 hex chars>.jpg". Directory parts
// of the original name are dropped.
func UniqueName(original string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" {
		base = "upload"
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("storage: failed to generate file suffix: %w", err)
	}
	return fmt.Sprintf("%s_%s%s", stem, hex.EncodeToString(suffix), ext), nil
}
