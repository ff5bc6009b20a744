package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single uploaded file at 10 MiB.
const MaxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
	".pdf":  true,
}

// Storage writes uploaded files into the media tree on local disk.
// Stored paths are relative to the root so the serving URL prefix can
// change without rewriting rows.
type Storage struct {
	root string
}

func NewStorage(root string) *Storage {
	return &Storage{root: root}
}

// Save stores the upload under uploads/<year>/<month>/ with a unique
// name and returns the path relative to the media root.
func (s *Storage) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file %q exceeds the %d byte limit", file.Filename, MaxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := strings.ToLower(strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename)))
	name = strings.ReplaceAll(name, " ", "_")

	now := time.Now().UTC()
	relPath := filepath.Join(
		"uploads",
		now.Format("2006"),
		now.Format("01"),
		fmt.Sprintf("%s_%s%s", uuid.New().String(), name, ext),
	)

	dst := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write media file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Remove deletes a stored file. Paths escaping the media root are refused.
func (s *Storage) Remove(relPath string) error {
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid media path %q", relPath)
	}
	return os.Remove(filepath.Join(s.root, clean))
}
