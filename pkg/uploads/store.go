package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves profile images to local disk. The rest of the system only ever
// sees the returned filename; it never touches the filesystem itself.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the uploaded content under a collision-free name derived from
// the owning user and returns that name.
func (s *Store) Save(userID uint, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("user_%d_%s%s", userID, uuid.New().String()[:8], ext)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return filename, nil
}

// Path returns the on-disk path for a stored filename.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
