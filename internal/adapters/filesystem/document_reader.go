package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/ports"
)

// DocumentReader reads PRP documents from the local file system.
// Relative paths resolve against baseDir, or the working directory when empty.
type DocumentReader struct {
	baseDir string
}

// Verify interface compliance at compile time
var _ ports.DocumentReader = (*DocumentReader)(nil)

// NewDocumentReader creates a new DocumentReader
func NewDocumentReader(baseDir string) *DocumentReader {
	return &DocumentReader{baseDir: baseDir}
}

// Exists implements ports.DocumentReader.Exists
func (r *DocumentReader) Exists(path string) bool {
	_, err := os.Stat(r.resolve(path))
	return err == nil
}

// Read implements ports.DocumentReader.Read
func (r *DocumentReader) Read(path string) (string, error) {
	resolved := r.resolve(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", resolved, err)
	}
	logging.Logger.Debug("Read PRP document", "path", resolved, "bytes", len(data))
	return string(data), nil
}

func (r *DocumentReader) resolve(path string) string {
	if r.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.baseDir, path)
}
