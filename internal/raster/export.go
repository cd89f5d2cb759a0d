package raster

import (
	"fmt"
	"os"
	"path/filepath"
)

// SavePNG writes the last presented frame to dir as frame-NNNN.png and
// returns the file path.
func (s *Surface) SavePNG(dir string, n int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", n))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := s.WritePNG(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
