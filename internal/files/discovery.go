// Package files provides discovery of candidate shipment documents in the
// input directory.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shipfill/internal/config"
)

// FileInfo represents a discovered input workbook
type FileInfo struct {
	Path string
	Name string
	Size int64
}

// FindInputFiles returns the shipment documents in dir, sorted by name so the
// batch output ordering is deterministic. Only regular files with the .xlsx
// extension are selected; Excel lock files (~$ prefix) are excluded.
// A missing or unreadable directory is an error for the caller to treat as
// fatal.
func FindInputFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, config.InputExtension) ||
			strings.HasPrefix(name, config.TempFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		files = append(files, FileInfo{
			Path: filepath.Join(dir, name),
			Name: name,
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
