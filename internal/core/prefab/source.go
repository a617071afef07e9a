package prefab

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source reads prefab text from the host's storage. Reads are synchronous;
// a slow or missing file blocks the calling Load until the read completes or
// fails.
type Source interface {
	ReadText(path string) (string, error)
}

// DirSource reads prefab files from a fixed root directory, the conventional
// prefab storage location.
type DirSource struct {
	root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) ReadText(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MapSource serves prefab text from memory, for tests and embedded assets.
type MapSource map[string]string

func (s MapSource) ReadText(path string) (string, error) {
	text, ok := s[path]
	if !ok {
		return "", fmt.Errorf("no such prefab: %s", path)
	}
	return text, nil
}
