package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/i230016arsaltemuri/lintgate/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"bin":          true,
	"testdata":     true,
}

// FileScanner implements domain.FileScanner by walking the filesystem and
// collecting every file the gate has a parser for.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns checkable files under projectPath, relative to it, in
// sorted order so repeated runs see an identical list.
func (s *FileScanner) Scan(projectPath string, excludePaths ...string) ([]string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		if extraSkip[relPath] {
			return nil
		}

		if domain.Checkable(relPath) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
