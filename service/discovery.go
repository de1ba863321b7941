package service

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/davidepi/bincc/domain"
)

// DiscoverBinaries expands `bincc structure --dir` input into a flat list
// of candidate binary paths: every regular file directly passed, plus
// every file under any directory argument whose path (relative to that
// directory) matches one of includeGlobs. Grounded on
// service/file_reader.go's CollectPythonFiles, generalized from a fixed
// ".py"/".pyi" extension check to caller-supplied doublestar patterns
// (SPEC_FULL.md 3: bmatcuk/doublestar/v4 upgrade).
func DiscoverBinaries(paths []string, includeGlobs []string) ([]string, error) {
	if len(includeGlobs) == 0 {
		includeGlobs = []string{"**/*"}
	}
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, domain.NewFileNotFoundError(p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		matches, err := matchDir(p, includeGlobs)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func matchDir(dir string, globs []string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		for _, g := range globs {
			if ok, _ := doublestar.Match(g, filepath.ToSlash(rel)); ok {
				out = append(out, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewError(domain.ErrCodeFileNotFound, "walking "+dir, err)
	}
	return out, nil
}
