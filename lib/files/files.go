package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/lintsel/lib/utils"
)

var ErrDirectoryNotFound = errors.New("directory not found")

// Discover returns the absolute path of every file below rootDir (recursively) whose name ends
// with extension. The walk is top-down and lexical inside each directory.
func Discover(rootDir string, extension string) ([]string, error) {
	return DiscoverWithOptions(rootDir, extension, nil)
}

func DiscoverWithOptions(rootDir string, extension string, opts *Options) ([]string, error) {
	rootDir, err := checkRootDir(rootDir)
	if err != nil {
		return nil, err
	}

	excluded, err := newFilter(rootDir, opts)
	if err != nil {
		return nil, err
	}

	return walk(rootDir, hasExtension(extension), excluded), nil
}

func checkRootDir(rootDir string) (string, error) {
	rootDir, err := utils.PathAbs(rootDir)
	if err != nil {
		return "", errors.WithStack(err)
	}

	info, err := os.Stat(rootDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", errors.Wrapf(ErrDirectoryNotFound, "%v", rootDir)
	case err != nil:
		return "", errors.Wrapf(err, "checking %v", rootDir)
	case !info.IsDir():
		return "", errors.Wrapf(ErrDirectoryNotFound, "%v is not a directory", rootDir)
	}

	return rootDir, nil
}

func hasExtension(extension string) func(name string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, extension)
	}
}

// walk never fails: entries that can't be read (permission denied, removed while walking) are
// skipped together with their subtree.
func walk(rootDir string, matches func(name string) bool, excluded *filter) []string {
	var result []string

	start := rootDir
	if info, err := os.Lstat(rootDir); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// WalkDir does not descend into a symlinked root, but it follows one ending in a separator.
		start = rootDir + string(filepath.Separator)
	}

	_ = filepath.WalkDir(start, func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return nil

		case entry.IsDir():
			if path != start && excluded.excludes(path, true) {
				return filepath.SkipDir
			}
			return nil

		case !matches(entry.Name()):
			return nil

		case !isFileEntry(path, entry):
			return nil

		case excluded.excludes(path, false):
			return nil

		default:
			result = append(result, path)
			return nil
		}
	})

	return result
}

// listDir is the non recursive version of walk.
func listDir(dir string, matches func(name string) bool) []string {
	// ReadDir returns what it could read before failing, so the error can be ignored.
	entries, _ := os.ReadDir(dir)

	var result []string
	for _, entry := range entries {
		if entry.IsDir() || !matches(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !isFileEntry(path, entry) {
			continue
		}

		result = append(result, path)
	}

	return result
}

// isFileEntry accepts anything that is not a directory. Symlinks are resolved so that links to
// directories are left out, but dangling links are still files.
func isFileEntry(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return true
	}

	info, err := os.Stat(path)
	if err != nil {
		return true
	}

	return !info.IsDir()
}
