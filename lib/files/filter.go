package files

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/pescuma/lintsel/lib/utils"
)

// Options narrows down the files returned by DiscoverWithOptions. The zero value keeps every file.
type Options struct {
	// RespectGitignore skips what the .gitignore at the root directory ignores.
	RespectGitignore bool
	// Excludes are doublestar globs, relative to the root directory and slash separated.
	Excludes []string
	// SkipVendored skips third party code, as detected by enry.
	SkipVendored bool
}

type filter struct {
	rootDir      string
	gitignore    *ignore.GitIgnore
	patterns     []string
	skipVendored bool
}

func newFilter(rootDir string, opts *Options) (*filter, error) {
	if opts == nil {
		return nil, nil
	}

	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude glob: %v", pattern)
		}
	}

	result := &filter{
		rootDir:      rootDir,
		patterns:     opts.Excludes,
		skipVendored: opts.SkipVendored,
	}

	if opts.RespectGitignore {
		path := filepath.Join(rootDir, ".gitignore")

		exists, err := utils.FileExists(path)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if exists {
			result.gitignore, err = ignore.CompileIgnoreFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing %v", path)
			}
		}
	}

	return result, nil
}

func (f *filter) excludes(path string, isDir bool) bool {
	if f == nil {
		return false
	}

	rel, err := filepath.Rel(f.rootDir, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)

	for _, pattern := range f.patterns {
		if m, err := doublestar.Match(pattern, rel); err == nil && m {
			return true
		}
	}

	if isDir {
		if f.gitignore != nil && filepath.Base(path) == ".git" {
			return true
		}

		rel += "/"
	}

	if f.gitignore != nil && f.gitignore.MatchesPath(rel) {
		return true
	}

	if f.skipVendored && enry.IsVendor(rel) {
		return true
	}

	return false
}
