package files

import (
	"path/filepath"
)

// AncestorLevels is how many directories above the root are searched for configuration files.
const AncestorLevels = 2

// LocateConfigs returns the files ending with extension found recursively under rootDir,
// followed by the ones directly inside its parent and grandparent directories.
//
// The upward search stops at the filesystem root. Ancestors that can't be read contribute
// nothing. Results are not deduplicated.
func LocateConfigs(rootDir string, extension string) ([]string, error) {
	return LocateConfigsUpTo(rootDir, extension, AncestorLevels)
}

func LocateConfigsUpTo(rootDir string, extension string, levels int) ([]string, error) {
	rootDir, err := checkRootDir(rootDir)
	if err != nil {
		return nil, err
	}

	matches := hasExtension(extension)

	result := walk(rootDir, matches, nil)

	dir := rootDir
	for i := 0; i < levels; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		result = append(result, listDir(parent, matches)...)

		dir = parent
	}

	return result, nil
}
