package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"

	"github.com/pescuma/lintsel/lib/files"
)

func TestLocateConfigs(t *testing.T) {
	testgroup.RunInParallel(t, &LocateConfigsTests{})
}

type LocateConfigsTests struct {
}

func (g *LocateConfigsTests) SearchesRecursivelyThenTwoAncestors(t *testgroup.T) {
	top := createTree(t.T,
		"g.conf",
		"skip/x.conf",
		"mid/m.conf",
		"mid/m.txt",
		"mid/side/s.conf",
		"mid/root/r.conf",
		"mid/root/nested/n.conf",
	)
	root := filepath.Join(top, "mid", "root")

	result, err := files.LocateConfigs(root, ".conf")

	t.NoError(err)
	t.Equal([]string{
		filepath.Join(root, "nested", "n.conf"),
		filepath.Join(root, "r.conf"),
		filepath.Join(top, "mid", "m.conf"),
		filepath.Join(top, "g.conf"),
	}, result)
}

func (g *LocateConfigsTests) DoesNotGoAboveTheGrandparent(t *testgroup.T) {
	top := createTree(t.T,
		"too_far.conf",
		"a/b/root/r.conf",
	)
	root := filepath.Join(top, "a", "b", "root")

	result, err := files.LocateConfigs(root, ".conf")

	t.NoError(err)
	t.Equal([]string{filepath.Join(root, "r.conf")}, result)
}

func (g *LocateConfigsTests) IgnoresDirectoriesInAncestors(t *testgroup.T) {
	top := createTree(t.T,
		"dir.conf/inside.txt",
		"root/r.txt",
	)
	root := filepath.Join(top, "root")

	result, err := files.LocateConfigs(root, ".conf")

	t.NoError(err)
	t.Empty(result)
}

func (g *LocateConfigsTests) StopsAtFilesystemRoot(t *testgroup.T) {
	top := createTree(t.T, "p.conf", "root/r.conf")
	root := filepath.Join(top, "root")

	result, err := files.LocateConfigsUpTo(root, ".conf", 1000)

	t.NoError(err)
	t.Subset(result, []string{
		filepath.Join(root, "r.conf"),
		filepath.Join(top, "p.conf"),
	})
}

func (g *LocateConfigsTests) ZeroLevelsIsOnlyRecursive(t *testgroup.T) {
	top := createTree(t.T, "p.conf", "root/r.conf")
	root := filepath.Join(top, "root")

	result, err := files.LocateConfigsUpTo(root, ".conf", 0)

	t.NoError(err)
	t.Equal([]string{filepath.Join(root, "r.conf")}, result)
}

func (g *LocateConfigsTests) SymlinkedRootIsWalked(t *testgroup.T) {
	top := createTree(t.T, "g.conf", "real/r.conf", "real/nested/n.conf")
	link := filepath.Join(top, "link")
	if err := os.Symlink(filepath.Join(top, "real"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	result, err := files.LocateConfigsUpTo(link, ".conf", 1)

	t.NoError(err)
	t.Equal([]string{
		filepath.Join(link, "nested", "n.conf"),
		filepath.Join(link, "r.conf"),
		filepath.Join(top, "g.conf"),
	}, result)
}

func (g *LocateConfigsTests) MissingRootDir(t *testgroup.T) {
	_, err := files.LocateConfigs(filepath.Join(t.TempDir(), "missing"), ".conf")

	t.True(errors.Is(err, files.ErrDirectoryNotFound))
}

func (g *LocateConfigsTests) IsIdempotent(t *testgroup.T) {
	top := createTree(t.T, "g.conf", "mid/m.conf", "mid/root/r.conf", "mid/root/x/y.conf")
	root := filepath.Join(top, "mid", "root")

	first, err := files.LocateConfigs(root, ".conf")
	t.Require.NoError(err)
	second, err := files.LocateConfigs(root, ".conf")
	t.Require.NoError(err)

	t.Equal(first, second)
}
