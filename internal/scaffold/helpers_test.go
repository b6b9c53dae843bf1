package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// fixture returns a root for one of the trees under testdata/scaffold_fixtures.
func fixture(t *testing.T, name string) TemplateRoot {
	t.Helper()

	base, err := filepath.Abs(filepath.Join("testdata", "scaffold_fixtures"))
	require.NoError(t, err)
	return TemplateRoot{FS: os.DirFS(base), Dir: name, Path: base}
}

// archiveRoot builds an in-memory template from a txtar archive. Every file
// in the archive is placed under the "tmpl" directory.
func archiveRoot(t *testing.T, archive string) TemplateRoot {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, f := range txtar.Parse([]byte(archive)).Files {
		fsys["tmpl/"+f.Name] = &fstest.MapFile{Data: f.Data, Mode: 0o644}
	}
	return TemplateRoot{FS: fsys, Dir: "tmpl"}
}

func readFile(t *testing.T, parts ...string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(parts...))
	require.NoError(t, err)
	return string(b)
}

// listTree returns every path under dir, relative and slash-separated,
// directories suffixed with "/".
func listTree(t *testing.T, dir string) []string {
	t.Helper()

	var out []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	return out
}
