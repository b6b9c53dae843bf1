package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapscaffold/internal/template"
	"github.com/leapstack-labs/leapscaffold/internal/testutil"
)

func TestScaffold_Create(t *testing.T) {
	s := &Scaffold{Name: "files", Root: fixture(t, "file_sub")}
	parent := t.TempDir()

	report, err := s.Create("Thingy", parent, new(bytes.Buffer))
	require.NoError(t, err)

	dest := filepath.Join(parent, "Thingy")
	assert.Equal(t, dest, report.Destination)
	assert.FileExists(t, filepath.Join(dest, "foo_thingy"), "raw name for the folder, normalized name for the token")
	assert.FileExists(t, filepath.Join(dest, "bar_thingy", "spam.txt"))
}

func TestScaffold_CreateNormalizesPackage(t *testing.T) {
	s := &Scaffold{Name: "content", Root: fixture(t, "content_sub")}
	parent := t.TempDir()

	_, err := s.Create("My-App 2", parent, nil)
	require.NoError(t, err)

	assert.Equal(t, "YAR myapp2", strings.TrimSpace(readFile(t, parent, "My-App 2", "foo")))
}

func TestScaffold_CreatePackageTokenWins(t *testing.T) {
	root := archiveRoot(t, "-- about.txt --\n{{package}} by {{author}}\n")
	s := &Scaffold{Name: "about", Root: root}
	parent := t.TempDir()

	_, err := s.Create("Sam", parent, nil,
		WithVars(template.Vars{"package": "override", "author": "pat"}),
		WithLogger(testutil.NewTestLogger(t)),
	)
	require.NoError(t, err)

	assert.Equal(t, "sam by pat\n", readFile(t, parent, "Sam", "about.txt"))
}

func TestScaffold_CreateExistingProject(t *testing.T) {
	s := &Scaffold{Name: "simple", Root: fixture(t, "simple")}
	parent := t.TempDir()

	_, err := s.Create("app", parent, nil)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	report, err := s.Create("app", parent, out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "already exists")
	assert.True(t, report.HasExisting())
}

func TestScaffold_CreateMissingTemplate(t *testing.T) {
	s := &Scaffold{Name: "broken", Root: fixture(t, "nope")}

	_, err := s.Create("app", t.TempDir(), nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestScaffold_CreateLogsUnresolvedMarkers(t *testing.T) {
	root := archiveRoot(t, "-- f.txt --\n{{ unknown }}\n")
	s := &Scaffold{Name: "f", Root: root}
	logger, logs := testutil.NewCaptureLogger()

	_, err := s.Create("app", t.TempDir(), nil, WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "left marker unresolved")
	assert.Contains(t, logs.String(), "{{ unknown }}")
}

func TestDirRoot(t *testing.T) {
	root, err := DirRoot(filepath.Join("testdata", "scaffold_fixtures", "simple"))
	require.NoError(t, err)

	assert.True(t, root.OnDisk())
	assert.True(t, filepath.IsAbs(root.Path))
	assert.Equal(t, root.Path, root.String())

	dest := filepath.Join(t.TempDir(), "x")
	_, err = Copy(root, dest, nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dest, "foo"))
}

func TestTemplateRoot_StringEmbedded(t *testing.T) {
	root := archiveRoot(t, "-- a --\n")
	assert.False(t, root.OnDisk())
	assert.Equal(t, "embedded:tmpl", root.String())
}
