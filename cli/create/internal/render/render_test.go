package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryContent = []byte{0x89, 'P', 'N', 'G', 0x00, '{', '{', 'n', 'a', 'm', 'e', '}', '}', 0xff}

func testTemplate() fstest.MapFS {
	return fstest.MapFS{
		"a.txt":             {Data: binaryContent, Mode: 0o644},
		"b.hbs":             {Data: []byte("hello {{name}}\n"), Mode: 0o644},
		"src/index.ts.hbs":  {Data: []byte("// {{ pascalCase name }}\n"), Mode: 0o640},
		"src/{{name}}.json": {Data: []byte("{}"), Mode: 0o644},
		"src/empty":         {Mode: fs.ModeDir | 0o755},
		"MANIFEST.yaml":     {Data: []byte("description: test\n"), Mode: 0o644},
		"start.sh":          {Data: []byte("#!/bin/sh\n"), Mode: 0o444},
		".hbs":              {Data: []byte("{{ not a template }}"), Mode: 0o644},
	}
}

var testVars = map[string]string{"name": "my-app"}

// readTree returns relative file paths of root mapped to their content.
// Directories are mapped to "/".
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		if rel == "." {
			return nil
		}
		if entry.IsDir() {
			tree[filepath.ToSlash(rel)] = "/"
			return nil
		}
		buf, err := os.ReadFile(path)
		require.NoError(t, err)
		tree[filepath.ToSlash(rel)] = string(buf)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestCopy(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "my-app")

	copier := NewCopier()
	copier.Ignore = []string{"MANIFEST.yaml"}
	require.NoError(t, copier.Copy(testTemplate(), destDir, testVars))

	assert.Equal(t, map[string]string{
		"a.txt":           string(binaryContent),
		"b":               "hello my-app\n",
		"src":             "/",
		"src/index.ts":    "// MyApp\n",
		"src/my-app.json": "{}",
		"src/empty":       "/",
		"start.sh":        "#!/bin/sh\n",
		".hbs":            "{{ not a template }}",
	}, readTree(t, destDir))

	stat, err := os.Stat(destDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), stat.Mode().Perm())

	if runtime.GOOS != "windows" {
		stat, err = os.Stat(filepath.Join(destDir, "src", "index.ts"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())

		// Read-only template files become writable by the owner.
		stat, err = os.Stat(filepath.Join(destDir, "start.sh"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), stat.Mode().Perm())
	}
}

func TestCopyIsRepeatable(t *testing.T) {
	baseDir := t.TempDir()
	first := filepath.Join(baseDir, "first")
	second := filepath.Join(baseDir, "second")

	copier := NewCopier()
	require.NoError(t, copier.Copy(testTemplate(), first, testVars))
	require.NoError(t, copier.Copy(testTemplate(), second, testVars))

	assert.Equal(t, readTree(t, first), readTree(t, second))
}

func TestCopyFromDisk(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("static"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b.hbs"), []byte("{{name}}"), 0o644))

	destDir := filepath.Join(t.TempDir(), "nested", "parents", "app")
	require.NoError(t, NewCopier().Copy(os.DirFS(srcDir), destDir,
		map[string]string{"name": "app"}))

	assert.Equal(t, map[string]string{
		"a.txt": "static",
		"b":     "app",
	}, readTree(t, destDir))
}

func TestCopyDestinationExists(t *testing.T) {
	baseDir := t.TempDir()
	destDir := filepath.Join(baseDir, "my-app")
	require.NoError(t, os.Mkdir(destDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "keep.txt"), []byte("mine"), 0o644))
	before := readTree(t, baseDir)

	err := NewCopier().Copy(testTemplate(), destDir, testVars)
	require.ErrorIs(t, err, ErrDestinationExists)
	assert.Equal(t, before, readTree(t, baseDir))
}

func TestCopyRenderFailureLeavesNothing(t *testing.T) {
	baseDir := t.TempDir()
	destDir := filepath.Join(baseDir, "my-app")
	src := testTemplate()
	src["z/broken.hbs"] = &fstest.MapFile{Data: []byte("{{ missing }}"), Mode: 0o644}

	err := NewCopier().Copy(src, destDir, testVars)
	var renderErr *TemplateRenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "z/broken.hbs", renderErr.Path)
	assert.ErrorContains(t, err, `map has no entry for key "missing"`)

	assert.NoDirExists(t, destDir)
	assert.Empty(t, readTree(t, baseDir))
}

func TestCopyFileKeepsCause(t *testing.T) {
	err := copyFile(fstest.MapFS{}, "gone.bin", filepath.Join(t.TempDir(), "gone.bin"))
	require.ErrorContains(t, err, "error getting file info gone.bin")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = copyFile(testTemplate(), "a.txt", filepath.Join(t.TempDir(), "missing", "a.txt"))
	require.ErrorContains(t, err, "error creating")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	renderErr := &TemplateRenderError{Path: "gone.bin", Err: fmt.Errorf("error reading gone.bin: %w",
		fs.ErrNotExist)}
	assert.ErrorIs(t, renderErr, fs.ErrNotExist)
}

func TestCopyExecutables(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions are required")
	}
	destDir := filepath.Join(t.TempDir(), "my-app")

	copier := NewCopier()
	copier.Executables = []string{"start.sh", "missing.sh"}
	require.NoError(t, copier.Copy(testTemplate(), destDir, testVars))

	stat, err := os.Stat(filepath.Join(destDir, "start.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), stat.Mode().Perm())
}

func TestCheckDestination(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckDestination(filepath.Join(dir, "absent")))
	assert.ErrorIs(t, CheckDestination(dir), ErrDestinationExists)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.ErrorIs(t, CheckDestination(file), ErrDestinationExists)
}

func TestMoveDir(t *testing.T) {
	baseDir := t.TempDir()
	src := filepath.Join(baseDir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "f"), []byte("x"), 0o644))

	dst := filepath.Join(baseDir, "dst")
	require.NoError(t, moveDir(src, dst))
	assert.NoDirExists(t, src)
	assert.Equal(t, map[string]string{"sub": "/", "sub/f": "x"}, readTree(t, dst))

	require.NoError(t, os.Mkdir(src, 0o755))
	assert.ErrorIs(t, moveDir(src, dst), ErrDestinationExists)
}
