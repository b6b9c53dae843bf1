package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TemplateRoot identifies a template tree: a filesystem and a slash-separated
// directory inside it. It is resolved when a copy starts and never modified.
type TemplateRoot struct {
	FS  fs.FS
	Dir string

	// Path is the OS directory backing FS, or empty for embedded templates.
	Path string
}

// DirRoot returns a TemplateRoot for a template directory on disk.
// The directory is not checked here; Copy reports a missing root.
func DirRoot(dir string) (TemplateRoot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return TemplateRoot{}, fmt.Errorf("failed to resolve template directory %s: %w", dir, err)
	}
	return TemplateRoot{FS: os.DirFS(abs), Dir: ".", Path: abs}, nil
}

// OnDisk reports whether the template lives in an OS directory.
func (r TemplateRoot) OnDisk() bool {
	return r.Path != ""
}

// Contains reports whether p is the template directory or lies below it.
// Embedded templates contain no OS paths. Symlinks are resolved as far as
// the path exists.
func (r TemplateRoot) Contains(p string) bool {
	if !r.OnDisk() {
		return false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(realPath(r.display(r.dir())), realPath(abs))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// realPath resolves symlinks in the longest existing prefix of an absolute
// path and appends the remainder unchanged.
func realPath(p string) string {
	var rest []string
	for cur := p; ; {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return p
		}
		rest = append([]string{filepath.Base(cur)}, rest...)
		cur = parent
	}
}

// dir returns the cleaned directory inside FS.
func (r TemplateRoot) dir() string {
	if r.Dir == "" {
		return "."
	}
	return r.Dir
}

// display returns a human readable location for name, a path inside FS.
func (r TemplateRoot) display(name string) string {
	if r.OnDisk() {
		return filepath.Join(r.Path, filepath.FromSlash(name))
	}
	return name
}

func (r TemplateRoot) String() string {
	if r.OnDisk() {
		return r.display(r.dir())
	}
	return "embedded:" + r.dir()
}
