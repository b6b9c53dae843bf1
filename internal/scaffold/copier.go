package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/leapscaffold/internal/template"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	execPerm = 0o755

	// sniffLen bounds the NUL-byte scan used to spot binary files.
	sniffLen = 8000
)

type copier struct {
	root   TemplateRoot
	dest   string
	vars   template.Vars
	out    io.Writer
	logger *slog.Logger
	indent bool
	report *Report
}

// Copy instantiates the template tree at root into dest.
//
// Every directory of the template maps to a directory under dest and every
// regular file to a file, with {{ token }} markers substituted in each path
// segment and in text file contents. Missing directories are created; an
// existing directory is reported with an "already exists" line and filled in
// anyway. Files are always overwritten.
//
// Progress lines go to out. Only unrecoverable I/O problems abort the copy;
// they are returned as *CopyError together with the partial report.
func Copy(root TemplateRoot, dest string, vars template.Vars, out io.Writer, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	if out == nil {
		out = io.Discard
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, &CopyError{Op: "resolve", Path: dest, Err: err}
	}

	c := &copier{
		root:   root,
		dest:   absDest,
		vars:   o.vars.Merge(vars),
		out:    out,
		logger: o.logger,
		indent: o.indent,
		report: &Report{Template: root.String(), Destination: absDest},
	}

	srcDir, err := c.resolveRoot()
	if err != nil {
		return c.report, err
	}
	if root.Contains(absDest) {
		return c.report, &CopyError{Op: "resolve", Path: absDest, Err: ErrDestinationInTemplate}
	}

	c.logger.Debug("copying template", "template", c.report.Template, "destination", absDest)
	if err := c.copyDir(srcDir, absDest, 0); err != nil {
		return c.report, err
	}
	return c.report, nil
}

func (c *copier) resolveRoot() (string, error) {
	dir := c.root.dir()
	if c.root.FS == nil || !fs.ValidPath(dir) {
		return "", &CopyError{Op: "resolve", Path: c.root.display(dir), Err: ErrTemplateNotFound}
	}

	info, err := fs.Stat(c.root.FS, dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", &CopyError{Op: "resolve", Path: c.root.display(dir), Err: ErrTemplateNotFound}
	case err != nil:
		return "", &CopyError{Op: "stat", Path: c.root.display(dir), Err: err}
	case !info.IsDir():
		return "", &CopyError{Op: "resolve", Path: c.root.display(dir), Err: fmt.Errorf("%w: %w", ErrTemplateNotFound, ErrNotDirectory)}
	}
	return dir, nil
}

type dirPair struct {
	src, dest string
}

// copyDir handles one directory: the directory itself, then its files, then
// its subdirectories in listing order.
func (c *copier) copyDir(srcDir, destDir string, depth int) error {
	if err := c.ensureDir(destDir, depth); err != nil {
		return err
	}

	entries, err := fs.ReadDir(c.root.FS, srcDir)
	if err != nil {
		return &CopyError{Op: "read", Path: c.root.display(srcDir), Err: err}
	}

	var subdirs []dirPair
	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())

		name, err := c.destName(entry.Name(), srcPath)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, name)

		info, err := fs.Stat(c.root.FS, srcPath) // follows symlinks
		if err != nil {
			return &CopyError{Op: "stat", Path: c.root.display(srcPath), Err: err}
		}

		switch {
		case info.IsDir() && entry.Type()&fs.ModeSymlink != 0:
			c.logger.Debug("skipping symlinked directory", "path", c.root.display(srcPath))
		case info.IsDir():
			subdirs = append(subdirs, dirPair{src: srcPath, dest: destPath})
		case info.Mode().IsRegular():
			if err := c.copyFile(srcPath, destPath, info.Mode(), depth+1); err != nil {
				return err
			}
		default:
			c.logger.Debug("skipping irregular file", "path", c.root.display(srcPath), "mode", info.Mode().String())
		}
	}

	for _, d := range subdirs {
		if err := c.copyDir(d.src, d.dest, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (c *copier) ensureDir(dir string, depth int) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		c.printf(depth, "Directory %s already exists", dir)
		c.report.ExistingDirs = append(c.report.ExistingDirs, c.rel(dir))
		c.logger.Debug("directory exists", "path", dir)
		return nil

	case err == nil:
		return &CopyError{Op: "mkdir", Path: dir, Err: ErrNotDirectory}

	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return &CopyError{Op: "mkdir", Path: dir, Err: err}
		}
		c.printf(depth, "Creating %s%c", dir, filepath.Separator)
		c.report.CreatedDirs = append(c.report.CreatedDirs, c.rel(dir))
		c.logger.Debug("created directory", "path", dir)
		return nil

	default:
		return &CopyError{Op: "stat", Path: dir, Err: err}
	}
}

func (c *copier) copyFile(srcPath, destPath string, mode fs.FileMode, depth int) error {
	content, err := fs.ReadFile(c.root.FS, srcPath)
	if err != nil {
		return &CopyError{Op: "read", Path: c.root.display(srcPath), Err: err}
	}

	rel := c.rel(destPath)
	if isText(content) {
		out, unresolved := template.Render(string(content), srcPath, c.vars)
		for _, u := range unresolved {
			c.logger.Debug("left marker unresolved", "marker", u.String())
		}
		content = []byte(out)
	} else {
		c.report.RawFiles = append(c.report.RawFiles, rel)
	}

	perm := fs.FileMode(filePerm)
	if mode&0o111 != 0 {
		perm = execPerm
	}

	if err := os.WriteFile(destPath, content, perm); err != nil {
		return &CopyError{Op: "write", Path: destPath, Err: err}
	}

	c.printf(depth, "Copying %s to %s", path.Base(srcPath), destPath)
	c.report.Files = append(c.report.Files, rel)
	c.logger.Debug("wrote file", "source", c.root.display(srcPath), "path", destPath, "bytes", len(content))
	return nil
}

// destName substitutes tokens in a single path segment and rejects results
// that would escape or collapse the tree.
func (c *copier) destName(name, srcPath string) (string, error) {
	for _, tok := range template.Tokens(name) {
		if _, ok := c.vars[tok.Value]; tok.Type == template.TokenMarker && !ok {
			c.logger.Debug("left marker unresolved", "path", c.root.display(srcPath), "marker", tok.Raw)
		}
	}
	out := template.Substitute(name, c.vars)
	if out == "" || out == "." || out == ".." ||
		strings.ContainsRune(out, '/') || strings.ContainsRune(out, filepath.Separator) {
		return "", &CopyError{
			Op:   "substitute",
			Path: c.root.display(srcPath),
			Err:  fmt.Errorf("%w: %q", ErrUnsafePath, out),
		}
	}
	return out, nil
}

func (c *copier) rel(p string) string {
	r, err := filepath.Rel(c.dest, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(r)
}

func (c *copier) printf(depth int, format string, args ...any) {
	if c.indent {
		_, _ = io.WriteString(c.out, strings.Repeat("  ", depth))
	}
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}

// isText reports whether content should go through substitution.
func isText(content []byte) bool {
	sniff := content
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	return !bytes.Contains(sniff, []byte{0}) && utf8.Valid(content)
}
