// Package scaffold instantiates project trees from template directories.
//
// A Scaffold binds a name to a TemplateRoot. Create derives the package name
// from the user's project name and hands the tree walk to Copy, which
// substitutes {{ token }} markers in paths and file contents.
package scaffold

import (
	"io"
	"path/filepath"

	"github.com/leapstack-labs/leapscaffold/internal/template"
	"github.com/leapstack-labs/leapscaffold/pkg/naming"
)

// PackageToken is the variable bound to the normalized project name.
const PackageToken = "package"

// DefaultName is the scaffold used when none is requested.
const DefaultName = "base"

// Scaffold is a named, read-only template.
type Scaffold struct {
	Name        string
	Description string
	Root        TemplateRoot
}

// Create copies the scaffold into parent/name.
//
// The visible folder keeps the raw name as typed; only the {{package}}
// token receives the normalized form.
func (s *Scaffold) Create(name, parent string, out io.Writer, opts ...Option) (*Report, error) {
	vars := template.Vars{PackageToken: naming.Normalize(name)}
	dest := filepath.Join(parent, name)
	return Copy(s.Root, dest, vars, out, opts...)
}
