// Package scaffolds ships the built-in project templates.
package scaffolds

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
)

//go:embed catalog.yaml all:_templates
var files embed.FS

// Entry is one scaffold listed in catalog.yaml.
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Dir         string `yaml:"dir"`
}

type catalog struct {
	Scaffolds []Entry `yaml:"scaffolds"`
}

// Catalog returns the entries of the embedded catalog in file order.
func Catalog() ([]Entry, error) {
	data, err := files.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read scaffold catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) ([]Entry, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse scaffold catalog: %w", err)
	}
	for i, e := range c.Scaffolds {
		if e.Name == "" {
			return nil, fmt.Errorf("scaffold catalog entry %d: name is required", i)
		}
		if e.Dir == "" || !fs.ValidPath(e.Dir) {
			return nil, fmt.Errorf("scaffold catalog entry %s: invalid dir %q", e.Name, e.Dir)
		}
	}
	return c.Scaffolds, nil
}

// Builtin returns the embedded scaffolds.
func Builtin() ([]*scaffold.Scaffold, error) {
	entries, err := Catalog()
	if err != nil {
		return nil, err
	}

	out := make([]*scaffold.Scaffold, 0, len(entries))
	for _, e := range entries {
		out = append(out, &scaffold.Scaffold{
			Name:        e.Name,
			Description: e.Description,
			Root:        scaffold.TemplateRoot{FS: files, Dir: e.Dir},
		})
	}
	return out, nil
}

// NewRegistry returns a registry with the built-in scaffolds followed by extra.
// An extra scaffold reusing a built-in name is rejected.
func NewRegistry(extra ...*scaffold.Scaffold) (*scaffold.Registry, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	return scaffold.NewRegistry(append(builtin, extra...)...)
}
