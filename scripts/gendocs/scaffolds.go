package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
	"github.com/leapstack-labs/leapscaffold/internal/scaffolds"
)

// generateScaffoldDocs writes an index of the built-in scaffolds and one page
// per scaffold showing its file tree.
func generateScaffoldDocs(outDir string) error {
	log.Printf("Generating scaffold docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	builtin, err := scaffolds.Builtin()
	if err != nil {
		return err
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Built-in Scaffolds", "Templates shipped with leapscaffold")
	w.GeneratedMarker()
	w.Header(1, "Built-in Scaffolds")
	w.Paragraph(fmt.Sprintf("Use one with `leapscaffold create <name> <scaffold>`. Without a scaffold name, %s is used.", InlineCode(scaffold.DefaultName)))

	var rows [][]string
	for _, s := range builtin {
		link := fmt.Sprintf("[%s](/scaffolds/%s)", InlineCode(s.Name), s.Name)
		rows = append(rows, []string{link, cleanDescription(s.Description)})
	}
	w.Table([]string{"Scaffold", "Description"}, rows)

	if err := os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, s := range builtin {
		if err := generateScaffoldPage(s, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", s.Name, err)
		}
		log.Printf("  Generated %s.md", s.Name)
	}
	return nil
}

func generateScaffoldPage(s *scaffold.Scaffold, outDir string) error {
	tree, err := fileTree(s.Root)
	if err != nil {
		return err
	}

	w := NewMarkdownWriter()
	w.Frontmatter(s.Name, s.Description)
	w.GeneratedMarker()
	w.Header(1, s.Name)
	w.Paragraph(s.Description)

	w.Header(2, "Usage")
	w.CodeBlock("bash", fmt.Sprintf("leapscaffold create myproject %s", s.Name))

	w.Header(2, "Files")
	w.Paragraph("`{{package}}` is replaced by the normalized project name.")
	w.CodeBlock("text", tree)

	return os.WriteFile(filepath.Join(outDir, s.Name+".md"), w.Bytes(), 0600)
}

// fileTree renders the template as an indented listing, directories first
// marked with a trailing slash.
func fileTree(root scaffold.TemplateRoot) (string, error) {
	var b strings.Builder
	base := root.Dir
	if base == "" {
		base = "."
	}

	err := fs.WalkDir(root.FS, base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == base {
			return nil
		}
		rel := strings.TrimPrefix(p, base+"/")
		depth := strings.Count(rel, "/")
		name := path.Base(rel)
		if d.IsDir() {
			name += "/"
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		b.WriteString("\n")
		return nil
	})
	return b.String(), err
}
