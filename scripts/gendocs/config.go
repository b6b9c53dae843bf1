package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapscaffold/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the configuration schema definition.
// Keep in sync with internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Debug logging on stderr"},
		{Name: "default_scaffold", Type: "string", Default: config.DefaultScaffold, Description: "Scaffold used when none is named"},
		{Name: "destination", Type: "string", Default: config.DefaultDestination, Description: "Parent directory for new projects, relative to this file"},
		{Name: "indent", Type: "bool", Default: "false", Description: "Indent progress lines by directory depth"},
		{Name: "vars", Type: "map[string]string", Description: "Extra template variables available as {{name}}"},
		{Name: "scaffolds.<name>.path", Type: "string", Description: "Template directory, relative to this file"},
		{Name: "scaffolds.<name>.description", Type: "string", Description: "Shown by leapscaffold list"},
		{Name: "watch.debounce", Type: "duration", Default: config.DefaultDebounce.String(), Description: "Quiet period before watch regenerates"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapscaffold configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapscaffold reads %s from the working directory or the nearest parent directory. Use `--config` to point at another file.",
		strings.Join(quoted(config.ConfigFileNames), " or ")))

	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
	}
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `default_scaffold: service
destination: ../projects
vars:
  author: Sam Doe
scaffolds:
  service:
    path: templates/service
    description: Internal service layout
watch:
  debounce: 500ms`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}

func quoted(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = InlineCode(n)
	}
	return out
}
