package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leapscaffold/internal/cli"
	"github.com/leapstack-labs/leapscaffold/internal/cli/config"
)

// generateCLIDocs writes an overview page plus one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	commands := visibleCommands(root)

	pages := map[string]*MarkdownWriter{"index": cliOverview(root, commands)}
	for _, cmd := range commands {
		pages[cmd.Name()] = commandPage(cmd)
	}

	for name, w := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name+".md"), w.Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write %s.md: %w", name, err)
		}
		log.Printf("  Generated %s.md", name)
	}
	return nil
}

func cliOverview(root *cobra.Command, commands []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leapscaffold")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Short)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapscaffold/cmd/leapscaffold@latest")

	w.Header(2, "Commands")
	rows := make([][]string, 0, len(commands))
	for _, cmd := range commands {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s.md)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global flags")
	flagTable(w, root.PersistentFlags())

	w.Header(2, "Environment")
	w.Paragraph(fmt.Sprintf("Any configuration key can be set from the environment. Flags win over the environment, which wins over %s.",
		strings.Join(quoted(config.ConfigFileNames), " and ")))
	var env [][]string
	for _, f := range getConfigSchema() {
		env = append(env, []string{InlineCode(envName(f)), InlineCode(f.Name)})
	}
	w.Table([]string{"Variable", "Key"}, env)

	w.Header(2, "Exit status")
	w.Paragraph("0 on success, including projects written over existing directories. 1 on any error; the offending path is printed on stderr.")
	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	w.Paragraph(desc)

	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Flags")
		flagTable(w, cmd.LocalFlags())
	}
	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}
	return w
}

// visibleCommands skips hidden commands and the ones cobra adds itself.
func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || strings.HasPrefix(cmd.Name(), "__") {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func flagTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name = InlineCode("-"+f.Shorthand) + ", " + name
		}
		def := ""
		if f.DefValue != "" && f.DefValue != "[]" && f.DefValue != "false" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{name, def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Default", "Description"}, rows)
}

// envName maps a configuration key to its environment variable.
func envName(f ConfigField) string {
	key := strings.ReplaceAll(f.Name, ".", "__")
	if strings.HasPrefix(f.Type, "map[") {
		key += "__<name>"
	}
	return config.EnvPrefix + strings.ToUpper(key)
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(strings.Trim(example, "\n"), "\n")

	prefix, found := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found || len(lead) < len(prefix) {
			prefix, found = lead, true
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
