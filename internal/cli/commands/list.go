package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapscaffold/internal/cli/output"
	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
)

// ScaffoldInfo describes a scaffold in json output.
type ScaffoldInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Builtin     bool   `json:"builtin"`
	Default     bool   `json:"default"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available scaffolds",
		Long: `List the built-in scaffolds and those declared under "scaffolds" in
leapscaffold.yaml.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List scaffolds
  leapscaffold list

  # List scaffolds as JSON
  leapscaffold list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	reg, err := cmdCtx.Registry()
	if err != nil {
		return err
	}

	infos := make([]ScaffoldInfo, 0, len(reg.Names()))
	for _, s := range reg.List() {
		infos = append(infos, scaffoldInfo(s, cmdCtx.Cfg.DefaultScaffold))
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(infos)
	case output.ModeMarkdown:
		return listMarkdown(r, infos)
	default:
		return listText(r, infos)
	}
}

func scaffoldInfo(s *scaffold.Scaffold, defaultName string) ScaffoldInfo {
	return ScaffoldInfo{
		Name:        s.Name,
		Description: s.Description,
		Source:      s.Root.String(),
		Builtin:     !s.Root.OnDisk(),
		Default:     s.Name == defaultName,
	}
}

func newScaffoldTable(infos []ScaffoldInfo) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Name", "Description", "Source"})
	for _, info := range infos {
		name := info.Name
		if info.Default {
			name += " (default)"
		}
		t.AppendRow(table.Row{name, info.Description, info.Source})
	}
	return t
}

// listText outputs scaffolds as a terminal table.
func listText(r *output.Renderer, infos []ScaffoldInfo) error {
	r.Header(1, fmt.Sprintf("Scaffolds (%d)", len(infos)))

	t := newScaffoldTable(infos)
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// listMarkdown outputs scaffolds as a markdown table.
func listMarkdown(r *output.Renderer, infos []ScaffoldInfo) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Scaffolds (%d)", len(infos))))
	r.Println("")
	r.Println(newScaffoldTable(infos).RenderMarkdown())
	return nil
}
