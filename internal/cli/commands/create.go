package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapscaffold/internal/cli/output"
	"github.com/leapstack-labs/leapscaffold/internal/scaffold"
	"github.com/leapstack-labs/leapscaffold/internal/template"
	"github.com/leapstack-labs/leapscaffold/pkg/naming"
)

// CreateOptions holds options for the create command.
type CreateOptions struct {
	Vars []string

	// NoInput disables prompting for a missing project name.
	NoInput bool
}

// CreateResult is the JSON document printed by create in json mode.
type CreateResult struct {
	RunID    string `json:"run_id"`
	Project  string `json:"project"`
	Package  string `json:"package"`
	Scaffold string `json:"scaffold"`
	*scaffold.Report
}

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	opts := &CreateOptions{}

	cmd := &cobra.Command{
		Use:   "create [project-name] [scaffold]",
		Short: "Create a new project from a scaffold",
		Long: `Create a new project directory from a scaffold template.

The project folder keeps the name exactly as given. Every {{package}} marker in
the template's file names and file contents is replaced by the normalized
package name: lowercased, with everything except letters, digits and
underscores removed ("My-App 2" becomes "myapp2").

Existing directories are reported and filled in; existing files are
overwritten.`,
		Example: `  # Create ./Testing123 from the base scaffold
  leapscaffold create Testing123

  # Use another scaffold
  leapscaffold create orders rest-api

  # Create under another directory with extra variables
  leapscaffold create orders --dir ~/src --var author="Sam Doe"

  # Print a machine-readable report
  leapscaffold create orders -o json`,
		Args: cobra.MaximumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			reg, err := buildRegistry(getConfig())
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return reg.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, opts)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Parent directory for the new project (default: current directory)")
	cmd.Flags().StringP("scaffold", "s", "", "Scaffold to use (default: base)")
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "Extra template variable as key=value (repeatable)")
	cmd.Flags().Bool("indent", false, "Indent progress lines by directory depth")
	cmd.Flags().BoolVar(&opts.NoInput, "no-input", false, "Never prompt; fail when the project name is missing")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string, opts *CreateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	reg, err := cmdCtx.Registry()
	if err != nil {
		return err
	}

	scaffoldName := cfg.DefaultScaffold
	if len(args) > 1 {
		scaffoldName = args[1]
	}
	if scaffoldName == "" {
		scaffoldName = scaffold.DefaultName
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		if !shouldPrompt(opts.NoInput) {
			return errors.New("project name is required")
		}
		name, err = promptLine("Project name: ", nil, "")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			scaffoldName, err = promptLine(fmt.Sprintf("Scaffold [%s]: ", scaffoldName), reg.Names(), scaffoldName)
			if err != nil {
				return err
			}
		}
	}

	pkg := naming.Normalize(name)
	if strings.TrimSpace(name) == "" || pkg == "" {
		return fmt.Errorf("project name %q has no letters, digits or underscores to build a package name from", name)
	}
	if !naming.IsNormalized(name) {
		r.Warning(fmt.Sprintf("folder %q and package %q differ; {{package}} markers use %q", name, pkg, pkg))
	}

	s, err := reg.Lookup(scaffoldName)
	if err != nil {
		return err
	}

	extra, err := parseVars(opts.Vars)
	if err != nil {
		return err
	}
	vars := template.Vars(nil).Merge(cfg.Vars).Merge(extra)

	mode := r.EffectiveMode()
	var progress io.Writer = r.Writer()
	if mode == output.ModeJSON {
		progress = io.Discard
	}

	runID := uuid.NewString()
	logger := cmdCtx.Logger.With("run_id", runID, "scaffold", s.Name)
	logger.Debug("creating project", "name", name, "package", pkg, "parent", cfg.Destination)

	report, err := s.Create(name, cfg.Destination, progress,
		scaffold.WithLogger(logger),
		scaffold.WithIndent(cfg.Indent),
		scaffold.WithVars(vars),
	)
	if err != nil {
		return fmt.Errorf("failed to create project %s: %w", name, err)
	}

	if mode == output.ModeJSON {
		return r.JSON(CreateResult{
			RunID:    runID,
			Project:  name,
			Package:  pkg,
			Scaffold: s.Name,
			Report:   report,
		})
	}

	r.Println("")
	r.Success(fmt.Sprintf("Created %s from scaffold %s (package %s)", name, s.Name, pkg))
	if report.HasExisting() {
		r.Muted(fmt.Sprintf("%d directories already existed; their files were overwritten", len(report.ExistingDirs)))
	}
	r.Println("")
	r.Println("Next steps:")
	r.Printf("  cd %s\n", relOrAbs(report.Destination))
	for _, f := range report.Files {
		if f == "README.md" {
			r.Println("  read README.md")
			break
		}
	}
	return nil
}

// parseVars parses key=value pairs. Keys are trimmed; values are kept as is.
func parseVars(pairs []string) (template.Vars, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(template.Vars, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", pair)
		}
		if key == scaffold.PackageToken {
			return nil, fmt.Errorf("invalid --var %q: %s is derived from the project name", pair, scaffold.PackageToken)
		}
		vars[key] = value
	}
	return vars, nil
}

func relOrAbs(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
