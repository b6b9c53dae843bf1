// Package main generates markdown documentation for leapscaffold from the
// cobra command tree, the configuration schema and the built-in scaffolds.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs/reference
//	go run ./scripts/gendocs -gen=scaffolds -outdir=docs/scaffolds
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, scaffolds, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generators maps -gen values to their generator and default output directory.
var generators = map[string]struct {
	run    func(outDir string) error
	subdir string
}{
	"cli":       {generateCLIDocs, "docs/cli"},
	"config":    {generateConfigDocs, "docs/reference"},
	"scaffolds": {generateScaffoldDocs, "docs/scaffolds"},
}

func main() {
	flag.Parse()

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	if err := run(*genFlag, *outDirFlag, projectRoot); err != nil {
		log.Fatal(err)
	}
	log.Println("Done!")
}

func run(gen, outDir, projectRoot string) error {
	if gen == "all" {
		for _, name := range []string{"cli", "config", "scaffolds"} {
			g := generators[name]
			if err := g.run(filepath.Join(projectRoot, filepath.FromSlash(g.subdir))); err != nil {
				return fmt.Errorf("failed to generate %s docs: %w", name, err)
			}
		}
		return nil
	}

	g, ok := generators[gen]
	if !ok {
		return fmt.Errorf("unknown -gen value: %s (use: cli, config, scaffolds, all)", gen)
	}
	if outDir == "" {
		outDir = filepath.Join(projectRoot, filepath.FromSlash(g.subdir))
	}
	if err := g.run(outDir); err != nil {
		return fmt.Errorf("failed to generate %s docs: %w", gen, err)
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
