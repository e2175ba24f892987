// Package main generates the markdown reference docs for timelang from
// the CLI command tree, the grammar and the config defaults.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=grammar -outdir=docs/reference
//	go run ./scripts/gendocs -gen=config -outdir=docs/reference
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
	genFlag    = flag.String("gen", "all", "what to generate: cli, grammar, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generator writes one family of pages into a directory.
type generator struct {
	name   string
	subdir string
	run    func(outDir string) error
}

var generators = []generator{
	{name: "cli", subdir: "cli", run: generateCLIDocs},
	{name: "grammar", subdir: "reference", run: generateGrammarDocs},
	{name: "config", subdir: "reference", run: generateConfigDocs},
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

// run executes the generators selected by gen. outDir overrides the
// default directory and is only allowed for a single generator.
func run(gen, outDir, projectRoot string) error {
	if gen == "all" && outDir != "" {
		return fmt.Errorf("-outdir cannot be combined with -gen=all")
	}

	ran := false
	for _, g := range generators {
		if gen != "all" && gen != g.name {
			continue
		}
		dir := outDir
		if dir == "" {
			dir = filepath.Join(projectRoot, "docs", g.subdir)
		}
		if err := g.run(dir); err != nil {
			return fmt.Errorf("failed to generate %s docs: %w", g.name, err)
		}
		ran = true
	}
	if !ran {
		return fmt.Errorf("unknown -gen value: %s (use: cli, grammar, config, all)", gen)
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
