// Package generator turns resolved schema entities into Go source files.
package generator

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/georm-db/georm/generator/codegen"
	"github.com/georm-db/georm/gsl/resolve"
	"github.com/georm-db/georm/internal/debug"
)

// Generator renders data access code for a set of resolved entities.
type Generator struct {
	entities []*resolve.Entity
	dialect  codegen.Dialect
	pkg      string
	fs       afero.Fs
}

// Options configures a Generator.
type Options struct {
	// Dialect names the target database: postgres, sqlite, or mysql.
	Dialect string
	// Package is the name of the generated package. Defaults to models.
	Package string
	// Fs is the filesystem output is written to. Defaults to the OS
	// filesystem.
	Fs afero.Fs
}

// New creates a generator for the given entities.
func New(entities []*resolve.Entity, opts Options) (*Generator, error) {
	debug.Debug("Creating generator", "dialect", opts.Dialect, "package", opts.Package, "entities", len(entities))

	dialect, err := codegen.ParseDialect(opts.Dialect)
	if err != nil {
		return nil, err
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "models"
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Generator{
		entities: entities,
		dialect:  dialect,
		pkg:      pkg,
		fs:       fs,
	}, nil
}

// Generate writes the generated package into outDir.
func (g *Generator) Generate(outDir string) error {
	debug.Debug("Starting generation", "outDir", outDir, "dialect", g.dialect.Name())

	if len(g.entities) == 0 {
		debug.Error("No entities to generate")
		return fmt.Errorf("schema must contain at least one entity")
	}

	w := codegen.NewWriter(g.fs, g.dialect, g.pkg)
	if err := w.WriteEntities(g.entities, outDir); err != nil {
		debug.Error("Generation failed", "error", err)
		return fmt.Errorf("generate %s: %w", outDir, err)
	}

	debug.Info("Generation completed", "outDir", outDir, "entities", len(g.entities))
	return nil
}
