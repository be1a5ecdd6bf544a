package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/georm-db/georm/cli/internal/config"
	"github.com/georm-db/georm/cli/internal/ui"
	"github.com/georm-db/georm/cli/internal/watch"
	"github.com/georm-db/georm/generator"
	"github.com/georm-db/georm/gsl"
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema-path]",
	Short: "Generate data access code from a schema",
	Long: `Generate Go data access code from a georm schema.

This command will:
- Parse and validate the schema file
- Synthesize the SQL statements for the configured dialect
- Write one Go source file per entity`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateSchemaPath string
	generateOutput     string
	generateDialect    string
	generatePackage    string
	generateWatch      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateSchemaPath, "schema", "s", "", "Path to schema file")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory")
	generateCmd.Flags().StringVarP(&generateDialect, "dialect", "d", "", "Target dialect: postgres, sqlite, or mysql")
	generateCmd.Flags().StringVarP(&generatePackage, "package", "p", "", "Name of the generated package")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the schema file and regenerate on change")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	schemaPath := resolveSchemaPath(generateSchemaPath, args, cfg.SchemaPath)
	outputDir := orDefault(generateOutput, cfg.OutputPath)
	dialect := orDefault(generateDialect, cfg.Dialect)
	pkg := orDefault(generatePackage, cfg.Package)

	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaPath)
	}

	if generateWatch {
		return runGenerateWatch(schemaPath, outputDir, dialect, pkg)
	}

	ui.PrintHeader("georm", "Generate")

	spinner, _ := ui.PrintSpinner("Generating data access code...")
	if err := generateOnce(schemaPath, outputDir, dialect, pkg); err != nil {
		spinner.Stop()
		return err
	}
	spinner.Stop()

	absPath, _ := filepath.Abs(outputDir)
	ui.PrintSuccess("Generated package %s at %s", pkg, absPath)
	return nil
}

func generateOnce(schemaPath, outputDir, dialect, pkg string) error {
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	source := gsl.NewSourceFile(schemaPath, string(content))
	entities, diags := gsl.LoadEntities(source)

	if diags.HasErrors() {
		ui.PrintError("Schema validation failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(schemaPath, string(content)))
		return fmt.Errorf("cannot generate from an invalid schema")
	}
	if len(diags.Warnings()) > 0 {
		fmt.Fprintf(os.Stderr, "%s\n", diags.WarningsToPrettyString(schemaPath, string(content)))
	}

	gen, err := generator.New(entities, generator.Options{
		Dialect: dialect,
		Package: pkg,
	})
	if err != nil {
		return err
	}
	return gen.Generate(outputDir)
}

func runGenerateWatch(schemaPath, outputDir, dialect, pkg string) error {
	ui.PrintHeader("georm", "Watch Mode")

	regenerate := func() error {
		ui.PrintInfo("Schema changed, regenerating...")
		if err := generateOnce(schemaPath, outputDir, dialect, pkg); err != nil {
			return err
		}
		ui.PrintSuccess("Regenerated %s", outputDir)
		return nil
	}

	if err := generateOnce(schemaPath, outputDir, dialect, pkg); err != nil {
		return err
	}
	absPath, _ := filepath.Abs(outputDir)
	ui.PrintSuccess("Generated package %s at %s", pkg, absPath)

	watcher, err := watch.NewWatcher(schemaPath, regenerate)
	if err != nil {
		return fmt.Errorf("watch %s: %w", schemaPath, err)
	}
	defer watcher.Stop()
	watcher.Start()

	ui.PrintInfo("Watching %s for changes... (Ctrl+C to stop)", schemaPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("Stopping watch mode...")
	return nil
}
