package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"protogen/internal/driver"
	"protogen/internal/project"
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema.toml]",
	Short: "Compile a schema into wire-encoding IR",
	Long: `Loads the protocol manifest and schema, validates the schema, and writes
one IR document per strategy as JSON for downstream renderers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("manifest", project.DefaultManifestName, "protocol manifest path")
	generateCmd.Flags().StringSlice("strategy", nil, "override manifest strategy (repeatable: binary, serial8, sysex)")
	generateCmd.Flags().String("out", "", "output directory (default from manifest)")
	generateCmd.Flags().Bool("no-cache", false, "bypass the IR disk cache")
	generateCmd.Flags().Bool("timings", false, "show timing information")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	schemaPath := "schema.toml"
	if len(args) == 1 {
		schemaPath = args[0]
	}
	manifestPath, _ := cmd.Flags().GetString("manifest")
	strategies, _ := cmd.Flags().GetStringSlice("strategy")
	outDir, _ := cmd.Flags().GetString("out")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	timings, _ := cmd.Flags().GetBool("timings")

	req := driver.Request{
		ManifestPath: manifestPath,
		SchemaPath:   schemaPath,
		Strategies:   strategies,
		Timings:      timings,
	}
	if !noCache {
		cache, err := driver.OpenDiskCache("protogen")
		if err == nil {
			req.Cache = cache
		}
		// A cache that cannot open is not fatal; the build just runs cold.
	}

	res, err := driver.Run(context.Background(), req)
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		printDiagnostics(res)
		return fmt.Errorf("schema validation failed with %d problem(s)", res.Diagnostics.Len())
	}

	if outDir == "" {
		outDir = res.Manifest.Output.Dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, run := range res.Runs {
		name := fmt.Sprintf("%s_%s_ir.json", res.Manifest.Protocol.Name, strings.ToLower(run.Strategy))
		path := filepath.Join(outDir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := run.Document.EncodeJSON(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if !quiet() {
			note := ""
			if run.Cached {
				note = " (cached)"
			}
			okColor.Fprintf(os.Stderr, "wrote %s%s\n", path, note)
		}
		if run.Timer != nil {
			fmt.Fprint(os.Stderr, run.Timer.Summary())
		}
	}
	return nil
}
