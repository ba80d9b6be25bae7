package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protogen/internal/driver"
	"protogen/internal/project"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema.toml]",
	Short: "Check a schema without generating anything",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("manifest", project.DefaultManifestName, "protocol manifest path")
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath := "schema.toml"
	if len(args) == 1 {
		schemaPath = args[0]
	}
	manifestPath, _ := cmd.Flags().GetString("manifest")

	res, err := driver.Run(context.Background(), driver.Request{
		ManifestPath: manifestPath,
		SchemaPath:   schemaPath,
	})
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		printDiagnostics(res)
		return fmt.Errorf("%d problem(s) found", res.Diagnostics.Len())
	}
	if !quiet() {
		okColor.Fprintf(os.Stderr, "schema OK: %d message(s), %d type(s), %d enum(s)\n",
			len(res.Schema.Messages), res.Schema.Registry.Len(), len(res.Schema.Enums))
	}
	return nil
}

func printDiagnostics(res *driver.Result) {
	for _, d := range res.Diagnostics.Items() {
		errColor.Fprintf(os.Stderr, "%s ", d.Severity.String())
		fmt.Fprintln(os.Stderr, d.String())
	}
}
