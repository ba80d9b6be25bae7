package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"protogen/internal/loader"
	"protogen/internal/msgid"
)

var idsCmd = &cobra.Command{
	Use:   "ids [schema.toml]",
	Short: "Print the deterministic message ID table",
	Long: `Shows the IDs the allocator assigns to each message. IDs follow
lexicographic name order; adding a message that sorts before existing
names shifts the later IDs, which is a wire-compatibility event.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIDs,
}

func init() {
	idsCmd.Flags().Int("start", 0, "first message ID")
}

func runIDs(cmd *cobra.Command, args []string) error {
	schemaPath := "schema.toml"
	if len(args) == 1 {
		schemaPath = args[0]
	}
	startID, _ := cmd.Flags().GetInt("start")

	sch, err := loader.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	ids, err := msgid.Allocate(sch.Messages, startID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		infoColor.Printf("0x%02X", ids[name])
		fmt.Printf("  %s\n", name)
	}
	return nil
}
