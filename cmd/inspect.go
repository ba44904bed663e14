package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/catalog"
	"github.com/jsphweid/fretdex/diagram"
	"github.com/jsphweid/fretdex/notes"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [catalog]",
	Short: "Inspects a catalog",
	Long:  `Prints every entry of a catalog, the one in the index dir by default.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := catalog.Path(cfg.IndexDir)
		if len(args) == 1 {
			path = args[0]
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tuning: %v\n", cat.TuningName)
		for _, key := range cat.Keys() {
			e := cat.Entries[key]
			fmt.Fprintf(out, "key: %v (%v %v)\n", key, e.Chord.Root, notes.ChordTypeLabel(e.Type))
			for _, sh := range e.Shapes {
				fmt.Fprintf(out, "  %v\n", diagram.Compact(sh))
			}
		}
		return nil
	},
}
