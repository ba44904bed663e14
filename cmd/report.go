package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [catalog]",
	Short: "Creates a report",
	Long:  `Summarizes how many shapes a catalog holds per chord.`,
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

		r := cat.Report()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tuning: %v\n", cat.TuningName)
		fmt.Fprintf(out, "entries: %v\n", r.NumEntries)
		fmt.Fprintf(out, "shapes: %v\n", r.NumShapes)
		fmt.Fprintf(out, "shapes per chord: min %v, max %v, avg %.2f\n", r.MinShapes, r.MaxShapes, r.AvgShapes)
		fmt.Fprintf(out, "chords without shapes (%v): %v\n", len(r.EmptyEntries), strings.Join(r.EmptyEntries, ", "))
		return nil
	},
}
