package cmd

import (
	"fmt"

	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFlags constraintFlags
	exportCount int
	exportNotes []string
)

func init() {
	addConstraintFlags(exportCmd, &exportFlags)
	exportCmd.Flags().IntVarP(&exportCount, "count", "n", 1, "how many shapes to write, 0 for all")
	exportCmd.Flags().StringSliceVar(&exportNotes, "notes", nil, "explicit chord notes instead of a chord type")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <type> <out.mid>",
	Short: "Writes shapes to a MIDI file",
	Long: `Writes the first shapes found for a chord to a MIDI file, one block chord
per beat, voiced the way the tuning sounds.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := resolveChord(args[0], args[1], exportNotes)
		if err != nil {
			return err
		}
		c, _, err := exportFlags.resolve(cmd)
		if err != nil {
			return err
		}
		res, err := runSearch(cmd.Context(), spec, c, exportFlags.parallel)
		if err != nil {
			return err
		}

		shapes := res.Shapes
		if exportCount > 0 && len(shapes) > exportCount {
			shapes = shapes[:exportCount]
		}
		if err := midi.WriteShapesFile(args[2], c.Tuning, shapes); err != nil {
			return err
		}
		logger.Info("Exported shapes", zap.String("path", args[2]), zap.Int("shapes", len(shapes)))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v shapes to %v\n", len(shapes), args[2])
		return nil
	},
}
