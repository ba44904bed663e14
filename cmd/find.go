package cmd

import (
	"github.com/spf13/cobra"
)

var (
	findFlags constraintFlags
	findJSON  bool
	findNotes []string
	findLimit int
)

func init() {
	addConstraintFlags(findCmd, &findFlags)
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print shapes as JSON")
	findCmd.Flags().StringSliceVar(&findNotes, "notes", nil, "explicit chord notes instead of a chord type")
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 0, "print at most this many shapes")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <root> [type]",
	Short: "Finds shapes for a chord",
	Long: `Finds shapes for a chord, given as a root and a chord type (see "chords")
or as a root plus --notes.`,
	Example: `  fretdex find G major
  fretdex find D minor7 --tuning drop-d --root-bass
  fretdex find A --notes A,C#,E,G --no-mute`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chordType := "major"
		if len(args) == 2 {
			chordType = args[1]
		}
		spec, err := resolveChord(args[0], chordType, findNotes)
		if err != nil {
			return err
		}
		c, _, err := findFlags.resolve(cmd)
		if err != nil {
			return err
		}

		res, err := runSearch(cmd.Context(), spec, c, findFlags.parallel)
		if err != nil {
			return err
		}
		shapes := res.Shapes
		if findLimit > 0 && len(shapes) > findLimit {
			shapes = shapes[:findLimit]
		}
		return printShapes(cmd.OutOrStdout(), spec, shapes, findJSON)
	},
}
