package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	identifyFlags constraintFlags
	identifyJSON  bool
	identifyMax   int
)

func init() {
	addConstraintFlags(identifyCmd, &identifyFlags)
	identifyCmd.Flags().BoolVar(&identifyJSON, "json", false, "print shapes as JSON")
	identifyCmd.Flags().IntVar(&identifyMax, "max-files", 0, "stop after this many files when given a directory")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <file.mid|dir>",
	Short: "Finds shapes for the notes of a MIDI file",
	Long: `Collects every note played in a MIDI file, lowest note as the root, and
finds shapes for that chord. Given a directory, does this for every MIDI
file in it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := identifyFlags.resolve(cmd)
		if err != nil {
			return err
		}

		paths := []string{args[0]}
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			paths, err = util.GatherAllMidiPaths(args[0], identifyMax)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for i, path := range paths {
			logger.Debug("Identifying", zap.String("path", path), zap.Int("num", i+1), zap.Int("of", len(paths)))
			parsed, err := midi.ReadMidiFile(path)
			if err != nil {
				if len(paths) > 1 {
					logger.Warn("Skipping file", zap.String("path", path), zap.Error(err))
					continue
				}
				return err
			}
			spec, err := midi.ChordFromSMF(parsed)
			if err != nil {
				if len(paths) > 1 {
					logger.Warn("Skipping file", zap.String("path", path), zap.Error(err))
					continue
				}
				return fmt.Errorf("%s: %w", path, err)
			}

			res, err := runSearch(cmd.Context(), spec, c, identifyFlags.parallel)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%v\n", path)
			if err := printShapes(out, spec, res.Shapes, identifyJSON); err != nil {
				return err
			}
		}
		return nil
	},
}
