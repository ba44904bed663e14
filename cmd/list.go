package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningsCmd)
	rootCmd.AddCommand(chordsCmd)
}

func tuningSummaries() []model.TuningSummary {
	var res []model.TuningSummary
	for _, p := range tuning.Presets() {
		res = append(res, model.TuningSummary{Name: p.Name, Label: p.Label, Strings: p.Strings})
	}
	return res
}

func chordTypeSummaries() []model.ChordTypeSummary {
	var res []model.ChordTypeSummary
	for _, t := range notes.ChordTypes() {
		res = append(res, model.ChordTypeSummary{Type: t, Label: notes.ChordTypeLabel(t)})
	}
	return res
}

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "Lists tuning presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range tuningSummaries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-30s %v\n", t.Name, t.Label, strings.Join(t.Strings, " "))
		}
	},
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists chord types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range chordTypeSummaries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %v\n", c.Type, c.Label)
		}
	},
}
