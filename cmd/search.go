package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/diagram"
	"github.com/jsphweid/fretdex/logging"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// constraintFlags are shared by every command that runs a search.
type constraintFlags struct {
	tuning     string
	profile    string
	maxFingers int
	maxSpan    int
	noBarres   bool
	noOpen     bool
	noMute     bool
	rootBass   bool
	parallel   bool
}

func addConstraintFlags(cmd *cobra.Command, f *constraintFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.tuning, "tuning", "t", "", "tuning preset or open string names, lowest first (default from config)")
	flags.StringVarP(&f.profile, "profile", "p", "", "constraint profile from config")
	flags.IntVar(&f.maxFingers, "max-fingers", 4, "most fingers a shape may use")
	flags.IntVar(&f.maxSpan, "max-span", 4, "widest distance between fretted positions")
	flags.BoolVar(&f.noBarres, "no-barres", false, "never fret two strings at the same fret")
	flags.BoolVar(&f.noOpen, "no-open", false, "never play a string open")
	flags.BoolVar(&f.noMute, "no-mute", false, "play every string")
	flags.BoolVar(&f.rootBass, "root-bass", false, "lowest sounding string must be the root")
	flags.BoolVar(&f.parallel, "parallel", false, "search branches in parallel")
}

// patch only carries the flags the user actually set, so the profile
// supplies everything else.
func (f *constraintFlags) patch(cmd *cobra.Command) *model.ConstraintsPatch {
	flags := cmd.Flags()
	var p model.ConstraintsPatch
	if flags.Changed("max-fingers") {
		p.MaxFingers = &f.maxFingers
	}
	if flags.Changed("max-span") {
		p.MaxFretSpan = &f.maxSpan
	}
	if flags.Changed("no-barres") {
		v := !f.noBarres
		p.AllowBarres = &v
	}
	if flags.Changed("no-open") {
		v := !f.noOpen
		p.AllowOpenStrings = &v
	}
	if flags.Changed("no-mute") {
		v := !f.noMute
		p.AllowMutedStrings = &v
	}
	if flags.Changed("root-bass") {
		p.RequireRootInBass = &f.rootBass
	}
	return &p
}

func (f *constraintFlags) resolve(cmd *cobra.Command) (model.Constraints, string, error) {
	return resolveConstraints(f.tuning, nil, f.profile, f.patch(cmd))
}

// resolveConstraints turns user facing names into a validated profile.
// tuningNames wins over tuningName when both are given.
func resolveConstraints(tuningName string, tuningNames []string, profile string, patch *model.ConstraintsPatch) (model.Constraints, string, error) {
	var (
		t   model.Tuning
		err error
	)
	switch {
	case len(tuningNames) > 0:
		t, err = tuning.FromNames(tuningNames)
		tuningName = ""
	default:
		if tuningName == "" {
			tuningName = cfg.DefaultTuning
		}
		t, err = tuning.Parse(tuningName)
	}
	if err != nil {
		return model.Constraints{}, "", fmt.Errorf("tuning: %w", err)
	}

	if err := config.ValidatePatch(patch); err != nil {
		return model.Constraints{}, "", err
	}
	c, err := cfg.Constraints(profile, t)
	if err != nil {
		return model.Constraints{}, "", err
	}
	c = c.Apply(patch)
	if err := config.ValidateConstraints(c); err != nil {
		return model.Constraints{}, "", err
	}
	return c, tuningName, nil
}

// resolveChord accepts either a chord type or an explicit note list.
func resolveChord(root string, chordType string, noteNames []string) (model.ChordSpec, error) {
	var spec model.ChordSpec
	var err error
	if len(noteNames) > 0 {
		spec.Root, err = notes.Parse(root)
		if err != nil {
			return spec, err
		}
		spec.Notes, err = notes.ParseSet(noteNames)
		if err != nil {
			return spec, err
		}
	} else {
		spec, err = model.NewChordSpec(root, chordType)
		if err != nil {
			return spec, err
		}
	}
	return spec, spec.Validate()
}

func runSearch(ctx context.Context, spec model.ChordSpec, c model.Constraints, parallel bool) (chord.Result, error) {
	var (
		res chord.Result
		err error
	)
	if parallel || cfg.Parallel {
		res, err = chord.SearchParallel(ctx, spec, c)
	} else {
		res = chord.Search(spec, c)
	}
	if err != nil {
		return res, err
	}
	logger.Debug("Searched shapes",
		logging.Chord(spec),
		zap.Strings("tuning", tuning.Names(c.Tuning)),
		logging.Stats(res.Stats))
	return res, nil
}

func labeled(shapes []model.Shape) []model.Shape {
	res := make([]model.Shape, len(shapes))
	for i, sh := range shapes {
		res[i] = chord.LabelFingers(sh)
	}
	return res
}

func printShapes(w io.Writer, spec model.ChordSpec, shapes []model.Shape, asJSON bool) error {
	shapes = labeled(shapes)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(shapes)
	}

	fmt.Fprintf(w, "%v shapes for %v %v\n\n", len(shapes), spec.Root, spec.Notes)
	for _, sh := range shapes {
		fmt.Fprintf(w, "%v\n%v\n", diagram.Compact(sh), diagram.Render(sh))
	}
	return nil
}
