package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
	"github.com/jsphweid/fretdex/util"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

type Entry struct {
	Type   string
	Chord  model.ChordSpec
	Shapes []model.Shape
}

// Catalog holds precomputed shapes for every root and chord type on one
// tuning under one constraint profile.
type Catalog struct {
	TuningName  string
	Constraints model.Constraints
	Entries     map[string]Entry
}

// CreateChordKey identifies a chord by root and sorted note names, so chord
// types that spell the same notes share a key.
func CreateChordKey(spec model.ChordSpec) string {
	return spec.Root.String() + ":" + strings.Join(spec.Notes.Names(), "-")
}

// Build searches every root x chord type combination, at most one search
// per CPU at a time.
func Build(ctx context.Context, tuningName string, c model.Constraints) (*Catalog, error) {
	var specs []Entry
	for root := notes.PitchClass(0); root < notes.NumPitchClasses; root++ {
		for _, chordType := range notes.ChordTypes() {
			s, err := notes.ChordNotes(root, chordType)
			if err != nil {
				return nil, err
			}
			specs = append(specs, Entry{Type: chordType, Chord: model.ChordSpec{Notes: s, Root: root}})
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i := range specs {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			specs[i].Shapes = chord.GenerateCandidateShapes(specs[i].Chord, c)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	cat := &Catalog{
		TuningName:  tuningName,
		Constraints: c,
		Entries:     make(map[string]Entry, len(specs)),
	}
	for _, e := range specs {
		key := CreateChordKey(e.Chord)
		if _, ok := cat.Entries[key]; ok {
			continue
		}
		cat.Entries[key] = e
	}
	return cat, nil
}

// Matches reports whether the catalog was built under exactly c.
func (cat *Catalog) Matches(c model.Constraints) bool {
	a := cat.Constraints
	return maps.Equal(a.Tuning, c.Tuning) &&
		a.MaxFingers == c.MaxFingers &&
		a.MaxFretSpan == c.MaxFretSpan &&
		a.AllowBarres == c.AllowBarres &&
		a.AllowOpenStrings == c.AllowOpenStrings &&
		a.AllowMutedStrings == c.AllowMutedStrings &&
		a.RequireRootInBass == c.RequireRootInBass
}

func (cat *Catalog) Lookup(spec model.ChordSpec, c model.Constraints) ([]model.Shape, bool) {
	if !cat.Matches(c) {
		return nil, false
	}
	e, ok := cat.Entries[CreateChordKey(spec)]
	if !ok {
		return nil, false
	}
	return e.Shapes, true
}

func (cat *Catalog) Keys() []string {
	return util.GetKeys(cat.Entries)
}

func Path(dir string) string {
	return filepath.Join(dir, constants.CatalogFilename)
}

func (cat *Catalog) Save(dir string) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating index dir: %w", err)
	}
	path := Path(dir)
	return path, util.CreateBinary(path, cat)
}

func Load(path string) (*Catalog, error) {
	cat, err := util.ReadBinary[Catalog](path)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
