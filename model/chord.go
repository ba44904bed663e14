package model

import (
	"errors"

	"github.com/jsphweid/fretdex/notes"
)

var (
	ErrEmptyChord     = errors.New("chord has no notes")
	ErrRootNotInChord = errors.New("root note is not one of the chord notes")
)

type ChordSpec struct {
	Notes notes.Set        `json:"notes"`
	Root  notes.PitchClass `json:"root"`
}

// NewChordSpec builds a spec for a named chord type, e.g. ("G", "major").
func NewChordSpec(root string, chordType string) (ChordSpec, error) {
	r, err := notes.Parse(root)
	if err != nil {
		return ChordSpec{}, err
	}
	s, err := notes.ChordNotes(r, chordType)
	if err != nil {
		return ChordSpec{}, err
	}
	return ChordSpec{Notes: s, Root: r}, nil
}

// Validate is for callers resolving user input; the search itself never
// rejects a spec, it just finds nothing.
func (c ChordSpec) Validate() error {
	if c.Notes.IsEmpty() {
		return ErrEmptyChord
	}
	if !c.Notes.Has(c.Root) {
		return ErrRootNotInChord
	}
	return nil
}
