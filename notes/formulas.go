package notes

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownChordType = errors.New("unknown chord type")

// intervals in semitones above the root; values past 11 wrap to their pitch class
var chordFormulas = map[string][]int{
	"major":       {0, 4, 7},
	"minor":       {0, 3, 7},
	"dominant7":   {0, 4, 7, 10},
	"major7":      {0, 4, 7, 11},
	"minor7":      {0, 3, 7, 10},
	"sus2":        {0, 2, 7},
	"sus4":        {0, 5, 7},
	"dim":         {0, 3, 6},
	"aug":         {0, 4, 8},
	"ninth":       {0, 4, 7, 10, 14},
	"sixth":       {0, 4, 7, 9},
	"minor6":      {0, 3, 7, 9},
	"diminished7": {0, 3, 6, 9},
	"halfDim7":    {0, 3, 6, 10},
	"augmented7":  {0, 4, 8, 10},
	"add9":        {0, 4, 7, 14},
	"minorAdd9":   {0, 3, 7, 14},
	"eleventh":    {0, 4, 7, 10, 14, 17},
	"thirteenth":  {0, 4, 7, 10, 14, 17, 21},
	"sus2add4":    {0, 2, 5, 7},
	"sus4add9":    {0, 5, 7, 14},
}

var chordTypeLabels = map[string]string{
	"major":       "Major",
	"minor":       "Minor",
	"dominant7":   "Dominant 7th",
	"major7":      "Major 7th",
	"minor7":      "Minor 7th",
	"sus2":        "Sus 2",
	"sus4":        "Sus 4",
	"dim":         "Diminished",
	"aug":         "Augmented",
	"ninth":       "9th",
	"sixth":       "6th",
	"minor6":      "Minor 6th",
	"diminished7": "Diminished 7th",
	"halfDim7":    "Half-Diminished 7th",
	"augmented7":  "Augmented 7th",
	"add9":        "Add 9",
	"minorAdd9":   "Minor Add 9",
	"eleventh":    "11th",
	"thirteenth":  "13th",
	"sus2add4":    "Sus 2 Add 4",
	"sus4add9":    "Sus 4 Add 9",
}

// ChordTypes returns every known chord type, sorted.
func ChordTypes() []string {
	res := make([]string, 0, len(chordFormulas))
	for k := range chordFormulas {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func ChordTypeLabel(chordType string) string {
	if label, ok := chordTypeLabels[chordType]; ok {
		return label
	}
	return chordType
}

// ChordNotes builds the pitch-class set of a chord from its root and type.
func ChordNotes(root PitchClass, chordType string) (Set, error) {
	intervals, ok := chordFormulas[chordType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChordType, chordType)
	}
	var s Set
	for _, interval := range intervals {
		s = s.Add(root.Transpose(interval))
	}
	return s, nil
}
