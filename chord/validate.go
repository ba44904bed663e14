package chord

import (
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
)

// run is a stretch of adjacent strings fretted at the same fret, which one
// finger can hold.
type run struct {
	fret    int
	strings []model.StringID
}

func fingerRuns(sh model.Shape) []run {
	byFret := make(map[int][]model.StringID)
	var frets []int
	for _, p := range sh {
		if !p.IsFretted() {
			continue
		}
		if _, ok := byFret[p.Fret]; !ok {
			frets = append(frets, p.Fret)
		}
		byFret[p.Fret] = append(byFret[p.Fret], p.String)
	}
	sort.Ints(frets)

	var res []run
	for _, fret := range frets {
		strs := byFret[fret]
		sort.Ints(strs)
		curr := run{fret: fret, strings: []model.StringID{strs[0]}}
		for i := 1; i < len(strs); i++ {
			if strs[i] == strs[i-1]+1 {
				curr.strings = append(curr.strings, strs[i])
				continue
			}
			res = append(res, curr)
			curr = run{fret: fret, strings: []model.StringID{strs[i]}}
		}
		res = append(res, curr)
	}
	return res
}

// CountFingers counts one finger per maximal run of adjacent strings
// fretted at the same fret. Open and muted strings are free.
func CountFingers(sh model.Shape) int {
	return len(fingerRuns(sh))
}

// BarresValid always passes when barres are allowed. Otherwise no two
// fretted strings may share a fret, adjacent or not.
func BarresValid(sh model.Shape, c model.Constraints) bool {
	if c.AllowBarres {
		return true
	}
	seen := make(map[int]bool)
	for _, p := range sh {
		if !p.IsFretted() {
			continue
		}
		if seen[p.Fret] {
			return false
		}
		seen[p.Fret] = true
	}
	return true
}

// FretSpan is the distance between the lowest and highest fretted
// positions, ignoring open and muted strings.
func FretSpan(sh model.Shape) int {
	lo, hi := 0, 0
	for _, p := range sh {
		if !p.IsFretted() {
			continue
		}
		if lo == 0 || p.Fret < lo {
			lo = p.Fret
		}
		if p.Fret > hi {
			hi = p.Fret
		}
	}
	return hi - lo
}

// Violates reports whether a partial or complete shape already breaks a
// limit that further strings can only make worse.
func Violates(sh model.Shape, c model.Constraints) bool {
	if CountFingers(sh) > c.MaxFingers {
		return true
	}
	if FretSpan(sh) > c.MaxFretSpan {
		return true
	}
	return !BarresValid(sh, c)
}

// SoundedNotes collects the pitch classes of every string that plays.
func SoundedNotes(sh model.Shape, t model.Tuning) notes.Set {
	var s notes.Set
	for _, p := range sh {
		if note, ok := NoteAt(p.String, p.Fret, t); ok {
			s = s.Add(note)
		}
	}
	return s
}

// CoversNotes is one directional: extra notes are fine, missing ones aren't.
func CoversNotes(sh model.Shape, spec model.ChordSpec, t model.Tuning) bool {
	return SoundedNotes(sh, t).Contains(spec.Notes)
}

// BassString returns the lowest pitched string that plays.
func BassString(sh model.Shape) (model.FingerPosition, bool) {
	var bass model.FingerPosition
	found := false
	for _, p := range sh {
		if p.IsMuted() {
			continue
		}
		if !found || p.String > bass.String {
			bass = p
			found = true
		}
	}
	return bass, found
}

// RootInBass reports whether the lowest pitched string that plays sounds
// the root. Nothing played fails.
func RootInBass(sh model.Shape, spec model.ChordSpec, t model.Tuning) bool {
	bass, ok := BassString(sh)
	if !ok {
		return false
	}
	note, ok := NoteAt(bass.String, bass.Fret, t)
	return ok && note == spec.Root
}

// Accepts runs the checks that only make sense once every string has a
// position.
func Accepts(sh model.Shape, spec model.ChordSpec, c model.Constraints) bool {
	if !CoversNotes(sh, spec, c.Tuning) {
		return false
	}
	if c.RequireRootInBass && !RootInBass(sh, spec, c.Tuning) {
		return false
	}
	return true
}
