package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
)

// NoteAt returns the pitch class sounded by string s at fret, or false when
// the string is muted or not part of the tuning.
func NoteAt(s model.StringID, fret int, t model.Tuning) (notes.PitchClass, bool) {
	if fret < 0 {
		return 0, false
	}
	open, ok := t[s]
	if !ok {
		return 0, false
	}
	return open.Transpose(fret), true
}

// CreateShapeKey joins fret values lowest pitched string first, so equal
// shapes get equal keys no matter how their positions are ordered.
func CreateShapeKey(sh model.Shape) string {
	sorted := sh.Sorted()
	frets := make([]string, len(sorted))
	for i, p := range sorted {
		frets[i] = strconv.Itoa(p.Fret)
	}
	return strings.Join(frets, ",")
}

// Dedupe keeps the first shape seen for every key, in encounter order.
func Dedupe(shapes []model.Shape) []model.Shape {
	seen := make(map[string]bool, len(shapes))
	res := make([]model.Shape, 0, len(shapes))
	for _, sh := range shapes {
		key := CreateShapeKey(sh)
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, sh)
	}
	return res
}
