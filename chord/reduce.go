package chord

import (
	"sort"

	"github.com/jsphweid/fretdex/model"
)

// Dominates reports whether b plays everything a plays, on the same frets.
// Strings a mutes are unconstrained. Both shapes must share a tuning.
func Dominates(b, a model.Shape) bool {
	for _, p := range a {
		if p.IsMuted() {
			continue
		}
		if b.Fret(p.String) != p.Fret {
			return false
		}
	}
	return true
}

// Reduce drops every shape dominated by another one. Shapes are visited most
// played first (ties keep their order), so anything a dropped shape would
// dominate is dominated by its dominator too and one greedy pass suffices.
func Reduce(shapes []model.Shape) []model.Shape {
	ordered := make([]model.Shape, len(shapes))
	copy(ordered, shapes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].NumPlayed() > ordered[j].NumPlayed()
	})

	kept := make([]model.Shape, 0, len(ordered))
ShapeLoop:
	for _, sh := range ordered {
		for _, k := range kept {
			if Dominates(k, sh) {
				continue ShapeLoop
			}
		}
		kept = append(kept, sh)
	}
	return kept
}
