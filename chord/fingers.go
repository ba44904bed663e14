package chord

import (
	"sort"

	"github.com/jsphweid/fretdex/model"
)

// LabelFingers returns a copy of sh with an advisory finger number on every
// fretted position: runs nearest the nut get the lowest numbers, and within
// a fret the run on the lower pitched strings goes first. It says nothing
// about whether a hand can actually make the shape.
func LabelFingers(sh model.Shape) model.Shape {
	runs := fingerRuns(sh)
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].fret != runs[j].fret {
			return runs[i].fret < runs[j].fret
		}
		return runs[i].strings[len(runs[i].strings)-1] > runs[j].strings[len(runs[j].strings)-1]
	})

	labels := make(map[model.StringID]int)
	for i, r := range runs {
		for _, s := range r.strings {
			labels[s] = i + 1
		}
	}

	res := make(model.Shape, len(sh))
	for i, p := range sh {
		p.Finger = labels[p.String]
		res[i] = p
	}
	return res
}
