package catalog

import (
	"github.com/jsphweid/fretdex/util"
)

type Report struct {
	NumEntries   int
	NumShapes    int
	EmptyEntries []string
	MinShapes    int
	MaxShapes    int
	AvgShapes    float32
}

func (cat *Catalog) Report() Report {
	var r Report
	var counts []int
	for _, key := range cat.Keys() {
		n := len(cat.Entries[key].Shapes)
		counts = append(counts, n)
		if n == 0 {
			r.EmptyEntries = append(r.EmptyEntries, key)
		}
		if r.NumEntries == 0 {
			r.MinShapes = n
		}
		r.MinShapes = util.Min(r.MinShapes, n)
		r.MaxShapes = util.Max(r.MaxShapes, n)
		r.NumEntries++
	}
	r.NumShapes = int(util.Sum(counts))
	if r.NumEntries > 0 {
		r.AvgShapes = float32(r.NumShapes) / float32(r.NumEntries)
	}
	return r
}
