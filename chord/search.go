package chord

import (
	"context"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Shapes []model.Shape
	Stats  model.SearchStats
}

type searcher struct {
	spec    model.ChordSpec
	c       model.Constraints
	strings []model.StringID
	stats   model.SearchStats
	found   []model.Shape
}

func newSearcher(spec model.ChordSpec, c model.Constraints) *searcher {
	return &searcher{spec: spec, c: c, strings: c.Tuning.Strings()}
}

// candidates lists frets for s that sound a chord tone, in ascending order,
// with the muted option last.
func (s *searcher) candidates(str model.StringID) []int {
	var res []int
	for fret := 0; fret <= constants.FixedMaxFret; fret++ {
		if fret == model.Open && !s.c.AllowOpenStrings {
			continue
		}
		note, ok := NoteAt(str, fret, s.c.Tuning)
		if ok && s.spec.Notes.Has(note) {
			res = append(res, fret)
		}
	}
	if s.c.AllowMutedStrings {
		res = append(res, model.Muted)
	}
	return res
}

// extend never touches partial, so sibling branches can't see each other.
func extend(partial model.Shape, str model.StringID, fret int) model.Shape {
	next := make(model.Shape, len(partial), len(partial)+1)
	copy(next, partial)
	return append(next, model.FingerPosition{String: str, Fret: fret})
}

func (s *searcher) try(idx int, partial model.Shape, fret int) {
	s.stats.Visited++
	next := extend(partial, s.strings[idx], fret)
	if Violates(next, s.c) {
		s.stats.Pruned++
		return
	}
	s.recurse(idx+1, next)
}

func (s *searcher) recurse(idx int, partial model.Shape) {
	if idx == len(s.strings) {
		if !Accepts(partial, s.spec, s.c) {
			s.stats.Rejected++
			return
		}
		s.stats.Emitted++
		s.found = append(s.found, partial)
		return
	}

	for _, fret := range s.candidates(s.strings[idx]) {
		s.try(idx, partial, fret)
	}
}

func searchable(spec model.ChordSpec, c model.Constraints) bool {
	return !spec.Notes.IsEmpty() && len(c.Tuning) > 0
}

// Enumerate returns every complete shape that passes the constraints, in
// search order, before deduplication and reduction.
func Enumerate(spec model.ChordSpec, c model.Constraints) []model.Shape {
	return enumerate(spec, c).found
}

func enumerate(spec model.ChordSpec, c model.Constraints) *searcher {
	s := newSearcher(spec, c)
	if searchable(spec, c) {
		s.recurse(0, nil)
	}
	return s
}

func finish(found []model.Shape, stats model.SearchStats) Result {
	unique := Dedupe(found)
	reduced := Reduce(unique)
	stats.Unique = len(unique)
	stats.Survivors = len(reduced)
	return Result{Shapes: reduced, Stats: stats}
}

// Search runs the whole pipeline: backtracking search, deduplication and
// removal of shapes that only mute strings a kept shape plays.
func Search(spec model.ChordSpec, c model.Constraints) Result {
	s := enumerate(spec, c)
	return finish(s.found, s.stats)
}

// SearchParallel explores each candidate of the lowest pitched string on
// its own goroutine. Branch results are merged in candidate order, so the
// output matches Search exactly.
func SearchParallel(ctx context.Context, spec model.ChordSpec, c model.Constraints) (Result, error) {
	root := newSearcher(spec, c)
	if !searchable(spec, c) {
		return finish(nil, root.stats), nil
	}

	first := root.candidates(root.strings[0])
	branches := make([]*searcher, len(first))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, fret := range first {
		i, fret := i, fret
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			b := newSearcher(spec, c)
			b.try(0, nil, fret)
			branches[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	var found []model.Shape
	stats := root.stats
	for _, b := range branches {
		found = append(found, b.found...)
		stats.Visited += b.stats.Visited
		stats.Pruned += b.stats.Pruned
		stats.Rejected += b.stats.Rejected
		stats.Emitted += b.stats.Emitted
	}
	return finish(found, stats), nil
}

// GenerateCandidateShapes returns the reduced candidate set, most played
// shapes first.
func GenerateCandidateShapes(spec model.ChordSpec, c model.Constraints) []model.Shape {
	return Search(spec, c).Shapes
}
