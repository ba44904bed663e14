package model

import (
	"sort"

	"github.com/jsphweid/fretdex/notes"
)

// StringID numbers an instrument string; larger numbers are lower pitched.
type StringID = int

const (
	Muted = -1
	Open  = 0
)

// Tuning maps each string to the pitch class it sounds unfretted.
type Tuning map[StringID]notes.PitchClass

// Strings lists the tuning's strings from the lowest pitched (highest id)
// to the highest pitched.
func (t Tuning) Strings() []StringID {
	res := make([]StringID, 0, len(t))
	for s := range t {
		res = append(res, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(res)))
	return res
}

type FingerPosition struct {
	String StringID `json:"string"`
	Fret   int      `json:"fret"`

	// NOTE: advisory only, 0 means unlabeled
	Finger int `json:"finger,omitempty"`
}

func (p FingerPosition) IsMuted() bool {
	return p.Fret < 0
}

func (p FingerPosition) IsFretted() bool {
	return p.Fret > 0
}

// Shape holds one position per string, lowest pitched string first.
type Shape []FingerPosition

// Fret returns the fret assigned to s, or Muted if s has no position.
func (sh Shape) Fret(s StringID) int {
	for _, p := range sh {
		if p.String == s {
			return p.Fret
		}
	}
	return Muted
}

// NumPlayed counts the positions that sound.
func (sh Shape) NumPlayed() int {
	var n int
	for _, p := range sh {
		if !p.IsMuted() {
			n++
		}
	}
	return n
}

// Sorted returns a copy ordered by string id descending.
func (sh Shape) Sorted() Shape {
	res := make(Shape, len(sh))
	copy(res, sh)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].String > res[j].String
	})
	return res
}

// Frets returns fret values keyed by string id.
func (sh Shape) Frets() map[StringID]int {
	res := make(map[StringID]int, len(sh))
	for _, p := range sh {
		res[p.String] = p.Fret
	}
	return res
}

// ShapeFromFrets builds a shape from a string -> fret map.
func ShapeFromFrets(frets map[StringID]int) Shape {
	var sh Shape
	for s, f := range frets {
		sh = append(sh, FingerPosition{String: s, Fret: f})
	}
	return sh.Sorted()
}
