package tuning

import (
	"github.com/jsphweid/fretdex/model"
)

// lowest string sits in octave 2, so standard tuning voices as E2 A2 D3 G3 B3 E4
const baseOctaveKey = 36

// Voice assigns a MIDI key to every open string. Tunings only carry pitch
// classes, so each string above the lowest takes the first key above the
// previous string with its pitch class.
func Voice(t model.Tuning) map[model.StringID]uint8 {
	res := make(map[model.StringID]uint8, len(t))
	var prev int
	for i, s := range t.Strings() {
		key := baseOctaveKey + int(t[s])
		if i > 0 {
			for key <= prev {
				key += 12
			}
		}
		res[s] = uint8(key)
		prev = key
	}
	return res
}

// KeysFor returns the MIDI keys a shape sounds, lowest string first.
func KeysFor(t model.Tuning, sh model.Shape) []uint8 {
	open := Voice(t)
	var res []uint8
	for _, p := range sh.Sorted() {
		if p.IsMuted() {
			continue
		}
		key, ok := open[p.String]
		if !ok {
			continue
		}
		res = append(res, key+uint8(p.Fret))
	}
	return res
}
