package notes

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownNote = errors.New("unknown note")

// PitchClass is a note name under octave equivalence, 0 = C through 11 = B.
type PitchClass uint8

const NumPitchClasses = 12

var chromaticScale = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

func ChromaticScale() []string {
	res := make([]string, NumPitchClasses)
	copy(res, chromaticScale[:])
	return res
}

func (p PitchClass) String() string {
	return chromaticScale[p%NumPitchClasses]
}

// Transpose moves p up by semitones, wrapping at the octave.
func (p PitchClass) Transpose(semitones int) PitchClass {
	v := (int(p) + semitones) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}

var flats = map[string]string{
	"Cb": "B",
	"Db": "C#",
	"Eb": "D#",
	"Fb": "E",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"E#": "F",
	"B#": "C",
}

// Normalize rewrites a note name to its canonical sharp spelling.
// Names it doesn't recognize are returned trimmed but otherwise untouched.
func Normalize(name string) string {
	n := strings.TrimSpace(name)
	n = strings.ReplaceAll(n, "♯", "#")
	n = strings.ReplaceAll(n, "♭", "b")
	if len(n) > 0 {
		n = strings.ToUpper(n[:1]) + n[1:]
	}
	if sharp, ok := flats[n]; ok {
		return sharp
	}
	return n
}

func Parse(name string) (PitchClass, error) {
	n := Normalize(name)
	for i, v := range chromaticScale {
		if v == n {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

func MustParse(name string) PitchClass {
	p, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return p
}

// FromMidiKey maps a MIDI key number to its pitch class (key 60 is C).
func FromMidiKey(key uint8) PitchClass {
	return PitchClass(key % NumPitchClasses)
}

func (p PitchClass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PitchClass) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
