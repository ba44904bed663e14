package notes

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Db":  "C#",
		"Eb":  "D#",
		"Gb":  "F#",
		"Ab":  "G#",
		"Bb":  "A#",
		"F♯":  "F#",
		"B♭":  "A#",
		"g":   "G",
		" E ": "E",
		"C#":  "C#",
	}

	for in, want := range cases {
		t.Run(fmt.Sprintf("normalize %q", in), func(t *testing.T) {
			assert.Equal(t, want, Normalize(in))
		})
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	p, err := Parse("G")
	assert.NoError(err)
	assert.Equal(PitchClass(7), p)

	p, err = Parse("Bb")
	assert.NoError(err)
	assert.Equal("A#", p.String())

	_, err = Parse("H")
	assert.ErrorIs(err, ErrUnknownNote)
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MustParse("C"), MustParse("B").Transpose(1))
	assert.Equal(MustParse("E"), MustParse("E").Transpose(12))
	assert.Equal(MustParse("A"), MustParse("C").Transpose(-3))
}

func TestFromMidiKey(t *testing.T) {
	assert.Equal(t, MustParse("C"), FromMidiKey(60))
	assert.Equal(t, MustParse("E"), FromMidiKey(40))
}

func TestSet(t *testing.T) {
	assert := assert.New(t)

	g := NewSet(MustParse("G"), MustParse("B"), MustParse("D"))
	assert.Equal(3, g.Len())
	assert.True(g.Has(MustParse("B")))
	assert.False(g.Has(MustParse("C")))

	wider := g.Add(MustParse("E"))
	assert.True(wider.Contains(g))
	assert.False(g.Contains(wider))
	assert.Equal([]string{"D", "G", "B"}, g.Names())
}

func TestSetJSON(t *testing.T) {
	g := NewSet(MustParse("G"), MustParse("B"), MustParse("D"))
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `["D","G","B"]`, string(data))

	var decoded Set
	require.NoError(t, json.Unmarshal([]byte(`["G","Bb","D"]`), &decoded))
	assert.Equal(t, NewSet(MustParse("G"), MustParse("A#"), MustParse("D")), decoded)

	err = json.Unmarshal([]byte(`["Q"]`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownNote)
}

func TestChordNotes(t *testing.T) {
	assert := assert.New(t)

	s, err := ChordNotes(MustParse("G"), "major")
	assert.NoError(err)
	assert.Equal(NewSet(MustParse("G"), MustParse("B"), MustParse("D")), s)

	s, err = ChordNotes(MustParse("D"), "sixth")
	assert.NoError(err)
	assert.Equal([]string{"D", "F#", "A", "B"}, s.Names())

	// the 9th wraps to the 2nd
	s, err = ChordNotes(MustParse("C"), "add9")
	assert.NoError(err)
	assert.True(s.Has(MustParse("D")))

	_, err = ChordNotes(MustParse("C"), "power")
	assert.ErrorIs(err, ErrUnknownChordType)
}

func TestChordTypesHaveLabels(t *testing.T) {
	for _, ct := range ChordTypes() {
		assert.NotEqual(t, ct, ChordTypeLabel(ct), "missing label for %s", ct)
	}
}
