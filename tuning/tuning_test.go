package tuning

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard(t *testing.T) {
	std := Standard()
	assert.Len(t, std, 6)
	assert.Equal(t, notes.MustParse("E"), std[6])
	assert.Equal(t, notes.MustParse("B"), std[2])
	assert.Equal(t, []string{"E", "A", "D", "G", "B", "E"}, Names(std))
}

func TestAllPresetsParse(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			tu, err := p.Tuning()
			require.NoError(t, err)
			assert.Len(t, tu, len(p.Strings))
		})
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	p, err := Lookup("drop-d")
	assert.NoError(err)
	assert.Equal("Guitar Drop D", p.Label)

	p, err = Lookup("banjo open g")
	assert.NoError(err)
	assert.Equal("banjo-open-g", p.Name)

	_, err = Lookup("ukulele-baritone")
	assert.ErrorIs(err, ErrUnknownTuning)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	tu, err := Parse("D A D G B E")
	assert.NoError(err)
	assert.Equal(notes.MustParse("D"), tu[6])

	tu, err = Parse("G,D,A,E")
	assert.NoError(err)
	assert.Len(tu, 4)
	assert.Equal(notes.MustParse("G"), tu[4])

	tu, err = Parse("seven-string")
	assert.NoError(err)
	assert.Len(tu, 7)

	_, err = Parse("E A X")
	assert.ErrorIs(err, notes.ErrUnknownNote)

	_, err = Parse("  ")
	assert.ErrorIs(err, ErrUnknownTuning)
}

func TestVoiceStandard(t *testing.T) {
	v := Voice(Standard())
	assert.Equal(t, map[model.StringID]uint8{6: 40, 5: 45, 4: 50, 3: 55, 2: 59, 1: 64}, v)
}

func TestKeysForOpenG(t *testing.T) {
	sh := model.ShapeFromFrets(map[model.StringID]int{6: 3, 5: 2, 4: 0, 3: 0, 2: 0, 1: -1})
	assert.Equal(t, []uint8{43, 47, 50, 55, 59}, KeysFor(Standard(), sh))
}
