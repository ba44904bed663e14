package diagram

import (
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
)

var cMajor = model.ShapeFromFrets(map[model.StringID]int{6: -1, 5: 3, 4: 2, 3: 0, 2: 1, 1: 0})

func TestRender(t *testing.T) {
	want := strings.Join([]string{
		"   6 | 5 | 4 | 3 | 2 | 1 ",
		"   X |   |   | 0 |   | 0 ",
		"1    |   |   |   | ● |   ",
		"2    |   | ● |   |   |   ",
		"3    | ● |   |   |   |   ",
	}, "\n") + "\n"

	assert.Equal(t, want, Render(cMajor))
}

func TestRenderShowsFingerLabels(t *testing.T) {
	sh := model.Shape{
		{String: 4, Fret: 2, Finger: 1},
		{String: 3, Fret: 2, Finger: 1},
		{String: 2, Fret: 3, Finger: 2},
		{String: 1, Fret: -1},
	}
	out := Render(sh)
	assert.Contains(t, out, "2  1 | 1 |   |   ")
	assert.Contains(t, out, "3    |   | 2 |   ")
}

func TestRenderAllOpen(t *testing.T) {
	sh := model.ShapeFromFrets(map[model.StringID]int{2: 0, 1: 0})
	assert.Equal(t, "   2 | 1 \n   0 | 0 \n1    |   \n", Render(sh))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "x32010", Compact(cMajor))
	assert.Equal(t, "(10)(12)x", Compact(model.ShapeFromFrets(map[model.StringID]int{3: 10, 2: 12, 1: -1})))
}
