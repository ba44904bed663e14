package diagram

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
)

const dot = "●"

func cell(s string) string {
	return " " + s + " "
}

// Render draws a shape as text, lowest pitched string on the left. C major
// (x32010) comes out as
//
//	   6 | 5 | 4 | 3 | 2 | 1
//	   X |   |   | 0 |   | 0
//	1    |   |   |   | ● |
//	2    |   | ● |   |   |
//	3    | ● |   |   |   |
//
// Fretted positions show their finger label when they have one.
func Render(sh model.Shape) string {
	sorted := sh.Sorted()
	maxFret := 1
	for _, p := range sorted {
		if p.Fret > maxFret {
			maxFret = p.Fret
		}
	}
	width := len(fmt.Sprint(maxFret))

	var b strings.Builder
	row := func(label string, cells []string) {
		b.WriteString(fmt.Sprintf("%-*s ", width, label))
		b.WriteString(strings.Join(cells, "|"))
		b.WriteString("\n")
	}

	header := make([]string, len(sorted))
	markers := make([]string, len(sorted))
	for i, p := range sorted {
		header[i] = cell(fmt.Sprint(p.String))
		switch {
		case p.IsMuted():
			markers[i] = cell("X")
		case p.Fret == model.Open:
			markers[i] = cell("0")
		default:
			markers[i] = cell(" ")
		}
	}
	row("", header)
	row("", markers)

	for fret := 1; fret <= maxFret; fret++ {
		cells := make([]string, len(sorted))
		for i, p := range sorted {
			switch {
			case p.Fret != fret:
				cells[i] = cell(" ")
			case p.Finger > 0:
				cells[i] = cell(fmt.Sprint(p.Finger))
			default:
				cells[i] = cell(dot)
			}
		}
		row(fmt.Sprint(fret), cells)
	}
	return b.String()
}

// Compact is the one line form, e.g. "x32010", with frets above 9 in
// parentheses.
func Compact(sh model.Shape) string {
	var b strings.Builder
	for _, p := range sh.Sorted() {
		switch {
		case p.IsMuted():
			b.WriteString("x")
		case p.Fret > 9:
			b.WriteString(fmt.Sprintf("(%d)", p.Fret))
		default:
			b.WriteString(fmt.Sprint(p.Fret))
		}
	}
	return b.String()
}
