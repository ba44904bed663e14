package tuning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
)

var ErrUnknownTuning = errors.New("unknown tuning")

type Preset struct {
	Name  string
	Label string

	// open string names, lowest pitched string first
	Strings []string
}

var presets = []Preset{
	{Name: "standard", Label: "Guitar Standard 6-string", Strings: []string{"E", "A", "D", "G", "B", "E"}},
	{Name: "baritone", Label: "Guitar Baritone", Strings: []string{"B", "E", "A", "D", "G", "B"}},
	{Name: "seven-string", Label: "Guitar Standard 7-string", Strings: []string{"B", "E", "A", "D", "G", "B", "E"}},
	{Name: "drop-d", Label: "Guitar Drop D", Strings: []string{"D", "A", "D", "G", "B", "E"}},
	{Name: "flamenco-d69", Label: "Guitar Flamenco D6/9", Strings: []string{"D", "A", "D", "F♯", "B", "E"}},
	{Name: "dadgab", Label: "DADGAB", Strings: []string{"D", "A", "D", "G", "A", "B"}},
	{Name: "mandolin", Label: "Mandola/Mandolin/Tenor Banjo", Strings: []string{"G", "D", "A", "E"}},
	{Name: "banjo-plectrum", Label: "Banjo Standard Plectrum", Strings: []string{"C", "G", "B", "D"}},
	{Name: "banjo-open-g", Label: "Banjo Open G", Strings: []string{"D", "G", "B", "G"}},
	{Name: "banjo-double-c", Label: "Banjo Double C", Strings: []string{"C", "G", "C", "D"}},
	{Name: "banjo-c", Label: "Banjo C", Strings: []string{"C", "G", "B", "D"}},
	{Name: "banjo-d", Label: "Banjo D", Strings: []string{"D", "F♯", "A", "D"}},
	{Name: "banjo-g-modal", Label: "Banjo G Modal", Strings: []string{"D", "G", "C", "D"}},
}

func Presets() []Preset {
	res := make([]Preset, len(presets))
	copy(res, presets)
	return res
}

// Lookup finds a preset by its name or its label, ignoring case.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.Label, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
}

func (p Preset) Tuning() (model.Tuning, error) {
	return FromNames(p.Strings)
}

// FromNames builds a tuning from open string names listed lowest pitched
// first, so the first name becomes the highest numbered string.
func FromNames(names []string) (model.Tuning, error) {
	t := make(model.Tuning, len(names))
	for i, name := range names {
		p, err := notes.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", len(names)-i, err)
		}
		t[len(names)-i] = p
	}
	return t, nil
}

// Parse accepts either a preset name/label or a whitespace or comma
// separated list of open string names such as "E A D G B E".
func Parse(s string) (model.Tuning, error) {
	if p, err := Lookup(s); err == nil {
		return p.Tuning()
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTuning, s)
	}
	return FromNames(fields)
}

func Standard() model.Tuning {
	t, err := presets[0].Tuning()
	if err != nil {
		panic(err)
	}
	return t
}

// Names lists open string names lowest pitched first.
func Names(t model.Tuning) []string {
	var res []string
	for _, s := range t.Strings() {
		res = append(res, t[s].String())
	}
	return res
}
