package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/notes"
	"github.com/jsphweid/fretdex/tuning"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoNotes = errors.New("no notes found")

var readSMF = smf.ReadFrom

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// corrupt files can panic inside the parser, not only with strings
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := readSMF(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Keys collects every key that starts sounding anywhere in the file.
func Keys(s *smf.SMF) []uint8 {
	if s == nil {
		return nil
	}
	seen := make(map[uint8]bool)
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				seen[key] = true
			}
		}
	}

	res := make([]uint8, 0, len(seen))
	for k := range seen {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// ChordFromKeys treats the lowest key as the root.
func ChordFromKeys(keys []uint8) (model.ChordSpec, error) {
	if len(keys) == 0 {
		return model.ChordSpec{}, ErrNoNotes
	}
	lowest := keys[0]
	var s notes.Set
	for _, k := range keys {
		s = s.Add(notes.FromMidiKey(k))
		if k < lowest {
			lowest = k
		}
	}
	return model.ChordSpec{Notes: s, Root: notes.FromMidiKey(lowest)}, nil
}

func ChordFromSMF(s *smf.SMF) (model.ChordSpec, error) {
	return ChordFromKeys(Keys(s))
}

// WriteShapes renders each shape as a block chord one quarter note long,
// voiced on t.
func WriteShapes(w io.Writer, t model.Tuning, shapes []model.Shape) error {
	var (
		clock = smf.MetricTicks(960)
		tr    smf.Track
	)
	tr.Add(0, smf.MetaTempo(90))

	for _, sh := range shapes {
		keys := tuning.KeysFor(t, sh)
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, 100))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = clock.Ticks4th()
			}
			tr.Add(delta, midi.NoteOff(0, k))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

func WriteShapesFile(path string, t model.Tuning, shapes []model.Shape) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteShapes(f, t, shapes)
}
