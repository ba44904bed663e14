package notes

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// Set is a bitmask over the 12 pitch classes.
type Set uint16

func NewSet(pcs ...PitchClass) Set {
	var s Set
	for _, p := range pcs {
		s = s.Add(p)
	}
	return s
}

// ParseSet resolves every name, failing on the first unknown one.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, name := range names {
		p, err := Parse(name)
		if err != nil {
			return 0, err
		}
		s = s.Add(p)
	}
	return s, nil
}

func (s Set) Add(p PitchClass) Set {
	return s | 1<<(p%NumPitchClasses)
}

func (s Set) Has(p PitchClass) bool {
	return s&(1<<(p%NumPitchClasses)) != 0
}

// Contains reports whether every member of other is also in s.
func (s Set) Contains(other Set) bool {
	return s&other == other
}

func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s Set) IsEmpty() bool {
	return s == 0
}

// Slice lists members in chromatic order starting at C.
func (s Set) Slice() []PitchClass {
	res := make([]PitchClass, 0, s.Len())
	for p := PitchClass(0); p < NumPitchClasses; p++ {
		if s.Has(p) {
			res = append(res, p)
		}
	}
	return res
}

func (s Set) Names() []string {
	res := make([]string, 0, s.Len())
	for _, p := range s.Slice() {
		res = append(res, p.String())
	}
	return res
}

func (s Set) String() string {
	return "{" + strings.Join(s.Names(), " ") + "}"
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
