package midi

import (
	"sort"
	"sync"

	"github.com/jsphweid/fretdex/model"
)

// HeldNotes tracks which keys are down on a live input. Driver callbacks
// and the search run on different goroutines, so access is locked.
type HeldNotes struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func NewHeldNotes() *HeldNotes {
	return &HeldNotes{keys: make(map[uint8]bool)}
}

func (h *HeldNotes) Press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *HeldNotes) Release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

func (h *HeldNotes) Keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]uint8, 0, len(h.keys))
	for k := range h.keys {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// Chord returns the held chord, or ErrNoNotes when nothing is down.
func (h *HeldNotes) Chord() (model.ChordSpec, error) {
	return ChordFromKeys(h.Keys())
}
