package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/tuning"
	"go.uber.org/zap"
)

var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, key string) ([]model.Shape, error)
	Put(ctx context.Context, key string, shapes []model.Shape) error
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Key identifies a search by everything that can change its result.
func Key(spec model.ChordSpec, c model.Constraints) string {
	parts := []string{
		spec.Root.String(),
		strings.Join(spec.Notes.Names(), "-"),
		strings.Join(tuning.Names(c.Tuning), "-"),
		strconv.Itoa(c.MaxFingers),
		strconv.Itoa(c.MaxFretSpan),
		flag(c.AllowBarres) + flag(c.AllowOpenStrings) + flag(c.AllowMutedStrings) + flag(c.RequireRootInBass),
	}
	return strings.Join(parts, "|")
}

// Memory is an in-process Store that forgets the oldest entry once it
// holds maxEntries.
type Memory struct {
	mu         sync.RWMutex
	maxEntries int
	order      []string
	entries    map[string][]model.Shape
}

func NewMemory(maxEntries int) *Memory {
	return &Memory{maxEntries: maxEntries, entries: make(map[string][]model.Shape)}
}

func (m *Memory) Get(_ context.Context, key string) ([]model.Shape, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	shapes, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMiss, key)
	}
	return shapes, nil
}

func (m *Memory) Put(_ context.Context, key string, shapes []model.Shape) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = shapes
	for m.maxEntries > 0 && len(m.order) > m.maxEntries {
		delete(m.entries, m.order[0])
		m.order = m.order[1:]
	}
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Tiered reads through each store in order and writes to all of them.
type Tiered struct {
	Stores []Store
	Log    *zap.Logger
}

func NewTiered(log *zap.Logger, stores ...Store) *Tiered {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tiered{Stores: stores, Log: log}
}

func (t *Tiered) Get(ctx context.Context, key string) ([]model.Shape, error) {
	for i, s := range t.Stores {
		shapes, err := s.Get(ctx, key)
		if errors.Is(err, ErrMiss) {
			continue
		}
		if err != nil {
			return nil, err
		}
		// backfill the faster tiers; a failure there still leaves a hit
		for _, faster := range t.Stores[:i] {
			if err := faster.Put(ctx, key, shapes); err != nil {
				t.Log.Warn("Cache backfill failed", zap.String("key", key), zap.Error(err))
			}
		}
		return shapes, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMiss, key)
}

func (t *Tiered) Put(ctx context.Context, key string, shapes []model.Shape) error {
	var errs []error
	for _, s := range t.Stores {
		if err := s.Put(ctx, key, shapes); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
