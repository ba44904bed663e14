package logging

import (
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	spec, err := model.NewChordSpec("G", "major")
	require.NoError(t, err)
	logger.Info("searched", Chord(spec), Stats(model.SearchStats{Visited: 10, Survivors: 2}))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, []interface{}{"G", "D", "G", "B"}, fields["chord"])
	assert.Equal(t, map[string]interface{}{
		"visited": 10, "pruned": 0, "rejected": 0,
		"emitted": 0, "unique": 0, "survivors": 2,
	}, fields["stats"])
}
