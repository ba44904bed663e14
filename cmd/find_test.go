package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFindPrintsDiagrams(t *testing.T) {
	out, err := execute(t, "find", "G", "major", "--limit", "2", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "2 shapes for G")
	assert.Contains(t, out, "|")
}

func TestFindJSON(t *testing.T) {
	out, err := execute(t, "find", "A", "--notes", "A,C#,E", "--json", "--limit", "0", "--tuning", "mandolin")
	require.NoError(t, err)

	var shapes []model.Shape
	require.NoError(t, json.Unmarshal([]byte(out), &shapes))
	require.NotEmpty(t, shapes)
	for _, sh := range shapes {
		assert.Len(t, sh, 4)
	}
}

func TestFindRejectsUnknownChordType(t *testing.T) {
	_, err := execute(t, "find", "G", "mystery", "--json=false")
	assert.Error(t, err)
}

func TestTuningsAndChords(t *testing.T) {
	out, err := execute(t, "tunings")
	require.NoError(t, err)
	assert.Contains(t, out, "drop-d")

	out, err = execute(t, "chords")
	require.NoError(t, err)
	assert.Contains(t, out, "minor7")
}
