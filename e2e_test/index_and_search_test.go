//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/config"
	"github.com/jsphweid/fretdex/diagram"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	c, err := config.Default().Constraints("", tuning.Standard())
	if err != nil {
		panic(err.Error())
	}
	if _, err := cmd.Index(context.Background(), "standard", c); err != nil {
		panic(err.Error())
	}
	if err := cmd.LoadServeFiles(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createShapesReqBody(root string, chordType string) io.Reader {
	data, err := json.Marshal(model.ShapesRequestBody{Root: root, Type: chordType})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func searchShapes(t *testing.T, root string, chordType string) model.ShapesResponse {
	req := httptest.NewRequest(http.MethodPost, "/shapes", createShapesReqBody(root, chordType))
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(respBody))

	var shapesResponse model.ShapesResponse
	require.NoError(t, json.Unmarshal(respBody, &shapesResponse))
	return shapesResponse
}

func compacts(shapes []model.Shape) []string {
	var res []string
	for _, sh := range shapes {
		res = append(res, diagram.Compact(sh))
	}
	return res
}

func TestBasicGChordE2E(t *testing.T) {
	res := searchShapes(t, "G", "major")

	assert := assert.New(t)
	assert.Equal("catalog", res.Source)
	assert.Contains(compacts(res.Shapes), "320003")
	assert.Contains(compacts(res.Shapes), "355433")
}

func TestBasicCChordE2E(t *testing.T) {
	res := searchShapes(t, "C", "major")

	assert := assert.New(t)
	assert.Equal("catalog", res.Source)
	assert.Contains(compacts(res.Shapes), "032010")
	// the open C with a muted low E is covered by the one that plays it
	assert.NotContains(compacts(res.Shapes), "x32010")
}
