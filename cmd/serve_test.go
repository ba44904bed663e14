package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretdex/cache"
	"github.com/jsphweid/fretdex/catalog"
	"github.com/jsphweid/fretdex/diagram"
	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withServeState(t *testing.T, cat *catalog.Catalog, store cache.Store) {
	t.Helper()
	prevCat, prevCache := serveCatalog, serveCache
	serveCatalog, serveCache = cat, store
	t.Cleanup(func() {
		serveCatalog, serveCache = prevCat, prevCache
	})
}

func postShapes(t *testing.T, body any) (*http.Response, []byte) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/shapes", bytes.NewReader(data))
	w := httptest.NewRecorder()
	HandleShapes(w, req)

	resp := w.Result()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func decodeShapes(t *testing.T, data []byte) model.ShapesResponse {
	t.Helper()
	var res model.ShapesResponse
	require.NoError(t, json.Unmarshal(data, &res))
	return res
}

func compacts(shapes []model.Shape) []string {
	var res []string
	for _, sh := range shapes {
		res = append(res, diagram.Compact(sh))
	}
	return res
}

func TestHandleShapesSearchesThenCaches(t *testing.T) {
	withServeState(t, nil, cache.NewMemory(16))
	body := model.ShapesRequestBody{Root: "G", Type: "major"}

	resp, data := postShapes(t, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeShapes(t, data)
	assert.Equal(t, sourceSearch, first.Source)
	assert.NotEmpty(t, first.Id)
	assert.Contains(t, compacts(first.Shapes), "320003")
	assert.Equal(t, len(first.Shapes), first.Stats.Survivors)
	assert.Positive(t, first.Stats.Visited)

	resp, data = postShapes(t, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeShapes(t, data)
	assert.Equal(t, sourceCache, second.Source)
	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, compacts(first.Shapes), compacts(second.Shapes))
}

func TestHandleShapesLabelsFingers(t *testing.T) {
	withServeState(t, nil, nil)

	resp, data := postShapes(t, model.ShapesRequestBody{Root: "G", Notes: []string{"G", "B", "D"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeShapes(t, data)
	for _, sh := range res.Shapes {
		for _, p := range sh {
			if p.IsFretted() {
				assert.Positive(t, p.Finger, "%v", diagram.Compact(sh))
			} else {
				assert.Zero(t, p.Finger, "%v", diagram.Compact(sh))
			}
		}
	}
}

func TestHandleShapesFromCatalog(t *testing.T) {
	c, name, err := resolveConstraints("mandolin", nil, "", nil)
	require.NoError(t, err)
	cat, err := catalog.Build(context.Background(), name, c)
	require.NoError(t, err)
	withServeState(t, cat, cache.NewMemory(16))

	resp, data := postShapes(t, model.ShapesRequestBody{Root: "D", Type: "minor", Tuning: []string{"mandolin"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeShapes(t, data)
	assert.Equal(t, sourceCatalog, res.Source)

	// a different profile can't come from the catalog
	yes := true
	resp, data = postShapes(t, model.ShapesRequestBody{
		Root:        "D",
		Type:        "minor",
		TuningName:  "mandolin",
		Constraints: &model.ConstraintsPatch{RequireRootInBass: &yes},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, sourceSearch, decodeShapes(t, data).Source)
}

func TestHandleShapesBadRequests(t *testing.T) {
	withServeState(t, nil, nil)
	negative := -1

	cases := map[string]any{
		"missing root":     model.ShapesRequestBody{Type: "major"},
		"unknown root":     model.ShapesRequestBody{Root: "H"},
		"unknown type":     model.ShapesRequestBody{Root: "G", Type: "mystery"},
		"root not in note": model.ShapesRequestBody{Root: "G", Notes: []string{"C", "E"}},
		"unknown tuning":   model.ShapesRequestBody{Root: "G", TuningName: "sitar"},
		"unknown profile":  model.ShapesRequestBody{Root: "G", Profile: "nope"},
		"negative fingers": model.ShapesRequestBody{Root: "G", Constraints: &model.ConstraintsPatch{MaxFingers: &negative}},
		"not an object":    []int{1, 2},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, data := postShapes(t, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var e model.ErrorResponse
			require.NoError(t, json.Unmarshal(data, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestRouter(t *testing.T) {
	router := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/tunings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var tunings []model.TuningSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tunings))
	assert.Equal(t, tuningSummaries(), tunings)

	req = httptest.NewRequest(http.MethodGet, "/chords", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var chords []model.ChordTypeSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chords))
	assert.Equal(t, chordTypeSummaries(), chords)

	req = httptest.NewRequest(http.MethodGet, "/shapes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
