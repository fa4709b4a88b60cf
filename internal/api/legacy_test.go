package api

import (
	"net/http"
	"testing"

	"github.com/shapeworks/geometry-service/core"
	"github.com/shapeworks/geometry-service/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLegacyRouter() http.Handler {
	return NewLegacyRouter(NewLegacyService(logging.Noop()), logging.Noop())
}

func TestLegacyAnalyzeTriangle(t *testing.T) {
	router := newLegacyRouter()

	rr := postJSON(t, router, "/v1/triangle:analyze", map[string]any{
		"pointA": map[string]float64{"x": 0, "y": 0},
		"pointB": map[string]float64{"x": 3, "y": 0},
		"pointC": map[string]float64{"x": 0, "y": 4},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var props core.TriangleProperties
	decodeBody(t, rr, &props)

	assert.True(t, props.IsRightTriangle)
	assert.InDelta(t, 6, props.Area, 1e-9)
	assert.InDelta(t, 12, props.Perimeter, 1e-9)
}

func TestLegacyAnalyzeTriangle_Degenerate(t *testing.T) {
	router := newLegacyRouter()

	rr := postJSON(t, router, "/v1/triangle:analyze", map[string]any{
		"pointA": map[string]float64{"x": 0, "y": 0},
		"pointB": map[string]float64{"x": 1, "y": 1},
		"pointC": map[string]float64{"x": 2, "y": 2},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}

func TestLegacyAnalyzePolygon_ConvexSquare(t *testing.T) {
	router := newLegacyRouter()

	rr := postJSON(t, router, "/v1/polygon:analyze", map[string]any{
		"points": []map[string]float64{
			{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var props core.PolygonProperties
	decodeBody(t, rr, &props)

	assert.True(t, props.IsConvex)
	assert.InDelta(t, 1, props.Area, 1e-9)
	assert.Equal(t, 4, props.VertexCount)
}

func TestLegacyAnalyzePolygon_ConcaveZeroArea(t *testing.T) {
	router := newLegacyRouter()

	rr := postJSON(t, router, "/v1/polygon:analyze", map[string]any{
		"points": []map[string]float64{
			{"x": 0, "y": 0}, {"x": 2, "y": 0}, {"x": 0.5, "y": 0.5}, {"x": 0, "y": 2},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var props core.PolygonProperties
	decodeBody(t, rr, &props)

	assert.False(t, props.IsConvex)
	assert.Zero(t, props.Area)
}

func TestLegacyAnalyzePolygon_TooFewVertices(t *testing.T) {
	router := newLegacyRouter()

	rr := postJSON(t, router, "/v1/polygon:analyze", map[string]any{
		"points": []map[string]float64{{"x": 0, "y": 0}, {"x": 1, "y": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}
