package vortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-db/vortex-go/v1/wire"
)

func TestPayloadConversionRoundTrip(t *testing.T) {
	in := Payload{
		"title":  "My Document",
		"rank":   float64(3),
		"score":  0.92,
		"draft":  false,
		"tags":   []any{"ml", "ai"},
		"nested": map[string]any{"lang": "en"},
		"empty":  nil,
	}

	wp, err := toWirePayload(in)
	require.NoError(t, err)
	require.NotNil(t, wp)

	out := fromWirePayload(wp)
	assert.Equal(t, in, out)
}

func TestPayloadConversionNil(t *testing.T) {
	wp, err := toWirePayload(nil)
	require.NoError(t, err)
	assert.Nil(t, wp)
	assert.Nil(t, fromWirePayload(nil))
}

func TestPayloadConversionUnsupportedValue(t *testing.T) {
	_, err := toWirePayload(Payload{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `payload field "ch"`)
}

func TestPointConversionRoundTrip(t *testing.T) {
	in := PointStruct{
		ID:      "p1",
		Vector:  Vector{0.1, 0.2, 0.3},
		Payload: Payload{"title": "doc"},
	}

	wp, err := toWirePoint(in)
	require.NoError(t, err)
	assert.Equal(t, in, fromWirePoint(wp))
}

func TestScoredPointConversion(t *testing.T) {
	version := uint64(7)
	got := fromWireScoredPoint(&wire.ScoredPoint{
		Id:      "p1",
		Vector:  &wire.Vector{Elements: []float32{0.1}},
		Score:   0.93,
		Version: &version,
	})

	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, Vector{0.1}, got.Vector)
	assert.InDelta(t, 0.93, float64(got.Score), 1e-6)
	require.NotNil(t, got.Version)
	assert.Equal(t, uint64(7), *got.Version)
}

func TestFilterConversionEmptyIsOmitted(t *testing.T) {
	got, err := toWireFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = toWireFilter(&Filter{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFilterConversion(t *testing.T) {
	got, err := toWireFilter(&Filter{MustMatchExact: Payload{"lang": "en", "year": float64(2024)}})
	require.NoError(t, err)

	require.NotNil(t, got)
	require.Len(t, got.MustMatchExact, 2)
	assert.Equal(t, "en", got.MustMatchExact["lang"].AsInterface())
}

func TestSearchParamsConversion(t *testing.T) {
	assert.Nil(t, toWireSearchParams(nil))
	assert.Nil(t, toWireSearchParams(&SearchParams{}))

	got := toWireSearchParams(&SearchParams{EfSearch: Uint32(128)})
	require.NotNil(t, got)
	assert.Equal(t, uint32(128), *got.EfSearch)
}

func TestDistanceMetricConversion(t *testing.T) {
	assert.Equal(t, wire.DistanceMetricCosine, toWireDistanceMetric(DistanceCosine))
	assert.Equal(t, wire.DistanceMetricEuclideanL2, toWireDistanceMetric(DistanceEuclideanL2))
	assert.Equal(t, wire.DistanceMetricUnspecified, toWireDistanceMetric("BOGUS"))

	assert.Equal(t, DistanceEuclideanL2, fromWireDistanceMetric(wire.DistanceMetricEuclideanL2))
	// Unknown values decode to the default metric.
	assert.Equal(t, DistanceCosine, fromWireDistanceMetric(wire.DistanceMetric(42)))
}

func TestCollectionStatusConversionUnknownDefaultsGreen(t *testing.T) {
	assert.Equal(t, CollectionYellow, fromWireCollectionStatus(wire.CollectionStatusYellow))
	assert.Equal(t, CollectionGreen, fromWireCollectionStatus(wire.CollectionStatus(42)))
}

func TestStatusCodeConversionUnknownDefaultsError(t *testing.T) {
	assert.Equal(t, StatusOk, fromWireStatusCode(wire.StatusCodeOk))
	assert.Equal(t, StatusNotFound, fromWireStatusCode(wire.StatusCodeNotFound))
	assert.Equal(t, StatusError, fromWireStatusCode(wire.StatusCode(42)))
}

func TestHnswConfigRoundTrip(t *testing.T) {
	seed := uint64(99)
	in := &HnswConfigParams{
		M:              16,
		EfConstruction: 200,
		EfSearch:       64,
		Ml:             0.36,
		Seed:           &seed,
		VectorDim:      768,
		MMax0:          32,
	}

	assert.Equal(t, *in, fromWireHnswConfig(toWireHnswConfig(in)))
	assert.Nil(t, toWireHnswConfig(nil))
	assert.Equal(t, HnswConfigParams{}, fromWireHnswConfig(nil))
}

func TestPointOperationStatusConversion(t *testing.T) {
	msg := "not found"
	got := fromWirePointOperationStatuses([]*wire.PointOperationStatus{
		{PointId: "p1", StatusCode: wire.StatusCodeOk},
		{PointId: "p2", StatusCode: wire.StatusCodeNotFound, ErrorMessage: &msg},
	})

	require.Len(t, got, 2)
	assert.Equal(t, StatusOk, got[0].StatusCode)
	assert.Nil(t, got[0].ErrorMessage)
	assert.Equal(t, StatusNotFound, got[1].StatusCode)
	require.NotNil(t, got[1].ErrorMessage)
	assert.Equal(t, "not found", *got[1].ErrorMessage)
}
