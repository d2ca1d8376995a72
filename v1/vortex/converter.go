package vortex

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vortex-db/vortex-go/v1/wire"
)

//
// ──────────────────────────────────────────────────────────────
//   DOMAIN ⇄ WIRE CONVERSION
// ──────────────────────────────────────────────────────────────
//
// Field-by-field mapping between the typed domain models and the
// vortex.api.v1 wire messages. Unknown wire enum values decode to the
// domain defaults (COSINE, GREEN, ERROR) so a newer server never fails
// an older client.
//

// ── Payload ──────────────────────────────────────────────────────────────

func toWirePayload(p Payload) (*wire.Payload, error) {
	if p == nil {
		return nil, nil
	}
	fields := make(map[string]*structpb.Value, len(p))
	for k, v := range p {
		val, err := structpb.NewValue(v)
		if err != nil {
			return nil, fmt.Errorf("payload field %q: %w", k, err)
		}
		fields[k] = val
	}
	return &wire.Payload{Fields: fields}, nil
}

func fromWirePayload(p *wire.Payload) Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p.Fields))
	for k, v := range p.Fields {
		if v == nil {
			out[k] = nil
			continue
		}
		out[k] = v.AsInterface()
	}
	return out
}

// ── Vectors and points ──────────────────────────────────────────────────

func toWireVector(v Vector) *wire.Vector {
	return &wire.Vector{Elements: v}
}

func fromWireVector(v *wire.Vector) Vector {
	if v == nil {
		return nil
	}
	return v.Elements
}

func toWirePoint(p PointStruct) (*wire.PointStruct, error) {
	payload, err := toWirePayload(p.Payload)
	if err != nil {
		return nil, err
	}
	return &wire.PointStruct{
		Id:      p.ID,
		Vector:  toWireVector(p.Vector),
		Payload: payload,
	}, nil
}

func fromWirePoint(p *wire.PointStruct) PointStruct {
	return PointStruct{
		ID:      p.Id,
		Vector:  fromWireVector(p.Vector),
		Payload: fromWirePayload(p.Payload),
	}
}

func fromWireScoredPoint(p *wire.ScoredPoint) ScoredPoint {
	return ScoredPoint{
		ID:      p.Id,
		Vector:  fromWireVector(p.Vector),
		Payload: fromWirePayload(p.Payload),
		Score:   p.Score,
		Version: p.Version,
	}
}

// ── Filters and search params ───────────────────────────────────────────

// toWireFilter returns nil when the filter has no conditions, so an empty
// filter is simply not sent.
func toWireFilter(f *Filter) (*wire.Filter, error) {
	if f == nil || len(f.MustMatchExact) == 0 {
		return nil, nil
	}
	fields := make(map[string]*structpb.Value, len(f.MustMatchExact))
	for k, v := range f.MustMatchExact {
		val, err := structpb.NewValue(v)
		if err != nil {
			return nil, fmt.Errorf("filter field %q: %w", k, err)
		}
		fields[k] = val
	}
	return &wire.Filter{MustMatchExact: fields}, nil
}

// toWireSearchParams returns nil when no override is set.
func toWireSearchParams(p *SearchParams) *wire.SearchParams {
	if p == nil || p.EfSearch == nil {
		return nil
	}
	return &wire.SearchParams{EfSearch: p.EfSearch}
}

// ── Enums ───────────────────────────────────────────────────────────────

func toWireDistanceMetric(m DistanceMetric) wire.DistanceMetric {
	switch m {
	case DistanceCosine:
		return wire.DistanceMetricCosine
	case DistanceEuclideanL2:
		return wire.DistanceMetricEuclideanL2
	default:
		return wire.DistanceMetricUnspecified
	}
}

func fromWireDistanceMetric(m wire.DistanceMetric) DistanceMetric {
	switch m {
	case wire.DistanceMetricEuclideanL2:
		return DistanceEuclideanL2
	default:
		return DistanceCosine
	}
}

func fromWireCollectionStatus(s wire.CollectionStatus) CollectionStatus {
	switch s {
	case wire.CollectionStatusYellow:
		return CollectionYellow
	case wire.CollectionStatusRed:
		return CollectionRed
	case wire.CollectionStatusOptimizing:
		return CollectionOptimizing
	case wire.CollectionStatusCreating:
		return CollectionCreating
	default:
		return CollectionGreen
	}
}

func fromWireStatusCode(s wire.StatusCode) StatusCode {
	switch s {
	case wire.StatusCodeOk:
		return StatusOk
	case wire.StatusCodeNotFound:
		return StatusNotFound
	case wire.StatusCodeInvalidArgument:
		return StatusInvalidArgument
	default:
		return StatusError
	}
}

// ── HNSW config ─────────────────────────────────────────────────────────

func toWireHnswConfig(c *HnswConfigParams) *wire.HnswConfigParams {
	if c == nil {
		return nil
	}
	return &wire.HnswConfigParams{
		M:              c.M,
		EfConstruction: c.EfConstruction,
		EfSearch:       c.EfSearch,
		Ml:             c.Ml,
		Seed:           c.Seed,
		VectorDim:      c.VectorDim,
		MMax0:          c.MMax0,
	}
}

func fromWireHnswConfig(c *wire.HnswConfigParams) HnswConfigParams {
	if c == nil {
		return HnswConfigParams{}
	}
	return HnswConfigParams{
		M:              c.M,
		EfConstruction: c.EfConstruction,
		EfSearch:       c.EfSearch,
		Ml:             c.Ml,
		Seed:           c.Seed,
		VectorDim:      c.VectorDim,
		MMax0:          c.MMax0,
	}
}

// ── Collections ─────────────────────────────────────────────────────────

func fromWireCollectionInfo(r *wire.GetCollectionInfoResponse) *CollectionInfo {
	return &CollectionInfo{
		CollectionName:    r.CollectionName,
		Status:            fromWireCollectionStatus(r.Status),
		VectorCount:       r.VectorCount,
		SegmentCount:      r.SegmentCount,
		DiskSizeBytes:     r.DiskSizeBytes,
		RamFootprintBytes: r.RamFootprintBytes,
		Config:            fromWireHnswConfig(r.Config),
		DistanceMetric:    fromWireDistanceMetric(r.DistanceMetric),
	}
}

func fromWireCollectionDescription(d *wire.CollectionDescription) CollectionDescription {
	return CollectionDescription{
		Name:           d.Name,
		VectorCount:    d.VectorCount,
		Status:         fromWireCollectionStatus(d.Status),
		Dimensions:     d.Dimensions,
		DistanceMetric: fromWireDistanceMetric(d.DistanceMetric),
	}
}

// ── Point operation statuses ────────────────────────────────────────────

func fromWirePointOperationStatus(s *wire.PointOperationStatus) PointOperationStatus {
	return PointOperationStatus{
		PointID:      s.PointId,
		StatusCode:   fromWireStatusCode(s.StatusCode),
		ErrorMessage: s.ErrorMessage,
	}
}

func fromWirePointOperationStatuses(in []*wire.PointOperationStatus) []PointOperationStatus {
	out := make([]PointOperationStatus, len(in))
	for i, s := range in {
		out[i] = fromWirePointOperationStatus(s)
	}
	return out
}
