package vortex

// DistanceMetric selects how vector similarity is computed.
type DistanceMetric string

const (
	DistanceCosine      DistanceMetric = "COSINE"
	DistanceEuclideanL2 DistanceMetric = "EUCLIDEAN_L2"
)

// CollectionStatus is the operational state of a collection.
type CollectionStatus string

const (
	CollectionGreen      CollectionStatus = "GREEN"
	CollectionYellow     CollectionStatus = "YELLOW"
	CollectionRed        CollectionStatus = "RED"
	CollectionOptimizing CollectionStatus = "OPTIMIZING"
	CollectionCreating   CollectionStatus = "CREATING"
)

// StatusCode is the per-point operation status reported by the server.
type StatusCode string

const (
	StatusOk              StatusCode = "OK"
	StatusError           StatusCode = "ERROR"
	StatusNotFound        StatusCode = "NOT_FOUND"
	StatusInvalidArgument StatusCode = "INVALID_ARGUMENT"
)

// Vector is a dense embedding.
type Vector []float32

// Payload is the metadata stored with a point. Values may be nil, bool,
// float64, string, []any, or map[string]any (the JSON-like value space of
// google.protobuf.Value).
type Payload map[string]any

// PointStruct is a single point: an ID, a vector, and optional payload.
type PointStruct struct {
	ID      string  `json:"id"`
	Vector  Vector  `json:"vector"`
	Payload Payload `json:"payload,omitempty"`
}

// ScoredPoint is a point returned from a search with its similarity score.
type ScoredPoint struct {
	ID string `json:"id"`

	// Vector is the stored embedding; populated only when requested.
	Vector Vector `json:"vector,omitempty"`

	// Payload is the stored metadata; populated only when requested.
	Payload Payload `json:"payload,omitempty"`

	// Score is the similarity score (higher = more similar for cosine).
	Score float32 `json:"score"`

	// Version is the point's storage version, when the server reports one.
	Version *uint64 `json:"version,omitempty"`
}

// Filter restricts which points a search considers.
// The protocol currently supports exact-match filtering on payload fields.
type Filter struct {
	MustMatchExact Payload `json:"mustMatchExact,omitempty"`
}

// HnswConfigParams are the HNSW index parameters of a collection.
type HnswConfigParams struct {
	// M is the number of connections per node.
	M uint32 `json:"m"`

	// EfConstruction is the size of the dynamic list during index build.
	EfConstruction uint32 `json:"efConstruction"`

	// EfSearch is the size of the dynamic list during search.
	EfSearch uint32 `json:"efSearch"`

	// Ml is the normalization factor for level generation.
	Ml float64 `json:"ml"`

	// Seed for level generation, when fixed.
	Seed *uint64 `json:"seed,omitempty"`

	// VectorDim is the dimensionality of the vectors.
	VectorDim uint32 `json:"vectorDim"`

	// MMax0 is the maximum connections for layer 0.
	MMax0 uint32 `json:"mMax0"`
}

// PointOperationStatus reports the outcome of an operation on one point.
type PointOperationStatus struct {
	PointID      string     `json:"pointId"`
	StatusCode   StatusCode `json:"statusCode"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
}

// CollectionInfo is the detailed metadata of one collection.
type CollectionInfo struct {
	CollectionName    string           `json:"collectionName"`
	Status            CollectionStatus `json:"status"`
	VectorCount       uint64           `json:"vectorCount"`
	SegmentCount      uint64           `json:"segmentCount"`
	DiskSizeBytes     uint64           `json:"diskSizeBytes"`
	RamFootprintBytes uint64           `json:"ramFootprintBytes"`
	Config            HnswConfigParams `json:"config"`
	DistanceMetric    DistanceMetric   `json:"distanceMetric"`
}

// CollectionDescription is a brief description of one collection.
type CollectionDescription struct {
	Name           string           `json:"name"`
	VectorCount    uint64           `json:"vectorCount"`
	Status         CollectionStatus `json:"status"`
	Dimensions     uint32           `json:"dimensions"`
	DistanceMetric DistanceMetric   `json:"distanceMetric"`
}

// SearchParams are optional per-search overrides.
type SearchParams struct {
	// EfSearch overrides the collection's HNSW ef_search for this query.
	EfSearch *uint32 `json:"efSearch,omitempty"`
}

// SearchRequest is a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in.
	CollectionName string `json:"collectionName"`

	// QueryVector is the embedding to find similar vectors for.
	QueryVector Vector `json:"queryVector"`

	// KLimit is the maximum number of results to return.
	KLimit uint32 `json:"kLimit"`

	// Filter is optional exact-match payload filtering.
	Filter *Filter `json:"filter,omitempty"`

	// WithPayload requests stored payloads in the results.
	WithPayload bool `json:"withPayload"`

	// WithVector requests stored vectors in the results.
	WithVector bool `json:"withVector"`

	// Params are optional per-search overrides.
	Params *SearchParams `json:"params,omitempty"`
}

// NewSearchRequest builds a SearchRequest with payloads included,
// matching the server's customary defaults.
func NewSearchRequest(collectionName string, queryVector Vector, kLimit uint32) SearchRequest {
	return SearchRequest{
		CollectionName: collectionName,
		QueryVector:    queryVector,
		KLimit:         kLimit,
		WithPayload:    true,
	}
}
