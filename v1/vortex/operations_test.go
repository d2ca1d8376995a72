package vortex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vortex-db/vortex-go/v1/logger"
	"github.com/vortex-db/vortex-go/v1/observability"
	"github.com/vortex-db/vortex-go/v1/wire"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

// fakeCollections implements wire.CollectionsClient with canned behavior.
// failures is consumed one error per call before responses are served.
type fakeCollections struct {
	mu       sync.Mutex
	failures []error
	calls    int

	createReq *wire.CreateCollectionRequest
	infoResp  *wire.GetCollectionInfoResponse
	listResp  *wire.ListCollectionsResponse
	deleteReq *wire.DeleteCollectionRequest
}

func (f *fakeCollections) nextErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return err
	}
	return nil
}

func (f *fakeCollections) CreateCollection(_ context.Context, in *wire.CreateCollectionRequest, _ ...grpc.CallOption) (*wire.CreateCollectionResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	f.createReq = in
	return &wire.CreateCollectionResponse{}, nil
}

func (f *fakeCollections) GetCollectionInfo(_ context.Context, _ *wire.GetCollectionInfoRequest, _ ...grpc.CallOption) (*wire.GetCollectionInfoResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return f.infoResp, nil
}

func (f *fakeCollections) ListCollections(_ context.Context, _ *wire.ListCollectionsRequest, _ ...grpc.CallOption) (*wire.ListCollectionsResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return f.listResp, nil
}

func (f *fakeCollections) DeleteCollection(_ context.Context, in *wire.DeleteCollectionRequest, _ ...grpc.CallOption) (*wire.DeleteCollectionResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	f.deleteReq = in
	return &wire.DeleteCollectionResponse{}, nil
}

// fakePoints implements wire.PointsClient with canned behavior.
type fakePoints struct {
	mu       sync.Mutex
	failures []error
	calls    int

	upsertReq  *wire.UpsertPointsRequest
	upsertResp *wire.UpsertPointsResponse
	getResp    *wire.GetPointsResponse
	deleteResp *wire.DeletePointsResponse
	searchReq  *wire.SearchPointsRequest
	searchResp *wire.SearchPointsResponse
}

func (f *fakePoints) nextErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return err
	}
	return nil
}

func (f *fakePoints) UpsertPoints(_ context.Context, in *wire.UpsertPointsRequest, _ ...grpc.CallOption) (*wire.UpsertPointsResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	f.upsertReq = in
	return f.upsertResp, nil
}

func (f *fakePoints) GetPoints(_ context.Context, _ *wire.GetPointsRequest, _ ...grpc.CallOption) (*wire.GetPointsResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return f.getResp, nil
}

func (f *fakePoints) DeletePoints(_ context.Context, _ *wire.DeletePointsRequest, _ ...grpc.CallOption) (*wire.DeletePointsResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return f.deleteResp, nil
}

func (f *fakePoints) SearchPoints(_ context.Context, in *wire.SearchPointsRequest, _ ...grpc.CallOption) (*wire.SearchPointsResponse, error) {
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.searchReq = in
	f.mu.Unlock()
	return f.searchResp, nil
}

// timeoutPoints blocks every GetPoints call until its context expires,
// recording whether the call ran under a deadline.
type timeoutPoints struct {
	fakePoints
	hadDeadline bool
}

func (f *timeoutPoints) GetPoints(ctx context.Context, _ *wire.GetPointsRequest, _ ...grpc.CallOption) (*wire.GetPointsResponse, error) {
	f.calls++
	_, f.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return nil, status.FromContextError(ctx.Err()).Err()
}

// deadlineRecordingPoints succeeds immediately, recording whether the
// call ran under a deadline.
type deadlineRecordingPoints struct {
	fakePoints
	hadDeadline bool
}

func (f *deadlineRecordingPoints) GetPoints(ctx context.Context, _ *wire.GetPointsRequest, _ ...grpc.CallOption) (*wire.GetPointsResponse, error) {
	_, f.hadDeadline = ctx.Deadline()
	return &wire.GetPointsResponse{}, nil
}

// newTestClient builds a Client over fakes, retries enabled with
// microsecond backoffs so retry paths run instantly.
func newTestClient(collections wire.CollectionsClient, points wire.PointsClient) *Client {
	policy := DefaultRetryPolicy()
	policy.InitialBackoff = 0
	policy.MaxBackoff = 0
	policy.Jitter = false
	return &Client{
		cfg:         DefaultConfig(),
		collections: collections,
		points:      points,
		policy:      policy,
		sleep:       contextSleeper{},
		jitter:      defaultJitter,
		log:         logger.NewNopLogger(),
	}
}

func TestCreateCollection(t *testing.T) {
	fc := &fakeCollections{}
	c := newTestClient(fc, &fakePoints{})

	err := c.CreateCollection(context.Background(), "docs", 768, DistanceCosine,
		&HnswConfigParams{M: 16, EfConstruction: 200})
	require.NoError(t, err)

	require.NotNil(t, fc.createReq)
	assert.Equal(t, "docs", fc.createReq.CollectionName)
	assert.Equal(t, uint32(768), fc.createReq.VectorDimensions)
	assert.Equal(t, wire.DistanceMetricCosine, fc.createReq.DistanceMetric)
	require.NotNil(t, fc.createReq.HnswConfig)
	assert.Equal(t, uint32(16), fc.createReq.HnswConfig.M)
}

func TestCreateCollectionRetriesTransientFailure(t *testing.T) {
	fc := &fakeCollections{failures: []error{
		status.Error(codes.Unavailable, "node down"),
		status.Error(codes.Unavailable, "node down"),
	}}
	obs := &TestObserver{}
	c := newTestClient(fc, &fakePoints{})
	c.observer = obs

	err := c.CreateCollection(context.Background(), "docs", 768, DistanceCosine, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, fc.calls)

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "create_collection", ops[0].Operation)
	assert.Equal(t, "docs", ops[0].Resource)
	assert.Equal(t, 3, ops[0].Attempts)
	assert.NoError(t, ops[0].Error)
}

func TestCreateCollectionFatalError(t *testing.T) {
	fc := &fakeCollections{failures: []error{
		status.Error(codes.AlreadyExists, "collection exists"),
	}}
	c := newTestClient(fc, &fakePoints{})

	err := c.CreateCollection(context.Background(), "docs", 768, DistanceCosine, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to create collection 'docs'", apiErr.Message)
	assert.Equal(t, "ALREADY_EXISTS", apiErr.StatusCode)
	assert.Equal(t, 1, fc.calls)
}

func TestGetCollectionInfo(t *testing.T) {
	fc := &fakeCollections{infoResp: &wire.GetCollectionInfoResponse{
		CollectionName: "docs",
		Status:         wire.CollectionStatusGreen,
		VectorCount:    1234,
		SegmentCount:   3,
		Config:         &wire.HnswConfigParams{M: 16, EfConstruction: 200, EfSearch: 64},
		DistanceMetric: wire.DistanceMetricEuclideanL2,
	}}
	c := newTestClient(fc, &fakePoints{})

	info, err := c.GetCollectionInfo(context.Background(), "docs")
	require.NoError(t, err)

	assert.Equal(t, "docs", info.CollectionName)
	assert.Equal(t, CollectionGreen, info.Status)
	assert.Equal(t, uint64(1234), info.VectorCount)
	assert.Equal(t, DistanceEuclideanL2, info.DistanceMetric)
	assert.Equal(t, uint32(16), info.Config.M)
}

func TestListCollections(t *testing.T) {
	fc := &fakeCollections{listResp: &wire.ListCollectionsResponse{
		Collections: []*wire.CollectionDescription{
			{Name: "docs", VectorCount: 10, Status: wire.CollectionStatusGreen, Dimensions: 768},
			{Name: "images", VectorCount: 0, Status: wire.CollectionStatusCreating, Dimensions: 512},
		},
	}}
	c := newTestClient(fc, &fakePoints{})

	got, err := c.ListCollections(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "docs", got[0].Name)
	assert.Equal(t, CollectionGreen, got[0].Status)
	assert.Equal(t, "images", got[1].Name)
	assert.Equal(t, CollectionCreating, got[1].Status)
}

func TestDeleteCollection(t *testing.T) {
	fc := &fakeCollections{}
	c := newTestClient(fc, &fakePoints{})

	require.NoError(t, c.DeleteCollection(context.Background(), "docs"))
	require.NotNil(t, fc.deleteReq)
	assert.Equal(t, "docs", fc.deleteReq.CollectionName)
}

func TestUpsertPoints(t *testing.T) {
	ok := wire.StatusCodeOk
	fp := &fakePoints{upsertResp: &wire.UpsertPointsResponse{
		Statuses: []*wire.PointOperationStatus{
			{PointId: "p1", StatusCode: ok},
			{PointId: "p2", StatusCode: ok},
		},
	}}
	c := newTestClient(&fakeCollections{}, fp)

	statuses, err := c.UpsertPoints(context.Background(), "docs", []PointStruct{
		{ID: "p1", Vector: Vector{0.1, 0.2}, Payload: Payload{"title": "first"}},
		{ID: "p2", Vector: Vector{0.3, 0.4}},
	}, Bool(true))
	require.NoError(t, err)

	require.Len(t, statuses, 2)
	assert.Equal(t, "p1", statuses[0].PointID)
	assert.Equal(t, StatusOk, statuses[0].StatusCode)

	require.NotNil(t, fp.upsertReq)
	assert.Equal(t, "docs", fp.upsertReq.CollectionName)
	require.Len(t, fp.upsertReq.Points, 2)
	require.NotNil(t, fp.upsertReq.WaitFlush)
	assert.True(t, *fp.upsertReq.WaitFlush)
}

func TestUpsertPointsOverallError(t *testing.T) {
	msg := "disk full"
	fp := &fakePoints{upsertResp: &wire.UpsertPointsResponse{OverallError: &msg}}
	c := newTestClient(&fakeCollections{}, fp)

	_, err := c.UpsertPoints(context.Background(), "docs",
		[]PointStruct{{ID: "p1", Vector: Vector{0.1}}}, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Overall error during upsert: disk full", apiErr.Message)
	assert.Equal(t, "ERROR", apiErr.StatusCode)
}

func TestUpsertPointsRejectsUnsupportedPayload(t *testing.T) {
	fp := &fakePoints{}
	c := newTestClient(&fakeCollections{}, fp)

	_, err := c.UpsertPoints(context.Background(), "docs", []PointStruct{
		{ID: "p1", Vector: Vector{0.1}, Payload: Payload{"ch": make(chan int)}},
	}, nil)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 0, fp.calls)
}

func TestGetPoints(t *testing.T) {
	fp := &fakePoints{getResp: &wire.GetPointsResponse{
		Points: []*wire.PointStruct{
			{Id: "p1", Vector: &wire.Vector{Elements: []float32{0.1, 0.2}}},
		},
	}}
	c := newTestClient(&fakeCollections{}, fp)

	points, err := c.GetPoints(context.Background(), "docs", []string{"p1", "missing"}, true, true)
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, "p1", points[0].ID)
	assert.Equal(t, Vector{0.1, 0.2}, points[0].Vector)
}

func TestDeletePointsOverallError(t *testing.T) {
	msg := "segment locked"
	fp := &fakePoints{deleteResp: &wire.DeletePointsResponse{OverallError: &msg}}
	c := newTestClient(&fakeCollections{}, fp)

	_, err := c.DeletePoints(context.Background(), "docs", []string{"p1"}, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Overall error during delete: segment locked", apiErr.Message)
}

func TestSearchPoints(t *testing.T) {
	fp := &fakePoints{searchResp: &wire.SearchPointsResponse{
		Results: []*wire.ScoredPoint{
			{Id: "p1", Score: 0.97},
			{Id: "p2", Score: 0.42},
		},
	}}
	obs := &TestObserver{}
	c := newTestClient(&fakeCollections{}, fp)
	c.observer = obs

	req := NewSearchRequest("docs", Vector{0.1, 0.2, 0.3}, 5)
	req.Filter = &Filter{MustMatchExact: Payload{"lang": "en"}}

	results, err := c.SearchPoints(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "p1", results[0].ID)
	assert.InDelta(t, 0.97, float64(results[0].Score), 1e-6)

	require.NotNil(t, fp.searchReq)
	assert.Equal(t, uint32(5), fp.searchReq.KLimit)
	require.NotNil(t, fp.searchReq.WithPayload)
	assert.True(t, *fp.searchReq.WithPayload)
	require.NotNil(t, fp.searchReq.Filter)

	ops := obs.GetOperations()
	require.Len(t, ops, 1)
	assert.Equal(t, "search_points", ops[0].Operation)
	assert.Equal(t, int64(5), ops[0].Size)
}

func TestSearchPointsBatch(t *testing.T) {
	fp := &fakePoints{searchResp: &wire.SearchPointsResponse{
		Results: []*wire.ScoredPoint{{Id: "p1", Score: 0.9}},
	}}
	c := newTestClient(&fakeCollections{}, fp)

	results, err := c.SearchPointsBatch(context.Background(),
		NewSearchRequest("docs", Vector{0.1}, 3),
		NewSearchRequest("docs", Vector{0.2}, 3),
		NewSearchRequest("docs", Vector{0.3}, 3),
	)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, set := range results {
		require.Len(t, set, 1)
		assert.Equal(t, "p1", set[0].ID)
	}
	assert.Equal(t, 3, fp.calls)
}

func TestSearchPointsBatchPropagatesFailure(t *testing.T) {
	fp := &fakePoints{failures: []error{
		status.Error(codes.InvalidArgument, "dimension mismatch"),
	}}
	c := newTestClient(&fakeCollections{}, fp)

	_, err := c.SearchPointsBatch(context.Background(),
		NewSearchRequest("docs", Vector{0.1}, 3))

	_, ok := AsAPIError(err)
	require.True(t, ok)
}

func TestTimeoutBoundsEachAttempt(t *testing.T) {
	fp := &timeoutPoints{}
	c := newTestClient(&fakeCollections{}, fp)
	c.cfg = DefaultConfig().WithTimeout(5 * time.Millisecond)

	_, err := c.GetPoints(context.Background(), "docs", []string{"p1"}, true, false)

	assert.True(t, fp.hadDeadline)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "DEADLINE_EXCEEDED", apiErr.StatusCode)
	// The attempt timed out, not the caller's context.
	assert.Equal(t, 1, fp.calls)
}

func TestZeroTimeoutLeavesAttemptsUnbounded(t *testing.T) {
	fp := &deadlineRecordingPoints{}
	c := newTestClient(&fakeCollections{}, fp)

	_, err := c.GetPoints(context.Background(), "docs", []string{"p1"}, true, false)

	require.NoError(t, err)
	assert.False(t, fp.hadDeadline)
}

func TestSetRetryPolicySwapsAtomically(t *testing.T) {
	fp := &fakePoints{failures: []error{
		status.Error(codes.Unavailable, "node down"),
	}}
	c := newTestClient(&fakeCollections{}, fp)

	c.SetRetryPolicy(RetryPolicy{Enabled: false})

	_, err := c.GetPoints(context.Background(), "docs", []string{"p1"}, true, false)
	require.Error(t, err)
	assert.Equal(t, 1, fp.calls)

	got := c.RetryPolicy()
	assert.False(t, got.Enabled)
}

func TestRetryPolicySnapshotIsIsolatedFromCaller(t *testing.T) {
	c := newTestClient(&fakeCollections{}, &fakePoints{})
	c.SetRetryPolicy(DefaultRetryPolicy())

	got := c.RetryPolicy()
	got.RetryableStatusCodes[0] = codes.Internal

	again := c.RetryPolicy()
	assert.Equal(t, codes.Unavailable, again.RetryableStatusCodes[0])
}
