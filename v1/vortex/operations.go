package vortex

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-db/vortex-go/v1/wire"
)

// maxConcurrentSearches bounds the fan-out of SearchPointsBatch.
const maxConcurrentSearches = 10

//
// ──────────────────────────────────────────────────────────────
//   COLLECTIONS
// ──────────────────────────────────────────────────────────────
//

// CreateCollection creates a new collection with the given dimensionality
// and distance metric. hnsw may be nil to accept server defaults.
func (c *Client) CreateCollection(ctx context.Context, collectionName string, vectorDimensions uint32, metric DistanceMetric, hnsw *HnswConfigParams) error {
	start := time.Now()
	req := &wire.CreateCollectionRequest{
		CollectionName:   collectionName,
		VectorDimensions: vectorDimensions,
		DistanceMetric:   toWireDistanceMetric(metric),
		HnswConfig:       toWireHnswConfig(hnsw),
	}

	_, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("create collection '%s'", collectionName),
		func(ctx context.Context) (*wire.CreateCollectionResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.collections.CreateCollection(callCtx, req)
		})

	c.observeOperation("create_collection", collectionName, start, attempts, 0, err)
	if err != nil {
		return err
	}
	c.log.Debug("collection created", nil, map[string]interface{}{
		"collection": collectionName,
		"dimensions": vectorDimensions,
		"metric":     string(metric),
	})
	return nil
}

// GetCollectionInfo fetches the detailed metadata of one collection.
func (c *Client) GetCollectionInfo(ctx context.Context, collectionName string) (*CollectionInfo, error) {
	start := time.Now()
	req := &wire.GetCollectionInfoRequest{CollectionName: collectionName}

	resp, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("get collection info for '%s'", collectionName),
		func(ctx context.Context) (*wire.GetCollectionInfoResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.collections.GetCollectionInfo(callCtx, req)
		})

	c.observeOperation("get_collection_info", collectionName, start, attempts, 0, err)
	if err != nil {
		return nil, err
	}
	return fromWireCollectionInfo(resp), nil
}

// ListCollections returns a brief description of every collection.
func (c *Client) ListCollections(ctx context.Context) ([]CollectionDescription, error) {
	start := time.Now()
	req := &wire.ListCollectionsRequest{}

	resp, attempts, err := executeWithRetry(ctx, c.executor(), "list collections",
		func(ctx context.Context) (*wire.ListCollectionsResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.collections.ListCollections(callCtx, req)
		})

	c.observeOperation("list_collections", "", start, attempts, 0, err)
	if err != nil {
		return nil, err
	}
	out := make([]CollectionDescription, 0, len(resp.Collections))
	for _, d := range resp.Collections {
		out = append(out, fromWireCollectionDescription(d))
	}
	return out, nil
}

// DeleteCollection removes a collection and all of its points.
func (c *Client) DeleteCollection(ctx context.Context, collectionName string) error {
	start := time.Now()
	req := &wire.DeleteCollectionRequest{CollectionName: collectionName}

	_, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("delete collection '%s'", collectionName),
		func(ctx context.Context) (*wire.DeleteCollectionResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.collections.DeleteCollection(callCtx, req)
		})

	c.observeOperation("delete_collection", collectionName, start, attempts, 0, err)
	if err != nil {
		return err
	}
	c.log.Debug("collection deleted", nil, map[string]interface{}{
		"collection": collectionName,
	})
	return nil
}

//
// ──────────────────────────────────────────────────────────────
//   POINTS
// ──────────────────────────────────────────────────────────────
//

// UpsertPoints inserts or updates points in a collection and returns the
// per-point statuses. waitFlush may be nil to accept the server default.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, points []PointStruct, waitFlush *bool) ([]PointOperationStatus, error) {
	start := time.Now()
	wirePoints := make([]*wire.PointStruct, 0, len(points))
	for _, p := range points {
		wp, err := toWirePoint(p)
		if err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("invalid point '%s': %v", p.ID, err)}
		}
		wirePoints = append(wirePoints, wp)
	}
	req := &wire.UpsertPointsRequest{
		CollectionName: collectionName,
		Points:         wirePoints,
		WaitFlush:      waitFlush,
	}

	resp, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("upsert points in '%s'", collectionName),
		func(ctx context.Context) (*wire.UpsertPointsResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.points.UpsertPoints(callCtx, req)
		})

	c.observeOperation("upsert_points", collectionName, start, attempts, int64(len(points)), err)
	if err != nil {
		return nil, err
	}
	if msg := derefString(resp.OverallError); msg != "" {
		return nil, &APIError{
			Message:    fmt.Sprintf("Overall error during upsert: %s", msg),
			StatusCode: "ERROR",
		}
	}
	c.log.Debug("points upserted", nil, map[string]interface{}{
		"collection": collectionName,
		"count":      len(points),
	})
	return fromWirePointOperationStatuses(resp.Statuses), nil
}

// GetPoints retrieves points by ID. Missing IDs are absent from the result.
func (c *Client) GetPoints(ctx context.Context, collectionName string, ids []string, withPayload, withVector bool) ([]PointStruct, error) {
	start := time.Now()
	req := &wire.GetPointsRequest{
		CollectionName: collectionName,
		Ids:            ids,
		WithPayload:    &withPayload,
		WithVector:     &withVector,
	}

	resp, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("get points from '%s'", collectionName),
		func(ctx context.Context) (*wire.GetPointsResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.points.GetPoints(callCtx, req)
		})

	c.observeOperation("get_points", collectionName, start, attempts, int64(len(ids)), err)
	if err != nil {
		return nil, err
	}
	out := make([]PointStruct, 0, len(resp.Points))
	for _, p := range resp.Points {
		out = append(out, fromWirePoint(p))
	}
	return out, nil
}

// DeletePoints removes points by ID and returns the per-point statuses.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string, waitFlush *bool) ([]PointOperationStatus, error) {
	start := time.Now()
	req := &wire.DeletePointsRequest{
		CollectionName: collectionName,
		Ids:            ids,
		WaitFlush:      waitFlush,
	}

	resp, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("delete points from '%s'", collectionName),
		func(ctx context.Context) (*wire.DeletePointsResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.points.DeletePoints(callCtx, req)
		})

	c.observeOperation("delete_points", collectionName, start, attempts, int64(len(ids)), err)
	if err != nil {
		return nil, err
	}
	if msg := derefString(resp.OverallError); msg != "" {
		return nil, &APIError{
			Message:    fmt.Sprintf("Overall error during delete: %s", msg),
			StatusCode: "ERROR",
		}
	}
	return fromWirePointOperationStatuses(resp.Statuses), nil
}

// SearchPoints runs a single similarity search.
func (c *Client) SearchPoints(ctx context.Context, search SearchRequest) ([]ScoredPoint, error) {
	start := time.Now()
	filter, err := toWireFilter(search.Filter)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid filter: %v", err)}
	}
	req := &wire.SearchPointsRequest{
		CollectionName: search.CollectionName,
		QueryVector:    toWireVector(search.QueryVector),
		KLimit:         search.KLimit,
		Filter:         filter,
		WithPayload:    &search.WithPayload,
		WithVector:     &search.WithVector,
		Params:         toWireSearchParams(search.Params),
	}

	resp, attempts, err := executeWithRetry(ctx, c.executor(),
		fmt.Sprintf("search points in '%s'", search.CollectionName),
		func(ctx context.Context) (*wire.SearchPointsResponse, error) {
			callCtx, cancel := c.callContext(ctx)
			defer cancel()
			return c.points.SearchPoints(callCtx, req)
		})

	c.observeOperation("search_points", search.CollectionName, start, attempts, int64(search.KLimit), err)
	if err != nil {
		return nil, err
	}
	out := make([]ScoredPoint, 0, len(resp.Results))
	for _, p := range resp.Results {
		out = append(out, fromWireScoredPoint(p))
	}
	return out, nil
}

// SearchPointsBatch runs several searches concurrently and returns the
// result sets in request order. The first failure cancels the remaining
// searches; each search retries independently before that.
func (c *Client) SearchPointsBatch(ctx context.Context, searches ...SearchRequest) ([][]ScoredPoint, error) {
	results := make([][]ScoredPoint, len(searches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	for i, search := range searches {
		i, search := i, search
		g.Go(func() error {
			res, err := c.SearchPoints(gctx, search)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
