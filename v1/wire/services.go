package wire

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the vortex.api.v1 services.
const (
	MethodCreateCollection  = "/vortex.api.v1.CollectionsService/CreateCollection"
	MethodGetCollectionInfo = "/vortex.api.v1.CollectionsService/GetCollectionInfo"
	MethodListCollections   = "/vortex.api.v1.CollectionsService/ListCollections"
	MethodDeleteCollection  = "/vortex.api.v1.CollectionsService/DeleteCollection"

	MethodUpsertPoints = "/vortex.api.v1.PointsService/UpsertPoints"
	MethodGetPoints    = "/vortex.api.v1.PointsService/GetPoints"
	MethodDeletePoints = "/vortex.api.v1.PointsService/DeletePoints"
	MethodSearchPoints = "/vortex.api.v1.PointsService/SearchPoints"
)

// CollectionsClient is the client surface of vortex.api.v1.CollectionsService.
type CollectionsClient interface {
	CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error)
	GetCollectionInfo(ctx context.Context, in *GetCollectionInfoRequest, opts ...grpc.CallOption) (*GetCollectionInfoResponse, error)
	ListCollections(ctx context.Context, in *ListCollectionsRequest, opts ...grpc.CallOption) (*ListCollectionsResponse, error)
	DeleteCollection(ctx context.Context, in *DeleteCollectionRequest, opts ...grpc.CallOption) (*DeleteCollectionResponse, error)
}

// PointsClient is the client surface of vortex.api.v1.PointsService.
type PointsClient interface {
	UpsertPoints(ctx context.Context, in *UpsertPointsRequest, opts ...grpc.CallOption) (*UpsertPointsResponse, error)
	GetPoints(ctx context.Context, in *GetPointsRequest, opts ...grpc.CallOption) (*GetPointsResponse, error)
	DeletePoints(ctx context.Context, in *DeletePointsRequest, opts ...grpc.CallOption) (*DeletePointsResponse, error)
	SearchPoints(ctx context.Context, in *SearchPointsRequest, opts ...grpc.CallOption) (*SearchPointsResponse, error)
}

type collectionsClient struct {
	cc grpc.ClientConnInterface
}

// NewCollectionsClient returns a CollectionsClient backed by cc.
func NewCollectionsClient(cc grpc.ClientConnInterface) CollectionsClient {
	return &collectionsClient{cc: cc}
}

func (c *collectionsClient) CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error) {
	out := new(CreateCollectionResponse)
	if err := c.invoke(ctx, MethodCreateCollection, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionsClient) GetCollectionInfo(ctx context.Context, in *GetCollectionInfoRequest, opts ...grpc.CallOption) (*GetCollectionInfoResponse, error) {
	out := new(GetCollectionInfoResponse)
	if err := c.invoke(ctx, MethodGetCollectionInfo, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionsClient) ListCollections(ctx context.Context, in *ListCollectionsRequest, opts ...grpc.CallOption) (*ListCollectionsResponse, error) {
	out := new(ListCollectionsResponse)
	if err := c.invoke(ctx, MethodListCollections, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionsClient) DeleteCollection(ctx context.Context, in *DeleteCollectionRequest, opts ...grpc.CallOption) (*DeleteCollectionResponse, error) {
	out := new(DeleteCollectionResponse)
	if err := c.invoke(ctx, MethodDeleteCollection, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionsClient) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, in, out, withCodec(opts)...)
}

type pointsClient struct {
	cc grpc.ClientConnInterface
}

// NewPointsClient returns a PointsClient backed by cc.
func NewPointsClient(cc grpc.ClientConnInterface) PointsClient {
	return &pointsClient{cc: cc}
}

func (c *pointsClient) UpsertPoints(ctx context.Context, in *UpsertPointsRequest, opts ...grpc.CallOption) (*UpsertPointsResponse, error) {
	out := new(UpsertPointsResponse)
	if err := c.invoke(ctx, MethodUpsertPoints, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pointsClient) GetPoints(ctx context.Context, in *GetPointsRequest, opts ...grpc.CallOption) (*GetPointsResponse, error) {
	out := new(GetPointsResponse)
	if err := c.invoke(ctx, MethodGetPoints, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pointsClient) DeletePoints(ctx context.Context, in *DeletePointsRequest, opts ...grpc.CallOption) (*DeletePointsResponse, error) {
	out := new(DeletePointsResponse)
	if err := c.invoke(ctx, MethodDeletePoints, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pointsClient) SearchPoints(ctx context.Context, in *SearchPointsRequest, opts ...grpc.CallOption) (*SearchPointsResponse, error) {
	out := new(SearchPointsResponse)
	if err := c.invoke(ctx, MethodSearchPoints, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pointsClient) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, in, out, withCodec(opts)...)
}

// withCodec prepends the wire codec so callers may still append their own
// call options.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
}
