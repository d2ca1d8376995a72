// Package wire implements the vortex.api.v1 gRPC wire protocol.
//
// It contains the protobuf message types of the CollectionsService and
// PointsService, a codec bridging them onto gRPC, and thin client bindings
// over a grpc.ClientConnInterface.
//
// The message types are hand-encoded with protowire rather than generated,
// so the SDK carries no protoc toolchain requirement. Payload values are
// google.protobuf.Value and delegate to the structpb implementation.
//
// Nothing in this package interprets responses; the vortex package converts
// wire messages to and from the typed domain models.
//
//	cc, _ := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
//	collections := wire.NewCollectionsClient(cc)
//	points := wire.NewPointsClient(cc)
package wire
