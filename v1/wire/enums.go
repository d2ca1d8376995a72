package wire

// DistanceMetric is the vortex.api.v1.DistanceMetric enum.
type DistanceMetric int32

const (
	DistanceMetricUnspecified DistanceMetric = 0
	DistanceMetricCosine      DistanceMetric = 1
	DistanceMetricEuclideanL2 DistanceMetric = 2
)

// String returns the proto enum value name.
func (d DistanceMetric) String() string {
	switch d {
	case DistanceMetricCosine:
		return "COSINE"
	case DistanceMetricEuclideanL2:
		return "EUCLIDEAN_L2"
	default:
		return "DISTANCE_METRIC_UNSPECIFIED"
	}
}

// CollectionStatus is the vortex.api.v1.CollectionStatus enum.
type CollectionStatus int32

const (
	CollectionStatusUnspecified CollectionStatus = 0
	CollectionStatusGreen       CollectionStatus = 1
	CollectionStatusYellow      CollectionStatus = 2
	CollectionStatusRed         CollectionStatus = 3
	CollectionStatusOptimizing  CollectionStatus = 4
	CollectionStatusCreating    CollectionStatus = 5
)

// String returns the proto enum value name.
func (s CollectionStatus) String() string {
	switch s {
	case CollectionStatusGreen:
		return "GREEN"
	case CollectionStatusYellow:
		return "YELLOW"
	case CollectionStatusRed:
		return "RED"
	case CollectionStatusOptimizing:
		return "OPTIMIZING"
	case CollectionStatusCreating:
		return "CREATING"
	default:
		return "COLLECTION_STATUS_UNSPECIFIED"
	}
}

// StatusCode is the vortex.api.v1.StatusCode enum used in per-point
// operation statuses.
type StatusCode int32

const (
	StatusCodeUnspecified     StatusCode = 0
	StatusCodeOk              StatusCode = 1
	StatusCodeError           StatusCode = 2
	StatusCodeNotFound        StatusCode = 3
	StatusCodeInvalidArgument StatusCode = 4
)

// String returns the proto enum value name.
func (s StatusCode) String() string {
	switch s {
	case StatusCodeOk:
		return "OK"
	case StatusCodeError:
		return "ERROR"
	case StatusCodeNotFound:
		return "NOT_FOUND"
	case StatusCodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "STATUS_CODE_UNSPECIFIED"
	}
}
