package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// CreateCollectionRequest creates a new collection.
type CreateCollectionRequest struct {
	CollectionName   string            // field 1
	VectorDimensions uint32            // field 2
	DistanceMetric   DistanceMetric    // field 3
	HnswConfig       *HnswConfigParams // field 4, optional
}

func (r *CreateCollectionRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	b = appendUint32(b, 2, r.VectorDimensions)
	b = appendEnum(b, 3, int32(r.DistanceMetric))
	if r.HnswConfig != nil {
		var err error
		if b, err = appendMessage(b, 4, r.HnswConfig); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *CreateCollectionRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		var m int
		var err error
		switch num {
		case 1:
			r.CollectionName, m, err = consumeString(num, typ, b)
		case 2:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				r.VectorDimensions = uint32(v)
			}
		case 3:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				r.DistanceMetric = DistanceMetric(v)
			}
		case 4:
			if r.HnswConfig == nil {
				r.HnswConfig = &HnswConfigParams{}
			}
			m, err = consumeMessage(num, typ, b, r.HnswConfig)
		default:
			m, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

// CreateCollectionResponse is empty; failures surface as gRPC status errors.
type CreateCollectionResponse struct{}

func (*CreateCollectionResponse) MarshalWire() ([]byte, error) { return nil, nil }

func (*CreateCollectionResponse) UnmarshalWire(b []byte) error {
	return skipAll(b)
}

// GetCollectionInfoRequest fetches detailed collection metadata.
type GetCollectionInfoRequest struct {
	CollectionName string // field 1
}

func (r *GetCollectionInfoRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, r.CollectionName), nil
}

func (r *GetCollectionInfoRequest) UnmarshalWire(b []byte) error {
	return unmarshalSingleString(b, &r.CollectionName)
}

// GetCollectionInfoResponse is the detailed metadata of one collection.
type GetCollectionInfoResponse struct {
	CollectionName    string            // field 1
	Status            CollectionStatus  // field 2
	VectorCount       uint64            // field 3
	SegmentCount      uint64            // field 4
	DiskSizeBytes     uint64            // field 5
	RamFootprintBytes uint64            // field 6
	Config            *HnswConfigParams // field 7
	DistanceMetric    DistanceMetric    // field 8
}

func (r *GetCollectionInfoResponse) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	b = appendEnum(b, 2, int32(r.Status))
	b = appendUint64(b, 3, r.VectorCount)
	b = appendUint64(b, 4, r.SegmentCount)
	b = appendUint64(b, 5, r.DiskSizeBytes)
	b = appendUint64(b, 6, r.RamFootprintBytes)
	if r.Config != nil {
		var err error
		if b, err = appendMessage(b, 7, r.Config); err != nil {
			return nil, err
		}
	}
	b = appendEnum(b, 8, int32(r.DistanceMetric))
	return b, nil
}

func (r *GetCollectionInfoResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		var m int
		var err error
		var v uint64
		switch num {
		case 1:
			r.CollectionName, m, err = consumeString(num, typ, b)
		case 2:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				r.Status = CollectionStatus(v)
			}
		case 3:
			r.VectorCount, m, err = consumeVarint(num, typ, b)
		case 4:
			r.SegmentCount, m, err = consumeVarint(num, typ, b)
		case 5:
			r.DiskSizeBytes, m, err = consumeVarint(num, typ, b)
		case 6:
			r.RamFootprintBytes, m, err = consumeVarint(num, typ, b)
		case 7:
			if r.Config == nil {
				r.Config = &HnswConfigParams{}
			}
			m, err = consumeMessage(num, typ, b, r.Config)
		case 8:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				r.DistanceMetric = DistanceMetric(v)
			}
		default:
			m, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

// ListCollectionsRequest has no fields.
type ListCollectionsRequest struct{}

func (*ListCollectionsRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (*ListCollectionsRequest) UnmarshalWire(b []byte) error {
	return skipAll(b)
}

// CollectionDescription is a brief description of one collection.
type CollectionDescription struct {
	Name           string           // field 1
	VectorCount    uint64           // field 2
	Status         CollectionStatus // field 3
	Dimensions     uint32           // field 4
	DistanceMetric DistanceMetric   // field 5
}

func (d *CollectionDescription) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, d.Name)
	b = appendUint64(b, 2, d.VectorCount)
	b = appendEnum(b, 3, int32(d.Status))
	b = appendUint32(b, 4, d.Dimensions)
	b = appendEnum(b, 5, int32(d.DistanceMetric))
	return b, nil
}

func (d *CollectionDescription) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		var m int
		var err error
		var v uint64
		switch num {
		case 1:
			d.Name, m, err = consumeString(num, typ, b)
		case 2:
			d.VectorCount, m, err = consumeVarint(num, typ, b)
		case 3:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				d.Status = CollectionStatus(v)
			}
		case 4:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				d.Dimensions = uint32(v)
			}
		case 5:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				d.DistanceMetric = DistanceMetric(v)
			}
		default:
			m, err = skipField(num, typ, b)
		}
		if err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

// ListCollectionsResponse lists all collections.
type ListCollectionsResponse struct {
	Collections []*CollectionDescription // field 1, repeated
}

func (r *ListCollectionsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, c := range r.Collections {
		if b, err = appendMessage(b, 1, c); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *ListCollectionsResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			c := &CollectionDescription{}
			m, err := consumeMessage(num, typ, b, c)
			if err != nil {
				return err
			}
			r.Collections = append(r.Collections, c)
			b = b[m:]
		default:
			m, err := skipField(num, typ, b)
			if err != nil {
				return err
			}
			b = b[m:]
		}
	}
	return nil
}

// DeleteCollectionRequest deletes a collection by name.
type DeleteCollectionRequest struct {
	CollectionName string // field 1
}

func (r *DeleteCollectionRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, r.CollectionName), nil
}

func (r *DeleteCollectionRequest) UnmarshalWire(b []byte) error {
	return unmarshalSingleString(b, &r.CollectionName)
}

// DeleteCollectionResponse is empty; failures surface as gRPC status errors.
type DeleteCollectionResponse struct{}

func (*DeleteCollectionResponse) MarshalWire() ([]byte, error) { return nil, nil }

func (*DeleteCollectionResponse) UnmarshalWire(b []byte) error {
	return skipAll(b)
}

// skipAll consumes and discards every field; used by empty messages so
// unknown fields from newer servers never fail decoding.
func skipAll(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m, err := skipField(num, typ, b)
		if err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}

// unmarshalSingleString decodes a message whose only field is a string at
// field number 1.
func unmarshalSingleString(b []byte, dst *string) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			s, m, err := consumeString(num, typ, b)
			if err != nil {
				return err
			}
			*dst = s
			b = b[m:]
		default:
			m, err := skipField(num, typ, b)
			if err != nil {
				return err
			}
			b = b[m:]
		}
	}
	return nil
}
