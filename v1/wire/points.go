package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// UpsertPointsRequest inserts or replaces points in a collection.
type UpsertPointsRequest struct {
	CollectionName string         // field 1
	Points         []*PointStruct // field 2, repeated
	WaitFlush      *bool          // field 3, optional
}

func (r *UpsertPointsRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	var err error
	for _, p := range r.Points {
		if b, err = appendMessage(b, 2, p); err != nil {
			return nil, err
		}
	}
	b = appendOptionalBool(b, 3, r.WaitFlush)
	return b, nil
}

func (r *UpsertPointsRequest) UnmarshalWire(b []byte) error {
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
			p := &PointStruct{}
			if m, err = consumeMessage(num, typ, b, p); err == nil {
				r.Points = append(r.Points, p)
			}
		case 3:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WaitFlush = &w
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

// UpsertPointsResponse carries per-point statuses and an optional
// request-level error.
type UpsertPointsResponse struct {
	Statuses     []*PointOperationStatus // field 1, repeated
	OverallError *string                 // field 2, optional
}

func (r *UpsertPointsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, s := range r.Statuses {
		if b, err = appendMessage(b, 1, s); err != nil {
			return nil, err
		}
	}
	b = appendOptionalString(b, 2, r.OverallError)
	return b, nil
}

func (r *UpsertPointsResponse) UnmarshalWire(b []byte) error {
	return unmarshalStatusesResponse(b, &r.Statuses, &r.OverallError)
}

// GetPointsRequest retrieves points by ID.
type GetPointsRequest struct {
	CollectionName string   // field 1
	Ids            []string // field 2, repeated
	WithPayload    *bool    // field 3, optional
	WithVector     *bool    // field 4, optional
}

func (r *GetPointsRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	for _, id := range r.Ids {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	b = appendOptionalBool(b, 3, r.WithPayload)
	b = appendOptionalBool(b, 4, r.WithVector)
	return b, nil
}

func (r *GetPointsRequest) UnmarshalWire(b []byte) error {
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
			var s string
			if s, m, err = consumeString(num, typ, b); err == nil {
				r.Ids = append(r.Ids, s)
			}
		case 3:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WithPayload = &w
			}
		case 4:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WithVector = &w
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

// GetPointsResponse returns the requested points. Missing IDs are simply
// absent from the result.
type GetPointsResponse struct {
	Points []*PointStruct // field 1, repeated
}

func (r *GetPointsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, p := range r.Points {
		if b, err = appendMessage(b, 1, p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *GetPointsResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			p := &PointStruct{}
			m, err := consumeMessage(num, typ, b, p)
			if err != nil {
				return err
			}
			r.Points = append(r.Points, p)
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

// DeletePointsRequest deletes points by ID.
type DeletePointsRequest struct {
	CollectionName string   // field 1
	Ids            []string // field 2, repeated
	WaitFlush      *bool    // field 3, optional
}

func (r *DeletePointsRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	for _, id := range r.Ids {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, id)
	}
	b = appendOptionalBool(b, 3, r.WaitFlush)
	return b, nil
}

func (r *DeletePointsRequest) UnmarshalWire(b []byte) error {
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
			var s string
			if s, m, err = consumeString(num, typ, b); err == nil {
				r.Ids = append(r.Ids, s)
			}
		case 3:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WaitFlush = &w
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

// DeletePointsResponse carries per-point statuses and an optional
// request-level error.
type DeletePointsResponse struct {
	Statuses     []*PointOperationStatus // field 1, repeated
	OverallError *string                 // field 2, optional
}

func (r *DeletePointsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, s := range r.Statuses {
		if b, err = appendMessage(b, 1, s); err != nil {
			return nil, err
		}
	}
	b = appendOptionalString(b, 2, r.OverallError)
	return b, nil
}

func (r *DeletePointsResponse) UnmarshalWire(b []byte) error {
	return unmarshalStatusesResponse(b, &r.Statuses, &r.OverallError)
}

// SearchPointsRequest runs a k-nearest-neighbour search.
type SearchPointsRequest struct {
	CollectionName string        // field 1
	QueryVector    *Vector       // field 2
	KLimit         uint32        // field 3
	Filter         *Filter       // field 4, optional
	WithPayload    *bool         // field 5, optional
	WithVector     *bool         // field 6, optional
	Params         *SearchParams // field 7, optional
}

func (r *SearchPointsRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, r.CollectionName)
	var err error
	if r.QueryVector != nil {
		if b, err = appendMessage(b, 2, r.QueryVector); err != nil {
			return nil, err
		}
	}
	b = appendUint32(b, 3, r.KLimit)
	if r.Filter != nil {
		if b, err = appendMessage(b, 4, r.Filter); err != nil {
			return nil, err
		}
	}
	b = appendOptionalBool(b, 5, r.WithPayload)
	b = appendOptionalBool(b, 6, r.WithVector)
	if r.Params != nil {
		if b, err = appendMessage(b, 7, r.Params); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *SearchPointsRequest) UnmarshalWire(b []byte) error {
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
			if r.QueryVector == nil {
				r.QueryVector = &Vector{}
			}
			m, err = consumeMessage(num, typ, b, r.QueryVector)
		case 3:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				r.KLimit = uint32(v)
			}
		case 4:
			if r.Filter == nil {
				r.Filter = &Filter{}
			}
			m, err = consumeMessage(num, typ, b, r.Filter)
		case 5:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WithPayload = &w
			}
		case 6:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				w := protowire.DecodeBool(v)
				r.WithVector = &w
			}
		case 7:
			if r.Params == nil {
				r.Params = &SearchParams{}
			}
			m, err = consumeMessage(num, typ, b, r.Params)
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

// SearchPointsResponse returns the scored nearest neighbours.
type SearchPointsResponse struct {
	Results []*ScoredPoint // field 1, repeated
}

func (r *SearchPointsResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, p := range r.Results {
		if b, err = appendMessage(b, 1, p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *SearchPointsResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			p := &ScoredPoint{}
			m, err := consumeMessage(num, typ, b, p)
			if err != nil {
				return err
			}
			r.Results = append(r.Results, p)
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

// unmarshalStatusesResponse decodes the shared shape of the upsert and
// delete responses: repeated PointOperationStatus at 1, optional
// overall_error string at 2.
func unmarshalStatusesResponse(b []byte, statuses *[]*PointOperationStatus, overallError **string) error {
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
			s := &PointOperationStatus{}
			if m, err = consumeMessage(num, typ, b, s); err == nil {
				*statuses = append(*statuses, s)
			}
		case 2:
			var s string
			if s, m, err = consumeString(num, typ, b); err == nil {
				*overallError = &s
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
