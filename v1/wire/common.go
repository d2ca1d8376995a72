package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/structpb"
)

// Vector is a dense float32 vector.
type Vector struct {
	Elements []float32 // field 1, packed
}

func (v *Vector) MarshalWire() ([]byte, error) {
	return appendPackedFloats(nil, 1, v.Elements), nil
}

func (v *Vector) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			elems, m, err := consumeFloats(num, typ, b, v.Elements)
			if err != nil {
				return err
			}
			v.Elements = elems
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

// Payload is a map of string keys to arbitrary JSON-like values.
type Payload struct {
	Fields map[string]*structpb.Value // field 1
}

func (p *Payload) MarshalWire() ([]byte, error) {
	return appendValueMap(nil, 1, p.Fields)
}

func (p *Payload) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			if p.Fields == nil {
				p.Fields = make(map[string]*structpb.Value)
			}
			m, err := consumeValueMapEntry(num, typ, b, p.Fields)
			if err != nil {
				return err
			}
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

// PointStruct is a single point: an ID, a vector, and an optional payload.
type PointStruct struct {
	Id      string   // field 1
	Vector  *Vector  // field 2
	Payload *Payload // field 3, optional
}

func (p *PointStruct) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, p.Id)
	var err error
	if p.Vector != nil {
		if b, err = appendMessage(b, 2, p.Vector); err != nil {
			return nil, err
		}
	}
	if p.Payload != nil {
		if b, err = appendMessage(b, 3, p.Payload); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (p *PointStruct) UnmarshalWire(b []byte) error {
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
			p.Id, m, err = consumeString(num, typ, b)
		case 2:
			if p.Vector == nil {
				p.Vector = &Vector{}
			}
			m, err = consumeMessage(num, typ, b, p.Vector)
		case 3:
			if p.Payload == nil {
				p.Payload = &Payload{}
			}
			m, err = consumeMessage(num, typ, b, p.Payload)
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

// ScoredPoint is a point returned from a search, with its similarity score.
type ScoredPoint struct {
	Id      string   // field 1
	Vector  *Vector  // field 2, optional
	Payload *Payload // field 3, optional
	Score   float32  // field 4
	Version *uint64  // field 5, optional
}

func (p *ScoredPoint) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, p.Id)
	var err error
	if p.Vector != nil {
		if b, err = appendMessage(b, 2, p.Vector); err != nil {
			return nil, err
		}
	}
	if p.Payload != nil {
		if b, err = appendMessage(b, 3, p.Payload); err != nil {
			return nil, err
		}
	}
	b = appendFloat32(b, 4, p.Score)
	b = appendOptionalUint64(b, 5, p.Version)
	return b, nil
}

func (p *ScoredPoint) UnmarshalWire(b []byte) error {
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
			p.Id, m, err = consumeString(num, typ, b)
		case 2:
			if p.Vector == nil {
				p.Vector = &Vector{}
			}
			m, err = consumeMessage(num, typ, b, p.Vector)
		case 3:
			if p.Payload == nil {
				p.Payload = &Payload{}
			}
			m, err = consumeMessage(num, typ, b, p.Payload)
		case 4:
			p.Score, m, err = consumeFloat32(num, typ, b)
		case 5:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				p.Version = &v
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

// Filter restricts which points a search considers. Only exact-match
// filtering on payload fields is supported by the protocol today.
type Filter struct {
	MustMatchExact map[string]*structpb.Value // field 1
}

func (f *Filter) MarshalWire() ([]byte, error) {
	return appendValueMap(nil, 1, f.MustMatchExact)
}

func (f *Filter) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			if f.MustMatchExact == nil {
				f.MustMatchExact = make(map[string]*structpb.Value)
			}
			m, err := consumeValueMapEntry(num, typ, b, f.MustMatchExact)
			if err != nil {
				return err
			}
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

// HnswConfigParams are the HNSW index parameters of a collection.
type HnswConfigParams struct {
	M              uint32  // field 1
	EfConstruction uint32  // field 2
	EfSearch       uint32  // field 3
	Ml             float64 // field 4
	Seed           *uint64 // field 5, optional
	VectorDim      uint32  // field 6
	MMax0          uint32  // field 7
}

func (h *HnswConfigParams) MarshalWire() ([]byte, error) {
	b := appendUint32(nil, 1, h.M)
	b = appendUint32(b, 2, h.EfConstruction)
	b = appendUint32(b, 3, h.EfSearch)
	b = appendFloat64(b, 4, h.Ml)
	b = appendOptionalUint64(b, 5, h.Seed)
	b = appendUint32(b, 6, h.VectorDim)
	b = appendUint32(b, 7, h.MMax0)
	return b, nil
}

func (h *HnswConfigParams) UnmarshalWire(b []byte) error {
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
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.M = uint32(v)
			}
		case 2:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.EfConstruction = uint32(v)
			}
		case 3:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.EfSearch = uint32(v)
			}
		case 4:
			h.Ml, m, err = consumeFloat64(num, typ, b)
		case 5:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.Seed = &v
			}
		case 6:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.VectorDim = uint32(v)
			}
		case 7:
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				h.MMax0 = uint32(v)
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

// SearchParams are optional per-search overrides.
type SearchParams struct {
	EfSearch *uint32 // field 1, optional
}

func (s *SearchParams) MarshalWire() ([]byte, error) {
	return appendOptionalUint32(nil, 1, s.EfSearch), nil
}

func (s *SearchParams) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case 1:
			v, m, err := consumeVarint(num, typ, b)
			if err != nil {
				return err
			}
			ef := uint32(v)
			s.EfSearch = &ef
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

// PointOperationStatus reports the outcome of an operation on one point.
type PointOperationStatus struct {
	PointId      string     // field 1
	StatusCode   StatusCode // field 2
	ErrorMessage *string    // field 3, optional
}

func (p *PointOperationStatus) MarshalWire() ([]byte, error) {
	b := appendString(nil, 1, p.PointId)
	b = appendEnum(b, 2, int32(p.StatusCode))
	b = appendOptionalString(b, 3, p.ErrorMessage)
	return b, nil
}

func (p *PointOperationStatus) UnmarshalWire(b []byte) error {
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
			p.PointId, m, err = consumeString(num, typ, b)
		case 2:
			var v uint64
			if v, m, err = consumeVarint(num, typ, b); err == nil {
				p.StatusCode = StatusCode(v)
			}
		case 3:
			var s string
			if s, m, err = consumeString(num, typ, b); err == nil {
				p.ErrorMessage = &s
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
