package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func f32bits(v float32) uint32     { return math.Float32bits(v) }
func f32frombits(v uint32) float32 { return math.Float32frombits(v) }
func f64bits(v float64) uint64     { return math.Float64bits(v) }
func f64frombits(v uint64) float64 { return math.Float64frombits(v) }

// Message is implemented by every wire message in this package.
type Message interface {
	// MarshalWire encodes the message in protobuf wire format.
	MarshalWire() ([]byte, error)

	// UnmarshalWire decodes the message from protobuf wire format,
	// merging into the receiver.
	UnmarshalWire(b []byte) error
}

// ── Append helpers (proto3 semantics: implicit-presence scalars are
// omitted at their zero value, pointer fields encode explicit presence) ──

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendOptionalString(b []byte, num protowire.Number, s *string) []byte {
	if s == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *s)
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendOptionalUint32(b []byte, num protowire.Number, v *uint32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendOptionalUint64(b []byte, num protowire.Number, v *uint64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, *v)
}

func appendOptionalBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendFloat64(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, f64bits(v))
}

func appendFloat32(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, f32bits(v))
}

// appendPackedFloats encodes a repeated float field in packed form.
func appendPackedFloats(b []byte, num protowire.Number, vs []float32) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	packed := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		packed = protowire.AppendFixed32(packed, f32bits(v))
	}
	return protowire.AppendBytes(b, packed)
}

// appendMessage encodes an embedded message field.
func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	body, err := m.MarshalWire()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body), nil
}

// appendValueMap encodes a map<string, google.protobuf.Value> field. Each
// map entry is a nested message with the key at field 1 and the value at
// field 2.
func appendValueMap(b []byte, num protowire.Number, m map[string]*structpb.Value) ([]byte, error) {
	for k, v := range m {
		entry := appendString(nil, 1, k)
		if v != nil {
			body, err := proto.Marshal(v)
			if err != nil {
				return nil, err
			}
			entry = protowire.AppendTag(entry, 2, protowire.BytesType)
			entry = protowire.AppendBytes(entry, body)
		}
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b, nil
}

// ── Consume helpers ──

// errUnexpectedType reports a field arriving with the wrong wire type.
func errUnexpectedType(num protowire.Number, typ protowire.Type) error {
	return fmt.Errorf("wire: field %d: unexpected wire type %d", num, typ)
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, errUnexpectedType(num, typ)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, errUnexpectedType(num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeFloat64(num protowire.Number, typ protowire.Type, b []byte) (float64, int, error) {
	if typ != protowire.Fixed64Type {
		return 0, 0, errUnexpectedType(num, typ)
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return f64frombits(v), n, nil
}

func consumeFloat32(num protowire.Number, typ protowire.Type, b []byte) (float32, int, error) {
	if typ != protowire.Fixed32Type {
		return 0, 0, errUnexpectedType(num, typ)
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return f32frombits(v), n, nil
}

// consumeFloats decodes a repeated float field, accepting both packed and
// unpacked encodings.
func consumeFloats(num protowire.Number, typ protowire.Type, b []byte, dst []float32) ([]float32, int, error) {
	switch typ {
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed32(packed)
			if m < 0 {
				return nil, 0, protowire.ParseError(m)
			}
			dst = append(dst, f32frombits(v))
			packed = packed[m:]
		}
		return dst, n, nil
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		return append(dst, f32frombits(v)), n, nil
	default:
		return nil, 0, errUnexpectedType(num, typ)
	}
}

// consumeMessage decodes an embedded message field into m.
func consumeMessage(num protowire.Number, typ protowire.Type, b []byte, m Message) (int, error) {
	if typ != protowire.BytesType {
		return 0, errUnexpectedType(num, typ)
	}
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.UnmarshalWire(body); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeValueMapEntry decodes one map<string, google.protobuf.Value> entry
// into dst.
func consumeValueMapEntry(num protowire.Number, typ protowire.Type, b []byte, dst map[string]*structpb.Value) (int, error) {
	if typ != protowire.BytesType {
		return 0, errUnexpectedType(num, typ)
	}
	entry, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	var key string
	val := &structpb.Value{}
	for len(entry) > 0 {
		fnum, ftyp, fn := protowire.ConsumeTag(entry)
		if fn < 0 {
			return 0, protowire.ParseError(fn)
		}
		entry = entry[fn:]

		switch fnum {
		case 1:
			s, m, err := consumeString(fnum, ftyp, entry)
			if err != nil {
				return 0, err
			}
			key = s
			entry = entry[m:]
		case 2:
			if ftyp != protowire.BytesType {
				return 0, errUnexpectedType(fnum, ftyp)
			}
			body, m := protowire.ConsumeBytes(entry)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			if err := proto.Unmarshal(body, val); err != nil {
				return 0, err
			}
			entry = entry[m:]
		default:
			m := protowire.ConsumeFieldValue(fnum, ftyp, entry)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			entry = entry[m:]
		}
	}
	dst[key] = val
	return n, nil
}

// skipField skips over an unknown field.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
