package wire

import (
	"fmt"
)

// Codec bridges wire messages onto gRPC. It is passed per call with
// grpc.ForceCodec rather than registered globally, so it never displaces
// the standard proto codec for other clients in the same process.
type Codec struct{}

// Name returns "proto": the encoding is standard protobuf wire format,
// only the marshaling implementation differs.
func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("wire: cannot marshal %T: not a wire.Message", v)
	}
	return m.MarshalWire()
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("wire: cannot unmarshal into %T: not a wire.Message", v)
	}
	return m.UnmarshalWire(data)
}
