package wire

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts a wire value to a protobuf Struct-API value for
// callers whose transport speaks proto. Returns an error if v is not a
// valid wire value.
func ToProto(v Value) (*structpb.Value, error) {
	pv, err := structpb.NewValue(normalizeForProto(v))
	if err != nil {
		return nil, fmt.Errorf("wire value to proto: %w", err)
	}
	return pv, nil
}

// FromProto converts a protobuf Struct-API value back to the wire
// shape. A nil input yields nil.
func FromProto(pv *structpb.Value) Value {
	if pv == nil {
		return nil
	}
	return pv.AsInterface()
}

// ToProtoStruct converts a wire record to a protobuf Struct.
func ToProtoStruct(record map[string]any) (*structpb.Struct, error) {
	normalized := make(map[string]any, len(record))
	for k, v := range record {
		normalized[k] = normalizeForProto(v)
	}
	s, err := structpb.NewStruct(normalized)
	if err != nil {
		return nil, fmt.Errorf("wire record to proto struct: %w", err)
	}
	return s, nil
}

// FromProtoStruct converts a protobuf Struct to a wire record. A nil
// input yields nil.
func FromProtoStruct(s *structpb.Struct) map[string]any {
	if s == nil {
		return nil
	}
	return s.AsMap()
}

// normalizeForProto widens integer scalars to float64, the only numeric
// kind structpb carries, and recurses into maps and slices.
func normalizeForProto(v Value) any {
	switch vv := v.(type) {
	case int:
		return float64(vv)
	case int8:
		return float64(vv)
	case int16:
		return float64(vv)
	case int32:
		return float64(vv)
	case int64:
		return float64(vv)
	case uint:
		return float64(vv)
	case uint8:
		return float64(vv)
	case uint16:
		return float64(vv)
	case uint32:
		return float64(vv)
	case uint64:
		return float64(vv)
	case float32:
		return float64(vv)
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, item := range vv {
			out[k] = normalizeForProto(item)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = normalizeForProto(item)
		}
		return out
	default:
		return vv
	}
}
