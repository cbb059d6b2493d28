package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProto_RoundTrip(t *testing.T) {
	in := map[string]any{
		"name":    "probe",
		"count":   3,
		"ratio":   0.5,
		"enabled": true,
		"tags":    []any{"a", "b"},
		"nested":  map[string]any{"k": nil},
	}

	pv, err := ToProto(in)
	require.NoError(t, err)

	out := FromProto(pv)
	m, ok := out.(map[string]any)
	require.True(t, ok, "expected map, got %T", out)

	assert.Equal(t, "probe", m["name"])
	assert.Equal(t, float64(3), m["count"], "integers widen to float64 through proto")
	assert.Equal(t, 0.5, m["ratio"])
	assert.Equal(t, true, m["enabled"])
	assert.Equal(t, []any{"a", "b"}, m["tags"])
	assert.Equal(t, map[string]any{"k": nil}, m["nested"])
}

func TestFromProto_Nil(t *testing.T) {
	assert.Nil(t, FromProto(nil))
	assert.Nil(t, FromProtoStruct(nil))
}

func TestToProtoStruct(t *testing.T) {
	s, err := ToProtoStruct(map[string]any{"port": int64(443), "host": "example.com"})
	require.NoError(t, err)

	m := FromProtoStruct(s)
	assert.Equal(t, float64(443), m["port"])
	assert.Equal(t, "example.com", m["host"])
}

func TestToProto_Invalid(t *testing.T) {
	_, err := ToProto(struct{ X int }{1})
	assert.Error(t, err)
}
