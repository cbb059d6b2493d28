package convert

import (
	"io/fs"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecellar/sdk/converr"
	"github.com/typecellar/sdk/dedupe"
	"github.com/typecellar/sdk/sentinel"
)

func TestTimeHooks(t *testing.T) {
	c := NewConverter()
	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	des, err := c.Unstructure(when)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T03:04:05Z", des)

	back, err := As[time.Time](c, des)
	require.NoError(t, err)
	assert.True(t, when.Equal(back))

	t.Run("pass through domain form", func(t *testing.T) {
		got, err := As[time.Time](c, when)
		require.NoError(t, err)
		assert.True(t, when.Equal(got))
	})

	t.Run("naive timestamp accepted", func(t *testing.T) {
		got, err := As[time.Time](c, "2025-01-02T03:04:05")
		require.NoError(t, err)
		assert.Equal(t, 2025, got.Year())
	})

	t.Run("mismatch errors", func(t *testing.T) {
		_, err := As[time.Time](c, 42)
		require.Error(t, err)
		assert.True(t, converr.IsCode(err, converr.CodeConversion))
	})
}

func TestUUIDHooks(t *testing.T) {
	c := NewConverter()
	u := uuid.MustParse("11111111-1111-4111-8111-111111111111")

	des, err := c.Unstructure(u)
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-4111-8111-111111111111", des)

	back, err := As[uuid.UUID](c, des)
	require.NoError(t, err)
	assert.Equal(t, u, back)

	native, err := As[uuid.UUID](c, u)
	require.NoError(t, err)
	assert.Equal(t, u, native)
}

func TestUUIDHooks_ConversionError(t *testing.T) {
	c := NewConverter()

	_, err := c.Structure(123, reflect.TypeFor[uuid.UUID]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "123")
	assert.Contains(t, err.Error(), "int")
	assert.Contains(t, err.Error(), "uuid.UUID")
}

type status string

type priority int

type level uint8

func TestEnumHooks(t *testing.T) {
	c := NewConverter()

	t.Run("named string destructures to string", func(t *testing.T) {
		des, err := c.Unstructure(status("active"))
		require.NoError(t, err)
		assert.Equal(t, "active", des)
	})

	t.Run("named int destructures to string", func(t *testing.T) {
		des, err := c.Unstructure(priority(3))
		require.NoError(t, err)
		assert.Equal(t, "3", des)
	})

	t.Run("structure named string", func(t *testing.T) {
		got, err := As[status](c, "active")
		require.NoError(t, err)
		assert.Equal(t, status("active"), got)
	})

	t.Run("structure named int from string", func(t *testing.T) {
		got, err := As[priority](c, "3")
		require.NoError(t, err)
		assert.Equal(t, priority(3), got)
	})

	t.Run("structure named int from number", func(t *testing.T) {
		got, err := As[priority](c, float64(5))
		require.NoError(t, err)
		assert.Equal(t, priority(5), got)
	})

	t.Run("named uint destructures to string", func(t *testing.T) {
		des, err := c.Unstructure(level(3))
		require.NoError(t, err)
		assert.Equal(t, "3", des)
	})

	t.Run("structure named uint from string", func(t *testing.T) {
		got, err := As[level](c, "3")
		require.NoError(t, err)
		assert.Equal(t, level(3), got)
	})

	t.Run("structure named uint from number", func(t *testing.T) {
		got, err := As[level](c, float64(7))
		require.NoError(t, err)
		assert.Equal(t, level(7), got)
	})

	t.Run("structure named uint rejects negative", func(t *testing.T) {
		_, err := As[level](c, -1)
		assert.Error(t, err)
	})

	t.Run("structure named uint rejects overflow", func(t *testing.T) {
		_, err := As[level](c, 256)
		assert.Error(t, err)
	})

	t.Run("structure rejects fractional number", func(t *testing.T) {
		_, err := As[priority](c, float64(5.9))
		assert.Error(t, err)

		_, err = As[level](c, float64(5.9))
		assert.Error(t, err)
	})

	t.Run("structure nil maps to absence", func(t *testing.T) {
		got, err := As[level](c, nil)
		require.NoError(t, err)
		assert.Equal(t, level(0), got)
	})
}

func TestErrorHooks(t *testing.T) {
	c := NewConverter()

	t.Run("instance destructures to repr", func(t *testing.T) {
		des, err := c.Unstructure(&fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist})
		require.NoError(t, err)
		assert.Contains(t, des.(string), "fs.PathError")
		assert.Contains(t, des.(string), "open /x")
	})

	t.Run("type destructures to bare name", func(t *testing.T) {
		des, err := c.Unstructure(reflect.TypeFor[*fs.PathError]())
		require.NoError(t, err)
		assert.Equal(t, "PathError", des)
	})

	t.Run("write only", func(t *testing.T) {
		_, err := c.Structure("boom", reflect.TypeFor[*fs.PathError]())
		assert.Error(t, err)
	})
}

func TestSentinelHooks(t *testing.T) {
	c := NewConverter()

	t.Run("destructure yields label", func(t *testing.T) {
		des, err := c.Unstructure(sentinel.Omitted)
		require.NoError(t, err)
		assert.Equal(t, "OMITTED", des)
	})

	t.Run("label structures back to equal instance", func(t *testing.T) {
		got, err := As[sentinel.Sentinel](c, "OMITTED")
		require.NoError(t, err)
		assert.Equal(t, sentinel.Omitted, got)
	})

	t.Run("instance passes through", func(t *testing.T) {
		got, err := As[sentinel.Sentinel](c, sentinel.NotImplemented)
		require.NoError(t, err)
		assert.Equal(t, sentinel.NotImplemented, got)
	})

	t.Run("unknown label errors", func(t *testing.T) {
		_, err := c.Structure("BOGUS", reflect.TypeFor[sentinel.Sentinel]())
		require.Error(t, err)
		assert.True(t, converr.IsCode(err, converr.CodeConversion))
	})

	t.Run("optional accepts null forms", func(t *testing.T) {
		for _, input := range []any{nil, "null", "none"} {
			got, err := c.Structure(input, reflect.TypeFor[*sentinel.Sentinel]())
			require.NoError(t, err, "input %v", input)
			assert.Nil(t, got.(*sentinel.Sentinel), "input %v", input)
		}
	})

	t.Run("optional accepts label", func(t *testing.T) {
		got, err := c.Structure("NOT-IMPLEMENTED", reflect.TypeFor[*sentinel.Sentinel]())
		require.NoError(t, err)
		require.NotNil(t, got.(*sentinel.Sentinel))
		assert.Equal(t, sentinel.NotImplemented, *got.(*sentinel.Sentinel))
	})

	t.Run("optional rejects other values", func(t *testing.T) {
		_, err := c.Structure(12, reflect.TypeFor[*sentinel.Sentinel]())
		assert.Error(t, err)
	})
}

func TestDedupeHooks(t *testing.T) {
	c := NewConverter()
	key := dedupe.New(dedupe.KindAlert, dedupe.Attributes{NaturalKey: "12345"})

	des, err := c.Unstructure(key)
	require.NoError(t, err)
	assert.Equal(t, "alert:12345", des)

	back, err := As[dedupe.Key](c, des)
	require.NoError(t, err)
	assert.True(t, key.Equal(back))
	assert.Equal(t, dedupe.KindAlert, back.Kind())

	t.Run("instance passes through", func(t *testing.T) {
		got, err := As[dedupe.Key](c, key)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("mismatch errors", func(t *testing.T) {
		_, err := c.Structure(99, reflect.TypeFor[dedupe.Key]())
		assert.Error(t, err)
	})
}

func TestJSONMapHooks(t *testing.T) {
	c := NewConverter()

	des, err := c.Unstructure(JSONMap{"a": 1, "b": true})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":true}`, des)

	back, err := As[JSONMap](c, `{"a": 1, "b": true}`)
	require.NoError(t, err)
	assert.Equal(t, JSONMap{"a": float64(1), "b": true}, back)

	t.Run("plain map accepted", func(t *testing.T) {
		got, err := As[JSONMap](c, map[string]any{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, JSONMap{"k": "v"}, got)
	})

	t.Run("non object string rejected", func(t *testing.T) {
		_, err := As[JSONMap](c, `[1,2]`)
		assert.Error(t, err)
	})
}

func TestOptionalStringHooks(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name  string
		input any
		want  *string
	}{
		{name: "null literal", input: "null", want: nil},
		{name: "uppercase null", input: "NULL", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "omitted placeholder", input: "omitted", want: nil},
		{name: "nil", input: nil, want: nil},
		{name: "real value", input: "abc123", want: ptr("abc123")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Structure(tt.input, reflect.TypeFor[*string]())
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got.(*string))
			} else {
				require.NotNil(t, got.(*string))
				assert.Equal(t, *tt.want, *got.(*string))
			}
		})
	}
}

func TestAnnotatedHooks(t *testing.T) {
	c := NewConverter()

	t.Run("structure forwards to inner type", func(t *testing.T) {
		got, err := As[Annotated[uuid.UUID]](c, "11111111-1111-4111-8111-111111111111")
		require.NoError(t, err)
		assert.Equal(t, "11111111-1111-4111-8111-111111111111", got.Value.String())
	})

	t.Run("unstructure forwards inner value", func(t *testing.T) {
		des, err := c.Unstructure(Annotated[status]{Value: "active", Annotations: []string{"ignored"}})
		require.NoError(t, err)
		assert.Equal(t, "active", des)
	})
}

func ptr(s string) *string { return &s }
