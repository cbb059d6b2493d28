package cellar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecellar/sdk/tablename"
)

func TestDefault_SingleInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestAs_DefaultHooks(t *testing.T) {
	when, err := As[time.Time]("2025-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 2025, when.Year())
}

func TestUnstructure_Default(t *testing.T) {
	des, err := Unstructure(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T03:04:05Z", des)
}

func TestSentinelErrors_MatchByCode(t *testing.T) {
	_, err := As[time.Time](12345)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrConversion))
	assert.False(t, errors.Is(err, ErrRoundTrip))
}

func TestSentinelErrors_TableIdentifier(t *testing.T) {
	_, err := tablename.Resolve(tablename.Input{Qualified: "not-qualified"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTableIdentifier))
}
