package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := kernel.NewID("order", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), id.Int64())
	assert.Equal(t, "100", id.String())

	for _, raw := range []int64{0, -1} {
		_, err = kernel.NewID("order", raw)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestParseID(t *testing.T) {
	id, err := kernel.ParseID("order", "42")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), id)

	_, err = kernel.ParseID("order", "abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestID_Validate(t *testing.T) {
	require.NoError(t, kernel.ID(1).Validate())
	require.ErrorIs(t, kernel.ID(0).Validate(), errs.ErrValueIsRequired)
}

func TestUUID(t *testing.T) {
	t.Run("new uuids are distinct and valid", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round trips through string", func(t *testing.T) {
		a := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(a.String())
		require.NoError(t, err)
		assert.True(t, a.IsEqual(parsed))
	})

	t.Run("rejects nil and malformed", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)

		require.ErrorIs(t, kernel.UUID{}.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
