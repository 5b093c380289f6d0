package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuardEmbeddedInCommand(t *testing.T) {
	type deleteCommand struct {
		ids   []int64
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("deleteCommand must be created via constructor")
	validate := func(c deleteCommand) error { return c.guard.Validate(errNotConstructed) }

	built := deleteCommand{ids: []int64{1}, guard: guard.NewConstructorGuard()}
	require.NoError(t, validate(built))

	literal := deleteCommand{ids: []int64{1}}
	require.ErrorIs(t, validate(literal), errNotConstructed)
}
