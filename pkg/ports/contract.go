package ports

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunParamStoreContract runs a suite of tests to verify that a ParamStore implementation
// adheres to the defined interface contract.
// The store must already hold every entry of seeded. Values are compared by their
// string form, since text backends do not preserve Go types.
func RunParamStoreContract(t *testing.T, store ParamStore, seeded map[string]any) {
	ctx := context.Background()

	t.Run("Get Seeded", func(t *testing.T) {
		for key, want := range seeded {
			got, found, err := store.Get(ctx, key)
			require.NoError(t, err, "Get(%q) should not return error", key)
			require.True(t, found, "Get(%q) should find the key", key)
			assert.Equal(t, fmt.Sprint(want), fmt.Sprint(got), "value mismatch for %q", key)
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		got, found, err := store.Get(ctx, "contract.missing.key")
		require.NoError(t, err, "missing keys are not errors")
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("Get Is Repeatable", func(t *testing.T) {
		for key := range seeded {
			first, _, err := store.Get(ctx, key)
			require.NoError(t, err)
			second, _, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, first, second, "reads must not change the store")
		}
	})
}
