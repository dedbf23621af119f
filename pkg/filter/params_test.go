package filter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/trajfilter/pkg/adapters/memory"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	SampleCount int           `param:"sample_count"`
	Step        float64       `param:"step"`
	Timeout     time.Duration `param:"timeout"`
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (any, bool, error) {
	return nil, false, errors.New("connection refused")
}

func TestDecodeParams(t *testing.T) {
	ctx := context.Background()

	t.Run("typed values", func(t *testing.T) {
		store := memory.NewStore(map[string]any{
			"f.sample_count": 3,
			"f.step":         0.5,
			"f.timeout":      "250ms",
		})
		var s settings
		err := filter.DecodeParams(ctx, store, "f", &s,
			filter.Param{Key: "sample_count", Required: true},
			filter.Param{Key: "step"},
			filter.Param{Key: "timeout"},
		)
		require.NoError(t, err)
		assert.Equal(t, settings{SampleCount: 3, Step: 0.5, Timeout: 250 * time.Millisecond}, s)
	})

	t.Run("string values are weakly typed", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"f.sample_count": "7", "f.step": "0.25"})
		var s settings
		require.NoError(t, filter.DecodeParams(ctx, store, "f", &s,
			filter.Param{Key: "sample_count"}, filter.Param{Key: "step"}))
		assert.Equal(t, 7, s.SampleCount)
		assert.Equal(t, 0.25, s.Step)
	})

	t.Run("fractional value for integer field", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"f.sample_count": 2.7})
		var s settings
		err := filter.DecodeParams(ctx, store, "f", &s, filter.Param{Key: "sample_count"})
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorContains(t, err, "2.7 is not an integer")
		assert.Zero(t, s.SampleCount)
	})

	t.Run("whole float for integer field", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"f.sample_count": 4.0})
		var s settings
		require.NoError(t, filter.DecodeParams(ctx, store, "f", &s, filter.Param{Key: "sample_count"}))
		assert.Equal(t, 4, s.SampleCount)
	})

	t.Run("absent optional keeps default", func(t *testing.T) {
		store := memory.NewStore(nil)
		s := settings{Step: 0.05}
		require.NoError(t, filter.DecodeParams(ctx, store, "f", &s, filter.Param{Key: "step"}))
		assert.Equal(t, 0.05, s.Step)
	})

	t.Run("missing required", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"other.sample_count": 3})
		var s settings
		err := filter.DecodeParams(ctx, store, "f", &s, filter.Param{Key: "sample_count", Required: true})
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorContains(t, err, "f.sample_count")
	})

	t.Run("undecodable value", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"f.sample_count": "many"})
		var s settings
		err := filter.DecodeParams(ctx, store, "f", &s, filter.Param{Key: "sample_count"})
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("backend failure", func(t *testing.T) {
		var s settings
		err := filter.DecodeParams(ctx, failingStore{}, "f", &s, filter.Param{Key: "step"})
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("nil store", func(t *testing.T) {
		var s settings
		assert.NoError(t, filter.DecodeParams(ctx, nil, "f", &s, filter.Param{Key: "step"}))
		err := filter.DecodeParams(ctx, nil, "f", &s, filter.Param{Key: "step", Required: true})
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}
