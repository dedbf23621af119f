package filter

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/mitchellh/mapstructure"
)

// Param declares one parameter a filter reads.
type Param struct {
	Key      string
	Required bool
}

// DecodeParams reads params under the filterName namespace and decodes the values found
// into out, a pointer to a struct whose fields carry `param:"<key>"` tags.
// Fields for absent optional keys keep whatever out already holds, so callers preset defaults.
// Input is weakly typed: "0.25" decodes into a float64 and "250ms" into a time.Duration.
// A fractional number is rejected for an integer field rather than truncated.
// Every failure wraps domain.ErrConfiguration.
func DecodeParams(ctx context.Context, store ports.ParamStore, filterName string, out any, params ...Param) error {
	raw := make(map[string]any, len(params))
	for _, p := range params {
		key := domain.ParamKey(filterName, p.Key)
		if store == nil {
			if p.Required {
				return fmt.Errorf("%w: missing required parameter %q (no parameter store)", domain.ErrConfiguration, key)
			}
			continue
		}
		v, found, err := store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("%w: reading %q: %w", domain.ErrConfiguration, key, err)
		}
		if !found {
			if p.Required {
				return fmt.Errorf("%w: missing required parameter %q", domain.ErrConfiguration, key)
			}
			continue
		}
		raw[p.Key] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			integralFloatHook,
		),
		WeaklyTypedInput: true,
		TagName:          "param",
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: parameters of %q: %w", domain.ErrConfiguration, filterName, err)
	}
	return nil
}

// integralFloatHook refuses to truncate: 2.0 decodes into an int, 2.7 does not.
func integralFloatHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer", data)
	}
	return data, nil
}
