// Package viper provides a file-backed parameter store.
//
// Parameters are read from a YAML, JSON or TOML file where each filter instance
// owns a section:
//
//	smoother:
//	  sample_duration: 0.05
//	reducer:
//	  sample_count: 4
//
// Environment variables prefixed with TRAJFILTER_ override file values
// (TRAJFILTER_REDUCER_SAMPLE_COUNT=6).
package viper

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/trajfilter/pkg/domain"
	backend "github.com/spf13/viper"
)

// EnvPrefix is the environment prefix for parameter overrides.
const EnvPrefix = "TRAJFILTER"

// Store implements ports.ParamStore on top of a viper instance.
type Store struct {
	v *backend.Viper
}

// Open reads the parameter file at path.
func Open(path string) (*Store, error) {
	v := backend.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(domain.ParamSeparator, "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	return &Store{v: v}, nil
}

// NewFromViper wraps an existing viper instance.
func NewFromViper(v *backend.Viper) *Store {
	return &Store{v: v}
}

// Get returns the value under key, using viper's nested-key lookup.
func (s *Store) Get(ctx context.Context, key string) (any, bool, error) {
	if !s.v.IsSet(key) {
		return nil, false, nil
	}
	return s.v.Get(key), true, nil
}
