package domain

// Parameter naming.
const (
	// ParamSeparator joins a filter instance name and a parameter key ("smoother.sample_duration").
	// It matches the nested-key delimiter used by file-backed parameter stores.
	ParamSeparator = "."
)

// ParamKey returns the fully qualified parameter key for a filter instance.
func ParamKey(filterName, key string) string {
	if filterName == "" {
		return key
	}
	return filterName + ParamSeparator + key
}
