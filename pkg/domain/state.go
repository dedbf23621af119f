package domain

// FilterState is the lifecycle flag of a filter instance.
// Configure is the only transition out of StateUnconfigured and there is no way back.
type FilterState int

const (
	StateUnconfigured FilterState = iota
	StateConfigured
)

func (s FilterState) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	default:
		return "unconfigured"
	}
}
