package cli

// FilterOptions configures a filter run.
type FilterOptions struct {
	ChainPath   string
	InPath      string
	OutPath     string
	Format      string
	ParamsPath  string
	RedisAddr   string
	RedisPrefix string
	Metrics     bool
	Debug       bool
}
