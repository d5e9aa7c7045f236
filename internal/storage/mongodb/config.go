package mongodb

import "time"

// Config holds MongoDB connection settings. Leaving URL or Database empty puts the
// driver in disabled mode.
type Config struct {
	URL      string
	Database string

	ConnectTimeout time.Duration
}

// DefaultConfig returns defaults with no connection configured
func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 10 * time.Second,
	}
}
