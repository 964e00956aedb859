package network

// DefaultQueueSize is the per-subscriber queue capacity used when no
// WithQueueSize option is given.
const DefaultQueueSize = 1024

type busConfig struct {
	queueSize int
}

// Option configures a Bus.
type Option func(busConfig) busConfig

// WithQueueSize sets how many undelivered messages each subscriber may hold.
// Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(c busConfig) busConfig {
		if n > 0 {
			c.queueSize = n
		}
		return c
	}
}
