package depot

import "github.com/rs/zerolog"

// Config holds global configuration for newly created worlds
var Config config = config{
	logger: zerolog.Nop(),
}

type config struct {
	logger          zerolog.Logger
	initialCapacity int
}

// SetLogger configures the logger handed to worlds created afterwards
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetInitialCapacity configures how many entities new columns reserve room for
func (c *config) SetInitialCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.initialCapacity = n
}
