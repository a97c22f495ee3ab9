// Package lifecycle holds shared timing constants for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
