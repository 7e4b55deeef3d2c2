// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived resources.
const DefaultTimeout = 10 * time.Second
