// Package lifecycle holds shared constants for application startup and
// shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
