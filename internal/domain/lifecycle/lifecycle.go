// Package lifecycle holds shared limits for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every connect, ping and graceful shutdown step.
const DefaultTimeout = 10 * time.Second
