// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks that talk to external systems.
const DefaultTimeout = 10 * time.Second
