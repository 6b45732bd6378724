// Package lifecycle holds shared settings for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single stop hook may block shutdown.
const DefaultTimeout = 10 * time.Second
