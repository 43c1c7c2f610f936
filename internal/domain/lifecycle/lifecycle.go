// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart/OnStop hook (DB ping, server shutdown, worker drain).
const DefaultTimeout = 10 * time.Second
