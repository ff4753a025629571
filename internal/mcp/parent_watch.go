package mcp

import (
	"context"
	"os"
	"time"

	"npspredict/internal/logging"
)

// parentPollInterval is how often the watchdog checks the parent PID.
var parentPollInterval = 2 * time.Second

// WatchParent monitors for parent process death in a background
// goroutine. When the parent PID changes (the MCP client disconnected
// or restarted), it calls cancel to trigger graceful shutdown. This
// prevents zombie server processes from accumulating.
//
// IMPORTANT: this must NOT read from stdin — the SDK's StdioTransport
// owns stdin exclusively. Reading here would steal bytes and corrupt
// the JSON-RPC stream.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancel context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(parentPollInterval):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, initiating shutdown", "was_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
