package watcher

import (
	"context"
	"fmt"
	"os"
	"time"
)

// waitForStable polls the file until its size and modification time hold
// still for requiredPolls consecutive checks. Recorders flush in bursts, so
// a quiet settle delay alone is not proof the file is complete.
func waitForStable(ctx context.Context, path string, interval time.Duration, requiredPolls int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	var lastSize int64 = -1
	var lastMod time.Time
	stable := 0

	for {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if info.Size() == lastSize && info.ModTime().Equal(lastMod) {
			stable++
			if stable >= requiredPolls {
				return nil
			}
		} else {
			stable = 0
			lastSize = info.Size()
			lastMod = info.ModTime()
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("file %s still changing after %s", path, timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
