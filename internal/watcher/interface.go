package watcher

import "context"

// Watcher monitors a directory and hands settled recordings to its handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one recording. Errors are logged by the watcher and
// go no further.
type EventHandler func(ctx context.Context, filePath string) error
