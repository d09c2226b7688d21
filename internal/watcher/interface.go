package watcher

import "context"

// Watcher monitors the inbox directory for new slide decks
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per new PDF
type EventHandler func(ctx context.Context, filePath string) error
