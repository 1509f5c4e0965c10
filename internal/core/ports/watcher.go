package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent is a change to one of the watched label files.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher reports changes to label files.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files. Editors that replace files on
	// save are handled by watching the parent directories.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of debounced file events.
	Events() iter.Seq[WatchEvent]
}
