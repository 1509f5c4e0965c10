package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrCyclicParent is returned when walking a label's parents revisits a label.
	ErrCyclicParent = zerr.New("cyclic parent chain")

	// ErrUnknownParent is returned when a label references a parent that is not in the collection.
	ErrUnknownParent = zerr.New("parent label not found")

	// ErrDuplicateLabelID is reported when two labels in one collection share an id.
	ErrDuplicateLabelID = zerr.New("duplicate label id")

	// ErrLabelNotFound is returned when a label id is not present in a tree.
	ErrLabelNotFound = zerr.New("label not found")

	// ErrLabelHasChildren is returned when deleting a label that still has children.
	ErrLabelHasChildren = zerr.New("label still has children")

	// ErrUnknownTree is returned when a tree name is not registered in the container.
	ErrUnknownTree = zerr.New("unknown label tree")

	// ErrDuplicateTreeName is returned when two trees share a name.
	ErrDuplicateTreeName = zerr.New("duplicate label tree name")

	// ErrNoTrees is returned when the configuration declares no label trees.
	ErrNoTrees = zerr.New("no label trees configured")

	// ErrEmptyQuery is returned when a lookup is started without a name.
	ErrEmptyQuery = zerr.New("lookup query is empty")

	// ErrLookupFailed is returned when the external label source request fails.
	ErrLookupFailed = zerr.New("label lookup failed")

	// ErrLookupStatus is returned when the external label source answers with an unexpected status.
	ErrLookupStatus = zerr.New("label lookup returned unexpected status")

	// ErrLookupDecodeFailed is returned when the external label source response cannot be decoded.
	ErrLookupDecodeFailed = zerr.New("failed to decode label lookup response")

	// ErrInvalidDraft is returned when an imported label draft fails validation.
	ErrInvalidDraft = zerr.New("invalid label draft")

	// ErrConfigNotFound is returned when no taxa.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find taxa.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrLabelsReadFailed is returned when a labels file cannot be read.
	ErrLabelsReadFailed = zerr.New("failed to read labels file")

	// ErrLabelsParseFailed is returned when a labels file cannot be parsed.
	ErrLabelsParseFailed = zerr.New("failed to parse labels file")

	// ErrLabelsWriteFailed is returned when a labels file cannot be written.
	ErrLabelsWriteFailed = zerr.New("failed to write labels file")

	// ErrUnsupportedLabelsFormat is returned for labels files that are neither YAML nor JSON.
	ErrUnsupportedLabelsFormat = zerr.New("unsupported labels file format")

	// ErrNotATerminal is returned when the interactive picker is started without a terminal.
	ErrNotATerminal = zerr.New("interactive picker requires a terminal")

	// ErrWatcherFailed is returned when the label file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start label file watcher")
)

// IsKind reports whether err or any error it wraps was created from target.
// zerr.With copies the sentinel, so the copy is matched by message.
func IsKind(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}
	want := target.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if z, ok := e.(*zerr.Error); ok && z.Message() == want {
			return true
		}
	}
	return false
}
