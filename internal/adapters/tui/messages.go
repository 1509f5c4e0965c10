package tui

import (
	"time"

	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/engine/lookup"
)

// MsgLabelsChanged replaces the collection of a tree.
type MsgLabelsChanged struct {
	Tree   string
	Labels []*domain.Label
}

// MsgNotice carries an error to show in the footer.
type MsgNotice struct {
	Err error
}

// MsgRequestComplete reports a finished external request.
type MsgRequestComplete struct {
	Name     string
	Duration time.Duration
	Err      error
}

// msgLookupDone carries the response of a lookup started by the model.
type msgLookupDone struct {
	req     lookup.Request
	results []domain.ExternalLabel
	err     error
}

// msgImportDone reports the outcome of an import.
type msgImportDone struct {
	draft *domain.LabelDraft
	err   error
}
