package ports

import "go.trai.ch/taxa/internal/core/domain"

// LabelStore reads and writes label collections.
//
//go:generate mockgen -source=label_store.go -destination=mocks/mock_label_store.go -package=mocks
type LabelStore interface {
	// LoadLabels reads the labels file at path. Missing view flags decode as false.
	LoadLabels(path string) ([]*domain.Label, error)

	// SaveLabels writes the label records to path. Expanded and selected
	// flags are never persisted.
	SaveLabels(path string, labels []*domain.Label) error
}
