package ports

import (
	"context"

	"go.trai.ch/taxa/internal/core/domain"
)

// LabelSource is an external taxonomic name service.
//
//go:generate mockgen -source=label_source.go -destination=mocks/mock_label_source.go -package=mocks
type LabelSource interface {
	// Search finds names matching the query. Unaccepted names are only
	// included when the query asks for them. The result is never nil on success.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ExternalLabel, error)

	// Classification returns the ancestors of the named item, root first,
	// excluding the item itself.
	Classification(ctx context.Context, sourceID string) ([]domain.ClassificationNode, error)
}

// LabelSourceFactory creates a label source once the lookup settings of the
// workspace are known.
type LabelSourceFactory func(settings domain.LookupSettings) LabelSource
