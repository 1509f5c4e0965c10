package ports

import "go.trai.ch/taxa/internal/core/domain"

// IntentSink receives intents emitted upward by trees and lookup forms.
//
//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks
type IntentSink interface {
	Emit(intent domain.Intent)
}

// Listener is implemented by trees that are embedded in a container.
// tree names the tree the label belongs to; empty matches every tree.
type Listener interface {
	OnSelect(tree string, label *domain.Label)
	OnDeselect(tree string, label *domain.Label)
	OnClear()
	OnAddFavourite(tree string, label *domain.Label)
	OnRemoveFavourite(tree string, label *domain.Label)
}

// Broadcaster fans container-level events out to every embedded tree.
type Broadcaster interface {
	// Subscribe registers l and returns a function that removes it again.
	Subscribe(l Listener) func()

	BroadcastSelect(tree string, label *domain.Label)
	BroadcastDeselect(tree string, label *domain.Label)
	BroadcastClear()
	BroadcastAddFavourite(tree string, label *domain.Label)
	BroadcastRemoveFavourite(tree string, label *domain.Label)
}
