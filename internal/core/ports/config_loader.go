package ports

import "go.trai.ch/taxa/internal/core/domain"

// ConfigLoader defines the interface for loading the picker configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads taxa.yaml found from the given working directory, together
	// with every labels file it references.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to find the directory containing taxa.yaml.
	DiscoverRoot(cwd string) (string, error)
}
