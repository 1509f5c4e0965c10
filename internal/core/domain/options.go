package domain

// TreeOptions configures how a single label tree behaves and renders.
type TreeOptions struct {
	// ShowTitle renders the tree name above its labels.
	ShowTitle bool `yaml:"showTitle"`
	// Standalone makes the tree apply its own select and deselect intents
	// instead of waiting for a container broadcast.
	Standalone bool `yaml:"standalone"`
	// Collapsible allows the whole tree to be hidden behind its title.
	Collapsible bool `yaml:"collapsible"`
	// Multiselect allows more than one selected label at a time.
	Multiselect bool `yaml:"multiselect"`
	// Deletable enables delete intents.
	Deletable bool `yaml:"deletable"`
	// ShowFavourites enables favourite intents and markers.
	ShowFavourites bool `yaml:"showFavourites"`
	// Flat treats every label as a root.
	Flat bool `yaml:"flat"`
}

// DefaultTreeOptions returns the options a tree uses when nothing is configured.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		ShowTitle:   true,
		Collapsible: true,
	}
}
