package domain

import "time"

// Workspace is the fully loaded picker configuration.
type Workspace struct {
	// Root is the directory containing taxa.yaml.
	Root string
	// Multiselect allows selections in more than one tree at once.
	Multiselect bool
	Trees       []TreeSpec
	Lookup      LookupSettings
}

// TreeSpec describes one label tree and where its labels live.
type TreeSpec struct {
	Name string
	// LabelsPath is the absolute path of the labels file, empty for inline labels.
	LabelsPath string
	Labels     []*Label
	Options    TreeOptions
}

// LookupSettings configures the external label source.
type LookupSettings struct {
	// Tree receives imported labels. Empty selects the first tree.
	Tree          string
	BaseURL       string
	SourceID      int64
	Timeout       time.Duration
	RatePerSecond float64
	Color         string
	MarineOnly    bool
}

// Tree returns the spec with the given name.
func (w *Workspace) Tree(name string) (*TreeSpec, bool) {
	for i := range w.Trees {
		if w.Trees[i].Name == name {
			return &w.Trees[i], true
		}
	}
	return nil, false
}

// ImportTree returns the name of the tree imported labels are added to.
func (w *Workspace) ImportTree() string {
	if w.Lookup.Tree != "" {
		return w.Lookup.Tree
	}
	if len(w.Trees) > 0 {
		return w.Trees[0].Name
	}
	return ""
}
