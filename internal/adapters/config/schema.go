package config

import "time"

// Taxafile represents the structure of the taxa.yaml configuration file.
type Taxafile struct {
	Version     string     `yaml:"version"`
	Multiselect bool       `yaml:"multiselect"`
	Lookup      *LookupDTO `yaml:"lookup"`
	Trees       []TreeDTO  `yaml:"trees"`
}

// LookupDTO configures the external label source.
type LookupDTO struct {
	Tree       string        `yaml:"tree"`
	BaseURL    string        `yaml:"baseURL"`
	SourceID   int64         `yaml:"sourceID"`
	Timeout    time.Duration `yaml:"timeout"`
	Rate       float64       `yaml:"rate"`
	Color      string        `yaml:"color"`
	MarineOnly bool          `yaml:"marineOnly"`
}

// TreeDTO represents one label tree. Labels is a path relative to the
// config file, Items holds inline labels. Unset options take their defaults.
type TreeDTO struct {
	Name           string        `yaml:"name"`
	Labels         string        `yaml:"labels"`
	Items          []LabelRecord `yaml:"items"`
	ShowTitle      *bool         `yaml:"showTitle"`
	Standalone     *bool         `yaml:"standalone"`
	Collapsible    *bool         `yaml:"collapsible"`
	Multiselect    *bool         `yaml:"multiselect"`
	Deletable      *bool         `yaml:"deletable"`
	ShowFavourites *bool         `yaml:"showFavourites"`
	Flat           *bool         `yaml:"flat"`
}

// LabelRecord is the persisted form of a label. View state other than
// favourite is never written.
type LabelRecord struct {
	ID        int64  `json:"id" yaml:"id"`
	ParentID  *int64 `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	SourceID  string `json:"source_id,omitempty" yaml:"source_id,omitempty"`
	Favourite bool   `json:"favourite,omitempty" yaml:"favourite,omitempty"`
}
