package domain

// ExternalLabel is a single name returned by an external label source.
type ExternalLabel struct {
	Name      string `json:"name"`
	SourceID  string `json:"source_id"`
	Rank      string `json:"rank,omitempty"`
	Status    string `json:"status,omitempty"`
	Authority string `json:"authority,omitempty"`
	URL       string `json:"url,omitempty"`
	Accepted  bool   `json:"accepted"`
}

// ClassificationNode is one step of an external classification, ordered root first.
type ClassificationNode struct {
	Name     string
	SourceID string
	Rank     string
}
