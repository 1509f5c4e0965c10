package domain

import "strconv"

// LabelID identifies a label within a collection.
type LabelID int64

// String returns the decimal form of the id.
func (id LabelID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id, for use as a ParentID.
func (id LabelID) Ptr() *LabelID {
	return &id
}

// Label is a single node of a label tree.
//
// ID, ParentID, Name, Color and SourceID belong to the caller and are never
// changed by a tree. Expanded, Selected and Favourite are view flags owned by
// the tree that displays the label. Children are not stored on the record;
// they are served by the tree index.
type Label struct {
	ID       LabelID  `json:"id" yaml:"id"`
	ParentID *LabelID `json:"parent_id" yaml:"parent_id,omitempty"`
	Name     string   `json:"name" yaml:"name"`
	Color    string   `json:"color" yaml:"color"`
	SourceID string   `json:"source_id,omitempty" yaml:"source_id,omitempty"`

	Expanded  bool `json:"expanded" yaml:"-"`
	Selected  bool `json:"selected" yaml:"-"`
	Favourite bool `json:"favourite" yaml:"favourite,omitempty"`
}

// IsRoot reports whether the label has no parent.
func (l *Label) IsRoot() bool {
	return l.ParentID == nil
}

// HasParent reports whether the label's parent is id.
func (l *Label) HasParent(id LabelID) bool {
	return l.ParentID != nil && *l.ParentID == id
}

// ParentOrZero returns the parent id, or zero for root labels.
func (l *Label) ParentOrZero() LabelID {
	if l.ParentID == nil {
		return 0
	}
	return *l.ParentID
}

// HexColor returns the color with a leading '#'.
func (l *Label) HexColor() string {
	if l.Color == "" || l.Color[0] == '#' {
		return l.Color
	}
	return "#" + l.Color
}

// Clone returns a copy of the label that does not share the parent pointer.
func (l *Label) Clone() *Label {
	c := *l
	if l.ParentID != nil {
		c.ParentID = l.ParentID.Ptr()
	}
	return &c
}

// CloneLabels returns copies of labels that share no records with the input.
func CloneLabels(labels []*Label) []*Label {
	if labels == nil {
		return nil
	}
	out := make([]*Label, len(labels))
	for i, l := range labels {
		out[i] = l.Clone()
	}
	return out
}
