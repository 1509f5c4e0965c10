package domain

import (
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// LabelDraft describes a label to be created from an external lookup result.
// Recursive and ParentID are mutually exclusive.
type LabelDraft struct {
	Name          string   `json:"name" validate:"required"`
	Color         string   `json:"color" validate:"required,hexcolor"`
	SourceID      string   `json:"source_id" validate:"required"`
	LabelSourceID int64    `json:"label_source_id" validate:"required,gt=0"`
	Recursive     bool     `json:"-"`
	ParentID      *LabelID `json:"parent_id,omitempty" validate:"excluded_if=Recursive true"`
}

// NewLabelDraft builds a draft. When recursive is set the parent is dropped,
// the owner then creates the whole external classification chain instead.
func NewLabelDraft(item ExternalLabel, color string, labelSourceID int64, parent *Label, recursive bool) *LabelDraft {
	d := &LabelDraft{
		Name:          item.Name,
		Color:         color,
		SourceID:      item.SourceID,
		LabelSourceID: labelSourceID,
		Recursive:     recursive,
	}
	if !recursive && parent != nil {
		d.ParentID = parent.ID.Ptr()
	}
	return d
}

type draftWire struct {
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	SourceID      string   `json:"source_id"`
	LabelSourceID int64    `json:"label_source_id"`
	Recursive     string   `json:"recursive,omitempty"`
	ParentID      *LabelID `json:"parent_id,omitempty"`
}

// MarshalJSON encodes the draft with recursive as the string "true", or omitted.
func (d LabelDraft) MarshalJSON() ([]byte, error) {
	w := draftWire{
		Name:          d.Name,
		Color:         d.Color,
		SourceID:      d.SourceID,
		LabelSourceID: d.LabelSourceID,
		ParentID:      d.ParentID,
	}
	if d.Recursive {
		w.Recursive = "true"
		w.ParentID = nil
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a draft, accepting recursive only as the string "true".
func (d *LabelDraft) UnmarshalJSON(data []byte) error {
	var w draftWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = LabelDraft{
		Name:          w.Name,
		Color:         w.Color,
		SourceID:      w.SourceID,
		LabelSourceID: w.LabelSourceID,
		Recursive:     w.Recursive == "true",
		ParentID:      w.ParentID,
	}
	if d.Recursive {
		d.ParentID = nil
	}
	return nil
}

// Values returns the draft as form values.
func (d *LabelDraft) Values() url.Values {
	v := url.Values{}
	v.Set("name", d.Name)
	v.Set("color", d.Color)
	v.Set("source_id", d.SourceID)
	v.Set("label_source_id", strconv.FormatInt(d.LabelSourceID, 10))
	switch {
	case d.Recursive:
		v.Set("recursive", "true")
	case d.ParentID != nil:
		v.Set("parent_id", d.ParentID.String())
	}
	return v
}

// SearchQuery is a lookup request against an external label source.
type SearchQuery struct {
	SourceID   int64  `json:"id"`
	Query      string `json:"query"`
	Unaccepted bool   `json:"-"`
}

// Values returns the query as {id, query, unaccepted?: "true"}.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	v.Set("id", strconv.FormatInt(q.SourceID, 10))
	v.Set("query", q.Query)
	if q.Unaccepted {
		v.Set("unaccepted", "true")
	}
	return v
}
