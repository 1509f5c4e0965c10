package domain_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func TestLabel_DecodeDefaultsFlags(t *testing.T) {
	var fromJSON []*domain.Label
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"parent_id":null,"name":"a","color":"ff0000"},{"id":2,"parent_id":1,"name":"b","color":"00ff00","selected":true}]`), &fromJSON))

	require.Len(t, fromJSON, 2)
	assert.True(t, fromJSON[0].IsRoot())
	assert.False(t, fromJSON[0].Expanded)
	assert.False(t, fromJSON[0].Selected)
	assert.False(t, fromJSON[0].Favourite)
	assert.True(t, fromJSON[1].HasParent(1))
	assert.True(t, fromJSON[1].Selected)

	var fromYAML []*domain.Label
	require.NoError(t, yaml.Unmarshal([]byte("- id: 3\n  name: c\n  color: '#0000ff'\n  favourite: true\n"), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.True(t, fromYAML[0].Favourite)
	assert.False(t, fromYAML[0].Expanded)
}

func TestLabel_Helpers(t *testing.T) {
	l := &domain.Label{ID: 5, ParentID: domain.LabelID(4).Ptr(), Color: "abc123"}

	assert.Equal(t, "5", l.ID.String())
	assert.Equal(t, domain.LabelID(4), l.ParentOrZero())
	assert.Equal(t, "#abc123", l.HexColor())
	assert.False(t, l.HasParent(3))

	c := l.Clone()
	*c.ParentID = 9
	assert.Equal(t, domain.LabelID(4), *l.ParentID)

	root := &domain.Label{ID: 1, Color: "#ffffff"}
	assert.Equal(t, domain.LabelID(0), root.ParentOrZero())
	assert.Equal(t, "#ffffff", root.HexColor())
}

func TestDraft_ParentAndRecursiveAreExclusive(t *testing.T) {
	item := domain.ExternalLabel{Name: "Bellis", SourceID: "7"}
	parent := &domain.Label{ID: 3}

	withParent := domain.NewLabelDraft(item, "#ffffff", 1, parent, false)
	require.NotNil(t, withParent.ParentID)
	assert.Equal(t, "3", withParent.Values().Get("parent_id"))
	assert.False(t, withParent.Values().Has("recursive"))

	recursive := domain.NewLabelDraft(item, "#ffffff", 1, parent, true)
	assert.Nil(t, recursive.ParentID)
	assert.Equal(t, "true", recursive.Values().Get("recursive"))
	assert.False(t, recursive.Values().Has("parent_id"))
}

func TestDraft_JSON(t *testing.T) {
	in := `{"name":"Bellis","color":"#ffffff","source_id":"7","label_source_id":1,"recursive":"true","parent_id":3}`

	var d domain.LabelDraft
	require.NoError(t, json.Unmarshal([]byte(in), &d))
	assert.True(t, d.Recursive)
	assert.Nil(t, d.ParentID, "recursive drafts never carry a parent")

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bellis","color":"#ffffff","source_id":"7","label_source_id":1,"recursive":"true"}`, string(out))
}

func TestSearchQuery_Values(t *testing.T) {
	q := domain.SearchQuery{SourceID: 2, Query: "Bellis"}
	assert.Equal(t, "id=2&query=Bellis", q.Values().Encode())

	q.Unaccepted = true
	assert.Equal(t, "id=2&query=Bellis&unaccepted=true", q.Values().Encode())
}

func TestWorkspace_Tree(t *testing.T) {
	ws := &domain.Workspace{Trees: []domain.TreeSpec{{Name: "a"}, {Name: "b"}}}

	spec, ok := ws.Tree("b")
	require.True(t, ok)
	assert.Equal(t, "b", spec.Name)

	_, ok = ws.Tree("c")
	assert.False(t, ok)
}

func TestDefaultTreeOptions(t *testing.T) {
	assert.Equal(t, domain.TreeOptions{ShowTitle: true, Collapsible: true}, domain.DefaultTreeOptions())
}

func TestIsKind(t *testing.T) {
	withMeta := zerr.With(domain.ErrConfigNotFound, "cwd", "/work")
	wrapped := zerr.Wrap(errors.New("no such file"), domain.ErrLabelsReadFailed.Error())

	assert.True(t, domain.IsKind(domain.ErrConfigNotFound, domain.ErrConfigNotFound))
	assert.True(t, domain.IsKind(withMeta, domain.ErrConfigNotFound))
	assert.True(t, domain.IsKind(zerr.Wrap(withMeta, "load failed"), domain.ErrConfigNotFound))
	assert.True(t, domain.IsKind(wrapped, domain.ErrLabelsReadFailed))
	assert.False(t, domain.IsKind(withMeta, domain.ErrNoTrees))
	assert.False(t, domain.IsKind(nil, domain.ErrNoTrees))
}

func TestWorkspace_ImportTree(t *testing.T) {
	ws := &domain.Workspace{Trees: []domain.TreeSpec{{Name: "Animals"}, {Name: "Plants"}}}
	assert.Equal(t, "Animals", ws.ImportTree())

	ws.Lookup.Tree = "Plants"
	assert.Equal(t, "Plants", ws.ImportTree())

	assert.Empty(t, (&domain.Workspace{}).ImportTree())
}
