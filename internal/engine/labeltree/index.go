// Package labeltree implements the label tree index, the per-tree selection
// state machine and the container that arbitrates between embedded trees.
package labeltree

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/zerr"
)

// Index is a read-only view over a label collection. It is rebuilt from
// scratch whenever the collection changes and never patched in place.
type Index struct {
	labels      []*domain.Label
	byID        map[domain.LabelID]*domain.Label
	children    map[domain.LabelID][]*domain.Label
	roots       []*domain.Label
	orphans     []*domain.Label
	duplicates  []domain.LabelID
	flat        bool
	fingerprint uint64
}

// NewIndex builds the index for labels in a single pass.
//
// Duplicate ids resolve to the last occurrence and are reported by
// Duplicates. Outside flat mode every label without children has its
// Expanded flag cleared.
func NewIndex(labels []*domain.Label, flat bool) *Index {
	idx := &Index{
		labels:      labels,
		byID:        make(map[domain.LabelID]*domain.Label, len(labels)),
		flat:        flat,
		fingerprint: Fingerprint(labels),
	}

	for _, l := range labels {
		if _, ok := idx.byID[l.ID]; ok {
			idx.duplicates = append(idx.duplicates, l.ID)
		}
		idx.byID[l.ID] = l
	}

	if flat {
		idx.roots = labels
		return idx
	}

	idx.children = make(map[domain.LabelID][]*domain.Label)
	for _, l := range labels {
		if l.ParentID == nil {
			idx.roots = append(idx.roots, l)
			continue
		}
		idx.children[*l.ParentID] = append(idx.children[*l.ParentID], l)
		if _, ok := idx.byID[*l.ParentID]; !ok {
			idx.orphans = append(idx.orphans, l)
		}
	}

	for _, l := range labels {
		if len(idx.children[l.ID]) == 0 {
			l.Expanded = false
		}
	}

	return idx
}

// Lookup returns the label with the given id.
func (idx *Index) Lookup(id domain.LabelID) (*domain.Label, bool) {
	l, ok := idx.byID[id]
	return l, ok
}

// Has reports whether the id is part of the collection.
func (idx *Index) Has(id domain.LabelID) bool {
	_, ok := idx.byID[id]
	return ok
}

// ChildrenOf returns the children of parent in input order. A nil parent
// yields the roots. In flat mode every label is a root and no label has
// children.
func (idx *Index) ChildrenOf(parent *domain.LabelID) []*domain.Label {
	if parent == nil {
		return idx.roots
	}
	if idx.flat {
		return nil
	}
	return idx.children[*parent]
}

// Roots returns the labels without a parent, or all labels in flat mode.
func (idx *Index) Roots() []*domain.Label {
	return idx.roots
}

// HasChildren reports whether any label names id as its parent.
func (idx *Index) HasChildren(id domain.LabelID) bool {
	return !idx.flat && len(idx.children[id]) > 0
}

// AncestorChain returns the ids of label's ancestors from the root down to
// its immediate parent.
//
// A revisited id stops the walk with ErrCyclicParent, a parent missing from
// the collection stops it with ErrUnknownParent. In both cases the part of
// the chain that could be resolved is returned alongside the error.
func (idx *Index) AncestorChain(label *domain.Label) ([]domain.LabelID, error) {
	var chain []domain.LabelID
	visited := map[domain.LabelID]struct{}{label.ID: {}}

	current := label
	for current.ParentID != nil {
		pid := *current.ParentID
		if _, seen := visited[pid]; seen {
			slices.Reverse(chain)
			return chain, zerr.With(zerr.With(domain.ErrCyclicParent, "label_id", label.ID.String()), "parent_id", pid.String())
		}
		visited[pid] = struct{}{}

		parent, ok := idx.byID[pid]
		if !ok {
			slices.Reverse(chain)
			return chain, zerr.With(zerr.With(domain.ErrUnknownParent, "label_id", label.ID.String()), "parent_id", pid.String())
		}
		chain = append(chain, pid)
		current = parent
	}

	slices.Reverse(chain)
	return chain, nil
}

// Labels returns the indexed collection as given.
func (idx *Index) Labels() []*domain.Label {
	return idx.labels
}

// Len returns the number of labels in the collection, duplicates included.
func (idx *Index) Len() int {
	return len(idx.labels)
}

// Flat reports whether the index ignores the hierarchy.
func (idx *Index) Flat() bool {
	return idx.flat
}

// Duplicates returns every id that occurred more than once, once per extra occurrence.
func (idx *Index) Duplicates() []domain.LabelID {
	return idx.duplicates
}

// Orphans returns labels whose parent is not part of the collection. They
// are neither roots nor reachable from one.
func (idx *Index) Orphans() []*domain.Label {
	return idx.orphans
}

// Fingerprint returns the structural hash the index was built from.
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}

// Fingerprint hashes the ordered (id, parent id) pairs of labels. Two
// collections with the same fingerprint produce the same index structure.
func Fingerprint(labels []*domain.Label) uint64 {
	d := xxhash.New()
	var buf [17]byte
	for _, l := range labels {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(l.ID))
		if l.ParentID != nil {
			buf[8] = 1
			binary.LittleEndian.PutUint64(buf[9:17], uint64(*l.ParentID))
		} else {
			buf[8] = 0
			clear(buf[9:17])
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
