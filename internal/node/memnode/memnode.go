// Package memnode is an in-memory record runtime with generation-checked handles.
package memnode

import (
	"slices"
	"sync"

	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

var (
	_ node.Runtime = (*Node)(nil)
	_ node.Cache   = (*Node)(nil)
)

type slot struct {
	gen     uint32
	live    bool
	indexed bool
	kind    schema.RecordKind
	id      int64
	values  map[string]any
	// bound keeps the live target of reference fields set from a handle.
	bound map[string]node.Ptr
}

// Node stores records in a slot table. A handle carries the slot generation, so a handle
// to a destroyed record never reaches the record that reuses its slot.
type Node struct {
	mu    sync.RWMutex
	reg   *schema.Registry
	slots []slot
	free  []uint32
	seq   map[schema.RecordKind]int64
	index map[schema.ObjectRef]node.Ptr
}

// New creates an empty node for the kinds of reg.
func New(reg *schema.Registry) *Node {
	return &Node{
		reg:   reg,
		seq:   make(map[schema.RecordKind]int64, reg.Len()),
		index: make(map[schema.ObjectRef]node.Ptr),
	}
}

func makePtr(idx uint32, gen uint32) node.Ptr {
	return node.Ptr(uint64(gen)<<32 | uint64(idx+1))
}

func splitPtr(p node.Ptr) (uint32, uint32) {
	return uint32(p&0xffffffff) - 1, uint32(p >> 32)
}

// slot returns the live slot of p. The caller holds mu.
func (n *Node) slot(p node.Ptr) (*slot, error) {
	if p.IsNull() {
		return nil, exception.ErrNullHandle
	}
	idx, gen := splitPtr(p)
	if int(idx) >= len(n.slots) {
		return nil, exception.ErrNullHandle
	}
	s := &n.slots[idx]
	if !s.live || s.gen != gen {
		return nil, exception.ErrNullHandle
	}
	return s, nil
}

// alloc takes a free slot. The caller holds mu.
func (n *Node) alloc(kind schema.RecordKind, id int64) node.Ptr {
	var idx uint32
	if l := len(n.free); l > 0 {
		idx = n.free[l-1]
		n.free = n.free[:l-1]
	} else {
		n.slots = append(n.slots, slot{})
		idx = uint32(len(n.slots) - 1)
	}

	s := &n.slots[idx]
	s.gen++
	s.live = true
	s.indexed = false
	s.kind = kind
	s.id = id
	s.values = make(map[string]any)
	s.bound = make(map[string]node.Ptr)
	return makePtr(idx, s.gen)
}

// publish makes the record at p reachable by (kind,id). The caller holds mu.
func (n *Node) publish(p node.Ptr, s *slot) {
	ref := schema.ObjectRef{Kind: s.kind, ID: s.id}
	if old, ok := n.index[ref]; ok && old != p {
		if prev, err := n.slot(old); err == nil {
			prev.indexed = false
		}
	}
	n.index[ref] = p
	s.indexed = true
	if s.id >= n.seq[s.kind] {
		n.seq[s.kind] = s.id
	}
}

func (n *Node) Create(kind schema.RecordKind) (node.Ptr, error) {
	if _, ok := n.reg.Schema(kind); !ok {
		return node.NullPtr, errors.Wrapf(exception.ErrUnknownRecordKind, "create %s", kind)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.seq[kind] + 1
	p := n.alloc(kind, id)
	s, _ := n.slot(p)
	n.publish(p, s)
	return p, nil
}

func (n *Node) Destroy(p node.Ptr) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	s, err := n.slot(p)
	if err != nil {
		return errors.Wrap(err, "destroy")
	}

	if s.indexed {
		delete(n.index, schema.ObjectRef{Kind: s.kind, ID: s.id})
	}
	s.live = false
	s.indexed = false
	s.values = nil
	s.bound = nil
	idx, _ := splitPtr(p)
	n.free = append(n.free, idx)
	return nil
}

func (n *Node) IsValid(p node.Ptr) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, err := n.slot(p)
	return err == nil
}

func (n *Node) Kind(p node.Ptr) (schema.RecordKind, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, err := n.slot(p)
	if err != nil {
		return 0, err
	}
	return s.kind, nil
}

func (n *Node) ID(p node.Ptr) (int64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, err := n.slot(p)
	if err != nil {
		return 0, err
	}
	return s.id, nil
}

// Clone duplicates the record under the same id. The clone is not reachable by Lookup.
func (n *Node) Clone(p node.Ptr) (node.Ptr, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	src, err := n.slot(p)
	if err != nil {
		return node.NullPtr, errors.Wrap(err, "clone")
	}
	return n.duplicate(src, src.id), nil
}

// Copy duplicates the record under a new id and makes the copy reachable by Lookup.
// The id must not be held by a live record of the same kind.
func (n *Node) Copy(p node.Ptr, id int64) (node.Ptr, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	src, err := n.slot(p)
	if err != nil {
		return node.NullPtr, errors.Wrap(err, "copy")
	}
	ref := schema.ObjectRef{Kind: src.kind, ID: id}
	if _, ok := n.index[ref]; ok {
		return node.NullPtr, errors.Wrapf(exception.ErrInvalidArgument, "copy onto %s, id is taken", ref)
	}
	cp := n.duplicate(src, id)
	s, _ := n.slot(cp)
	n.publish(cp, s)
	return cp, nil
}

// duplicate copies src into a fresh slot. The caller holds mu.
func (n *Node) duplicate(src *slot, id int64) node.Ptr {
	kind := src.kind
	values := make(map[string]any, len(src.values))
	for k, v := range src.values {
		if b, ok := v.([]byte); ok {
			v = slices.Clone(b)
		}
		values[k] = v
	}
	bound := make(map[string]node.Ptr, len(src.bound))
	for k, v := range src.bound {
		bound[k] = v
	}

	// alloc may grow the slot table, so src is not used after it.
	p := n.alloc(kind, id)
	s, _ := n.slot(p)
	s.values = values
	s.bound = bound
	return p
}

func (n *Node) Lookup(ref schema.ObjectRef) (node.Ptr, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.index[ref]
	return p, ok
}

func (n *Node) Count(kind schema.RecordKind) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for ref := range n.index {
		if ref.Kind == kind {
			count++
		}
	}
	return count
}

func (n *Node) Range(kind schema.RecordKind, fn func(p node.Ptr) bool) {
	n.mu.RLock()
	refs := make([]schema.ObjectRef, 0)
	for ref := range n.index {
		if ref.Kind == kind {
			refs = append(refs, ref)
		}
	}
	slices.SortFunc(refs, func(a, b schema.ObjectRef) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	ptrs := make([]node.Ptr, len(refs))
	for i, ref := range refs {
		ptrs[i] = n.index[ref]
	}
	n.mu.RUnlock()

	for _, p := range ptrs {
		if !fn(p) {
			return
		}
	}
}
