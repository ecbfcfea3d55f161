package ast

// nodeChunkSize is the number of TxtNode slots allocated per underlying
// slab. A node's address is stable for the arena's lifetime because slabs
// are never grown in place — a full slab is retired and a new one started.
const nodeChunkSize = 256

// Arena is a per-parse bump allocator. It owns every TxtNode, every child
// slice, and every interned string produced while parsing one file. The
// arena is dropped as a unit once its file's lint pass completes: no node,
// slice, or string obtained from it may be referenced afterward, and no
// reference may cross into another arena.
type Arena struct {
	slabs    [][]TxtNode
	used     int // slots used in the last slab
	strCache map[string]string
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{strCache: make(map[string]string)}
}

// Alloc copies node into arena-owned storage and returns a stable pointer to
// the copy. The returned pointer never moves for the lifetime of the arena.
func (a *Arena) Alloc(node TxtNode) *TxtNode {
	if len(a.slabs) == 0 || a.used == len(a.slabs[len(a.slabs)-1]) {
		a.slabs = append(a.slabs, make([]TxtNode, nodeChunkSize))
		a.used = 0
	}
	slab := a.slabs[len(a.slabs)-1]
	slab[a.used] = node
	ptr := &slab[a.used]
	a.used++
	return ptr
}

// NewLeaf allocates a leaf node: no children, an optional verbatim value.
func (a *Arena) NewLeaf(t NodeType, span Span, data NodeData, value string) *TxtNode {
	return a.Alloc(TxtNode{Type: t, Span: span, Data: data, Value: a.AllocString(value)})
}

// NewParent allocates a parent node owning the given children. The children
// slice is cloned into arena-owned storage via AllocSliceClone.
func (a *Arena) NewParent(t NodeType, span Span, data NodeData, children []*TxtNode) *TxtNode {
	return a.Alloc(TxtNode{Type: t, Span: span, Data: data, Children: a.AllocSliceClone(children)})
}

// AllocSliceClone copies nodes into a freshly allocated, arena-owned slice
// and returns it. The input slice may be reused or discarded by the caller.
func (a *Arena) AllocSliceClone(nodes []*TxtNode) []*TxtNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*TxtNode, len(nodes))
	copy(out, nodes)
	return out
}

// AllocString returns an arena-owned copy of s. Byte-identical strings
// allocated more than once in the same arena share storage (interning);
// the returned string is never normalized relative to s.
func (a *Arena) AllocString(s string) string {
	if s == "" {
		return ""
	}
	if cached, ok := a.strCache[s]; ok {
		return cached
	}
	// Copy so the returned string does not retain a reference to memory the
	// caller may mutate or that belongs to a different arena.
	cp := string(append([]byte(nil), s...))
	a.strCache[cp] = cp
	return cp
}

// NodeCount returns the number of nodes allocated so far, for diagnostics
// and tests.
func (a *Arena) NodeCount() int {
	if len(a.slabs) == 0 {
		return 0
	}
	return (len(a.slabs)-1)*nodeChunkSize + a.used
}
