package kdtree

import "sort"

// FrozenTree is the static k-d tree variant: insertion never rebalances,
// so lookups degrade toward O(n) under adversarial insertion order.
// Callers that need bounded query cost after many inserts call Rebuild or
// take a balancing Copy. See SPEC_FULL.md section 4.3.
type FrozenTree[K, V any] struct {
	header     *node[V]
	leftmost   *node[V]
	count      int
	rank       Rank
	comparator Comparator[K]
	keyOf      func(V) K
}

// NewFrozenTree builds an empty frozen tree. keyOf projects a stored value
// to the key used for ordering and search; for set-like containers it is
// the identity function, for map-like containers it extracts the key half
// of a (key, mapped) pair.
func NewFrozenTree[K, V any](rank Rank, comparator Comparator[K], keyOf func(V) K) *FrozenTree[K, V] {
	h := newHeader[V]()
	return &FrozenTree[K, V]{header: h, leftmost: h, rank: rank, comparator: comparator, keyOf: keyOf}
}

func (t *FrozenTree[K, V]) Len() int    { return t.count }
func (t *FrozenTree[K, V]) Empty() bool { return t.count == 0 }
func (t *FrozenTree[K, V]) Dim() int    { return t.rank.Dim() }

func (t *FrozenTree[K, V]) root() *node[V] {
	if t.header.parent == t.header {
		return nil
	}
	return t.header.parent
}

// Begin returns the leftmost (inorder-minimum) node, or the header if the
// tree is empty.
func (t *FrozenTree[K, V]) Begin() *node[V] { return t.leftmost }

// End returns the header sentinel.
func (t *FrozenTree[K, V]) End() *node[V] { return t.header }

// Insert links v as a new leaf, descending by cutting-dimension
// comparison from the root. It never rebalances.
func (t *FrozenTree[K, V]) Insert(v V) *node[V] {
	dim := t.rank.Dim()
	key := t.keyOf(v)
	if t.count == 0 {
		n := &node[V]{parent: t.header, value: v}
		t.header.parent = n
		t.header.right = n
		t.leftmost = n
		t.count = 1
		return n
	}
	cur := t.root()
	depth := 0
	for {
		cutDim := depth % dim
		if t.comparator.Less(cutDim, key, t.keyOf(cur.value)) {
			if cur.left == nil {
				n := &node[V]{parent: cur, value: v}
				cur.left = n
				if cur == t.leftmost {
					t.leftmost = n
				}
				t.count++
				return n
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				n := &node[V]{parent: cur, value: v}
				cur.right = n
				if cur == t.header.right {
					t.header.right = n
				}
				t.count++
				return n
			}
			cur = cur.right
		}
		depth++
	}
}

// keysEqual reports whether a and b compare equal on every axis, i.e.
// neither is less than the other on any of them.
func keysEqual[K any](cmp Comparator[K], dim int, a, b K) bool {
	for d := 0; d < dim; d++ {
		if cmp.Less(d, a, b) || cmp.Less(d, b, a) {
			return false
		}
	}
	return true
}

// Find descends the tree comparing on cutting dimensions and returns the
// first node whose key equals key on every axis, or nil.
func (t *FrozenTree[K, V]) Find(key K) *node[V] {
	dim := t.rank.Dim()
	cur := t.root()
	depth := 0
	for cur != nil {
		nk := t.keyOf(cur.value)
		if keysEqual(t.comparator, dim, key, nk) {
			return cur
		}
		cutDim := depth % dim
		if t.comparator.Less(cutDim, key, nk) {
			cur = cur.left
		} else {
			cur = cur.right
		}
		depth++
	}
	return nil
}

// FindValue is the exported counterpart of Find for callers outside this
// package, who have no way to name the unexported node type Find
// returns.
func (t *FrozenTree[K, V]) FindValue(key K) (V, bool) {
	if n := t.Find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *FrozenTree[K, V]) depthOf(n *node[V]) int {
	d := 0
	for cur := n; cur.parent != t.header; cur = cur.parent {
		d++
	}
	return d
}

// minimumOnAxis finds, within the subtree rooted at n (at the given
// depth), the node with the smallest coordinate on axis, using the same
// cutting-dimension pruning as the mapping iterator's extreme search.
func (t *FrozenTree[K, V]) minimumOnAxis(n *node[V], depth, axis int) (*node[V], int) {
	cutDim := depth % t.rank.Dim()
	if cutDim == axis {
		if n.left != nil {
			return t.minimumOnAxis(n.left, depth+1, axis)
		}
		return n, depth
	}
	best, bestDepth := n, depth
	if n.left != nil {
		if cand, cd := t.minimumOnAxis(n.left, depth+1, axis); t.comparator.Less(axis, t.keyOf(cand.value), t.keyOf(best.value)) {
			best, bestDepth = cand, cd
		}
	}
	if n.right != nil {
		if cand, cd := t.minimumOnAxis(n.right, depth+1, axis); t.comparator.Less(axis, t.keyOf(cand.value), t.keyOf(best.value)) {
			best, bestDepth = cand, cd
		}
	}
	return best, bestDepth
}

// EraseNode removes n from the tree by the classical k-d tree procedure:
// find the minimum on n's cutting dimension in its right subtree (or,
// lacking one, splice the left subtree over to the right and use that),
// swap positions with it, and repeat until n is a leaf, then detach it.
// n keeps its physical identity throughout — it is n that migrates down
// the tree, not the replacement — so an iterator parked on the
// replacement node survives the erase.
func (t *FrozenTree[K, V]) EraseNode(n *node[V]) {
	depth := t.depthOf(n)
	for {
		if n.right != nil {
			cutDim := depth % t.rank.Dim()
			m, mDepth := t.minimumOnAxis(n.right, depth+1, cutDim)
			t.preSwapFixup(n, m)
			swapNodes(n, m)
			depth = mDepth
			continue
		}
		if n.left != nil {
			n.right, n.left = n.left, nil
			n.right.parent = n
			cutDim := depth % t.rank.Dim()
			m, mDepth := t.minimumOnAxis(n.right, depth+1, cutDim)
			t.preSwapFixup(n, m)
			swapNodes(n, m)
			depth = mDepth
			continue
		}
		break
	}
	t.detachLeaf(n)
	t.count--
	if root := t.root(); root != nil {
		t.leftmost = minimum(root)
		t.header.right = maximum(root)
	}
}

// Erase removes the first node found matching key on every axis. It
// reports whether an element was removed.
func (t *FrozenTree[K, V]) Erase(key K) bool {
	n := t.Find(key)
	if n == nil {
		return false
	}
	t.EraseNode(n)
	return true
}

func (t *FrozenTree[K, V]) preSwapFixup(n, m *node[V]) {
	if t.leftmost == n {
		t.leftmost = m
	}
	if t.header.right == n {
		t.header.right = m
	}
}

func (t *FrozenTree[K, V]) detachLeaf(n *node[V]) {
	p := n.parent
	if p == t.header {
		t.header.parent = t.header
		t.header.right = t.header
		t.leftmost = t.header
		return
	}
	if p.left == n {
		p.left = nil
		if t.leftmost == n {
			t.leftmost = p
		}
	} else {
		p.right = nil
		if t.header.right == n {
			t.header.right = p
		}
	}
}

// Rebuild collects every stored value and rebuilds the tree from scratch
// by recursive median-of-cutting-dimension partition, restoring a
// balanced shape in O(n log^2 n).
func (t *FrozenTree[K, V]) Rebuild() {
	values := t.collectInorder()
	t.attach(t.buildBalanced(values, 0), len(values))
}

func (t *FrozenTree[K, V]) collectInorder() []V {
	values := make([]V, 0, t.count)
	for n := t.leftmost; n != t.header; n = increment(n) {
		values = append(values, n.value)
	}
	return values
}

func (t *FrozenTree[K, V]) buildBalanced(values []V, depth int) *node[V] {
	if len(values) == 0 {
		return nil
	}
	axis := depth % t.rank.Dim()
	sort.Slice(values, func(i, j int) bool {
		return t.comparator.Less(axis, t.keyOf(values[i]), t.keyOf(values[j]))
	})
	mid := len(values) / 2
	n := &node[V]{value: values[mid]}
	n.left = t.buildBalanced(values[:mid], depth+1)
	n.right = t.buildBalanced(values[mid+1:], depth+1)
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
	return n
}

func (t *FrozenTree[K, V]) attach(root *node[V], count int) {
	if root == nil {
		t.header.parent = t.header
		t.header.right = t.header
		t.leftmost = t.header
		t.count = 0
		return
	}
	root.parent = t.header
	t.header.parent = root
	t.header.right = maximum(root)
	t.leftmost = minimum(root)
	t.count = count
}

// Copy returns an independent tree holding the same values. When
// balancing is true, the copy is rebuilt to a balanced shape; otherwise
// it preserves the exact tree shape of the source, walked via
// preorderIncrement so a parent is always cloned before its children.
func (t *FrozenTree[K, V]) Copy(balancing bool) *FrozenTree[K, V] {
	dst := NewFrozenTree[K, V](t.rank, t.comparator, t.keyOf)
	if t.count == 0 {
		return dst
	}
	if balancing {
		dst.attach(dst.buildBalanced(t.collectInorder(), 0), t.count)
		return dst
	}
	clones := make(map[*node[V]]*node[V], t.count)
	root := t.root()
	for n := root; !isHeader(n); n = preorderIncrement(n) {
		c := &node[V]{value: n.value}
		clones[n] = c
		if p, ok := clones[n.parent]; ok {
			c.parent = p
			if n == n.parent.left {
				p.left = c
			} else {
				p.right = c
			}
		}
	}
	dst.attach(clones[root], t.count)
	return dst
}

// Check validates the header sentinel invariants, the per-axis ordering
// invariant at every node, parent/child reciprocity, and the leftmost and
// rightmost caches. It is a debugging and test aid, not called on any hot
// path.
func (t *FrozenTree[K, V]) Check() error {
	if t.header.left != t.header {
		return ErrCorruptTree
	}
	root := t.root()
	if root == nil {
		if t.leftmost != t.header || t.header.right != t.header || t.count != 0 {
			return ErrCorruptTree
		}
		return nil
	}
	if root.parent != t.header {
		return ErrCorruptTree
	}
	dim := t.rank.Dim()
	cnt := 0
	var walk func(n *node[V], depth int) error
	walk = func(n *node[V], depth int) error {
		if n == nil {
			return nil
		}
		cnt++
		axis := depth % dim
		if err := t.checkBound(n.left, axis, n.value, true); err != nil {
			return err
		}
		if err := t.checkBound(n.right, axis, n.value, false); err != nil {
			return err
		}
		if n.left != nil && n.left.parent != n {
			return ErrCorruptTree
		}
		if n.right != nil && n.right.parent != n {
			return ErrCorruptTree
		}
		if err := walk(n.left, depth+1); err != nil {
			return err
		}
		return walk(n.right, depth+1)
	}
	if err := walk(root, 0); err != nil {
		return err
	}
	if cnt != t.count {
		return ErrCorruptTree
	}
	if minimum(root) != t.leftmost {
		return ErrCorruptTree
	}
	if maximum(root) != t.header.right {
		return ErrCorruptTree
	}
	return nil
}

func (t *FrozenTree[K, V]) checkBound(n *node[V], axis int, pivot V, mustBeLess bool) error {
	if n == nil {
		return nil
	}
	k, p := t.keyOf(n.value), t.keyOf(pivot)
	if mustBeLess {
		if !t.comparator.Less(axis, k, p) {
			return ErrCorruptTree
		}
	} else if t.comparator.Less(axis, k, p) {
		return ErrCorruptTree
	}
	if err := t.checkBound(n.left, axis, pivot, mustBeLess); err != nil {
		return err
	}
	return t.checkBound(n.right, axis, pivot, mustBeLess)
}

func (t *FrozenTree[K, V]) access() treeAccess[K, V] {
	return treeAccess[K, V]{header: frozenLink[V]{t.header}, rank: t.rank.Dim(), keyOf: t.keyOf, comparator: t.comparator}
}

// Mapping returns a mapping iterator over dim, positioned past-the-end.
func (t *FrozenTree[K, V]) Mapping(dim int) *MappingIterator[K, V] {
	return newMappingIterator(t.access(), dim)
}

// Region returns a region iterator filtered by pred, positioned
// past-the-end.
func (t *FrozenTree[K, V]) Region(pred RegionPredicate[K]) *RegionIterator[K, V] {
	return newRegionIterator(t.access(), pred)
}

// FrozenNeighbors returns a neighbor iterator over t ordered by metric
// distance to target. It is a free function, not a method, because Go
// forbids a method from introducing a type parameter (D) beyond its
// receiver's.
func FrozenNeighbors[K, V any, D Real](t *FrozenTree[K, V], metric Metric[K, D], target K) *NeighborIterator[K, V, D] {
	return newNeighborIterator(t.access(), metric, target)
}
