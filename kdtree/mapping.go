package kdtree

// MappingIterator enumerates the elements of a tree in the order induced
// by the comparator on a single, caller-chosen dimension. Ties (two keys
// equal on that dimension) are broken by inorder position, so the
// sequence forms a genuine total order and Increment/Decrement are always
// well defined; see spec section 4.5 in SPEC_FULL.md for the algorithm
// this implements.
type MappingIterator[K, V any] struct {
	access treeAccess[K, V]
	dim    int
	node   link[V]
	depth  int
}

func newMappingIterator[K, V any](access treeAccess[K, V], dim int) *MappingIterator[K, V] {
	return &MappingIterator[K, V]{access: access, dim: dim, node: access.header, depth: -1}
}

// Done reports whether the iterator has run off the end (or start) of the
// sequence, i.e. sits on the header.
func (it *MappingIterator[K, V]) Done() bool { return it.node.IsHeader() }

// Value returns the element the iterator currently sits on. Calling it
// when Done is true panics.
func (it *MappingIterator[K, V]) Value() V {
	assert(!it.Done(), "MappingIterator.Value called past-the-end")
	return it.node.Value()
}

func (it *MappingIterator[K, V]) keyOn(n link[V]) K { return it.access.keyOf(n.Value()) }

func (it *MappingIterator[K, V]) lessOnDim(a, b link[V]) bool {
	return it.access.comparator.Less(it.dim, it.keyOn(a), it.keyOn(b))
}

// ToMinimum repositions the iterator on the element with the smallest
// value on the mapping dimension, breaking ties by inorder position.
func (it *MappingIterator[K, V]) ToMinimum() {
	if it.access.empty() {
		it.node, it.depth = it.access.header, -1
		return
	}
	it.node, it.depth = it.mappingExtreme(it.access.root(), 0, it.lessTotal)
}

// ToMaximum repositions the iterator on the element with the largest
// value on the mapping dimension.
func (it *MappingIterator[K, V]) ToMaximum() {
	if it.access.empty() {
		it.node, it.depth = it.access.header, -1
		return
	}
	greater := func(a, b link[V]) bool { return it.lessTotal(b, a) }
	it.node, it.depth = it.mappingExtreme(it.access.root(), 0, greater)
}

// mappingExtreme finds the node minimizing (in the "better" order defined
// by better(a,b) == "a is strictly better than b") the mapping dimension,
// pruning the subtree on the side of the cutting axis that cannot improve
// on a candidate already found at this node.
func (it *MappingIterator[K, V]) mappingExtreme(n link[V], depth int, better func(a, b link[V]) bool) (link[V], int) {
	cutDim := depth % it.access.rank
	best, bestDepth := n, depth
	left, right := n.Left(), n.Right()
	if cutDim == it.dim {
		// Only one side can beat n here: the left subtree (strictly smaller
		// on this axis) for a minimum, the right subtree for a maximum.
		if !left.IsNil() && better(left, n) {
			return it.mappingExtreme(left, depth+1, better)
		}
		if !right.IsNil() && better(right, n) {
			return it.mappingExtreme(right, depth+1, better)
		}
		return best, bestDepth
	}
	if !left.IsNil() {
		if cand, candDepth := it.mappingExtreme(left, depth+1, better); better(cand, best) {
			best, bestDepth = cand, candDepth
		}
	}
	if !right.IsNil() {
		if cand, candDepth := it.mappingExtreme(right, depth+1, better); better(cand, best) {
			best, bestDepth = cand, candDepth
		}
	}
	return best, bestDepth
}

// inorderLess reports whether a precedes b in the tree's inorder
// sequence. a and b must be nodes of the same tree; a node does not
// precede itself.
func inorderLess[V any](a, b link[V]) bool {
	if a.Equal(b) {
		return false
	}
	pa := ancestorPath(a)
	pb := ancestorPath(b)
	i := 0
	for i < len(pa) && i < len(pb) && pa[i].Equal(pb[i]) {
		i++
	}
	// pa[i-1] (== pb[i-1], if i > 0) is the lowest common ancestor.
	return inorderLessAt(pa, pb, i)
}

// ancestorPath returns the chain from the root down to n, inclusive.
func ancestorPath[V any](n link[V]) []link[V] {
	var path []link[V]
	for cur := n; ; {
		path = append(path, cur)
		p := cur.Parent()
		if p.IsHeader() {
			break
		}
		cur = p
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func inorderLessAt[V any](pa, pb []link[V], lcaLen int) bool {
	if lcaLen == len(pa) {
		// a is an ancestor of b: b hangs off pa[lcaLen-1] via pb[lcaLen].
		lca := pa[lcaLen-1]
		return !lca.Left().Equal(pb[lcaLen])
	}
	if lcaLen == len(pb) {
		lca := pb[lcaLen-1]
		return lca.Left().Equal(pa[lcaLen])
	}
	lca := pa[lcaLen-1]
	return lca.Left().Equal(pa[lcaLen])
}

// lessTotal orders two distinct nodes first by their coordinate on the
// mapping dimension, then, on a tie, by inorder position.
func (it *MappingIterator[K, V]) lessTotal(a, b link[V]) bool {
	if it.lessOnDim(a, b) {
		return true
	}
	if it.lessOnDim(b, a) {
		return false
	}
	return inorderLess(a, b)
}

// Increment advances to the next element in the mapping order, or to the
// header (Done) if the iterator was already on the last element.
func (it *MappingIterator[K, V]) Increment() {
	if it.access.empty() || it.Done() {
		it.node, it.depth = it.access.header, -1
		return
	}
	if best, ok := it.searchPast(it.access.root(), it.node, 0, false); ok {
		it.node, it.depth = best, -1
	} else {
		it.node, it.depth = it.access.header, -1
	}
}

// Decrement moves to the previous element in the mapping order. Called on
// the header, it lands on the maximum element (mirroring end()-- on a
// std::set-style container).
func (it *MappingIterator[K, V]) Decrement() {
	if it.access.empty() {
		it.node, it.depth = it.access.header, -1
		return
	}
	if it.Done() {
		it.ToMaximum()
		return
	}
	if best, ok := it.searchPast(it.access.root(), it.node, 0, true); ok {
		it.node, it.depth = best, -1
	} else {
		it.node, it.depth = it.access.header, -1
	}
}

// searchPast finds the node closest to (but strictly before/after, per
// backward) cur in the total order, restricted to nodes strictly on the
// far side of cur. backward=false searches for the least node greater
// than cur (increment); backward=true searches for the greatest node
// smaller than cur (decrement).
func (it *MappingIterator[K, V]) searchPast(n, cur link[V], depth int, backward bool) (link[V], bool) {
	cutDim := depth % it.access.rank
	qualifies := func(x link[V]) bool {
		if backward {
			return it.lessTotal(x, cur)
		}
		return it.lessTotal(cur, x)
	}
	better := func(x, y link[V]) bool {
		if backward {
			return it.lessTotal(y, x)
		}
		return it.lessTotal(x, y)
	}
	var best link[V]
	found := false
	if qualifies(n) {
		best, found = n, true
	}
	left, right := n.Left(), n.Right()
	exploreLeft, exploreRight := true, true
	if cutDim == it.dim {
		if backward {
			// right subtree values >= n's; if n's value already exceeds
			// cur's, right subtree is entirely too large to be "smaller
			// than cur".
			if it.lessOnDim(cur, n) {
				exploreRight = false
			}
		} else if it.lessOnDim(n, cur) {
			exploreLeft = false
		}
	}
	if exploreLeft && !left.IsNil() {
		if cand, ok := it.searchPast(left, cur, depth+1, backward); ok {
			if !found || better(cand, best) {
				best, found = cand, true
			}
		}
	}
	if exploreRight && !right.IsNil() {
		if cand, ok := it.searchPast(right, cur, depth+1, backward); ok {
			if !found || better(cand, best) {
				best, found = cand, true
			}
		}
	}
	return best, found
}

// LowerBound repositions the iterator on the first element (in mapping
// order) whose coordinate on the mapping dimension is not less than
// bound's.
func (it *MappingIterator[K, V]) LowerBound(bound K) {
	it.boundTo(bound, false)
}

// UpperBound repositions the iterator on the first element whose
// coordinate on the mapping dimension is strictly greater than bound's.
func (it *MappingIterator[K, V]) UpperBound(bound K) {
	it.boundTo(bound, true)
}

func (it *MappingIterator[K, V]) boundTo(bound K, strict bool) {
	if it.access.empty() {
		it.node, it.depth = it.access.header, -1
		return
	}
	if best, ok := it.boundSearch(it.access.root(), 0, bound, strict); ok {
		it.node, it.depth = best, -1
	} else {
		it.node, it.depth = it.access.header, -1
	}
}

func (it *MappingIterator[K, V]) boundSearch(n link[V], depth int, bound K, strict bool) (link[V], bool) {
	cutDim := depth % it.access.rank
	qualifies := func(x link[V]) bool {
		k := it.keyOn(x)
		if strict {
			return it.access.comparator.Less(it.dim, bound, k)
		}
		return !it.access.comparator.Less(it.dim, k, bound)
	}
	var best link[V]
	found := false
	if qualifies(n) {
		best, found = n, true
	}
	left, right := n.Left(), n.Right()
	exploreLeft := true
	if cutDim == it.dim {
		nk := it.keyOn(n)
		below := it.access.comparator.Less(it.dim, nk, bound)
		if strict {
			exact := !below && !it.access.comparator.Less(it.dim, bound, nk)
			if below || exact {
				exploreLeft = false
			}
		} else if below {
			exploreLeft = false
		}
	}
	if exploreLeft && !left.IsNil() {
		if cand, ok := it.boundSearch(left, depth+1, bound, strict); ok {
			if !found || it.lessTotal(cand, best) {
				best, found = cand, true
			}
		}
	}
	if !right.IsNil() {
		if cand, ok := it.boundSearch(right, depth+1, bound, strict); ok {
			if !found || it.lessTotal(cand, best) {
				best, found = cand, true
			}
		}
	}
	return best, found
}
