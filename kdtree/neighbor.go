package kdtree

// NeighborIterator enumerates the elements of a tree in order of distance
// to a fixed target key, under a caller-supplied Metric. Ties are broken
// by inorder position, giving the same kind of total order MappingIterator
// uses. See spec section 4.7 in SPEC_FULL.md.
//
// Correctness of the pruning below relies on metric admissibility:
// DistanceToPlane(rank, axis, target, k) <= DistanceToKey(rank, target, k)
// for every k on the far side of the hyperplane through k on that axis. A
// non-admissible Metric will not crash the iterator, but it may skip
// closer candidates.
type NeighborIterator[K, V any, D Real] struct {
	access treeAccess[K, V]
	metric Metric[K, D]
	target K
	node   link[V]
}

func newNeighborIterator[K, V any, D Real](access treeAccess[K, V], metric Metric[K, D], target K) *NeighborIterator[K, V, D] {
	return &NeighborIterator[K, V, D]{access: access, metric: metric, target: target, node: access.header}
}

func (it *NeighborIterator[K, V, D]) Done() bool { return it.node.IsHeader() }

func (it *NeighborIterator[K, V, D]) Value() V {
	assert(!it.Done(), "NeighborIterator.Value called past-the-end")
	return it.node.Value()
}

func (it *NeighborIterator[K, V, D]) keyOn(n link[V]) K { return it.access.keyOf(n.Value()) }

func (it *NeighborIterator[K, V, D]) distanceOf(n link[V]) D {
	return it.metric.DistanceToKey(it.access.rank, it.target, it.keyOn(n))
}

// lessTotal orders two nodes by distance to target, then by inorder
// position on a tie.
func (it *NeighborIterator[K, V, D]) lessTotal(a, b link[V]) bool {
	da, db := it.distanceOf(a), it.distanceOf(b)
	if da < db {
		return true
	}
	if db < da {
		return false
	}
	return inorderLess(a, b)
}

// nearFar splits n's children into the one on target's side of the
// cutting axis (near, searched first and unconditionally) and the other
// (far, searched only when it could still beat the current bound).
func (it *NeighborIterator[K, V, D]) nearFar(n link[V], cutDim int) (near, far link[V]) {
	if it.access.comparator.Less(cutDim, it.target, it.keyOn(n)) {
		return n.Left(), n.Right()
	}
	return n.Right(), n.Left()
}

// ToMinimum repositions the iterator on the closest element to target.
func (it *NeighborIterator[K, V, D]) ToMinimum() {
	if it.access.empty() {
		it.node = it.access.header
		return
	}
	best, _, _ := it.minSearch(it.access.root(), 0, it.access.header, 0, false)
	it.node = best
}

func (it *NeighborIterator[K, V, D]) minSearch(n link[V], depth int, best link[V], bestDist D, found bool) (link[V], D, bool) {
	if !found || it.lessTotal(n, best) {
		best, bestDist, found = n, it.distanceOf(n), true
	}
	cutDim := depth % it.access.rank
	near, far := it.nearFar(n, cutDim)
	if !near.IsNil() {
		best, bestDist, found = it.minSearch(near, depth+1, best, bestDist, found)
	}
	if !far.IsNil() {
		planeDist := it.metric.DistanceToPlane(it.access.rank, cutDim, it.target, it.keyOn(n))
		if !found || planeDist < bestDist {
			best, bestDist, found = it.minSearch(far, depth+1, best, bestDist, found)
		}
	}
	return best, bestDist, found
}

// ToMaximum repositions the iterator on the farthest element from target.
// Farthest-neighbor pruning needs a subtree bounding box this package does
// not maintain, so this walks the whole tree.
func (it *NeighborIterator[K, V, D]) ToMaximum() {
	if it.access.empty() {
		it.node = it.access.header
		return
	}
	better := func(a, b link[V]) bool { return it.lessTotal(b, a) }
	it.node = it.exhaustiveExtreme(it.access.root(), better)
}

func (it *NeighborIterator[K, V, D]) exhaustiveExtreme(n link[V], better func(a, b link[V]) bool) link[V] {
	best := n
	if l := n.Left(); !l.IsNil() {
		if cand := it.exhaustiveExtreme(l, better); better(cand, best) {
			best = cand
		}
	}
	if r := n.Right(); !r.IsNil() {
		if cand := it.exhaustiveExtreme(r, better); better(cand, best) {
			best = cand
		}
	}
	return best
}

// Increment moves to the next element in order of distance from target,
// using the same admissible-metric pruning as ToMinimum, generalized to
// "smallest element ordered after the current node": a greater distance,
// or an equal distance at a later inorder position.
func (it *NeighborIterator[K, V, D]) Increment() {
	if it.access.empty() || it.Done() {
		it.node = it.access.header
		return
	}
	cur := it.node
	qualifies := func(x link[V]) bool { return it.lessTotal(cur, x) }
	if best, _, found := it.boundedSearch(it.access.root(), 0, qualifies, it.access.header, 0, false); found {
		it.node = best
	} else {
		it.node = it.access.header
	}
}

// boundedSearch finds the node minimizing distance to target among those
// satisfying qualifies, pruning far subtrees once a qualifying candidate
// bounds the search radius.
func (it *NeighborIterator[K, V, D]) boundedSearch(n link[V], depth int, qualifies func(link[V]) bool, best link[V], bestDist D, found bool) (link[V], D, bool) {
	if qualifies(n) && (!found || it.lessTotal(n, best)) {
		best, bestDist, found = n, it.distanceOf(n), true
	}
	cutDim := depth % it.access.rank
	near, far := it.nearFar(n, cutDim)
	if !near.IsNil() {
		best, bestDist, found = it.boundedSearch(near, depth+1, qualifies, best, bestDist, found)
	}
	if !far.IsNil() {
		planeDist := it.metric.DistanceToPlane(it.access.rank, cutDim, it.target, it.keyOn(n))
		if !found || planeDist < bestDist {
			best, bestDist, found = it.boundedSearch(far, depth+1, qualifies, best, bestDist, found)
		}
	}
	return best, bestDist, found
}

// Decrement moves to the next-closest element below the current one, or
// (from the header) to the farthest element. Like ToMaximum, it cannot
// use the plane-distance pruning that benefits the forward direction, so
// it walks the whole tree.
func (it *NeighborIterator[K, V, D]) Decrement() {
	if it.access.empty() {
		it.node = it.access.header
		return
	}
	if it.Done() {
		it.ToMaximum()
		return
	}
	cur := it.node
	qualifies := func(x link[V]) bool { return it.lessTotal(x, cur) }
	better := func(a, b link[V]) bool { return it.lessTotal(b, a) }
	found := false
	var best link[V]
	it.exhaustiveWalk(it.access.root(), func(n link[V]) {
		if qualifies(n) && (!found || better(n, best)) {
			best, found = n, true
		}
	})
	if found {
		it.node = best
	} else {
		it.node = it.access.header
	}
}

func (it *NeighborIterator[K, V, D]) exhaustiveWalk(n link[V], visit func(link[V])) {
	visit(n)
	if l := n.Left(); !l.IsNil() {
		it.exhaustiveWalk(l, visit)
	}
	if r := n.Right(); !r.IsNil() {
		it.exhaustiveWalk(r, visit)
	}
}

// LowerBound repositions the iterator on the closest element whose
// distance to target is not less than bound. A negative bound is
// rejected with ErrNegativeDistance rather than silently clamped to
// zero, since a Metric is never expected to produce one.
func (it *NeighborIterator[K, V, D]) LowerBound(bound D) error {
	if bound < 0 {
		it.node = it.access.header
		return ErrNegativeDistance
	}
	it.thresholdSearch(func(d D) bool { return !(d < bound) })
	return nil
}

// UpperBound repositions the iterator on the closest element whose
// distance to target is strictly greater than bound. See LowerBound for
// the negative-bound policy.
func (it *NeighborIterator[K, V, D]) UpperBound(bound D) error {
	if bound < 0 {
		it.node = it.access.header
		return ErrNegativeDistance
	}
	it.thresholdSearch(func(d D) bool { return bound < d })
	return nil
}

func (it *NeighborIterator[K, V, D]) thresholdSearch(qualifiesDist func(D) bool) {
	if it.access.empty() {
		it.node = it.access.header
		return
	}
	qualifies := func(x link[V]) bool { return qualifiesDist(it.distanceOf(x)) }
	if best, _, found := it.boundedSearch(it.access.root(), 0, qualifies, it.access.header, 0, false); found {
		it.node = best
	} else {
		it.node = it.access.header
	}
}
