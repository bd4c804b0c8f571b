package spatial

import "github.com/aninggo/spatial/kdtree"

// Pair is the value type every map-like container stores: a key plus its
// mapped value. It is what KeyOf projects back down to Key.
type Pair[K, M any] struct {
	Key   K
	Value M
}

// engine abstracts over kdtree.FrozenTree and kdtree.RelaxedTree so every
// container wrapper in this package (PointSet, PointMap, BoxSet, ...) can
// be written once against either balancing strategy, chosen at
// construction rather than duplicated per wrapper the way the original
// C++ library duplicates its Frozen_*/Relaxed_* container templates.
//
// D is fixed to the container's coordinate type C: every prebuilt metric
// in this package returns a distance of the same numeric type as the
// coordinates it measures.
type engine[K, V any, C kdtree.Real] interface {
	Len() int
	Empty() bool
	Dim() int
	Insert(v V)
	FindValue(key K) (V, bool)
	Erase(key K) bool
	Check() error
	Mapping(axis int) *kdtree.MappingIterator[K, V]
	Region(pred kdtree.RegionPredicate[K]) *kdtree.RegionIterator[K, V]
	Neighbors(metric kdtree.Metric[K, C], target K) *kdtree.NeighborIterator[K, V, C]
	Copy(balancing bool) engine[K, V, C]
}

type frozenEngine[K, V any, C kdtree.Real] struct {
	tree *kdtree.FrozenTree[K, V]
}

func newFrozenEngine[K, V any, C kdtree.Real](rank kdtree.Rank, cmp kdtree.Comparator[K], keyOf func(V) K) *frozenEngine[K, V, C] {
	return &frozenEngine[K, V, C]{tree: kdtree.NewFrozenTree[K, V](rank, cmp, keyOf)}
}

func (e *frozenEngine[K, V, C]) Len() int                    { return e.tree.Len() }
func (e *frozenEngine[K, V, C]) Empty() bool                 { return e.tree.Empty() }
func (e *frozenEngine[K, V, C]) Dim() int                    { return e.tree.Dim() }
func (e *frozenEngine[K, V, C]) Insert(v V)                  { e.tree.Insert(v) }
func (e *frozenEngine[K, V, C]) FindValue(key K) (V, bool)   { return e.tree.FindValue(key) }
func (e *frozenEngine[K, V, C]) Erase(key K) bool            { return e.tree.Erase(key) }
func (e *frozenEngine[K, V, C]) Check() error                { return e.tree.Check() }
func (e *frozenEngine[K, V, C]) Mapping(axis int) *kdtree.MappingIterator[K, V] {
	return e.tree.Mapping(axis)
}
func (e *frozenEngine[K, V, C]) Region(pred kdtree.RegionPredicate[K]) *kdtree.RegionIterator[K, V] {
	return e.tree.Region(pred)
}
func (e *frozenEngine[K, V, C]) Neighbors(metric kdtree.Metric[K, C], target K) *kdtree.NeighborIterator[K, V, C] {
	return kdtree.FrozenNeighbors[K, V, C](e.tree, metric, target)
}
func (e *frozenEngine[K, V, C]) Copy(balancing bool) engine[K, V, C] {
	return &frozenEngine[K, V, C]{tree: e.tree.Copy(balancing)}
}

type relaxedEngine[K, V any, C kdtree.Real] struct {
	tree *kdtree.RelaxedTree[K, V]
}

func newRelaxedEngine[K, V any, C kdtree.Real](rank kdtree.Rank, cmp kdtree.Comparator[K], keyOf func(V) K, alpha float64) (*relaxedEngine[K, V, C], error) {
	tree, err := kdtree.NewRelaxedTree[K, V](rank, cmp, keyOf, alpha)
	if err != nil {
		return nil, err
	}
	return &relaxedEngine[K, V, C]{tree: tree}, nil
}

func (e *relaxedEngine[K, V, C]) Len() int                  { return e.tree.Len() }
func (e *relaxedEngine[K, V, C]) Empty() bool               { return e.tree.Empty() }
func (e *relaxedEngine[K, V, C]) Dim() int                  { return e.tree.Dim() }
func (e *relaxedEngine[K, V, C]) Insert(v V)                { e.tree.Insert(v) }
func (e *relaxedEngine[K, V, C]) FindValue(key K) (V, bool) { return e.tree.FindValue(key) }
func (e *relaxedEngine[K, V, C]) Erase(key K) bool          { return e.tree.Erase(key) }
func (e *relaxedEngine[K, V, C]) Check() error              { return e.tree.Check() }
func (e *relaxedEngine[K, V, C]) Mapping(axis int) *kdtree.MappingIterator[K, V] {
	return e.tree.Mapping(axis)
}
func (e *relaxedEngine[K, V, C]) Region(pred kdtree.RegionPredicate[K]) *kdtree.RegionIterator[K, V] {
	return e.tree.Region(pred)
}
func (e *relaxedEngine[K, V, C]) Neighbors(metric kdtree.Metric[K, C], target K) *kdtree.NeighborIterator[K, V, C] {
	return kdtree.RelaxedNeighbors[K, V, C](e.tree, metric, target)
}
func (e *relaxedEngine[K, V, C]) Copy(balancing bool) engine[K, V, C] {
	return &relaxedEngine[K, V, C]{tree: e.tree.Copy(balancing)}
}

// container is the shared implementation behind every exported wrapper
// (PointSet, PointMap, BoxSet, ...): it only knows how to project a value
// down to a key and hand queries to whichever engine backs it.
type container[K, V any, C kdtree.Real] struct {
	eng   engine[K, V, C]
	keyOf func(V) K
}

func (c *container[K, V, C]) Len() int    { return c.eng.Len() }
func (c *container[K, V, C]) Empty() bool { return c.eng.Empty() }
func (c *container[K, V, C]) Dim() int    { return c.eng.Dim() }

func (c *container[K, V, C]) find(key K) (V, bool) { return c.eng.FindValue(key) }

// upsert inserts v, first erasing any existing element with the same key
// so set/map containers never accumulate duplicate keys. Multimaps skip
// this and call eng.Insert directly.
func (c *container[K, V, C]) upsert(v V) {
	key := c.keyOf(v)
	c.eng.Erase(key)
	c.eng.Insert(v)
}

func (c *container[K, V, C]) erase(key K) bool { return c.eng.Erase(key) }

func (c *container[K, V, C]) check() error { return c.eng.Check() }

func (c *container[K, V, C]) mapping(axis int) *kdtree.MappingIterator[K, V] {
	return c.eng.Mapping(axis)
}

func (c *container[K, V, C]) region(pred kdtree.RegionPredicate[K]) *kdtree.RegionIterator[K, V] {
	return c.eng.Region(pred)
}

func (c *container[K, V, C]) neighbors(metric kdtree.Metric[K, C], target K) *kdtree.NeighborIterator[K, V, C] {
	return c.eng.Neighbors(metric, target)
}

// all walks every stored value in axis-0 order. It is built on the
// mapping iterator rather than a dedicated preorder walk, since the
// engine has no exported way to hand out its internal node pointers.
func (c *container[K, V, C]) all(yield func(V) bool) {
	it := c.mapping(0)
	for it.ToMinimum(); !it.Done(); it.Increment() {
		if !yield(it.Value()) {
			return
		}
	}
}

func (c *container[K, V, C]) copy(balancing bool) *container[K, V, C] {
	T().Debugf("spatial: copying container of %d elements (balancing=%v)", c.Len(), balancing)
	return &container[K, V, C]{eng: c.eng.Copy(balancing), keyOf: c.keyOf}
}
