package spatial

import (
	"iter"

	"github.com/aninggo/spatial/kdtree"
)

func pairKeyOf[K, M any](p Pair[K, M]) K { return p.Key }

// PointMap stores at most one mapped value per distinct point.
type PointMap[C kdtree.Real, M any] struct {
	c *container[Point[C], Pair[Point[C], M], C]
}

// NewPointMap builds an empty frozen PointMap of the given rank.
func NewPointMap[C kdtree.Real, M any](rank int) (*PointMap[C, M], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := pairKeyOf[Point[C], M]
	eng := newFrozenEngine[Point[C], Pair[Point[C], M], C](kdtree.StaticRank(rank), pointComparator[C](), keyOf)
	return &PointMap[C, M]{c: &container[Point[C], Pair[Point[C], M], C]{eng: eng, keyOf: keyOf}}, nil
}

// NewRelaxedPointMap builds an empty self-balancing PointMap.
func NewRelaxedPointMap[C kdtree.Real, M any](rank int, alpha float64) (*PointMap[C, M], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := pairKeyOf[Point[C], M]
	eng, err := newRelaxedEngine[Point[C], Pair[Point[C], M], C](kdtree.StaticRank(rank), pointComparator[C](), keyOf, alpha)
	if err != nil {
		return nil, err
	}
	return &PointMap[C, M]{c: &container[Point[C], Pair[Point[C], M], C]{eng: eng, keyOf: keyOf}}, nil
}

func (m *PointMap[C, M]) Len() int    { return m.c.Len() }
func (m *PointMap[C, M]) Empty() bool { return m.c.Empty() }
func (m *PointMap[C, M]) Dim() int    { return m.c.Dim() }

// Insert associates value with p, replacing any prior mapping for p.
func (m *PointMap[C, M]) Insert(p Point[C], value M) error {
	if len(p) != m.c.Dim() {
		return ErrRankMismatch
	}
	m.c.upsert(Pair[Point[C], M]{Key: clonePoint(p), Value: value})
	return nil
}

// Find returns the value mapped to p, if any.
func (m *PointMap[C, M]) Find(p Point[C]) (M, bool) {
	pair, ok := m.c.find(p)
	return pair.Value, ok
}

// Erase removes the mapping for p, reporting whether one existed.
func (m *PointMap[C, M]) Erase(p Point[C]) bool { return m.c.erase(p) }

func (m *PointMap[C, M]) Check() error { return m.c.check() }

func (m *PointMap[C, M]) Mapping(axis int) *kdtree.MappingIterator[Point[C], Pair[Point[C], M]] {
	return m.c.mapping(axis)
}

func (m *PointMap[C, M]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Pair[Point[C], M]] {
	return m.c.region(pred)
}

func (m *PointMap[C, M]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Pair[Point[C], M], C] {
	return m.c.neighbors(metric, target)
}

func (m *PointMap[C, M]) All() iter.Seq[Pair[Point[C], M]] {
	return func(yield func(Pair[Point[C], M]) bool) { m.c.all(yield) }
}

func (m *PointMap[C, M]) Copy(balancing bool) *PointMap[C, M] {
	return &PointMap[C, M]{c: m.c.copy(balancing)}
}

// PointMultimap stores any number of mapped values per point; unlike
// PointMap, Insert never displaces an existing entry for the same point.
type PointMultimap[C kdtree.Real, M any] struct {
	c *container[Point[C], Pair[Point[C], M], C]
}

// NewPointMultimap builds an empty frozen PointMultimap of the given rank.
func NewPointMultimap[C kdtree.Real, M any](rank int) (*PointMultimap[C, M], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := pairKeyOf[Point[C], M]
	eng := newFrozenEngine[Point[C], Pair[Point[C], M], C](kdtree.StaticRank(rank), pointComparator[C](), keyOf)
	return &PointMultimap[C, M]{c: &container[Point[C], Pair[Point[C], M], C]{eng: eng, keyOf: keyOf}}, nil
}

// NewRelaxedPointMultimap builds an empty self-balancing PointMultimap.
func NewRelaxedPointMultimap[C kdtree.Real, M any](rank int, alpha float64) (*PointMultimap[C, M], error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := pairKeyOf[Point[C], M]
	eng, err := newRelaxedEngine[Point[C], Pair[Point[C], M], C](kdtree.StaticRank(rank), pointComparator[C](), keyOf, alpha)
	if err != nil {
		return nil, err
	}
	return &PointMultimap[C, M]{c: &container[Point[C], Pair[Point[C], M], C]{eng: eng, keyOf: keyOf}}, nil
}

func (m *PointMultimap[C, M]) Len() int    { return m.c.Len() }
func (m *PointMultimap[C, M]) Empty() bool { return m.c.Empty() }
func (m *PointMultimap[C, M]) Dim() int    { return m.c.Dim() }

// Insert adds an additional (p, value) entry without disturbing any
// existing entries at p.
func (m *PointMultimap[C, M]) Insert(p Point[C], value M) error {
	if len(p) != m.c.Dim() {
		return ErrRankMismatch
	}
	m.c.eng.Insert(Pair[Point[C], M]{Key: clonePoint(p), Value: value})
	return nil
}

// Find returns one value mapped to p, if any; use Region with a
// single-point box predicate to enumerate every value at p.
func (m *PointMultimap[C, M]) Find(p Point[C]) (M, bool) {
	pair, ok := m.c.find(p)
	return pair.Value, ok
}

// Erase removes one entry at p, reporting whether one was found. Call it
// repeatedly to remove every entry at p.
func (m *PointMultimap[C, M]) Erase(p Point[C]) bool { return m.c.erase(p) }

func (m *PointMultimap[C, M]) Check() error { return m.c.check() }

func (m *PointMultimap[C, M]) Mapping(axis int) *kdtree.MappingIterator[Point[C], Pair[Point[C], M]] {
	return m.c.mapping(axis)
}

func (m *PointMultimap[C, M]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Pair[Point[C], M]] {
	return m.c.region(pred)
}

func (m *PointMultimap[C, M]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Pair[Point[C], M], C] {
	return m.c.neighbors(metric, target)
}

func (m *PointMultimap[C, M]) All() iter.Seq[Pair[Point[C], M]] {
	return func(yield func(Pair[Point[C], M]) bool) { m.c.all(yield) }
}

func (m *PointMultimap[C, M]) Copy(balancing bool) *PointMultimap[C, M] {
	return &PointMultimap[C, M]{c: m.c.copy(balancing)}
}
