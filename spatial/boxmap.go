package spatial

import (
	"iter"

	"github.com/aninggo/spatial/kdtree"
)

func boxPairKeyOf[C kdtree.Real, M any](p Pair[Box[C], M]) Point[C] { return EncodeBox(p.Key) }

// BoxMap stores at most one mapped value per distinct box.
type BoxMap[C kdtree.Real, M any] struct {
	c *container[Point[C], Pair[Box[C], M], C]
	k int
}

// NewBoxMap builds an empty frozen BoxMap of the given box rank k.
func NewBoxMap[C kdtree.Real, M any](k int) (*BoxMap[C, M], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := boxPairKeyOf[C, M]
	eng := newFrozenEngine[Point[C], Pair[Box[C], M], C](kdtree.StaticRank(2*k), boxComparator[C](), keyOf)
	return &BoxMap[C, M]{c: &container[Point[C], Pair[Box[C], M], C]{eng: eng, keyOf: keyOf}, k: k}, nil
}

// NewRelaxedBoxMap builds an empty self-balancing BoxMap.
func NewRelaxedBoxMap[C kdtree.Real, M any](k int, alpha float64) (*BoxMap[C, M], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := boxPairKeyOf[C, M]
	eng, err := newRelaxedEngine[Point[C], Pair[Box[C], M], C](kdtree.StaticRank(2*k), boxComparator[C](), keyOf, alpha)
	if err != nil {
		return nil, err
	}
	return &BoxMap[C, M]{c: &container[Point[C], Pair[Box[C], M], C]{eng: eng, keyOf: keyOf}, k: k}, nil
}

func (m *BoxMap[C, M]) Len() int    { return m.c.Len() }
func (m *BoxMap[C, M]) Empty() bool { return m.c.Empty() }
func (m *BoxMap[C, M]) Dim() int    { return m.k }

// Insert associates value with b, replacing any prior mapping for b.
func (m *BoxMap[C, M]) Insert(b Box[C], value M) error {
	if b.Dim() != m.k || len(b.High) != m.k {
		return ErrRankMismatch
	}
	m.c.upsert(Pair[Box[C], M]{Key: Box[C]{Low: clonePoint(b.Low), High: clonePoint(b.High)}, Value: value})
	return nil
}

// Find returns the value mapped to b, if any.
func (m *BoxMap[C, M]) Find(b Box[C]) (M, bool) {
	pair, ok := m.c.find(EncodeBox(b))
	return pair.Value, ok
}

// Erase removes the mapping for b, reporting whether one existed.
func (m *BoxMap[C, M]) Erase(b Box[C]) bool { return m.c.erase(EncodeBox(b)) }

func (m *BoxMap[C, M]) Check() error { return m.c.check() }

func (m *BoxMap[C, M]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Pair[Box[C], M]] {
	return m.c.region(pred)
}

func (m *BoxMap[C, M]) Mapping(encodedAxis int) *kdtree.MappingIterator[Point[C], Pair[Box[C], M]] {
	return m.c.mapping(encodedAxis)
}

func (m *BoxMap[C, M]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Pair[Box[C], M], C] {
	return m.c.neighbors(metric, target)
}

func (m *BoxMap[C, M]) All() iter.Seq[Pair[Box[C], M]] {
	return func(yield func(Pair[Box[C], M]) bool) { m.c.all(yield) }
}

func (m *BoxMap[C, M]) Copy(balancing bool) *BoxMap[C, M] {
	return &BoxMap[C, M]{c: m.c.copy(balancing), k: m.k}
}

// BoxMultimap stores any number of mapped values per box; Insert never
// displaces an existing entry for the same box.
type BoxMultimap[C kdtree.Real, M any] struct {
	c *container[Point[C], Pair[Box[C], M], C]
	k int
}

// NewBoxMultimap builds an empty frozen BoxMultimap of the given box rank
// k.
func NewBoxMultimap[C kdtree.Real, M any](k int) (*BoxMultimap[C, M], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := boxPairKeyOf[C, M]
	eng := newFrozenEngine[Point[C], Pair[Box[C], M], C](kdtree.StaticRank(2*k), boxComparator[C](), keyOf)
	return &BoxMultimap[C, M]{c: &container[Point[C], Pair[Box[C], M], C]{eng: eng, keyOf: keyOf}, k: k}, nil
}

// NewRelaxedBoxMultimap builds an empty self-balancing BoxMultimap.
func NewRelaxedBoxMultimap[C kdtree.Real, M any](k int, alpha float64) (*BoxMultimap[C, M], error) {
	if k <= 0 {
		return nil, ErrInvalidRank
	}
	keyOf := boxPairKeyOf[C, M]
	eng, err := newRelaxedEngine[Point[C], Pair[Box[C], M], C](kdtree.StaticRank(2*k), boxComparator[C](), keyOf, alpha)
	if err != nil {
		return nil, err
	}
	return &BoxMultimap[C, M]{c: &container[Point[C], Pair[Box[C], M], C]{eng: eng, keyOf: keyOf}, k: k}, nil
}

func (m *BoxMultimap[C, M]) Len() int    { return m.c.Len() }
func (m *BoxMultimap[C, M]) Empty() bool { return m.c.Empty() }
func (m *BoxMultimap[C, M]) Dim() int    { return m.k }

// Insert adds an additional (b, value) entry without disturbing any
// existing entries at b.
func (m *BoxMultimap[C, M]) Insert(b Box[C], value M) error {
	if b.Dim() != m.k || len(b.High) != m.k {
		return ErrRankMismatch
	}
	m.c.eng.Insert(Pair[Box[C], M]{Key: Box[C]{Low: clonePoint(b.Low), High: clonePoint(b.High)}, Value: value})
	return nil
}

// Find returns one value mapped to b, if any.
func (m *BoxMultimap[C, M]) Find(b Box[C]) (M, bool) {
	pair, ok := m.c.find(EncodeBox(b))
	return pair.Value, ok
}

// Erase removes one entry at b, reporting whether one was found.
func (m *BoxMultimap[C, M]) Erase(b Box[C]) bool { return m.c.erase(EncodeBox(b)) }

func (m *BoxMultimap[C, M]) Check() error { return m.c.check() }

func (m *BoxMultimap[C, M]) Region(pred kdtree.RegionPredicate[Point[C]]) *kdtree.RegionIterator[Point[C], Pair[Box[C], M]] {
	return m.c.region(pred)
}

func (m *BoxMultimap[C, M]) Mapping(encodedAxis int) *kdtree.MappingIterator[Point[C], Pair[Box[C], M]] {
	return m.c.mapping(encodedAxis)
}

func (m *BoxMultimap[C, M]) Neighbors(metric kdtree.Metric[Point[C], C], target Point[C]) *kdtree.NeighborIterator[Point[C], Pair[Box[C], M], C] {
	return m.c.neighbors(metric, target)
}

func (m *BoxMultimap[C, M]) All() iter.Seq[Pair[Box[C], M]] {
	return func(yield func(Pair[Box[C], M]) bool) { m.c.all(yield) }
}

func (m *BoxMultimap[C, M]) Copy(balancing bool) *BoxMultimap[C, M] {
	return &BoxMultimap[C, M]{c: m.c.copy(balancing), k: m.k}
}
