package spatial

import "github.com/aninggo/spatial/kdtree"

// Bounds returns a region predicate matching points p with
// low[d] <= p[d] < high[d] on every axis d — a closed-open box, the
// default membership test for point containers.
func Bounds[C kdtree.Real](low, high Point[C]) kdtree.RegionPredicate[Point[C]] {
	return func(dim int, key Point[C], rank int) kdtree.Position {
		c := key[dim]
		switch {
		case c < low[dim]:
			return kdtree.Below
		case c >= high[dim]:
			return kdtree.Above
		default:
			return kdtree.Matching
		}
	}
}

// OpenBounds returns a region predicate matching points strictly between
// low and high on every axis: low[d] < p[d] < high[d].
func OpenBounds[C kdtree.Real](low, high Point[C]) kdtree.RegionPredicate[Point[C]] {
	return func(dim int, key Point[C], rank int) kdtree.Position {
		c := key[dim]
		switch {
		case c <= low[dim]:
			return kdtree.Below
		case c >= high[dim]:
			return kdtree.Above
		default:
			return kdtree.Matching
		}
	}
}

// ClosedBounds returns a region predicate matching points with
// low[d] <= p[d] <= high[d] on every axis — inclusive of both bounds,
// the natural "point inside this box" test.
func ClosedBounds[C kdtree.Real](low, high Point[C]) kdtree.RegionPredicate[Point[C]] {
	return func(dim int, key Point[C], rank int) kdtree.Position {
		c := key[dim]
		switch {
		case c < low[dim]:
			return kdtree.Below
		case c > high[dim]:
			return kdtree.Above
		default:
			return kdtree.Matching
		}
	}
}

// OverlapBounds returns a region predicate, for use over a BoxSet/BoxMap
// (whose keys are 2k-dimension box encodings), matching every stored box
// that overlaps query: stored.Low[i] <= query.High[i] and
// stored.High[i] >= query.Low[i] for every box axis i.
//
// The predicate is evaluated one encoded axis at a time by the region
// iterator, so each box axis i contributes two encoded axes (2i, 2i+1)
// that must independently report Matching. The predicate compares the
// stored coordinate key[dim] against the query's opposite bound directly
// with Go's ordering operators; it does not go through a comparator, so
// RegularComparator.LessDim is not used.
func OverlapBounds[C kdtree.Real](query Box[C]) kdtree.RegionPredicate[Point[C]] {
	return func(dim int, key Point[C], rank int) kdtree.Position {
		boxAxis := dim / 2
		if dim%2 == 0 {
			// key holds a stored low bound; it must not exceed query's high.
			if key[dim] > query.High[boxAxis] {
				return kdtree.Above
			}
			return kdtree.Matching
		}
		// key holds a stored high bound; it must not fall below query's low.
		if key[dim] < query.Low[boxAxis] {
			return kdtree.Below
		}
		return kdtree.Matching
	}
}

// EnclosedBounds returns a region predicate, for use over a BoxSet/BoxMap,
// matching every stored box fully contained within query:
// query.Low[i] <= stored.Low[i] and stored.High[i] <= query.High[i] for
// every box axis i.
func EnclosedBounds[C kdtree.Real](query Box[C]) kdtree.RegionPredicate[Point[C]] {
	return func(dim int, key Point[C], rank int) kdtree.Position {
		boxAxis := dim / 2
		if dim%2 == 0 {
			c := key[dim]
			switch {
			case c < query.Low[boxAxis]:
				return kdtree.Below
			case c > query.High[boxAxis]:
				return kdtree.Above
			default:
				return kdtree.Matching
			}
		}
		c := key[dim]
		switch {
		case c < query.Low[boxAxis]:
			return kdtree.Below
		case c > query.High[boxAxis]:
			return kdtree.Above
		default:
			return kdtree.Matching
		}
	}
}
