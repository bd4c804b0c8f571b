package kdtree

import (
	"math/rand"
	"testing"
)

func point2SquareMetric() Metric[point2, int] {
	return EuclidianSquare[point2, int](point2Coord)
}

// TestNeighborIteratorScenario1 reproduces the worked example from spec
// section 8: neighbors of (1,1) among (3,3),(2,2),(1,1),(0,0) come out at
// distances 0, 2, 2, 8, with the tie at distance 2 broken by inorder
// position.
func TestNeighborIteratorScenario1(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	for _, p := range []point2{{3, 3}, {2, 2}, {1, 1}, {0, 0}} {
		tree.Insert(p)
	}
	metric := point2SquareMetric()
	it := FrozenNeighbors[point2, point2, int](tree, metric, point2{1, 1})
	it.ToMinimum()

	wantDist := []int{0, 2, 2, 8}
	var gotDist []int
	for !it.Done() {
		gotDist = append(gotDist, metric.DistanceToKey(2, point2{1, 1}, it.Value()))
		it.Increment()
	}
	if len(gotDist) != len(wantDist) {
		t.Fatalf("got %d neighbors, want %d", len(gotDist), len(wantDist))
	}
	for i := range wantDist {
		if gotDist[i] != wantDist[i] {
			t.Errorf("position %d: got distance %d, want %d", i, gotDist[i], wantDist[i])
		}
	}
}

// point5 is a 5-D integer point, used for the brute-force cross-check
// scenario.
type point5 [5]int

func point5Coord(p point5, axis int) int { return p[axis] }

func TestNeighborIteratorMatchesBruteForce(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	rng := rand.New(rand.NewSource(42))
	cmp := OrderedComparator[point5, int]{Coord: point5Coord}
	tree := NewFrozenTree[point5, point5](StaticRank(5), cmp, identity[point5])

	var pts []point5
	for i := 0; i < 100; i++ {
		var p point5
		for d := range p {
			p[d] = rng.Intn(1000)
		}
		pts = append(pts, p)
		tree.Insert(p)
	}
	metric := EuclidianSquare[point5, int](point5Coord)

	for trial := 0; trial < 20; trial++ {
		var target point5
		for d := range target {
			target[d] = rng.Intn(1000)
		}
		bruteBest := metric.DistanceToKey(5, target, pts[0])
		for _, p := range pts[1:] {
			if d := metric.DistanceToKey(5, target, p); d < bruteBest {
				bruteBest = d
			}
		}
		it := FrozenNeighbors[point5, point5, int](tree, metric, target)
		it.ToMinimum()
		if it.Done() {
			t.Fatalf("trial %d: neighbor iterator found nothing on a non-empty tree", trial)
		}
		got := metric.DistanceToKey(5, target, it.Value())
		if got != bruteBest {
			t.Errorf("trial %d: kd-tree nearest distance %d, brute force %d", trial, got, bruteBest)
		}
	}
}

func TestNeighborIteratorLowerBoundThenDecrement(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	for _, p := range []point2{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}} {
		tree.Insert(p)
	}
	metric := point2SquareMetric()
	target := point2{0, 0}

	it := FrozenNeighbors[point2, point2, int](tree, metric, target)
	const bound = 5
	it.LowerBound(bound)
	if !it.Done() {
		got := metric.DistanceToKey(2, target, it.Value())
		if got < bound {
			t.Errorf("LowerBound(%d): got distance %d, want >= %d", bound, got, bound)
		}
		it.Decrement()
		if !it.Done() {
			prev := metric.DistanceToKey(2, target, it.Value())
			if prev >= bound {
				t.Errorf("decrement after LowerBound(%d): got distance %d, want < %d", bound, prev, bound)
			}
		}
	}
}

func TestNeighborIteratorRejectsNegativeBound(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	for _, p := range []point2{{0, 0}, {1, 0}, {2, 0}} {
		tree.Insert(p)
	}
	metric := point2SquareMetric()
	target := point2{0, 0}

	lower := FrozenNeighbors[point2, point2, int](tree, metric, target)
	if err := lower.LowerBound(-1); err != ErrNegativeDistance {
		t.Errorf("LowerBound(-1) = %v, want ErrNegativeDistance", err)
	}
	if !lower.Done() {
		t.Errorf("iterator after a rejected LowerBound should be positioned at end")
	}

	upper := FrozenNeighbors[point2, point2, int](tree, metric, target)
	if err := upper.UpperBound(-1); err != ErrNegativeDistance {
		t.Errorf("UpperBound(-1) = %v, want ErrNegativeDistance", err)
	}
	if !upper.Done() {
		t.Errorf("iterator after a rejected UpperBound should be positioned at end")
	}
}

func TestNeighborIteratorEmptyTree(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	metric := point2SquareMetric()
	it := FrozenNeighbors[point2, point2, int](tree, metric, point2{0, 0})
	it.ToMinimum()
	if !it.Done() {
		t.Errorf("neighbor iterator on empty tree should be Done")
	}
}
