package kdtree

import "testing"

func TestNodeIncrementDecrementRoundTrip(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	pts := []point2{{2, 2}, {1, 1}, {3, 3}, {0, 0}, {4, 4}}
	for _, p := range pts {
		tree.Insert(p)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check() after insert: %v", err)
	}

	var forward []point2
	for n := tree.Begin(); n != tree.End(); n = increment(n) {
		forward = append(forward, n.value)
	}
	if len(forward) != len(pts) {
		t.Fatalf("expected %d nodes in forward walk, got %d", len(pts), len(forward))
	}
	for i := 1; i < len(forward); i++ {
		if !point2Comparator().Less(0, forward[i-1], forward[i]) {
			t.Errorf("forward walk not ascending at %d: %v then %v", i, forward[i-1], forward[i])
		}
	}

	var backward []point2
	for n := decrement[point2](tree.End()); ; n = decrement(n) {
		backward = append(backward, n.value)
		if n == tree.Begin() {
			break
		}
	}
	if len(backward) != len(forward) {
		t.Fatalf("backward walk length %d != forward walk length %d", len(backward), len(forward))
	}
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Errorf("backward walk is not the reverse of forward walk at %d", i)
		}
	}
}

func TestIsHeaderOnEmptyTree(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	tree := NewFrozenTree[point2, point2](StaticRank(2), point2Comparator(), identity[point2])
	if !isHeader(tree.End()) {
		t.Errorf("End() of an empty tree must satisfy isHeader")
	}
	if tree.Begin() != tree.End() {
		t.Errorf("Begin() != End() on an empty tree")
	}
}

// TestPreorderIncrementVisitsEveryNodeOnceParentFirst wires a small tree
// by hand so the expected preorder sequence is known exactly, and checks
// that preorderIncrement (the walk Copy and Dump both drive) visits every
// node exactly once, with every parent strictly before its descendants.
func TestPreorderIncrementVisitsEveryNodeOnceParentFirst(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	header := newHeader[int]()
	root := &node[int]{value: 1}
	left := &node[int]{value: 2}
	right := &node[int]{value: 3}
	leftLeft := &node[int]{value: 4}
	rightRight := &node[int]{value: 5}

	header.parent = root
	header.right = rightRight
	root.parent = header
	root.left, root.right = left, right
	left.parent = root
	left.left = leftLeft
	leftLeft.parent = left
	right.parent = root
	right.right = rightRight
	rightRight.parent = right

	seen := map[*node[int]]bool{}
	var visited []int
	for n := root; !isHeader(n); n = preorderIncrement(n) {
		if seen[n] {
			t.Fatalf("node %d visited more than once", n.value)
		}
		seen[n] = true
		visited = append(visited, n.value)
	}

	want := []int{1, 2, 4, 3, 5}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want length %d", visited, len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("preorder[%d] = %d, want %d", i, visited[i], want[i])
		}
	}

	index := map[int]int{}
	for i, v := range visited {
		index[v] = i
	}
	for child, parent := range map[int]int{2: 1, 3: 1, 4: 2, 5: 3} {
		if index[parent] >= index[child] {
			t.Errorf("parent %d must precede child %d in preorder, got indices %d, %d",
				parent, child, index[parent], index[child])
		}
	}
}

// TestSwapNodesAdjacentUpdatesHeaderParent swaps a root with its left
// child, the parent/child code path in swapNodes, and checks that
// header.parent follows the new root along with every other pointer.
func TestSwapNodesAdjacentUpdatesHeaderParent(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	header := newHeader[string]()
	a := &node[string]{value: "A"} // root
	b := &node[string]{value: "B"} // a.left
	c := &node[string]{value: "C"} // a.right
	d := &node[string]{value: "D"} // b.left

	header.parent = a
	a.parent = header
	a.left, a.right = b, c
	b.parent = a
	b.left = d
	c.parent = a
	d.parent = b

	swapNodes(a, b)

	if header.parent != b {
		t.Fatalf("header.parent = %v, want b (new root)", header.parent)
	}
	if b.parent != header {
		t.Errorf("b.parent = %v, want header", b.parent)
	}
	if b.left != a || b.right != c {
		t.Errorf("b.left/right = %v/%v, want a/c", b.left, b.right)
	}
	if c.parent != b {
		t.Errorf("c.parent = %v, want b", c.parent)
	}
	if a.parent != b {
		t.Errorf("a.parent = %v, want b", a.parent)
	}
	if a.left != d || a.right != nil {
		t.Errorf("a.left/right = %v/%v, want d/nil", a.left, a.right)
	}
	if d.parent != a {
		t.Errorf("d.parent = %v, want a", d.parent)
	}
}

// TestSwapNodesRootWithUnrelatedNodeUpdatesHeaderParent exercises the
// wholesale-swap code path (the two nodes are not parent/child) with the
// root as one side, checking header.parent is still updated correctly —
// a code path distinct from the adjacent-swap case above.
func TestSwapNodesRootWithUnrelatedNodeUpdatesHeaderParent(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	header := newHeader[string]()
	a := &node[string]{value: "A"} // root
	b := &node[string]{value: "B"} // a.left
	c := &node[string]{value: "C"} // a.right
	e := &node[string]{value: "E"} // c.left, unrelated to a

	header.parent = a
	a.parent = header
	a.left, a.right = b, c
	b.parent = a
	c.parent = a
	c.left = e
	e.parent = c

	swapNodes(a, e)

	if header.parent != e {
		t.Fatalf("header.parent = %v, want e (new root)", header.parent)
	}
	if e.parent != header {
		t.Errorf("e.parent = %v, want header", e.parent)
	}
	if e.left != b || e.right != c {
		t.Errorf("e.left/right = %v/%v, want b/c", e.left, e.right)
	}
	if b.parent != e || c.parent != e {
		t.Errorf("b.parent/c.parent = %v/%v, want e/e", b.parent, c.parent)
	}
	if c.left != a {
		t.Errorf("c.left = %v, want a", c.left)
	}
	if a.parent != c {
		t.Errorf("a.parent = %v, want c", a.parent)
	}
	if a.left != nil || a.right != nil {
		t.Errorf("a.left/right = %v/%v, want nil/nil", a.left, a.right)
	}
}

// TestSwapNodesUnrelatedNonRootNodesLeavesHeaderAlone swaps two unrelated
// leaves, neither of which is the root, confirming header.parent is
// untouched in the wholesale-swap path when the root isn't involved.
func TestSwapNodesUnrelatedNonRootNodesLeavesHeaderAlone(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	header := newHeader[string]()
	a := &node[string]{value: "A"} // root
	b := &node[string]{value: "B"} // a.left, leaf
	c := &node[string]{value: "C"} // a.right
	e := &node[string]{value: "E"} // c.left, leaf, unrelated to b

	header.parent = a
	a.parent = header
	a.left, a.right = b, c
	b.parent = a
	c.parent = a
	c.left = e
	e.parent = c

	swapNodes(b, e)

	if header.parent != a {
		t.Errorf("header.parent = %v, want unchanged a", header.parent)
	}
	if a.left != e {
		t.Errorf("a.left = %v, want e", a.left)
	}
	if e.parent != a {
		t.Errorf("e.parent = %v, want a", e.parent)
	}
	if c.left != b {
		t.Errorf("c.left = %v, want b", c.left)
	}
	if b.parent != c {
		t.Errorf("b.parent = %v, want c", b.parent)
	}
}
