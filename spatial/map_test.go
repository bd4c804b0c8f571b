package spatial

import "testing"

func TestPointMapInsertFindErase(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	m, err := NewPointMap[int, string](2)
	if err != nil {
		t.Fatalf("NewPointMap: %v", err)
	}
	if err := m.Insert(Point[int]{1, 1}, "a"); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert(Point[int]{2, 2}, "b"); err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Find(Point[int]{1, 1}); !ok || v != "a" {
		t.Errorf("Find(1,1) = %q,%v, want a,true", v, ok)
	}
	if err := m.Insert(Point[int]{1, 1}, "c"); err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Find(Point[int]{1, 1}); !ok || v != "c" {
		t.Errorf("Find(1,1) after overwrite = %q,%v, want c,true", v, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if !m.Erase(Point[int]{2, 2}) {
		t.Errorf("Erase(2,2) reported not found")
	}
	if err := m.Check(); err != nil {
		t.Errorf("Check(): %v", err)
	}
}

func TestPointMultimapAllowsDuplicateKeys(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	mm, err := NewPointMultimap[int, int](2)
	if err != nil {
		t.Fatalf("NewPointMultimap: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := mm.Insert(Point[int]{5, 5}, i); err != nil {
			t.Fatal(err)
		}
	}
	if mm.Len() != 3 {
		t.Errorf("Len() = %d, want 3 after inserting 3 entries at the same point", mm.Len())
	}
	count := 0
	for range mm.All() {
		count++
	}
	if count != 3 {
		t.Errorf("All() visited %d entries, want 3", count)
	}
}

func TestPointMapMappingOrder(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	m, err := NewPointMap[int, int](2)
	if err != nil {
		t.Fatalf("NewPointMap: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := m.Insert(Point[int]{9 - i, i}, i); err != nil {
			t.Fatal(err)
		}
	}
	it := m.Mapping(0)
	prev := -1
	for it.ToMinimum(); !it.Done(); it.Increment() {
		x := it.Value().Key[0]
		if x < prev {
			t.Errorf("mapping order not ascending: %d after %d", x, prev)
		}
		prev = x
	}
}
