package spatial

import (
	"testing"

	"github.com/aninggo/spatial/kdtree"
)

func TestBoxMapInsertFindErase(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	m, err := NewBoxMap[int, string](2)
	if err != nil {
		t.Fatalf("NewBoxMap: %v", err)
	}
	b := Box[int]{Low: Point[int]{0, 0}, High: Point[int]{4, 4}}
	if err := m.Insert(b, "region-a"); err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Find(b); !ok || v != "region-a" {
		t.Errorf("Find = %q,%v, want region-a,true", v, ok)
	}
	if !m.Erase(b) {
		t.Errorf("Erase reported not found")
	}
	if err := m.Check(); err != nil {
		t.Errorf("Check(): %v", err)
	}
}

func TestBoxMultimapAllowsDuplicateBoxes(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	mm, err := NewRelaxedBoxMultimap[int, int](2, kdtree.DefaultBalance)
	if err != nil {
		t.Fatalf("NewRelaxedBoxMultimap: %v", err)
	}
	b := Box[int]{Low: Point[int]{0, 0}, High: Point[int]{1, 1}}
	for i := 0; i < 4; i++ {
		if err := mm.Insert(b, i); err != nil {
			t.Fatal(err)
		}
	}
	if mm.Len() != 4 {
		t.Errorf("Len() = %d, want 4", mm.Len())
	}
	if err := mm.Check(); err != nil {
		t.Errorf("Check(): %v", err)
	}
}
