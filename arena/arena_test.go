package arena_test

import (
	"sort"
	"testing"

	"github.com/lvlath-labs/dfaident/arena"
)

func TestNewHasRootZero(t *testing.T) {
	a := arena.New[string]()
	if root := a.Root(); root != 0 {
		t.Fatalf("Root() = %d; want 0", root)
	}
	if !a.Has(0) {
		t.Fatalf("Has(0) = false; want true")
	}
	if n := a.Len(); n != 1 {
		t.Fatalf("Len() = %d; want 1", n)
	}
}

func TestAddArcAndFollow(t *testing.T) {
	a := arena.New[string]()
	child := a.NewNode()
	if err := a.AddArc(a.Root(), "x", child); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	got, ok := a.Follow(a.Root(), "x")
	if !ok || got != child {
		t.Fatalf("Follow(root,x) = (%d,%v); want (%d,true)", got, ok, child)
	}
	if _, ok := a.Follow(a.Root(), "y"); ok {
		t.Fatalf("Follow(root,y) should miss")
	}
}

func TestAddArcReplacesExisting(t *testing.T) {
	a := arena.New[string]()
	c1 := a.NewNode()
	c2 := a.NewNode()
	if err := a.AddArc(a.Root(), "x", c1); err != nil {
		t.Fatal(err)
	}
	if err := a.AddArc(a.Root(), "x", c2); err != nil {
		t.Fatal(err)
	}
	got, _ := a.Follow(a.Root(), "x")
	if got != c2 {
		t.Fatalf("Follow(root,x) = %d; want %d (replaced)", got, c2)
	}
}

func TestRemoveArc(t *testing.T) {
	a := arena.New[string]()
	c := a.NewNode()
	_ = a.AddArc(a.Root(), "x", c)
	if err := a.RemoveArc(a.Root(), "x"); err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Follow(a.Root(), "x"); ok {
		t.Fatalf("arc should be gone")
	}
	// Removing a nonexistent arc is a no-op, not an error.
	if err := a.RemoveArc(a.Root(), "x"); err != nil {
		t.Fatalf("RemoveArc on missing arc: %v", err)
	}
}

func TestAddArcUnknownNodes(t *testing.T) {
	a := arena.New[string]()
	if err := a.AddArc(999, "x", a.Root()); err == nil {
		t.Fatalf("expected ErrNodeNotFound for unknown parent")
	}
	if err := a.AddArc(a.Root(), "x", 999); err == nil {
		t.Fatalf("expected ErrNodeNotFound for unknown child")
	}
}

func TestFollowPath(t *testing.T) {
	a := arena.New[string]()
	n1 := a.NewNode()
	n2 := a.NewNode()
	_ = a.AddArc(a.Root(), "c", n1)
	_ = a.AddArc(n1, "i", n2)

	got, ok := a.FollowPath(a.Root(), []string{"c", "i"})
	if !ok || got != n2 {
		t.Fatalf("FollowPath = (%d,%v); want (%d,true)", got, ok, n2)
	}
	if _, ok := a.FollowPath(a.Root(), []string{"c", "x"}); ok {
		t.Fatalf("FollowPath over missing arc should miss")
	}
}

func TestWalkVisitsEachNodeOnce(t *testing.T) {
	a := arena.New[string]()
	n1 := a.NewNode()
	n2 := a.NewNode()
	n3 := a.NewNode()
	_ = a.AddArc(a.Root(), "a", n1)
	_ = a.AddArc(a.Root(), "b", n2)
	_ = a.AddArc(n1, "c", n3)

	seen := a.Reachable(a.Root())
	sort.Ints(seen)
	want := []int{0, n1, n2, n3}
	sort.Ints(want)
	if len(seen) != len(want) {
		t.Fatalf("Reachable = %v; want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Reachable = %v; want %v", seen, want)
		}
	}
}

func TestIdsMonotonicFromZero(t *testing.T) {
	a := arena.New[string]()
	prev := a.Root()
	for i := 0; i < 5; i++ {
		n := a.NewNode()
		if n <= prev {
			t.Fatalf("ids must increase: got %d after %d", n, prev)
		}
		prev = n
	}
}
