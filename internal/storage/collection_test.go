package storage

import (
	"sync"
	"testing"

	"github.com/polyrpc/demoapi/pkg/resource"
)

// --- Helpers ---

func newTaskCollection(seed ...resource.Task) *Collection[resource.Task] {
	return NewCollection(
		func(t resource.Task) int { return t.ID },
		func(t *resource.Task, id int) { t.ID = id },
		seed...)
}

func task(id int, title string) resource.Task {
	return resource.Task{ID: id, Title: title, Status: resource.StatusPending, Priority: resource.PriorityMedium}
}

// --- Tests ---

func TestInsert_EmptyCollectionStartsAtOne(t *testing.T) {
	c := newTaskCollection()

	got := c.Insert(resource.Task{Title: "first"})
	if got.ID != 1 {
		t.Errorf("Insert() id = %d, want 1", got.ID)
	}
}

func TestInsert_AssignsMaxPlusOne(t *testing.T) {
	c := newTaskCollection(task(1, "a"), task(5, "b"), task(3, "c"))

	got := c.Insert(resource.Task{Title: "d"})
	if got.ID != 6 {
		t.Errorf("Insert() id = %d, want 6", got.ID)
	}
}

func TestInsert_OverwritesCallerSetID(t *testing.T) {
	c := newTaskCollection(task(1, "a"))

	got := c.Insert(resource.Task{ID: 99, Title: "b"})
	if got.ID != 2 {
		t.Errorf("Insert() id = %d, want 2 (caller-set id must not be honored)", got.ID)
	}
}

func TestInsert_ReusesIDAfterDeletingMax(t *testing.T) {
	c := newTaskCollection(task(1, "a"), task(2, "b"))

	if !c.Delete(2) {
		t.Fatal("Delete(2) = false, want true")
	}
	got := c.Insert(resource.Task{Title: "c"})
	if got.ID != 2 {
		t.Errorf("Insert() after deleting max id = %d, want 2 (id reuse is the documented rule)", got.ID)
	}
}

func TestGet(t *testing.T) {
	c := newTaskCollection(task(1, "a"), task(2, "b"))

	got, ok := c.Get(2)
	if !ok {
		t.Fatal("Get(2) not found")
	}
	if got.Title != "b" {
		t.Errorf("Get(2).Title = %q, want %q", got.Title, "b")
	}

	if _, ok := c.Get(42); ok {
		t.Error("Get(42) found, want not found")
	}
}

func TestUpdate_MutatesInPlace(t *testing.T) {
	c := newTaskCollection(task(1, "a"))

	got, ok := c.Update(1, func(tk *resource.Task) {
		tk.Status = resource.StatusCompleted
	})
	if !ok {
		t.Fatal("Update(1) not found")
	}
	if got.Status != resource.StatusCompleted {
		t.Errorf("returned Status = %q, want completed", got.Status)
	}
	if got.Title != "a" {
		t.Errorf("Title = %q changed by status update, want %q", got.Title, "a")
	}

	stored, _ := c.Get(1)
	if stored.Status != resource.StatusCompleted {
		t.Errorf("stored Status = %q, want completed", stored.Status)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	c := newTaskCollection(task(1, "a"))

	if _, ok := c.Update(9, func(*resource.Task) {}); ok {
		t.Error("Update(9) = ok, want not found")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after failed update, want 1", c.Len())
	}
}

func TestDelete_NotFound(t *testing.T) {
	c := newTaskCollection(task(1, "a"))

	if c.Delete(9) {
		t.Error("Delete(9) = true, want false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after failed delete, want 1", c.Len())
	}
}

func TestList_ReturnsSnapshot(t *testing.T) {
	c := newTaskCollection(task(1, "a"), task(2, "b"))

	snap := c.List()
	snap[0].Title = "mutated"

	stored, _ := c.Get(1)
	if stored.Title != "a" {
		t.Error("mutating a List() snapshot changed the stored record")
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	c := newTaskCollection()
	c.Insert(resource.Task{Title: "first"})
	c.Insert(resource.Task{Title: "second"})
	c.Delete(1)
	c.Insert(resource.Task{Title: "third"})

	got := c.List()
	want := []string{"second", "third"}
	if len(got) != len(want) {
		t.Fatalf("List() len = %d, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("List()[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestReset_RestoresSeed(t *testing.T) {
	c := newTaskCollection(task(1, "a"))
	c.Insert(resource.Task{Title: "b"})
	c.Delete(1)

	c.Reset()

	if c.Len() != 1 {
		t.Fatalf("Len() after Reset = %d, want 1", c.Len())
	}
	if got, _ := c.Get(1); got.Title != "a" {
		t.Errorf("seed record Title = %q, want %q", got.Title, "a")
	}
}

func TestInsert_ConcurrentIDsUnique(t *testing.T) {
	c := newTaskCollection()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert(resource.Task{Title: "t"})
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, tk := range c.List() {
		if seen[tk.ID] {
			t.Fatalf("duplicate id %d assigned under concurrent inserts", tk.ID)
		}
		seen[tk.ID] = true
	}
	if len(seen) != n {
		t.Errorf("unique ids = %d, want %d", len(seen), n)
	}
}

func TestModelCatalog(t *testing.T) {
	cat := NewModelCatalog(SeedModels()...)

	m, ok := cat.Find("gpt-mini")
	if !ok {
		t.Fatal("Find(gpt-mini) not found")
	}
	if !m.Loaded {
		t.Error("gpt-mini.Loaded = false, want true")
	}

	if _, ok := cat.Find("unknown"); ok {
		t.Error("Find(unknown) found, want not found")
	}

	if !cat.SetLoaded("sentiment", true) {
		t.Fatal("SetLoaded(sentiment) = false, want true")
	}
	m, _ = cat.Find("sentiment")
	if !m.Loaded {
		t.Error("sentiment.Loaded = false after SetLoaded(true)")
	}
}
