package storage

import (
	"testing"
	"time"
)

type thing struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func thingID(t thing) string { return t.ID }

func TestCollectionRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	created := time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)
	first := NewCollection(store, "things", thingID, nil)
	first.Upsert(thing{ID: "a", Name: "one", CreatedAt: created})
	first.Upsert(thing{ID: "b", Name: "two", CreatedAt: created.Add(time.Hour)})

	// A second collection over the same store must see the persisted state.
	second := NewCollection(store, "things", thingID, nil)
	if second.Len() != 2 {
		t.Fatalf("got %d items after reload, want 2", second.Len())
	}
	got, ok := second.Get("a")
	if !ok {
		t.Fatal("item a missing after reload")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("date changed across persistence: got %v, want %v", got.CreatedAt, created)
	}
}

func TestCollectionUpsertKeepsOrder(t *testing.T) {
	col := NewCollection(NewMemoryStore(), "things", thingID, nil)
	col.Upsert(thing{ID: "a", Name: "one"})
	col.Upsert(thing{ID: "b", Name: "two"})
	col.Upsert(thing{ID: "a", Name: "one-updated"})

	items := col.All()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "a" || items[0].Name != "one-updated" {
		t.Fatalf("in-place replace broken: %+v", items[0])
	}
	if items[1].ID != "b" {
		t.Fatal("order not preserved")
	}
}

func TestCollectionDelete(t *testing.T) {
	col := NewCollection(NewMemoryStore(), "things", thingID, nil)
	col.Upsert(thing{ID: "a"})

	if !col.Delete("a") {
		t.Fatal("delete of existing item returned false")
	}
	if col.Delete("a") {
		t.Fatal("second delete returned true")
	}
	if col.Len() != 0 {
		t.Fatalf("got %d items, want 0", col.Len())
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	col := NewCollection(NewMemoryStore(), "things", thingID, nil)
	col.Upsert(thing{ID: "a", Name: "one"})

	snapshot := col.All()
	col.Upsert(thing{ID: "a", Name: "changed"})

	if snapshot[0].Name != "one" {
		t.Fatal("snapshot mutated by later write")
	}
}

func TestCollectionSeedUsedWhenEmpty(t *testing.T) {
	store := NewMemoryStore()
	seed := []thing{{ID: "s1"}, {ID: "s2"}}

	col := NewCollection(store, "things", thingID, seed)
	if col.Len() != 2 {
		t.Fatalf("got %d items, want seeded 2", col.Len())
	}

	// With data persisted, the seed no longer applies.
	col.Upsert(thing{ID: "s3"})
	again := NewCollection(store, "things", thingID, []thing{{ID: "other"}})
	if again.Len() != 3 {
		t.Fatalf("got %d items, want 3 from store", again.Len())
	}
}

func TestLoadJSONCorruptPayloadFallsBack(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("things", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	got := LoadJSON(store, "things", []thing{{ID: "default"}})
	if len(got) != 1 || got[0].ID != "default" {
		t.Fatalf("corrupt payload should yield the default, got %+v", got)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	payload := []byte(`[{"id":"a"}]`)
	if err := store.Save("things", payload); err != nil {
		t.Fatal(err)
	}
	payload[1] = 'X'

	raw, ok, err := store.Load("things")
	if err != nil || !ok {
		t.Fatalf("load failed: %v", err)
	}
	if string(raw) != `[{"id":"a"}]` {
		t.Fatalf("stored value aliased caller buffer: %s", raw)
	}
}
