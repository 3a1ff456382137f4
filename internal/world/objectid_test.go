package world

import (
	"sync"
	"testing"

	"github.com/udisondev/skirmish/internal/model"
)

func TestIDGenerator_Monotonic(t *testing.T) {
	g := NewIDGenerator()

	if got := g.Peek(); got != FirstID {
		t.Fatalf("Peek() = %d, want %d", got, FirstID)
	}

	prev := model.NoID
	for range 100 {
		id := g.Next()
		if id <= prev {
			t.Fatalf("Next() = %d, not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestIDGenerator_From(t *testing.T) {
	g := NewIDGeneratorFrom(42)
	if got := g.Next(); got != 42 {
		t.Errorf("Next() = %d, want 42", got)
	}

	// Zero start never yields NoID.
	g = NewIDGeneratorFrom(model.NoID)
	if got := g.Next(); got != FirstID {
		t.Errorf("Next() = %d, want %d", got, FirstID)
	}
}

func TestIDGenerator_ConcurrentUnique(t *testing.T) {
	g := NewIDGenerator()

	const workers, perWorker = 8, 1000
	results := make([][]model.ID, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]model.ID, perWorker)
			for i := range ids {
				ids[i] = g.Next()
			}
			results[w] = ids
		}()
	}
	wg.Wait()

	seen := make(map[model.ID]struct{}, workers*perWorker)
	for _, ids := range results {
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				t.Fatalf("duplicate id %d", id)
			}
			seen[id] = struct{}{}
		}
	}
}
