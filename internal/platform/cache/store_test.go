package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_FlushDropsEntriesAndInFlightLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "match:list", "old")

	release := make(chan struct{})
	loaded := make(chan struct{})
	go func() {
		_, _ = store.GetOrLoad(ctx, "suspension:list", func(context.Context) (any, error) {
			close(loaded)
			<-release
			return "stale", nil
		})
	}()
	<-loaded
	store.Flush(ctx)
	close(release)

	if _, ok := store.Get(ctx, "match:list"); ok {
		t.Fatalf("expected flushed entry to be gone")
	}

	// the load that raced with Flush must not populate the cache
	time.Sleep(10 * time.Millisecond)
	if _, ok := store.Get(ctx, "suspension:list"); ok {
		t.Fatalf("expected stale load to be discarded")
	}
}

func TestStore_DeletePrefixAndExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "player:list:REAL MADRID", 1)
	store.Set(ctx, "player:list:BAYER MUNICH", 2)
	store.Set(ctx, "match:list", 3)

	store.DeletePrefix(ctx, "player:")
	if _, ok := store.Get(ctx, "player:list:REAL MADRID"); ok {
		t.Fatalf("expected prefixed key to be deleted")
	}
	if _, ok := store.Get(ctx, "match:list"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "match:list"); ok {
		t.Fatalf("expected expired key to be evicted")
	}
}

func TestStore_DeletePrefixDiscardsOverlappingLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	release := make(chan struct{})
	loaded := make(chan struct{})
	result := make(chan any)
	go func() {
		value, _ := store.GetOrLoad(ctx, "suspension:list", func(context.Context) (any, error) {
			close(loaded)
			<-release
			return "stale", nil
		})
		result <- value
	}()
	<-loaded

	store.DeletePrefix(ctx, "suspension:")

	// a caller arriving after the invalidation must not join the old load
	fresh, err := store.GetOrLoad(ctx, "suspension:list", func(context.Context) (any, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}
	if fresh != "fresh" {
		t.Fatalf("got %v, want fresh", fresh)
	}

	close(release)
	if got := <-result; got != "stale" {
		t.Fatalf("overlapping caller got %v, want stale", got)
	}

	got, ok := store.Get(ctx, "suspension:list")
	if !ok {
		t.Fatalf("expected the post-invalidation load to be cached")
	}
	if got != "fresh" {
		t.Fatalf("cached %v, want fresh", got)
	}
}

func TestStore_DeletePrefixDiscardsLoadWithoutEntry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	release := make(chan struct{})
	loaded := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = store.GetOrLoad(ctx, "suspension:list", func(context.Context) (any, error) {
			close(loaded)
			<-release
			return "stale", nil
		})
	}()
	<-loaded

	store.DeletePrefix(ctx, "suspension:")
	close(release)
	<-done

	if _, ok := store.Get(ctx, "suspension:list"); ok {
		t.Fatalf("expected load that overlapped DeletePrefix to be discarded")
	}
}
