package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/eleven-am/stepgraph/internal/domain"
)

func TestNewMemoryCanvasStore_NilLogger(t *testing.T) {
	store := NewMemoryCanvasStore(nil)

	if store.logger == nil {
		t.Fatal("expected default logger to be set")
	}
	if store.canvases == nil {
		t.Fatal("expected canvases map to be initialized")
	}
}

func TestMemoryCanvasStore_GrowNeverShrinks(t *testing.T) {
	store := NewMemoryCanvasStore(nil)
	ctx := context.Background()

	if _, err := store.Grow(ctx, "s1", domain.Canvas{Width: 1000, Height: 700}); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	grown, err := store.Grow(ctx, "s1", domain.Canvas{Width: 500, Height: 900})
	if err != nil {
		t.Fatalf("grow failed: %v", err)
	}

	expected := domain.Canvas{Width: 1000, Height: 900}
	if grown != expected {
		t.Errorf("expected %+v, got %+v", expected, grown)
	}

	loaded, exists, err := store.Load(ctx, "s1")
	if err != nil || !exists {
		t.Fatalf("expected stored canvas, exists=%v err=%v", exists, err)
	}
	if loaded != expected {
		t.Errorf("expected %+v, got %+v", expected, loaded)
	}
}

func TestMemoryCanvasStore_ConcurrentGrow(t *testing.T) {
	store := NewMemoryCanvasStore(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Grow(ctx, "shared", domain.Canvas{Width: float64(i), Height: float64(51 - i)})
		}(i)
	}
	wg.Wait()

	loaded, _, _ := store.Load(ctx, "shared")
	if loaded.Width != 50 || loaded.Height != 50 {
		t.Errorf("expected 50x50, got %+v", loaded)
	}
}

func TestMemoryCanvasStore_DeleteAndClose(t *testing.T) {
	store := NewMemoryCanvasStore(nil)
	ctx := context.Background()

	_, _ = store.Grow(ctx, "s1", domain.Canvas{Width: 10, Height: 10})
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, exists, _ := store.Load(ctx, "s1"); exists {
		t.Fatal("canvas should be deleted")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, _, err := store.Load(ctx, "s1"); !domain.IsClosed(err) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := store.Grow(ctx, "s1", domain.Canvas{}); !domain.IsClosed(err) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
