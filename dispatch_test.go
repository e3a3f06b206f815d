package arborx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRunParallelVisitsEveryIndex(t *testing.T) {
	const n = 997
	var seen [n]int32
	err := runParallel(context.Background(), n, Config{Workers: 8}, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestRunParallelSequentialFallback(t *testing.T) {
	var mu sync.Mutex
	var order []int
	err := runParallel(context.Background(), 5, Config{Workers: 1}, func(i int) error {
		mu.Lock()
		order = append(order, i)
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2, 3, 4}
	if !equalInts(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestRunParallelPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	err := runParallel(context.Background(), 10, Config{Workers: 4}, func(i int) error {
		if i == 3 {
			return wantErr
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestRunParallelRecoversPanic(t *testing.T) {
	err := runParallel(context.Background(), 10, Config{Workers: 4}, func(i int) error {
		if i == 5 {
			panic("kaboom")
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected panic to surface as an error")
	}
}

func TestRunParallelRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran int32
	err := runParallel(ctx, 100, Config{Workers: 1}, func(i int) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if ran != 0 {
		t.Fatalf("ran %d iterations, want 0 for an already-cancelled context", ran)
	}
}

func TestRunParallelZeroN(t *testing.T) {
	err := runParallel(context.Background(), 0, DefaultConfig(), func(i int) error {
		t.Fatal("fn should not be called for n == 0")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTraverseSpatialUnsupportedEncoding(t *testing.T) {
	bvh := &badEncodingBVH{}
	err := TraverseSpatial[testInterval](context.Background(), bvh, spatialSliceT{overlapPredicate{testInterval{0, 1}}},
		func(_ SpatialPredicate[testInterval], _ int) {}, DefaultConfig())
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("got %v, want ErrUnsupportedEncoding", err)
	}
}

type badEncodingBVH struct{}

func (badEncodingBVH) Empty() bool                        { return false }
func (badEncodingBVH) Size() int                           { return 2 }
func (badEncodingBVH) Root() NodeID                        { return 0 }
func (badEncodingBVH) BoundingVolume(NodeID) testInterval { return testInterval{} }
func (badEncodingBVH) Encoding() Encoding                  { return Encoding(99) }
