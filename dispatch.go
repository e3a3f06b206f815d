package arborx

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxStackDepth bounds the per-query node stack at 64 entries, enough
// for any balanced or near-balanced BVH with at most 2^64 leaves.
// Trees deeper than this on the traversal path are a precondition
// violation: the kernels assert by panicking rather than corrupting
// the stack.
const maxStackDepth = 64

// TraverseSpatial evaluates every predicate in predicates against bvh,
// invoking callback once per (query, leaf) pair whose bounding volume
// satisfies the query's predicate. Order of emission is unspecified,
// within a query and between queries. An empty bvh or an empty
// predicate batch is a silent no-op.
func TraverseSpatial[B any](ctx context.Context, bvh BVH[B], predicates SpatialBatch[B], callback SpatialCallback[B], cfg Config) error {
	if bvh == nil || bvh.Empty() || predicates.Len() == 0 {
		return nil
	}
	if bvh.Size() == 1 {
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			spatialOneLeaf(bvh, predicates.Get(i), callback)
			return nil
		})
	}

	switch bvh.Encoding() {
	case TwoChild:
		tc, ok := bvh.(TwoChildBVH[B])
		if !ok {
			return ErrEncodingMismatch
		}
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			spatialTwoChildKernel(tc, predicates.Get(i), callback)
			return nil
		})
	case LeftChildRope:
		rp, ok := bvh.(RopeBVH[B])
		if !ok {
			return ErrEncodingMismatch
		}
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			spatialRopeKernel(rp, predicates.Get(i), callback)
			return nil
		})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, bvh.Encoding())
	}
}

func spatialOneLeaf[B any](bvh BVH[B], predicate SpatialPredicate[B], callback SpatialCallback[B]) {
	if predicate.Overlaps(bvh.BoundingVolume(bvh.Root())) {
		callback(predicate, 0)
	}
}

// TraverseNearest evaluates every predicate in predicates against bvh
// under metric, invoking callback exactly min(K, bvh.Size()) times per
// query in nondecreasing distance order. A predicate with K < 1 yields
// no callbacks. An empty bvh or an empty predicate batch is a silent
// no-op.
func TraverseNearest[G any, B any](ctx context.Context, bvh BVH[B], predicates NearestBatch[G, B], callback NearestCallback[G, B], metric DistanceMetric[G, B], cfg Config) error {
	if bvh == nil || bvh.Empty() || predicates.Len() == 0 {
		return nil
	}
	if bvh.Size() == 1 {
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			nearestOneLeaf(bvh, predicates.Get(i), callback, metric)
			return nil
		})
	}

	offsets, buffer := Provision(predicates)

	switch bvh.Encoding() {
	case TwoChild:
		tc, ok := bvh.(TwoChildBVH[B])
		if !ok {
			return ErrEncodingMismatch
		}
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			nearestTwoChildKernel(tc, predicates.Get(i), callback, metric, Scratch(offsets, buffer, i))
			return nil
		})
	case LeftChildRope:
		rp, ok := bvh.(RopeBVH[B])
		if !ok {
			return ErrEncodingMismatch
		}
		return runParallel(ctx, predicates.Len(), cfg, func(i int) error {
			nearestRopeKernel(rp, predicates.Get(i), callback, metric, Scratch(offsets, buffer, i))
			return nil
		})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, bvh.Encoding())
	}
}

func nearestOneLeaf[G any, B any](bvh BVH[B], predicate NearestPredicate[G, B], callback NearestCallback[G, B], metric DistanceMetric[G, B]) {
	if predicate.K() < 1 {
		return
	}
	root := bvh.Root()
	callback(predicate, 0, metric.Distance(predicate.Geometry(), bvh.BoundingVolume(root)))
}

// runParallel runs fn(i) for i in [0, n) across a bounded set of
// goroutines, splitting the range into contiguous per-worker chunks. A
// panic inside fn is recovered and surfaced as an error instead of
// crashing the process; this is the host-level boundary that
// cancellation and error propagation cross, separate from the kernels
// themselves, which never catch a callback's panics. ctx is only
// checked between queries: there are no mid-query cancellation points.
func runParallel(ctx context.Context, n int, cfg Config, fn func(i int) error) (err error) {
	if n == 0 {
		return nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("arborx: callback panicked: %v", r)
			}
		}()
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("arborx: callback panicked: %v", r)
				}
			}()
			for i := start; i < end; i++ {
				if e := gctx.Err(); e != nil {
					return e
				}
				if e := fn(i); e != nil {
					return e
				}
			}
			return nil
		})
	}
	return g.Wait()
}
