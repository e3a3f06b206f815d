package geom

import (
	"sync"

	arborx "github.com/Mildol5/arborx-go"
)

// SpatialSlice adapts a plain slice into an arborx.SpatialBatch.
type SpatialSlice[B any] []arborx.SpatialPredicate[B]

func (s SpatialSlice[B]) Len() int                             { return len(s) }
func (s SpatialSlice[B]) Get(i int) arborx.SpatialPredicate[B] { return s[i] }

// NearestSlice adapts a plain slice into an arborx.NearestBatch.
type NearestSlice[G any, B any] []arborx.NearestPredicate[G, B]

func (s NearestSlice[G, B]) Len() int                               { return len(s) }
func (s NearestSlice[G, B]) Get(i int) arborx.NearestPredicate[G, B] { return s[i] }

// IndexedSpatialPredicate carries the originating query's position in a
// batch alongside its predicate, since arborx.SpatialCallback receives
// the predicate but not a query index. Overlaps is promoted from the
// embedded predicate.
type IndexedSpatialPredicate[B any] struct {
	arborx.SpatialPredicate[B]
	QueryIndex int
}

// IndexedNearestPredicate is IndexedSpatialPredicate's nearest-query
// counterpart.
type IndexedNearestPredicate[G any, B any] struct {
	arborx.NearestPredicate[G, B]
	QueryIndex int
}

// IndexSpatial wraps each predicate in preds with its position, so a
// callback built on top of the result can recover which query a hit
// belongs to.
func IndexSpatial[B any](preds []arborx.SpatialPredicate[B]) SpatialSlice[B] {
	out := make(SpatialSlice[B], len(preds))
	for i, p := range preds {
		out[i] = IndexedSpatialPredicate[B]{SpatialPredicate: p, QueryIndex: i}
	}
	return out
}

// IndexNearest is IndexSpatial's nearest-query counterpart.
func IndexNearest[G any, B any](preds []arborx.NearestPredicate[G, B]) NearestSlice[G, B] {
	out := make(NearestSlice[G, B], len(preds))
	for i, p := range preds {
		out[i] = IndexedNearestPredicate[G, B]{NearestPredicate: p, QueryIndex: i}
	}
	return out
}

// NearestHit is one ranked result of a nearest query.
type NearestHit struct {
	LeafIndex int
	Distance  float64
}

// SpatialResults collects per-query leaf indices produced by
// CollectSpatial. Safe for concurrent writes from arborx.TraverseSpatial's
// worker goroutines.
type SpatialResults struct {
	mu   sync.Mutex
	hits [][]int
}

// NewSpatialResults preallocates a results collector for queries
// predicates that were wrapped with IndexSpatial.
func NewSpatialResults(queries int) *SpatialResults {
	return &SpatialResults{hits: make([][]int, queries)}
}

// For returns the accumulated leaf indices for query i.
func (r *SpatialResults) For(i int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits[i]
}

// CollectSpatial returns an arborx.SpatialCallback that appends each hit
// into r, keyed by the query index recovered from an
// IndexedSpatialPredicate[B]. predicate must have been produced by
// IndexSpatial; anything else panics.
func CollectSpatial[B any](r *SpatialResults) arborx.SpatialCallback[B] {
	return func(predicate arborx.SpatialPredicate[B], leafIndex int) {
		idx := predicate.(IndexedSpatialPredicate[B]).QueryIndex
		r.mu.Lock()
		r.hits[idx] = append(r.hits[idx], leafIndex)
		r.mu.Unlock()
	}
}

// NearestResults collects per-query ranked hits produced by
// CollectNearest. Safe for concurrent writes from arborx.TraverseNearest's
// worker goroutines.
type NearestResults struct {
	mu   sync.Mutex
	hits [][]NearestHit
}

// NewNearestResults preallocates a results collector for queries
// predicates that were wrapped with IndexNearest.
func NewNearestResults(queries int) *NearestResults {
	return &NearestResults{hits: make([][]NearestHit, queries)}
}

// For returns the accumulated, already-ascending-order hits for query i.
func (r *NearestResults) For(i int) []NearestHit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits[i]
}

// CollectNearest returns an arborx.NearestCallback that appends each hit
// into r, keyed by the query index recovered from an
// IndexedNearestPredicate[G, B]. predicate must have been produced by
// IndexNearest; anything else panics.
func CollectNearest[G any, B any](r *NearestResults) arborx.NearestCallback[G, B] {
	return func(predicate arborx.NearestPredicate[G, B], leafIndex int, distance float64) {
		idx := predicate.(IndexedNearestPredicate[G, B]).QueryIndex
		r.mu.Lock()
		r.hits[idx] = append(r.hits[idx], NearestHit{LeafIndex: leafIndex, Distance: distance})
		r.mu.Unlock()
	}
}
