// Command arborxbench builds a random point cloud into a bounding-volume
// hierarchy and times a batch of spatial and nearest queries against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	arborx "github.com/Mildol5/arborx-go"
	"github.com/Mildol5/arborx-go/geom"
)

func main() {
	points := flag.Int("points", 100000, "number of points in the BVH")
	queries := flag.Int("queries", 1000, "number of queries to run")
	k := flag.Int("k", 10, "neighbors requested per nearest query")
	rope := flag.Bool("rope", false, "use the left-child-plus-rope encoding instead of two-child")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	workers := flag.Int("workers", 0, "goroutine count (0 = runtime.NumCPU())")
	flag.Parse()

	if err := run(*points, *queries, *k, *rope, *seed, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "arborxbench: %v\n", err)
		os.Exit(1)
	}
}

func run(numPoints, numQueries, k int, useRope bool, seed int64, workers int) error {
	rng := rand.New(rand.NewSource(seed))

	pts := make([]geom.Point, numPoints)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000, Z: rng.Float64() * 1000}
	}

	buildStart := time.Now()
	var bvh arborx.BVH[geom.Box]
	if useRope {
		bvh = geom.BuildRope(pts)
	} else {
		bvh = geom.BuildTwoChild(pts)
	}
	fmt.Printf("built %d-point BVH (rope=%v) in %s\n", numPoints, useRope, time.Since(buildStart))

	cfg := arborx.DefaultConfig()
	cfg.Workers = workers
	ctx := context.Background()

	spatialPreds := make([]arborx.SpatialPredicate[geom.Box], numQueries)
	for i := range spatialPreds {
		at := geom.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000, Z: rng.Float64() * 1000}
		spatialPreds[i] = geom.SphereQuery{Center: at, Radius: 25}
	}
	spatialResults := geom.NewSpatialResults(numQueries)
	spatialStart := time.Now()
	err := arborx.TraverseSpatial[geom.Box](ctx, bvh, geom.IndexSpatial(spatialPreds), geom.CollectSpatial[geom.Box](spatialResults), cfg)
	if err != nil {
		return fmt.Errorf("spatial traversal: %w", err)
	}
	fmt.Printf("ran %d spatial queries in %s\n", numQueries, time.Since(spatialStart))

	nearestPreds := make([]arborx.NearestPredicate[geom.Point, geom.Box], numQueries)
	for i := range nearestPreds {
		at := geom.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000, Z: rng.Float64() * 1000}
		nearestPreds[i] = geom.NearestQuery{At: at, Count: k}
	}
	nearestResults := geom.NewNearestResults(numQueries)
	nearestStart := time.Now()
	err = arborx.TraverseNearest[geom.Point, geom.Box](ctx, bvh, geom.IndexNearest(nearestPreds), geom.CollectNearest[geom.Point, geom.Box](nearestResults), geom.PointBoxMetric{}, cfg)
	if err != nil {
		return fmt.Errorf("nearest traversal: %w", err)
	}
	fmt.Printf("ran %d nearest(%d) queries in %s\n", numQueries, k, time.Since(nearestStart))

	var totalSpatialHits, totalNearestHits int
	for i := 0; i < numQueries; i++ {
		totalSpatialHits += len(spatialResults.For(i))
		totalNearestHits += len(nearestResults.For(i))
	}
	fmt.Printf("spatial hits: %d total, %.2f avg/query\n", totalSpatialHits, float64(totalSpatialHits)/float64(numQueries))
	fmt.Printf("nearest hits: %d total, %.2f avg/query\n", totalNearestHits, float64(totalNearestHits)/float64(numQueries))
	return nil
}
