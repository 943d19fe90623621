package mapmatch

import (
	"math"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/unit"
)

// nearestEdge scans every edge of g and returns the one whose nearer
// endpoint is closest (great-circle distance, in meters) to (x, y).
// This linear scan stands in for the rtree-backed spatial index the
// original matcher delegates to; the pack carries no spatial-indexing
// library, so a brute-force nearest-endpoint search is the grounded
// substitute, matching the simple matcher's documented approximation
// of point-to-edge distance via point-to-point distance.
func nearestEdge(g *roadnet.Graph, x, y float64) (roadnet.EdgeId, float64, error) {
	best := roadnet.EdgeId(-1)
	bestDist := math.Inf(1)

	n := g.EdgeCount()
	for i := 0; i < n; i++ {
		id := roadnet.EdgeId(i)
		e, err := g.Edge(id)
		if err != nil {
			return 0, 0, err
		}
		srcV, err := g.Vertex(e.Src)
		if err != nil {
			return 0, 0, err
		}
		dstV, err := g.Vertex(e.Dst)
		if err != nil {
			return 0, 0, err
		}
		d := math.Min(
			unit.HaversineMeters(x, y, float64(srcV.X), float64(srcV.Y)),
			unit.HaversineMeters(x, y, float64(dstV.X), float64(dstV.Y)),
		)
		if d < bestDist {
			bestDist = d
			best = id
		}
	}

	if best < 0 {
		return 0, 0, ErrEmptyGraph
	}
	return best, bestDist, nil
}
