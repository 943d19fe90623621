package search

import (
	"math"

	"github.com/routeforge/corridor/roadnet"
)

// AcceptFunc decides whether candidate is sufficiently dissimilar from
// the already-accepted set to admit into a KSP result, per spec.md
// §4.10: "accepted iff its maximum similarity to already-accepted routes
// is below the threshold".
type AcceptFunc func(candidate Route, accepted []Route) bool

// AcceptAll admits every candidate regardless of overlap with previously
// accepted routes.
func AcceptAll(_ Route, _ []Route) bool { return true }

// EdgeIdCosineSimilarity returns an AcceptFunc that rejects candidate
// routes whose cosine similarity (over the 0/1 common-edge indicator
// between edge-id sets) to any already-accepted route reaches or exceeds
// threshold.
func EdgeIdCosineSimilarity(threshold float64) AcceptFunc {
	return func(candidate Route, accepted []Route) bool {
		return maxSimilarity(candidate, accepted, edgeIndicatorCosine) < threshold
	}
}

// DistanceWeightedCosineSimilarity is like EdgeIdCosineSimilarity but
// weights each shared edge's contribution by the traversal cost it
// carried (a proxy for physical length), so overlap on a long dominant
// edge counts for more than overlap on a short one.
func DistanceWeightedCosineSimilarity(threshold float64) AcceptFunc {
	return func(candidate Route, accepted []Route) bool {
		return maxSimilarity(candidate, accepted, distanceWeightedCosine) < threshold
	}
}

func maxSimilarity(candidate Route, accepted []Route, sim func(a, b Route) float64) float64 {
	max := 0.0
	for _, r := range accepted {
		if s := sim(candidate, r); s > max {
			max = s
		}
	}
	return max
}

func edgeIndicatorCosine(a, b Route) float64 {
	return cosine(edgeSet(a), edgeSet(b), func(roadnet.EdgeId) float64 { return 1 })
}

func distanceWeightedCosine(a, b Route) float64 {
	weightA := edgeWeights(a)
	weightB := edgeWeights(b)
	setA := indicatorFrom(weightA)
	setB := indicatorFrom(weightB)
	return cosine(setA, setB, func(id roadnet.EdgeId) float64 {
		if w, ok := weightA[id]; ok {
			return w
		}
		return weightB[id]
	})
}

func indicatorFrom(weights map[roadnet.EdgeId]float64) map[roadnet.EdgeId]float64 {
	s := make(map[roadnet.EdgeId]float64, len(weights))
	for id := range weights {
		s[id] = 1
	}
	return s
}

func edgeSet(r Route) map[roadnet.EdgeId]float64 {
	s := make(map[roadnet.EdgeId]float64, len(r.Edges))
	for _, et := range r.Edges {
		s[et.EdgeId] = 1
	}
	return s
}

func edgeWeights(r Route) map[roadnet.EdgeId]float64 {
	w := make(map[roadnet.EdgeId]float64, len(r.Edges))
	for _, et := range r.Edges {
		w[et.EdgeId] = et.TotalCost().Float64()
	}
	return w
}

// cosine computes cosine similarity between two edge-id indicator maps,
// where weight(id) supplies the magnitude contributed by a shared edge.
func cosine(a, b map[roadnet.EdgeId]float64, weight func(roadnet.EdgeId) float64) float64 {
	var dot, normA, normB float64
	for id := range a {
		w := weight(id)
		normA += w * w
		if _, ok := b[id]; ok {
			dot += w * weight(id)
		}
	}
	for id := range b {
		w := weight(id)
		normB += w * w
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}
