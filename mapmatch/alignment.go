package mapmatch

import "math"

// warpDistance computes the dynamic-time-warping distance between two
// 1-D profiles: the minimal cumulative absolute difference after
// stretching either profile's index axis to line up with the other's.
// It is the alignment primitive DTWMatcher uses to compare a trace's
// cumulative observed distance against a matched path's cumulative
// edge length; both profiles must be non-empty.
//
// Grounded on the teacher's dtw.DTW recurrence (match/insert/delete
// over a DP grid), simplified to distance-only (no warp path, no
// Sakoe-Chiba band, no slope penalty) since alignment scoring is the
// only consumer here.
func warpDistance(observed, candidate []float64) (float64, error) {
	if len(observed) == 0 || len(candidate) == 0 {
		return 0, ErrEmptyAlignmentInput
	}

	width := len(candidate)
	prevRow := make([]float64, width+1)
	currRow := make([]float64, width+1)
	for j := 1; j <= width; j++ {
		prevRow[j] = math.Inf(1)
	}

	for i := 1; i <= len(observed); i++ {
		currRow[0] = math.Inf(1)
		for j := 1; j <= width; j++ {
			step := math.Abs(observed[i-1] - candidate[j-1])
			currRow[j] = step + leastOf(prevRow[j-1], prevRow[j], currRow[j-1])
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[width], nil
}

func leastOf(a, b, c float64) float64 {
	least := a
	if b < least {
		least = b
	}
	if c < least {
		least = c
	}
	return least
}
