package vmath

// DefaultSegmentMinMs is the per-segment floor used when callers pass no minimum
const DefaultSegmentMinMs = 60.0

// SegmentDurations splits totalMs across the path start -> points[0] -> ... -> points[n-1]
// Each segment gets minMs plus a share of the remainder proportional to its length,
// producing constant apparent speed. A zero-length path divides the remainder equally.
// minMs <= 0 selects DefaultSegmentMinMs.
func SegmentDurations(start Point, points []Point, totalMs, minMs float64) []float64 {
	if len(points) == 0 {
		return nil
	}
	if minMs <= 0 {
		minMs = DefaultSegmentMinMs
	}

	dists := make([]float64, len(points))
	sum := 0.0
	prev := start
	for i, p := range points {
		d := Distance(prev, p)
		dists[i] = d
		sum += d
		prev = p
	}

	n := float64(len(points))
	remaining := totalMs - minMs*n
	if remaining < 0 {
		remaining = 0
	}

	out := make([]float64, len(points))
	for i, d := range dists {
		if sum <= 0 {
			out[i] = minMs + remaining/n
			continue
		}
		out[i] = minMs + remaining*d/sum
	}
	return out
}

// PathLength returns the summed segment length of start -> points
func PathLength(start Point, points []Point) float64 {
	total := 0.0
	prev := start
	for _, p := range points {
		total += Distance(prev, p)
		prev = p
	}
	return total
}
