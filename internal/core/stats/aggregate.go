// Package stats computes the derived counts, sums and percentages behind
// dashboard cards and list headers. Everything here is a pure function.
package stats

// CountBy groups a collection by key and counts each group. The counts always
// sum to len(items).
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}

// SumBy groups a collection by key and sums value per group.
func SumBy[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	out := make(map[string]float64)
	for _, item := range items {
		out[key(item)] += value(item)
	}
	return out
}

// PercentBy returns each group's share of the total as a percentage. An empty
// collection yields 0 for every group rather than NaN.
func PercentBy[T any](items []T, key func(T) string) map[string]float64 {
	counts := CountBy(items, key)
	out := make(map[string]float64, len(counts))
	total := len(items)
	for k, n := range counts {
		if total == 0 {
			out[k] = 0
			continue
		}
		out[k] = float64(n) / float64(total) * 100
	}
	return out
}
