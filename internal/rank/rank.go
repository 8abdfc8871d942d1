// Package rank provides in-memory ordering helpers for feed items.
// All helpers copy their input; callers keep the fetch order intact.
package rank

import "sort"

// Top returns up to n items ordered by descending key. Ties keep
// their input order. n <= 0 returns the whole ordered slice.
func Top[T any](items []T, n int, key func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return truncate(out, n)
}

// TopAscending returns up to n items ordered by ascending key, for
// metrics where lower is better (e.g. AltRank). Ties keep their
// input order. n <= 0 returns the whole ordered slice.
func TopAscending[T any](items []T, n int, key func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return truncate(out, n)
}

// Exclude returns the items for which drop reports false, preserving
// order. The input slice is not modified.
func Exclude[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if drop(it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func truncate[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
