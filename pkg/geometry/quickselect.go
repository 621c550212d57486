package geometry

import (
	"fmt"
	"math/rand"

	"github.com/lumenpath/pathtracer/pkg/core"
)

// QuickSelect partially orders items by CenterPoint(axis) so that the k-th
// smallest (1-based) sits at index k-1, everything before it is no greater and
// everything after it is no smaller. It returns k-1.
//
// Pivots are drawn uniformly from rng, so the expected cost is linear.
func QuickSelect(items []Hittable, k int, axis core.Axis, rng *rand.Rand) int {
	if k < 1 || k > len(items) {
		panic(fmt.Sprintf("geometry: quickselect k=%d out of range [1, %d]", k, len(items)))
	}
	if !axis.Valid() {
		panic(fmt.Sprintf("geometry: quickselect on invalid axis %d", int(axis)))
	}

	target := k - 1
	lo, hi := 0, len(items)-1
	for lo < hi {
		p := partition(items, lo, hi, lo+rng.Intn(hi-lo+1), axis)
		switch {
		case p == target:
			return target
		case target < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return target
}

// partition is a Lomuto partition of items[lo..hi] around items[pivot].
// It returns the pivot's final index.
func partition(items []Hittable, lo, hi, pivot int, axis core.Axis) int {
	items[pivot], items[hi] = items[hi], items[pivot]
	pivotValue := items[hi].CenterPoint(axis)

	store := lo
	for i := lo; i < hi; i++ {
		if items[i].CenterPoint(axis) < pivotValue {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}
	items[store], items[hi] = items[hi], items[store]
	return store
}
