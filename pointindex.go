package polymerge

import (
	"fmt"

	"github.com/tidwall/rtree"
)

// pointIndex maps vertices to their arena index during boundary
// reconstruction. Integral coordinates hash exactly, floating coordinates go
// through a nearest-neighbour tree and match within tolerance.
type pointIndex[T Coord] struct {
	m  map[Point[T]]int
	tr rtree.RTreeG[int]
}

func newPointIndex[T Coord]() *pointIndex[T] {
	idx := &pointIndex[T]{}
	if isIntegral[T]() {
		idx.m = map[Point[T]]int{}
	}
	return idx
}

// Clear empties the index.
func (idx *pointIndex[T]) Clear() {
	if idx.m != nil {
		clear(idx.m)
	} else {
		idx.tr = rtree.RTreeG[int]{}
	}
}

// nearest returns the stored point nearest to p and its index, or false when
// the index is empty.
func (idx *pointIndex[T]) nearest(p Point[T]) (Point[T], int, bool) {
	var q Point[T]
	var i int
	found := false
	pt := [2]float64{float64(p.X), float64(p.Y)}
	idx.tr.Nearby(rtree.BoxDist[float64, int](pt, pt, nil), func(min, max [2]float64, data int, dist float64) bool {
		q = Point[T]{T(min[0]), T(min[1])}
		i = data
		found = true
		return false
	})
	return q, i, found
}

// Count returns the number of stored vertices equal to p, which is zero or
// one.
func (idx *pointIndex[T]) Count(p Point[T]) int {
	if idx.m != nil {
		if _, ok := idx.m[p]; ok {
			return 1
		}
		return 0
	}
	if q, _, ok := idx.nearest(p); ok && q.Equals(p) {
		return 1
	}
	return 0
}

// Insert stores vertex p with arena index i unless p is already present.
func (idx *pointIndex[T]) Insert(p Point[T], i int) {
	if idx.m != nil {
		if _, ok := idx.m[p]; !ok {
			idx.m[p] = i
		}
		return
	}
	if idx.Count(p) == 0 {
		pt := [2]float64{float64(p.X), float64(p.Y)}
		idx.tr.Insert(pt, pt, i)
	}
}

// At returns the arena index stored for p. It panics when p was never
// inserted, which indicates a broken boundary walk.
func (idx *pointIndex[T]) At(p Point[T]) int {
	if idx.m != nil {
		i, ok := idx.m[p]
		if !ok {
			panic(fmt.Sprintf("point index: no entry for %v", p))
		}
		return i
	}
	q, i, ok := idx.nearest(p)
	if !ok || !q.Equals(p) {
		panic(fmt.Sprintf("point index: no entry for %v", p))
	}
	return i
}
