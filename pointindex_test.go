package polymerge

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointIndexIntegral(t *testing.T) {
	idx := newPointIndex[int64]()
	test.T(t, idx.Count(Point[int64]{1, 2}), 0)

	idx.Insert(Point[int64]{1, 2}, 0)
	idx.Insert(Point[int64]{3, 4}, 1)
	test.T(t, idx.Count(Point[int64]{1, 2}), 1)
	test.T(t, idx.Count(Point[int64]{3, 4}), 1)
	test.T(t, idx.Count(Point[int64]{5, 6}), 0)
	test.T(t, idx.At(Point[int64]{1, 2}), 0)
	test.T(t, idx.At(Point[int64]{3, 4}), 1)

	// the first index for a vertex wins
	idx.Insert(Point[int64]{1, 2}, 7)
	test.T(t, idx.At(Point[int64]{1, 2}), 0)

	idx.Clear()
	test.T(t, idx.Count(Point[int64]{1, 2}), 0)
}

func TestPointIndexFloat(t *testing.T) {
	idx := newPointIndex[float64]()
	test.T(t, idx.Count(Point[float64]{1.5, 2.5}), 0)

	idx.Insert(Point[float64]{1.5, 2.5}, 0)
	idx.Insert(Point[float64]{10.0, 20.0}, 1)
	test.T(t, idx.Count(Point[float64]{1.5, 2.5}), 1)
	test.T(t, idx.Count(Point[float64]{math.Nextafter(1.5, 2.0), 2.5}), 1)
	test.T(t, idx.Count(Point[float64]{5.0, 5.0}), 0)
	test.T(t, idx.At(Point[float64]{1.5, 2.5}), 0)
	test.T(t, idx.At(Point[float64]{10.0, 20.0}), 1)

	idx.Insert(Point[float64]{1.5, 2.5}, 7)
	test.T(t, idx.At(Point[float64]{1.5, 2.5}), 0)

	idx.Clear()
	test.T(t, idx.Count(Point[float64]{1.5, 2.5}), 0)
}
