package polymerge

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestIsIntegral(t *testing.T) {
	test.That(t, isIntegral[int]())
	test.That(t, isIntegral[int32]())
	test.That(t, isIntegral[int64]())
	test.That(t, !isIntegral[float32]())
	test.That(t, !isIntegral[float64]())
}

func TestIsFloat32(t *testing.T) {
	test.That(t, isFloat32[float32]())
	test.That(t, !isFloat32[float64]())
	test.That(t, !isFloat32[int64]())
}

func TestCompareIntegral(t *testing.T) {
	test.That(t, equal[int64](5, 5))
	test.That(t, notEqual[int64](5, 6))
	test.That(t, less[int64](5, 6))
	test.That(t, !less[int64](5, 5))
	test.That(t, lessEqual[int64](5, 5))
	test.That(t, greater[int64](6, 5))
	test.That(t, greaterEqual[int64](5, 5))
}

func TestCompareFloat(t *testing.T) {
	next := math.Nextafter(1.0, 2.0)
	test.That(t, equal(1.0, next))
	test.That(t, notEqual(1.0, 1.0+1e-12))
	test.That(t, less(1.0, 1.1))
	test.That(t, less(1.0, 1.0+1e-12))
	test.That(t, !less(1.0, next))
	test.That(t, lessEqual(next, 1.0))
	test.That(t, greater(1.1, 1.0))
	test.That(t, greaterEqual(1.0, next))
}

func TestCompareFloat32(t *testing.T) {
	next := math.Nextafter32(1.0, 2.0)
	test.That(t, equal[float32](1.0, next))
	test.That(t, notEqual[float32](1.0, 1.001))
}

func TestSafeInv(t *testing.T) {
	test.Float(t, SafeInv(2.0, 100.0), 0.5)
	test.Float(t, SafeInv(0.0, 100.0), 100.0)
}

func TestSigns(t *testing.T) {
	test.That(t, isPositive(1e-6))
	test.That(t, !isPositive(0.0))
	test.That(t, !isPositive(-1e-6))
	test.That(t, isNegative(-1e-6))
	test.That(t, !isNegative(0.0))
	test.That(t, !isNegative(1e-6))
}
