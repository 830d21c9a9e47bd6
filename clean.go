package polymerge

import (
	"cmp"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// trimClosing removes the redundant closing vertex from a simplified ring.
// A last vertex farther than dist from the first is a dangling simplification
// artifact and is popped; an exact closing duplicate is popped as well.
func trimClosing(ring orb.Ring, dist float64) orb.Ring {
	if len(ring) < 2 {
		return ring
	}
	dx := ring[0][0] - ring[len(ring)-1][0]
	dy := ring[0][1] - ring[len(ring)-1][1]
	if dx*dx+dy*dy > dist*dist {
		return ring[:len(ring)-1]
	}
	if ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// cleanPolygon simplifies the ring with the Douglas-Peucker algorithm,
// repeating until the vertex count stabilizes, then trims the closing vertex.
// Rings that would collapse below three vertices are returned unchanged.
func cleanPolygon[T Coord](ring Polygon[T], dist float64) Polygon[T] {
	if len(ring) < 3 {
		return ring
	}
	out := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, orb.Point{float64(p.X), float64(p.Y)})
	}
	out = append(out, out[0])

	s := simplify.DouglasPeucker(dist)
	for {
		in := out
		out = s.Ring(in)
		if len(out) == len(in) {
			break
		}
	}
	out = trimClosing(out, dist)
	if len(out) < 3 {
		return ring
	}

	cleaned := make(Polygon[T], 0, len(out))
	for _, p := range out {
		cleaned = append(cleaned, Point[T]{T(p[0]), T(p[1])})
	}
	return cleaned
}

// cleanPolygons simplifies the solid and all holes of each polygon.
func cleanPolygons[P cmp.Ordered, T Coord](polygons []*PolygonData[P, T], dist float64) {
	for _, pd := range polygons {
		pd.Solid = cleanPolygon(pd.Solid, dist)
		for i, hole := range pd.Holes {
			pd.Holes[i] = cleanPolygon(hole, dist)
		}
	}
}
