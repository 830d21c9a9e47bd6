package polymerge

import "cmp"

// polygonFromBoundary rebuilds a solid with holes from a connected boundary
// polyline in which holes hang off the outline through self-contact bridges.
// Every revisited vertex pinches off a candidate ring. A candidate becomes a
// hole when its bounding box is wider and taller than one unit for integral
// coordinates, or has a positive area for floating coordinates; other
// candidates, such as the slivers from the bridges, are discarded. The
// remaining vertices form the solid outline.
func polygonFromBoundary[P cmp.Ordered, T Coord](in Polyline[T], prop P) *PolygonData[P, T] {
	if 1 < len(in) && in[0].Equals(in[len(in)-1]) {
		in = in[:len(in)-1]
	}
	pd := &PolygonData[P, T]{Property: prop}

	size := len(in)
	type ptNode struct {
		prev, next int
	}
	nodes := make([]ptNode, size)
	for i := range nodes {
		nodes[i].prev = (i + size - 1) % size
		nodes[i].next = (i + 1) % size
	}

	ptMap := newPointIndex[T]()
	for i := 0; i < size; i++ {
		if 0 < ptMap.Count(in[i]) {
			prev := ptMap.At(in[i])
			curr := i
			next := nodes[curr].next

			nodes[curr].next = prev
			var polygon Polygon[T]
			start := prev
			index := start
			for start != nodes[index].next {
				polygon = append(polygon, in[index])
				index = nodes[index].next
			}
			bbox := polygon.BBox()
			if isIntegral[T]() {
				if bbox.Length() > 1 && bbox.Width() > 1 {
					pd.Holes = append(pd.Holes, polygon)
				}
			} else if greater(T(bbox.Area()), 0) {
				pd.Holes = append(pd.Holes, polygon)
			}

			prev = nodes[prev].prev
			nodes[prev].next = curr
			nodes[curr].prev = prev
			nodes[curr].next = next
		}
		ptMap.Insert(in[i], i)
	}

	var solid Polygon[T]
	start := size - 1
	index := start
	for start != nodes[index].next {
		solid = append(solid, in[index])
		index = nodes[index].next
	}
	solid = append(solid, in[index])
	pd.Solid = solid

	return pd
}
