package polymerge

import (
	"cmp"
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
)

// clipScale maps floating coordinates onto the integer clipping grid.
// Integral coordinates pass through unscaled.
const clipScale = 1e7

func toClipCoord[T Coord](v T) clipper.CInt {
	if isIntegral[T]() {
		return clipper.CInt(v)
	}
	return clipper.CInt(math.Round(float64(v) * clipScale))
}

func fromClipCoord[T Coord](v clipper.CInt) T {
	if isIntegral[T]() {
		return T(v)
	}
	return T(float64(v) / clipScale)
}

func toClipPath[T Coord](ring Polygon[T]) clipper.Path {
	path := make(clipper.Path, 0, len(ring))
	for _, p := range ring {
		path = append(path, &clipper.IntPoint{X: toClipCoord(p.X), Y: toClipCoord(p.Y)})
	}
	return path
}

func fromClipPath[T Coord](path clipper.Path) Polygon[T] {
	ring := make(Polygon[T], 0, len(path))
	for _, p := range path {
		ring = append(ring, Point[T]{fromClipCoord[T](p.X), fromClipCoord[T](p.Y)})
	}
	return ring
}

func clipOp(op clipper.ClipType, subj, clip clipper.Paths) clipper.Paths {
	if len(subj) == 0 {
		return nil
	} else if len(clip) == 0 {
		if op == clipper.CtIntersection {
			return nil
		}
		return subj
	}
	c := clipper.NewClipper(clipper.IoPreserveCollinear)
	c.AddPaths(subj, clipper.PtSubject, true)
	c.AddPaths(clip, clipper.PtClip, true)
	out, ok := c.Execute1(op, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		panic("polymerge: polygon clipping failed")
	}
	return out
}

func clipUnion(paths clipper.Paths) clipper.Paths {
	if len(paths) <= 1 {
		return paths
	}
	c := clipper.NewClipper(clipper.IoPreserveCollinear)
	c.AddPaths(paths, clipper.PtSubject, true)
	out, ok := c.Execute1(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		panic("polymerge: polygon union failed")
	}
	return out
}

// polygonSet is a merged region kept in the integer clipping space.
type polygonSet[T Coord] struct {
	paths clipper.Paths
}

func (s *polygonSet[T]) Empty() bool {
	return len(s.paths) == 0
}

// add joins the paths of o into the set. Boundaries unions them on emission.
func (s *polygonSet[T]) add(o *polygonSet[T]) {
	s.paths = append(s.paths, o.paths...)
}

// Boundaries emits each connected region of the set as a single closed
// polyline in which holes hang off the outline through self-contact bridges.
// polygonFromBoundary reverses the encoding.
func (s *polygonSet[T]) Boundaries() []Polyline[T] {
	if len(s.paths) == 0 {
		return nil
	}
	c := clipper.NewClipper(clipper.IoPreserveCollinear)
	c.AddPaths(s.paths, clipper.PtSubject, true)
	tree, ok := c.Execute2(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		panic("polymerge: polygon union failed")
	}
	var outs []Polyline[T]
	var walk func(nodes []*clipper.PolyNode)
	walk = func(nodes []*clipper.PolyNode) {
		for _, n := range nodes {
			outer := fromClipPath[T](n.Contour())
			var holes []Polygon[T]
			var inner []*clipper.PolyNode
			for _, h := range n.Childs() {
				holes = append(holes, fromClipPath[T](h.Contour()))
				inner = append(inner, h.Childs()...)
			}
			outs = append(outs, keyholeBoundary(outer, holes))
			walk(inner)
		}
	}
	walk(tree.Childs())
	return outs
}

// keyholeBoundary connects outer and holes into one closed polyline. The
// outline runs counter clockwise, each hole is entered clockwise over an
// axis-aligned bridge so that the bridge slivers pinch off with empty
// bounding boxes on reconstruction.
func keyholeBoundary[T Coord](outer Polygon[T], holes []Polygon[T]) Polyline[T] {
	if !outer.IsCCW() {
		outer.Reverse()
	}
	counts := map[Point[T]]int{}
	for _, p := range outer {
		counts[p]++
	}
	for _, hole := range holes {
		if hole.IsCCW() {
			hole.Reverse()
		}
		for _, p := range hole {
			counts[p]++
		}
	}

	boundary := Polyline[T](slices.Clone(outer))
	for _, hole := range holes {
		boundary = spliceHole(boundary, hole, counts)
	}
	boundary = append(boundary, boundary[0])
	return boundary
}

// spliceHole inserts hole into boundary at the closest vertex pair, bridged
// through the corner point that keeps both bridge segments axis-aligned.
func spliceHole[T Coord](boundary Polyline[T], hole Polygon[T], counts map[Point[T]]int) Polyline[T] {
	bestI, bestJ := -1, -1
	okI, okJ := -1, -1
	bestD, okD := math.Inf(1), math.Inf(1)
	for i, b := range boundary {
		for j, h := range hole {
			d := b.DistanceSq(h)
			if d < bestD {
				bestI, bestJ, bestD = i, j, d
			}
			if d < okD && counts[b] == 1 && counts[h] == 1 {
				c := Point[T]{b.X, h.Y}
				if c.Equals(b) || c.Equals(h) || counts[c] == 0 {
					okI, okJ, okD = i, j, d
				}
			}
		}
	}
	if okI >= 0 {
		bestI, bestJ = okI, okJ
	}

	b, h := boundary[bestI], hole[bestJ]
	c := Point[T]{b.X, h.Y}
	rotated := append(slices.Clone(hole[bestJ:]), hole[:bestJ]...)

	var insert Polyline[T]
	if c.Equals(b) || c.Equals(h) {
		insert = append(insert, rotated...)
		insert = append(insert, h, b)
	} else {
		insert = append(insert, c)
		insert = append(insert, rotated...)
		insert = append(insert, h, c, b)
		counts[c] += 2
	}
	counts[b]++
	counts[h]++

	out := make(Polyline[T], 0, len(boundary)+len(insert))
	out = append(out, boundary[:bestI+1]...)
	out = append(out, insert...)
	out = append(out, boundary[bestI+1:]...)
	return out
}

// mergeResult pairs a merged region with the ascending set of properties
// whose inputs cover it.
type mergeResult[P cmp.Ordered, T Coord] struct {
	props []P
	set   *polygonSet[T]
}

// propertyMerge unions rings per property and refines the per-property
// regions into disjoint regions attributed with the exact set of properties
// covering them.
type propertyMerge[P cmp.Ordered, T Coord] struct {
	rings map[P]clipper.Paths
}

func newPropertyMerge[P cmp.Ordered, T Coord]() *propertyMerge[P, T] {
	return &propertyMerge[P, T]{rings: map[P]clipper.Paths{}}
}

// insert adds a solid or hole ring under the given property. Winding order
// is normalized so that holes subtract under the nonzero fill rule.
func (m *propertyMerge[P, T]) insert(ring Polygon[T], prop P, isHole bool) {
	path := toClipPath(ring)
	if len(path) < 3 {
		return
	}
	if clipper.Orientation(path) == isHole {
		slices.Reverse(path)
	}
	m.rings[prop] = append(m.rings[prop], path)
}

// merge resolves all inserted rings into disjoint regions. Properties are
// processed in ascending order; each new property intersects the regions
// built so far, splitting them into shared and remainder parts.
func (m *propertyMerge[P, T]) merge() []mergeResult[P, T] {
	type region struct {
		props []P
		paths clipper.Paths
	}
	var regions []region
	keys := make([]P, 0, len(m.rings))
	for p := range m.rings {
		keys = append(keys, p)
	}
	slices.Sort(keys)
	for _, p := range keys {
		rem := clipUnion(m.rings[p])
		snapshot := len(regions)
		for k := 0; k < snapshot && 0 < len(rem); k++ {
			if len(regions[k].paths) == 0 {
				continue
			}
			inter := clipOp(clipper.CtIntersection, regions[k].paths, rem)
			if len(inter) == 0 {
				continue
			}
			regions[k].paths = clipOp(clipper.CtDifference, regions[k].paths, inter)
			rem = clipOp(clipper.CtDifference, rem, inter)
			regions = append(regions, region{append(slices.Clone(regions[k].props), p), inter})
		}
		if 0 < len(rem) {
			regions = append(regions, region{[]P{p}, rem})
		}
	}

	var results []mergeResult[P, T]
	for _, r := range regions {
		if len(r.paths) == 0 {
			continue
		}
		results = append(results, mergeResult[P, T]{r.props, &polygonSet[T]{r.paths}})
	}
	slices.SortFunc(results, func(a, b mergeResult[P, T]) int {
		return slices.Compare(a.props, b.props)
	})
	return results
}
