package polymerge

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// PolygonData is a solid outline with holes, attributed to a property.
type PolygonData[P cmp.Ordered, T Coord] struct {
	Property P
	Solid    Polygon[T]
	Holes    []Polygon[T]
}

// HasHole returns true if the polygon has at least one hole.
func (pd *PolygonData[P, T]) HasHole() bool {
	return 0 < len(pd.Holes)
}

// BBox returns the bounding box over the solid and all holes.
func (pd *PolygonData[P, T]) BBox() Box[T] {
	var bbox Box[T]
	bbox.Union(pd.Solid.BBox())
	for _, hole := range pd.Holes {
		bbox.Union(hole.BBox())
	}
	return bbox
}

// Normalize winds the solid counter clockwise and all holes clockwise.
func (pd *PolygonData[P, T]) Normalize() {
	if !pd.Solid.IsCCW() {
		pd.Solid.Reverse()
	}
	for _, hole := range pd.Holes {
		if hole.IsCCW() {
			hole.Reverse()
		}
	}
}

// CoveredArea returns the area enclosed by the solid outline, ignoring holes.
func (pd *PolygonData[P, T]) CoveredArea() float64 {
	return math.Abs(pd.Solid.Area())
}

// RemoveTinyHoles drops all holes whose area falls below area.
func (pd *PolygonData[P, T]) RemoveTinyHoles(area float64) {
	holes := pd.Holes[:0]
	for _, hole := range pd.Holes {
		if !less(math.Abs(hole.Area()), area) {
			holes = append(holes, hole)
		}
	}
	pd.Holes = holes
}

// PropDiffArea is a region covered by inputs of more than one property,
// bounded by one closed polyline per connected part.
type PropDiffArea[P cmp.Ordered, T Coord] struct {
	Properties []P
	Boundaries []Polyline[T]
}

// overlappedChildGroups partitions the children of node into groups whose
// bounding boxes form connected overlapping clusters, touching included.
// Only groups of two or more children are returned.
func overlappedChildGroups[P cmp.Ordered, T Coord](node *RectNode[T, *PolygonData[P, T]]) [][]*RectNode[T, *PolygonData[P, T]] {
	children := node.Children()
	if len(children) < 2 {
		return nil
	}
	g := simple.NewUndirectedGraph()
	for i := range children {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if children[i].BBox().Intersects(children[j].BBox()) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	var groups [][]*RectNode[T, *PolygonData[P, T]]
	for _, component := range topo.ConnectedComponents(g) {
		if 1 < len(component) {
			group := make([]*RectNode[T, *PolygonData[P, T]], 0, len(component))
			for _, n := range component {
				group = append(group, children[n.ID()])
			}
			groups = append(groups, group)
		}
	}
	return groups
}

// mergeRegion merges all polygons in the subtree of node, child regions
// first. Children whose regions overlap are merged together, after which any
// polygons kept at the node itself force a merge over the whole subtree. The
// node is rebuilt as a leaf holding the merged polygons.
func (m *Merger[P, T]) mergeRegion(node *RectNode[T, *PolygonData[P, T]]) {
	for _, child := range node.Children() {
		m.mergeRegion(child)
	}

	merged := false
	var mergedObjs []*PolygonData[P, T]
	for _, group := range overlappedChildGroups(node) {
		var objs []*PolygonData[P, T]
		for _, sub := range group {
			objs = append(objs, sub.Objs()...)
			sub.Clear()
		}
		mergedObjs = append(mergedObjs, m.mergePolygons(objs)...)
		merged = true
	}

	allObjs := node.AllObjects(nil)
	allObjs = append(allObjs, mergedObjs...)

	if 0 < len(node.Objs()) {
		allObjs = m.mergePolygons(allObjs)
		merged = true
	}

	if merged {
		m.filterOutTinyHoles(allObjs)
	}
	node.Build(allObjs, 0)
}

// mergePolygons unions the polygons per effective property and rebuilds the
// merged regions. Regions covered by several properties are either recorded
// as property conflicts or collapsed onto the lowest property, which then
// aliases the others.
func (m *Merger[P, T]) mergePolygons(polygons []*PolygonData[P, T]) []*PolygonData[P, T] {
	if len(polygons) <= 1 {
		return polygons
	}
	merger := newPropertyMerge[P, T]()
	for _, pd := range polygons {
		prop := m.resolveProperty(pd.Property)
		merger.insert(pd.Solid, prop, false)
		for _, hole := range pd.Holes {
			merger.insert(hole, prop, true)
		}
	}

	groups := map[P]*polygonSet[T]{}
	var order []P
	for _, result := range merger.merge() {
		props := result.props
		if 1 < len(props) {
			if m.settings.CheckPropertyDiff {
				var bounds []Polyline[T]
				if !result.set.Empty() {
					bounds = result.set.Boundaries()
				}
				m.diffMu.Lock()
				m.propDiffAreas = append(m.propDiffAreas, PropDiffArea[P, T]{props, bounds})
				m.diffMu.Unlock()
				continue
			}
			canonical := m.resolveProperty(props[0])
			m.propMu.Lock()
			for _, p := range props[1:] {
				if _, ok := m.propertyMap[p]; !ok && p != canonical {
					m.propertyMap[p] = canonical
				}
			}
			m.propMu.Unlock()
		}
		prop := m.resolveProperty(props[0])
		if set, ok := groups[prop]; ok {
			set.add(result.set)
		} else {
			groups[prop] = result.set
			order = append(order, prop)
		}
	}

	var out []*PolygonData[P, T]
	for _, prop := range order {
		for _, b := range groups[prop].Boundaries() {
			out = append(out, polygonFromBoundary(b, prop))
		}
	}
	return out
}

// resolveProperty follows the alias map one hop.
func (m *Merger[P, T]) resolveProperty(prop P) P {
	m.propMu.RLock()
	defer m.propMu.RUnlock()
	if alias, ok := m.propertyMap[prop]; ok {
		return alias
	}
	return prop
}
