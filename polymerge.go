// Package polymerge merges large sets of attributed polygons into
// non-overlapping polygons with holes. Polygons carry a property; regions
// covered by a single property union into one polygon, while regions covered
// by several properties are either reported as conflicts or collapsed onto
// one property. Merging runs region by region over a spatial partition so
// that independent regions can run on separate goroutines.
package polymerge

import (
	"cmp"
	"slices"
	"sync"
)

// Settings control cleaning, property conflicts, tiny feature filtering, and
// the spatial partitioning of a Merger.
type Settings struct {
	// CleanPolygonPoints simplifies polygons before and after merging using
	// CleanPointDist as the simplification distance.
	CleanPolygonPoints bool
	// CheckPropertyDiff records regions covered by several properties as
	// conflicts instead of merging them onto one property.
	CheckPropertyDiff bool
	// IgnoreTinySolid drops merged polygons whose area falls below
	// TinySolidArea.
	IgnoreTinySolid bool
	// IgnoreTinyHoles drops holes whose area falls below TinyHolesArea.
	IgnoreTinyHoles bool

	TinySolidArea  float64
	TinyHolesArea  float64
	CleanPointDist float64

	// MergeThreshold is the maximum number of polygons a partition node may
	// hold before it splits.
	MergeThreshold uint
}

// DefaultSettings returns the settings a zero-configured merge runs with.
func DefaultSettings() Settings {
	return Settings{MergeThreshold: 1024}
}

// Merger accumulates attributed polygons and merges them region by region.
// The zero value is not usable, use NewMerger.
type Merger[P cmp.Ordered, T Coord] struct {
	bbox     Box[T]
	datas    []*PolygonData[P, T]
	settings Settings
	tree     RectTree[T, *PolygonData[P, T]]

	propMu      sync.RWMutex
	propertyMap map[P]P

	diffMu        sync.Mutex
	propDiffAreas []PropDiffArea[P, T]
}

// NewMerger returns an empty merger with default settings.
func NewMerger[P cmp.Ordered, T Coord]() *Merger[P, T] {
	m := &Merger[P, T]{
		settings:    DefaultSettings(),
		propertyMap: map[P]P{},
	}
	m.tree.ext = (*PolygonData[P, T]).BBox
	return m
}

// SetSettings replaces the merger's settings. Call before Merge.
func (m *Merger[P, T]) SetSettings(settings Settings) {
	m.settings = settings
}

// AddBox adds the box as a solid polygon under the given property.
func (m *Merger[P, T]) AddBox(property P, box Box[T]) *PolygonData[P, T] {
	return m.addPolygonData(&PolygonData[P, T]{
		Property: property,
		Solid:    box.Polygon(),
	})
}

// AddPolygon adds a solid polygon under the given property.
func (m *Merger[P, T]) AddPolygon(property P, polygon Polygon[T]) *PolygonData[P, T] {
	return m.addPolygonData(&PolygonData[P, T]{
		Property: property,
		Solid:    polygon,
	})
}

// AddPolygonWithHoles adds a solid polygon with holes under the given
// property.
func (m *Merger[P, T]) AddPolygonWithHoles(property P, pwh PolygonWithHoles[T]) *PolygonData[P, T] {
	return m.addPolygonData(&PolygonData[P, T]{
		Property: property,
		Solid:    pwh.Outline,
		Holes:    pwh.Holes,
	})
}

func (m *Merger[P, T]) addPolygonData(pd *PolygonData[P, T]) *PolygonData[P, T] {
	pd.Normalize()
	m.bbox.Union(pd.BBox())
	m.datas = append(m.datas, pd)
	return pd
}

// Merge merges all added polygons on the calling goroutine. Use MergeRunner
// to merge on several goroutines.
func (m *Merger[P, T]) Merge() {
	m.PreProcess()
	m.mergeRegion(&m.tree.RectNode)
	m.PostProcess()
}

// PreProcess cleans the added polygons when configured and distributes them
// over the task tree. MergeRunner calls this before scheduling.
func (m *Merger[P, T]) PreProcess() {
	if m.settings.CleanPolygonPoints && isPositive(m.settings.CleanPointDist) {
		m.cleanPolygons()
	}
	m.buildTaskTree()
}

// PostProcess cleans the merged polygons and drops tiny solids when
// configured. MergeRunner calls this after all merge tasks finish.
func (m *Merger[P, T]) PostProcess() {
	if m.settings.CleanPolygonPoints && isPositive(m.settings.CleanPointDist) {
		m.cleanPolygons()
	}
	if m.settings.IgnoreTinySolid && isPositive(m.settings.TinySolidArea) {
		m.filterOutTinyArea()
	}
}

// TaskTree returns the merge task tree. MergeRunner schedules one task per
// node.
func (m *Merger[P, T]) TaskTree() *RectTree[T, *PolygonData[P, T]] {
	return &m.tree
}

// Polygons returns the merged polygons, or the polygons added so far when
// Merge has not run yet. The returned polygons are owned by the merger and
// must not be modified.
func (m *Merger[P, T]) Polygons() []*PolygonData[P, T] {
	return m.AppendPolygons(nil)
}

// AppendPolygons appends the merged polygons to dst and returns it, or the
// polygons added so far when Merge has not run yet.
func (m *Merger[P, T]) AppendPolygons(dst []*PolygonData[P, T]) []*PolygonData[P, T] {
	n := len(dst)
	dst = m.tree.AllObjects(dst)
	if len(dst) == n {
		dst = append(dst, m.datas...)
	}
	return dst
}

// BBox returns the bounding box over all added polygons.
func (m *Merger[P, T]) BBox() Box[T] {
	return m.bbox
}

// PropDiffAreas returns the property conflict regions found while merging
// with CheckPropertyDiff enabled.
func (m *Merger[P, T]) PropDiffAreas() []PropDiffArea[P, T] {
	return m.propDiffAreas
}

// Clear drops all polygons, conflicts and aliases. Settings are kept.
func (m *Merger[P, T]) Clear() {
	m.datas = nil
	clear(m.propertyMap)
	m.propDiffAreas = nil
	m.tree.Clear()
	m.tree.seeded = false
	m.bbox.SetInvalid()
}

func (m *Merger[P, T]) buildTaskTree() {
	m.tree.SetBBox(m.bbox)
	m.tree.Build(m.datas, m.settings.MergeThreshold)
	m.datas = nil
}

func (m *Merger[P, T]) cleanPolygons() {
	cleanPolygons(m.Polygons(), m.settings.CleanPointDist)
}

func (m *Merger[P, T]) filterOutTinyArea() {
	polygons := m.Polygons()
	polygons = slices.DeleteFunc(polygons, func(pd *PolygonData[P, T]) bool {
		return less(pd.CoveredArea(), m.settings.TinySolidArea)
	})
	m.tree.Build(polygons, 0)
}

func (m *Merger[P, T]) filterOutTinyHoles(polygons []*PolygonData[P, T]) {
	if m.settings.IgnoreTinyHoles && isPositive(m.settings.TinyHolesArea) {
		for _, pd := range polygons {
			pd.RemoveTinyHoles(m.settings.TinyHolesArea)
		}
	}
}
