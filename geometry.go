package polymerge

// Point is a coordinate in 2D space.
type Point[T Coord] struct {
	X, Y T
}

// Equals returns true if P and Q are equal, with tolerance for floating
// coordinate types.
func (p Point[T]) Equals(q Point[T]) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// PerpDot returns the perp dot product between P and Q, ie the z-component of
// their cross product.
func (p Point[T]) PerpDot(q Point[T]) float64 {
	return float64(p.X)*float64(q.Y) - float64(p.Y)*float64(q.X)
}

// DistanceSq returns the squared distance between P and Q.
func (p Point[T]) DistanceSq(q Point[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return dx*dx + dy*dy
}

// Box is an axis-aligned rectangle given by its extreme coordinates. The zero
// value is invalid; grow it with AddPoint or Union.
type Box[T Coord] struct {
	MinX, MinY, MaxX, MaxY T
	valid                  bool
}

// NewBox returns a box spanning the two corner points given in any order.
func NewBox[T Coord](x0, y0, x1, y1 T) Box[T] {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Box[T]{x0, y0, x1, y1, true}
}

// IsValid returns true if the box spans at least one point.
func (b Box[T]) IsValid() bool {
	return b.valid
}

// SetInvalid empties the box so that a following Union starts afresh.
func (b *Box[T]) SetInvalid() {
	*b = Box[T]{}
}

// AddPoint grows the box to contain p.
func (b *Box[T]) AddPoint(p Point[T]) {
	if !b.valid {
		*b = Box[T]{p.X, p.Y, p.X, p.Y, true}
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if b.MaxX < p.X {
		b.MaxX = p.X
	}
	if b.MaxY < p.Y {
		b.MaxY = p.Y
	}
}

// Union grows the box to contain q.
func (b *Box[T]) Union(q Box[T]) {
	if !q.valid {
		return
	}
	b.AddPoint(Point[T]{q.MinX, q.MinY})
	b.AddPoint(Point[T]{q.MaxX, q.MaxY})
}

// Length returns the extent of the box along the x axis.
func (b Box[T]) Length() T {
	return b.MaxX - b.MinX
}

// Width returns the extent of the box along the y axis.
func (b Box[T]) Width() T {
	return b.MaxY - b.MinY
}

// Area returns the area of the box.
func (b Box[T]) Area() float64 {
	if !b.valid {
		return 0.0
	}
	return float64(b.Length()) * float64(b.Width())
}

// Intersects returns true if the boxes overlap or touch, with tolerance for
// floating coordinate types.
func (b Box[T]) Intersects(q Box[T]) bool {
	if !b.valid || !q.valid {
		return false
	}
	return lessEqual(b.MinX, q.MaxX) && lessEqual(q.MinX, b.MaxX) &&
		lessEqual(b.MinY, q.MaxY) && lessEqual(q.MinY, b.MaxY)
}

// Contains returns true if p lies inside or on the boundary of the box.
func (b Box[T]) Contains(p Point[T]) bool {
	if !b.valid {
		return false
	}
	return lessEqual(b.MinX, p.X) && lessEqual(p.X, b.MaxX) &&
		lessEqual(b.MinY, p.Y) && lessEqual(p.Y, b.MaxY)
}

// Polygon returns the four corners of the box as a CCW ring.
func (b Box[T]) Polygon() Polygon[T] {
	return Polygon[T]{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}

// Polygon is a ring of vertices without an explicit closing vertex.
type Polygon[T Coord] []Point[T]

// Area returns the signed area of the polygon, positive for counter clockwise
// winding.
func (p Polygon[T]) Area() float64 {
	a := 0.0
	for i := range p {
		a += p[i].PerpDot(p[(i+1)%len(p)])
	}
	return a / 2.0
}

// IsCCW returns true if the polygon winds counter clockwise.
func (p Polygon[T]) IsCCW() bool {
	return 0.0 <= p.Area()
}

// Reverse reverses the winding order in place.
func (p Polygon[T]) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// BBox returns the bounding box of the polygon.
func (p Polygon[T]) BBox() Box[T] {
	var b Box[T]
	for _, pt := range p {
		b.AddPoint(pt)
	}
	return b
}

// Polyline is an open or closed sequence of vertices. A closed polyline
// repeats its first vertex at the end.
type Polyline[T Coord] []Point[T]

// Closed returns true if the last vertex coincides with the first.
func (p Polyline[T]) Closed() bool {
	return 1 < len(p) && p[0].Equals(p[len(p)-1])
}

// BBox returns the bounding box of the polyline.
func (p Polyline[T]) BBox() Box[T] {
	var b Box[T]
	for _, pt := range p {
		b.AddPoint(pt)
	}
	return b
}

// PolygonWithHoles is a solid outline with zero or more hole rings.
type PolygonWithHoles[T Coord] struct {
	Outline Polygon[T]
	Holes   []Polygon[T]
}
