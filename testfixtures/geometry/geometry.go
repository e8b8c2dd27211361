// Package geometry is a fixture package for introspection tests.
package geometry

import (
	"fmt"
	"time"
)

// Point is a position on an integer grid.
type Point struct {
	X int
	Y int
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y int) *Point {
	return &Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Shape is anything with an area and a bounding box.
type Shape interface {
	Area() float64
	Bounds() Rect
}

// Named is a shape with a display name.
type Named interface {
	Shape
	fmt.Stringer
	Name() string
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

func (r Rect) Area() float64 {
	return float64((r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y))
}

func (r Rect) Bounds() Rect {
	return r
}

// Label tags a polygon.
type Label string

// Polygon is a closed chain of vertices.
type Polygon struct {
	Rect
	Vertices []Point
	Tags     map[string]Label
	Created  time.Time
	next     *Polygon
}

// NewPolygon builds a polygon from its vertices.
func NewPolygon(vs ...Point) *Polygon {
	return &Polygon{Vertices: vs, Created: time.Now()}
}

func (p *Polygon) Len() int {
	return len(p.Vertices)
}

// Node is a self-referential tree node.
type Node struct {
	Value    int
	Children []*Node
}

func (n *Node) First() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Path is an open chain of points.
type Path []Point

// Index looks points up by name.
type Index map[string]Point

// Visitor maps one point to another.
type Visitor func(Point) Point

// Pair is a generic key/value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Registry holds labelled shapes.
type Registry struct {
	Entries [][]Pair[Label, Shape]
}
