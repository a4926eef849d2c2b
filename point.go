package extrude

import "math"

// Point2 represents a 2D point or vector.
type Point2 struct {
	X, Y float64
}

// Pt is a convenience function to create a Point2.
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point2) Mul(s float64) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point2) Div(s float64) Point2 {
	return Point2{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point2) Dot(q Point2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point2) Cross(q Point2) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point2) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point2) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Point3 represents a 3D point or vector.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Lift returns p at height z.
func (p Point2) Lift(z float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: z}
}
