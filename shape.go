package extrude

import (
	"log/slog"
	"math"
	"slices"
)

// Shape is a flat polygon with holes.
//
// Shapes produced by ResolveShapes have a counter-clockwise outer boundary
// and clockwise holes. Contours are implicitly closed.
type Shape struct {
	Points []Point2
	Holes  [][]Point2
}

// PointCount returns the number of boundary points including holes.
func (s Shape) PointCount() int {
	n := len(s.Points)
	for _, h := range s.Holes {
		n += len(h)
	}
	return n
}

// Area returns the area enclosed by the outer boundary minus the area of
// the holes.
func (s Shape) Area() float64 {
	a := math.Abs(SignedArea(s.Points))
	for _, h := range s.Holes {
		a -= math.Abs(SignedArea(h))
	}
	return a
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := Shape{Points: slices.Clone(s.Points)}
	if len(s.Holes) > 0 {
		out.Holes = make([][]Point2, len(s.Holes))
		for i, h := range s.Holes {
			out.Holes[i] = slices.Clone(h)
		}
	}
	return out
}

// Normalize orients the outer boundary counter-clockwise and every hole
// clockwise, reversing contours in place where needed.
func (s Shape) Normalize() Shape {
	if IsClockwise(s.Points) {
		slices.Reverse(s.Points)
	}
	for _, h := range s.Holes {
		if !IsClockwise(h) {
			slices.Reverse(h)
		}
	}
	return s
}

// SignedArea returns the signed area of a closed contour using the
// shoelace formula. Counter-clockwise contours have a positive area.
func SignedArea(contour []Point2) float64 {
	n := len(contour)
	var a float64
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += contour[p].X*contour[q].Y - contour[q].X*contour[p].Y
	}
	return a * 0.5
}

// IsClockwise reports whether the contour has a negative signed area.
func IsClockwise(contour []Point2) bool {
	return SignedArea(contour) < 0
}

// PointInPolygon reports whether pt lies inside the closed polygon or on
// its boundary, using a horizontal ray crossing test.
func PointInPolygon(pt Point2, polygon []Point2) bool {
	n := len(polygon)
	inside := false
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		low, high := polygon[p], polygon[q]
		edgeDx := high.X - low.X
		edgeDy := high.Y - low.Y

		if math.Abs(edgeDy) > epsilon {
			if edgeDy < 0 {
				low, high = high, low
				edgeDx, edgeDy = -edgeDx, -edgeDy
			}
			if pt.Y < low.Y || pt.Y > high.Y {
				continue
			}
			if pt.Y == low.Y {
				// Lower end points do not count as crossings.
				if pt.X == low.X {
					return true
				}
				continue
			}
			perp := edgeDy*(pt.X-low.X) - edgeDx*(pt.Y-low.Y)
			if perp == 0 {
				return true
			}
			if perp < 0 {
				continue
			}
			inside = !inside
			continue
		}

		// Horizontal edge.
		if pt.Y != low.Y {
			continue
		}
		if (high.X <= pt.X && pt.X <= low.X) || (low.X <= pt.X && pt.X <= high.X) {
			return true
		}
	}
	return inside
}

// epsilon is the float64 machine epsilon.
const epsilon = 2.220446049250313e-16

// ResolveShapes groups closed contours into shapes with holes.
//
// Clockwise contours are solids. The winding of the first contour tells
// whether holes are listed before their solid (first contour
// counter-clockwise) or after it. Each hole is then moved to the solid that
// geometrically contains its first point; the moves are applied only if
// none of the holes lies inside more than one solid. Holes no solid
// contains become shapes of their own. The input is not modified; the
// returned shapes are normalized.
func ResolveShapes(contours [][]Point2) []Shape {
	switch len(contours) {
	case 0:
		return nil
	case 1:
		return []Shape{Shape{Points: slices.Clone(contours[0])}.Normalize()}
	}

	groups, orphans := groupContours(contours)
	if len(groups) > 1 || (len(groups) > 0 && len(orphans) > 0) {
		orphans = reassignHoles(groups, orphans)
	}

	shapes := make([]Shape, 0, len(groups)+len(orphans))
	for _, g := range groups {
		shapes = append(shapes, g.Clone().Normalize())
	}
	for _, o := range orphans {
		shapes = append(shapes, Shape{Points: slices.Clone(o)}.Normalize())
	}
	return shapes
}

// groupContours scans the contours in order, opening a new shape at every
// solid. In holes-first order, holes after the last solid have no shape to
// join and are returned as orphans.
func groupContours(contours [][]Point2) (groups []Shape, orphans [][]Point2) {
	holesFirst := !IsClockwise(contours[0])

	var pending [][]Point2
	for _, c := range contours {
		if !IsClockwise(c) {
			if holesFirst {
				pending = append(pending, c)
			} else {
				last := &groups[len(groups)-1]
				last.Holes = append(last.Holes, c)
			}
			continue
		}
		g := Shape{Points: c}
		if holesFirst {
			g.Holes, pending = pending, nil
		}
		groups = append(groups, g)
	}
	return groups, pending
}

// reassignHoles moves every hole, orphans included, to the solid containing
// it and returns the orphans left without a solid. It is all or nothing: a
// single ambiguous hole keeps the original grouping.
func reassignHoles(groups []Shape, orphans [][]Point2) [][]Point2 {
	better := make([][][]Point2, len(groups))
	var unowned [][]Point2
	ambiguous := false
	moved := 0

	// place returns whether h lies inside a solid; from is its current
	// solid, or -1 for an orphan.
	place := func(h []Point2, from int) bool {
		if len(h) == 0 {
			return false
		}
		assigned := false
		for s2, g2 := range groups {
			if !PointInPolygon(h[0], g2.Points) {
				continue
			}
			if from != s2 {
				moved++
			}
			if assigned {
				ambiguous = true
				continue
			}
			assigned = true
			better[s2] = append(better[s2], h)
		}
		return assigned
	}

	for si, g := range groups {
		for _, h := range g.Holes {
			if !place(h, si) {
				better[si] = append(better[si], h)
			}
		}
	}
	for _, o := range orphans {
		if !place(o, -1) {
			unowned = append(unowned, o)
		}
	}

	if moved == 0 {
		return orphans
	}
	if ambiguous {
		Logger().Debug("extrude: hole reassignment discarded",
			slog.Int("shapes", len(groups)), slog.Int("moves", moved))
		return orphans
	}
	for i := range groups {
		groups[i].Holes = better[i]
	}
	Logger().Debug("extrude: holes reassigned",
		slog.Int("shapes", len(groups)), slog.Int("moves", moved))
	return unowned
}
