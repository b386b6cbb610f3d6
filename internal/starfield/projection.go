package starfield

import "math"

// Camera is a perspective camera on the +Z axis looking at the origin
type Camera struct {
	Z      float64
	FOV    float64 // vertical, degrees
	Width  float64
	Height float64
}

// DefaultCamera matches the scene the page backgrounds are composed for
func DefaultCamera(width, height float64) Camera {
	return Camera{Z: 5, FOV: 75, Width: width, Height: height}
}

const nearPlane = 0.1

// Rotate applies the field rotation: around X first, then around Y
func Rotate(p Vec3, rx, ry float64) Vec3 {
	sx, cx := math.Sincos(rx)
	y := p.Y*cx - p.Z*sx
	z := p.Y*sx + p.Z*cx

	sy, cy := math.Sincos(ry)
	return Vec3{
		X: p.X*cy + z*sy,
		Y: y,
		Z: -p.X*sy + z*cy,
	}
}

// Point is a projected point in canvas pixels
type Point struct {
	X, Y  float64
	Scale float64
}

// Project maps a world point to canvas coordinates. ok is false for points
// at or behind the near plane.
func (c Camera) Project(p Vec3) (pt Point, ok bool) {
	depth := c.Z - p.Z
	if depth <= nearPlane {
		return Point{}, false
	}

	focal := (c.Height / 2) / math.Tan(c.FOV*math.Pi/360)
	scale := focal / depth
	return Point{
		X:     c.Width/2 + p.X*scale,
		Y:     c.Height/2 - p.Y*scale,
		Scale: scale,
	}, true
}

// Projected is a drawable point with its color
type Projected struct {
	Point
	Radius float64
	Color  Color
}

// Frame projects the current render buffer of f, reusing buf when it is large enough
func (c Camera) Frame(f *Field, buf []Projected) []Projected {
	buf = buf[:0]
	rx, ry := f.Rotation()
	size := f.params.PointSize
	colors := f.Colors()
	sizes := f.Sizes()

	for i, p := range f.Render() {
		pt, ok := c.Project(Rotate(p, rx, ry))
		if !ok {
			continue
		}
		if pt.X < 0 || pt.Y < 0 || pt.X > c.Width || pt.Y > c.Height {
			continue
		}
		buf = append(buf, Projected{
			Point:  pt,
			Radius: math.Max(0.5, size*sizes[i]*pt.Scale/2),
			Color:  colors[i],
		})
	}
	return buf
}
