package starfield

import (
	"math"
	"math/rand/v2"
)

const (
	// MaxStep caps the frame delta so a backgrounded tab does not spin on return
	MaxStep = 1.0 / 30

	// TransitionRate is the transition progress gained per second
	TransitionRate = 0.8
)

// Pointer is the cursor in normalized device coordinates (-1..1)
type Pointer struct {
	X, Y float64
	Held bool
}

// Field is one animated point cloud. Positions are generated once and never
// change; theme switches only touch colors and pointer repulsion only touches
// the render buffer.
type Field struct {
	variant Variant
	params  Params
	rng     *rand.Rand

	positions []Vec3
	render    []Vec3
	sizes     []float64

	colors []Color
	from   []Color
	target []Color

	theme    Theme
	progress float64

	rotX, rotY float64
	elapsed    float64
	pointer    Pointer
}

// New generates the field of variant v from seed with colors for theme
func New(v Variant, seed uint64, theme Theme) (*Field, error) {
	p, err := ParamsFor(v)
	if err != nil {
		return nil, err
	}

	f := &Field{
		variant:   v,
		params:    p,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		positions: make([]Vec3, p.Count),
		render:    make([]Vec3, p.Count),
		sizes:     make([]float64, p.Count),
		colors:    make([]Color, p.Count),
		from:      make([]Color, p.Count),
		target:    make([]Color, p.Count),
		theme:     ParseTheme(string(theme)),
		progress:  1,
	}

	for i := range f.positions {
		f.positions[i] = p.sample(f.rng)
		f.sizes[i] = between(f.rng, p.MinSize, p.MaxSize)
	}
	copy(f.render, f.positions)

	f.fillTarget()
	copy(f.colors, f.target)
	copy(f.from, f.target)

	if p.Wave {
		f.displace()
	}
	return f, nil
}

func (f *Field) fillTarget() {
	for i := range f.target {
		f.target[i] = f.params.palette(f.theme, f.rng)
	}
}

// Variant returns the kind of field
func (f *Field) Variant() Variant { return f.variant }

// Params returns the generation and motion parameters of the variant
func (f *Field) Params() Params { return f.params }

// Theme returns the theme the colors are at or moving toward
func (f *Field) Theme() Theme { return f.theme }

// Len returns the number of points
func (f *Field) Len() int { return len(f.positions) }

// Positions returns the base positions. The slice is shared and never reassigned.
func (f *Field) Positions() []Vec3 { return f.positions }

// Render returns the displaced positions of the last Step
func (f *Field) Render() []Vec3 { return f.render }

// Sizes returns per-point sizes
func (f *Field) Sizes() []float64 { return f.sizes }

// Colors returns the current, possibly mid-transition, colors
func (f *Field) Colors() []Color { return f.colors }

// Elapsed returns the seconds stepped so far
func (f *Field) Elapsed() float64 { return f.elapsed }

// Rotation returns the current rotation about x and y in radians
func (f *Field) Rotation() (x, y float64) { return f.rotX, f.rotY }

// Transitioning reports whether colors are still moving toward the target palette
func (f *Field) Transitioning() bool {
	return f.progress < 1
}

// SetTheme starts a color transition from the current colors to a freshly
// sampled palette for t. Setting the current theme does nothing.
func (f *Field) SetTheme(t Theme) {
	t = ParseTheme(string(t))
	if t == f.theme {
		return
	}

	f.theme = t
	copy(f.from, f.colors)
	f.fillTarget()
	f.progress = 0
}

// SetPointer sets the normalized pointer position and whether it is held
func (f *Field) SetPointer(p Pointer) {
	f.pointer = p
}

// Step advances the animation by dt seconds
func (f *Field) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, MaxStep)
	f.elapsed += dt

	f.stepColors(dt)
	f.stepRotation(dt)

	if f.params.Wave || f.params.Repel {
		f.displace()
	}
}

func (f *Field) stepColors(dt float64) {
	if f.progress >= 1 {
		return
	}

	f.progress = math.Min(1, f.progress+dt*TransitionRate)
	if f.progress == 1 {
		copy(f.colors, f.target)
		return
	}

	eased := smoothstep(f.progress)
	for i := range f.colors {
		a, b := f.from[i], f.target[i]
		f.colors[i] = Color{
			R: a.R + (b.R-a.R)*eased,
			G: a.G + (b.G-a.G)*eased,
			B: a.B + (b.B-a.B)*eased,
		}
	}
}

func smoothstep(p float64) float64 {
	return p * p * (3 - 2*p)
}

func (f *Field) stepRotation(dt float64) {
	if f.params.Wave {
		// the hero field sways on the clock instead of accumulating spin
		f.rotY = f.elapsed * 0.03
		f.rotX = math.Sin(f.elapsed*0.2) * 0.1
		return
	}

	f.rotY += dt * f.params.SpinY
	f.rotX += dt * f.params.SpinX

	if f.pointer.Held && f.params.PointerSpin > 0 {
		f.rotY += f.pointer.X * f.params.PointerSpin
		f.rotX += f.pointer.Y * f.params.PointerSpin
	}
}

// displace writes wave motion and pointer repulsion into the render buffer
func (f *Field) displace() {
	t := f.elapsed
	px, py := f.pointer.X*PointerScale, f.pointer.Y*PointerScale
	repel := f.params.Repel && f.pointer.Held

	for i, o := range f.positions {
		r := o
		if f.params.Wave {
			r.X += math.Sin(o.Y*0.3+t) * 0.3
			r.Y += math.Cos(o.X*0.3+t) * 0.3
			r.Z += math.Sin(o.Z*0.3+t*0.5) * 0.2
		}
		if repel {
			dx, dy := Repulsion(o.X, o.Y, px, py)
			r.X += dx
			r.Y += dy
		}
		f.render[i] = r
	}
}

// Repulsion is the offset pushing a point at (x, y) away from a pointer at
// (px, py). It fades linearly to zero at RepelRadius and is zero when the
// point sits exactly under the pointer.
func Repulsion(x, y, px, py float64) (dx, dy float64) {
	ddx, ddy := x-px, y-py
	d := math.Hypot(ddx, ddy)
	if d == 0 {
		return 0, 0
	}

	force := math.Max(0, 1-d/RepelRadius)
	return ddx / d * force * RepelStrength, ddy / d * force * RepelStrength
}
