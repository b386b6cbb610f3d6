package starfield

import (
	"errors"
	"math"
	"testing"
)

func maxChannel(c Color) float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

func TestNewCounts(t *testing.T) {
	tests := []struct {
		variant Variant
		count   int
	}{
		{Background, 5000},
		{Interactive, 1000},
		{Hero, 2000},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			f, err := New(tt.variant, 1, Dark)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Len() != tt.count || len(f.Colors()) != tt.count || len(f.Render()) != tt.count {
				t.Errorf("expected %d points, got %d", tt.count, f.Len())
			}
		})
	}
}

func TestNewUnknownVariant(t *testing.T) {
	if _, err := New("nebula", 1, Dark); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := ParseVariant("HERO"); err != nil {
		t.Errorf("expected case-insensitive parse, got %v", err)
	}
}

func TestShellPositionsStayInBand(t *testing.T) {
	for _, v := range []Variant{Background, Hero} {
		f, _ := New(v, 42, Dark)
		p := f.Params()
		for i, pos := range f.Positions() {
			r := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
			if r < p.InnerRadius-1e-9 || r >= p.OuterRadius+1e-9 {
				t.Fatalf("%s point %d at radius %f outside [%f,%f)", v, i, r, p.InnerRadius, p.OuterRadius)
			}
		}
	}
}

func TestCubePositionsStayInCube(t *testing.T) {
	f, _ := New(Interactive, 42, Dark)
	for i, pos := range f.Positions() {
		if math.Abs(pos.X) > 10 || math.Abs(pos.Y) > 10 || math.Abs(pos.Z) > 10 {
			t.Fatalf("point %d outside the cube: %+v", i, pos)
		}
	}
}

func TestSameSeedSameField(t *testing.T) {
	a, _ := New(Background, 7, Dark)
	b, _ := New(Background, 7, Dark)
	c, _ := New(Background, 8, Dark)

	if a.Positions()[123] != b.Positions()[123] || a.Colors()[123] != b.Colors()[123] {
		t.Errorf("same seed produced different fields")
	}
	if a.Positions()[123] == c.Positions()[123] {
		t.Errorf("different seeds produced the same point")
	}
}

func TestPalettesAreDisjoint(t *testing.T) {
	for _, v := range Variants {
		dark, _ := New(v, 3, Dark)
		light, _ := New(v, 3, Light)

		for i := range dark.Colors() {
			if m := maxChannel(dark.Colors()[i]); m < 0.8 {
				t.Fatalf("%s dark color %d too dim: %+v", v, i, dark.Colors()[i])
			}
			if m := maxChannel(light.Colors()[i]); m > 0.6 {
				t.Fatalf("%s light color %d too bright: %+v", v, i, light.Colors()[i])
			}
		}
	}
}

func TestBackgroundColoredShare(t *testing.T) {
	f, _ := New(Background, 99, Dark)
	colored := 0
	for _, c := range f.Colors() {
		if c.R != c.G || c.G != c.B {
			colored++
		}
	}
	share := float64(colored) / float64(f.Len())
	if share < 0.12 || share > 0.18 {
		t.Errorf("expected about 15%% colored stars, got %.3f", share)
	}
}

func TestThemeToggleKeepsPositions(t *testing.T) {
	f, _ := New(Background, 11, Dark)

	positions := f.Positions()
	before := make([]Vec3, len(positions))
	copy(before, positions)
	colorsBefore := f.Colors()[0]

	f.SetTheme(Light)
	for i := 0; i < 60; i++ {
		f.Step(1.0 / 60)
	}

	after := f.Positions()
	if &after[0] != &positions[0] || len(after) != len(positions) {
		t.Fatalf("position slice was reassigned")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("position %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if f.Colors()[0] == colorsBefore {
		t.Errorf("colors did not change")
	}
}

func TestSetSameThemeIsNoop(t *testing.T) {
	f, _ := New(Interactive, 5, Dark)
	before := f.Colors()[10]

	f.SetTheme(Dark)
	if f.Transitioning() {
		t.Errorf("same theme started a transition")
	}
	f.Step(MaxStep)
	if f.Colors()[10] != before {
		t.Errorf("colors changed without a theme change")
	}
}

func TestTransitionTakesAboutOneAndAQuarterSeconds(t *testing.T) {
	f, _ := New(Interactive, 5, Dark)
	f.SetTheme(Light)

	// 1.25s of capped frames is 37.5 steps
	for i := 0; i < 37; i++ {
		f.Step(MaxStep)
	}
	if !f.Transitioning() {
		t.Fatalf("transition finished early")
	}
	mid := f.Colors()[0]

	f.Step(MaxStep)
	if f.Transitioning() {
		t.Fatalf("transition still running after 38 steps")
	}
	if f.Colors()[0] == mid {
		t.Errorf("final step did not move colors")
	}
	if f.Colors()[0] != f.target[0] {
		t.Errorf("colors did not land on the target palette")
	}
}

func TestTransitionStartsFromCurrentColors(t *testing.T) {
	f, _ := New(Interactive, 5, Dark)
	f.SetTheme(Light)
	for i := 0; i < 10; i++ {
		f.Step(MaxStep)
	}
	midway := f.Colors()[0]

	f.SetTheme(Dark)
	if f.from[0] != midway {
		t.Errorf("reverse transition did not start from the interpolated color")
	}
}

func TestSmoothstep(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}} {
		if got := smoothstep(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("smoothstep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStepClampsDelta(t *testing.T) {
	f, _ := New(Background, 1, Dark)
	f.Step(5)

	x, y := f.Rotation()
	if math.Abs(y-MaxStep*0.01) > 1e-12 || math.Abs(x-MaxStep*0.005) > 1e-12 {
		t.Errorf("rotation not clamped: x=%v y=%v", x, y)
	}
	if math.Abs(f.Elapsed()-MaxStep) > 1e-12 {
		t.Errorf("elapsed not clamped: %v", f.Elapsed())
	}
}

func TestPointerSpinOnlyWhileHeld(t *testing.T) {
	idle, _ := New(Interactive, 1, Dark)
	idle.SetPointer(Pointer{X: 1, Y: 1})
	idle.Step(MaxStep)
	_, idleY := idle.Rotation()

	held, _ := New(Interactive, 1, Dark)
	held.SetPointer(Pointer{X: 1, Y: 1, Held: true})
	held.Step(MaxStep)
	_, heldY := held.Rotation()

	if math.Abs(heldY-idleY-0.002) > 1e-12 {
		t.Errorf("expected extra 0.002 rad while held, got %v", heldY-idleY)
	}
}

func TestRepulsion(t *testing.T) {
	if dx, dy := Repulsion(1, 1, 1, 1); dx != 0 || dy != 0 {
		t.Errorf("expected zero offset under the pointer, got %v,%v", dx, dy)
	}
	if dx, dy := Repulsion(10, 0, 0, 0); dx != 0 || dy != 0 {
		t.Errorf("expected zero offset beyond the radius, got %v,%v", dx, dy)
	}

	dx, dy := Repulsion(4, 0, 0, 0)
	if math.Abs(dx-1.5) > 1e-12 || dy != 0 {
		t.Errorf("expected (1.5, 0) at half radius, got %v,%v", dx, dy)
	}
}

func TestRepulsionOnlyWhileHeld(t *testing.T) {
	f, _ := New(Hero, 2, Dark)
	f.SetPointer(Pointer{})
	f.Step(MaxStep)
	released := make([]Vec3, f.Len())
	copy(released, f.Render())

	g, _ := New(Hero, 2, Dark)
	g.SetPointer(Pointer{Held: true})
	g.Step(MaxStep)

	moved := 0
	for i, p := range g.Render() {
		if p != released[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Errorf("holding the pointer did not displace any point")
	}

	positions := g.Positions()
	for i := range positions {
		if positions[i] != f.Positions()[i] {
			t.Fatalf("repulsion modified base position %d", i)
		}
	}
}

func TestWaveMovesRenderBuffer(t *testing.T) {
	f, _ := New(Hero, 2, Dark)
	f.Step(MaxStep)
	if f.Render()[0] == f.Positions()[0] {
		t.Errorf("wave did not displace the render buffer")
	}
}

func TestParseTheme(t *testing.T) {
	if ParseTheme("LIGHT") != Light || ParseTheme("") != Dark || ParseTheme("system") != Dark {
		t.Errorf("unexpected theme parsing")
	}
}
