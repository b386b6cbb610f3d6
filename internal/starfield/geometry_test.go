package starfield

import (
	"math"
	"testing"
)

func TestGeometries(t *testing.T) {
	geos := Geometries(4)
	if len(geos) != GeometryCount {
		t.Fatalf("expected %d geometries, got %d", GeometryCount, len(geos))
	}

	for i, g := range geos {
		if want := shapeCycle[i%3]; g.Shape != want {
			t.Errorf("geometry %d: expected %s, got %s", i, want, g.Shape)
		}
		if math.Abs(g.Position.X) > 7.5 || math.Abs(g.Position.Y) > 7.5 || math.Abs(g.Position.Z) > 7.5 {
			t.Errorf("geometry %d outside the spread: %+v", i, g.Position)
		}
		if g.Rotation.X < 0 || g.Rotation.X >= math.Pi {
			t.Errorf("geometry %d rotation out of range: %+v", i, g.Rotation)
		}
		if g.Scale < 0.3 || g.Scale >= 0.7 {
			t.Errorf("geometry %d scale out of range: %v", i, g.Scale)
		}
		if g.Hue < 200 || g.Hue >= 260 {
			t.Errorf("geometry %d hue out of range: %v", i, g.Hue)
		}
	}

	if Geometries(4)[3] != geos[3] {
		t.Errorf("same seed produced different geometry")
	}
}

func TestProjectCenter(t *testing.T) {
	cam := DefaultCamera(800, 600)
	pt, ok := cam.Project(Vec3{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if pt.X != 400 || pt.Y != 300 {
		t.Errorf("expected origin at canvas center, got %+v", pt)
	}

	if _, ok := cam.Project(Vec3{Z: 10}); ok {
		t.Errorf("point behind the camera should not project")
	}
}

func TestRotate(t *testing.T) {
	p := Rotate(Vec3{X: 1}, 0, math.Pi/2)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Z+1) > 1e-12 {
		t.Errorf("unexpected rotation about Y: %+v", p)
	}

	q := Rotate(Vec3{Y: 1}, math.Pi/2, 0)
	if math.Abs(q.Y) > 1e-12 || math.Abs(q.Z-1) > 1e-12 {
		t.Errorf("unexpected rotation about X: %+v", q)
	}
}

func TestFrameReusesBuffer(t *testing.T) {
	f, _ := New(Interactive, 1, Dark)
	cam := DefaultCamera(640, 480)

	buf := cam.Frame(f, nil)
	if len(buf) == 0 {
		t.Fatal("expected some visible points")
	}
	again := cam.Frame(f, buf)
	if len(again) != len(buf) || &again[0] != &buf[0] {
		t.Errorf("frame did not reuse the buffer")
	}
}

func TestSnapshot(t *testing.T) {
	f, _ := New(Hero, 9, Light)
	s := f.Snapshot(9)

	if s.Count != 2000 || len(s.Positions) != 6000 || len(s.Colors) != 6000 || len(s.Sizes) != 2000 {
		t.Errorf("unexpected snapshot sizes %d %d %d %d", s.Count, len(s.Positions), len(s.Colors), len(s.Sizes))
	}
	if s.Theme != Light || s.Variant != Hero || s.Seed != 9 {
		t.Errorf("unexpected snapshot header %+v", s)
	}
	if s.Positions[0] != float32(f.Positions()[0].X) {
		t.Errorf("snapshot should carry base positions")
	}
}
