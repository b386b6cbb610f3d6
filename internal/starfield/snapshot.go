package starfield

// Snapshot is the JSON form of a field: flat xyz and rgb arrays in point order
type Snapshot struct {
	Variant   Variant   `json:"variant"`
	Theme     Theme     `json:"theme"`
	Seed      uint64    `json:"seed"`
	Count     int       `json:"count"`
	PointSize float64   `json:"point_size"`
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	Sizes     []float32 `json:"sizes"`
}

// Snapshot captures the base positions and current colors
func (f *Field) Snapshot(seed uint64) Snapshot {
	s := Snapshot{
		Variant:   f.variant,
		Theme:     f.theme,
		Seed:      seed,
		Count:     len(f.positions),
		PointSize: f.params.PointSize,
		Positions: make([]float32, 0, 3*len(f.positions)),
		Colors:    make([]float32, 0, 3*len(f.colors)),
		Sizes:     make([]float32, 0, len(f.sizes)),
	}

	for _, p := range f.positions {
		s.Positions = append(s.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	}
	for _, c := range f.colors {
		s.Colors = append(s.Colors, float32(c.R), float32(c.G), float32(c.B))
	}
	for _, sz := range f.sizes {
		s.Sizes = append(s.Sizes, float32(sz))
	}
	return s
}
