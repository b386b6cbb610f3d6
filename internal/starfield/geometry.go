package starfield

import (
	"fmt"
	"math"
	"math/rand/v2"
)

type Shape string

const (
	Box    Shape = "box"
	Sphere Shape = "sphere"
	Cone   Shape = "cone"
)

var shapeCycle = [...]Shape{Box, Sphere, Cone}

const (
	GeometryCount  = 15
	GeometrySpread = 15.0
)

// Geometry is one floating wireframe or solid shape of the hero scene
type Geometry struct {
	Shape     Shape   `json:"shape"`
	Position  Vec3    `json:"position"`
	Rotation  Vec3    `json:"rotation"`
	Scale     float64 `json:"scale"`
	Hue       float64 `json:"hue"`
	Wireframe bool    `json:"wireframe"`
}

// Color renders the shape's hue as a CSS color
func (g Geometry) Color() string {
	return fmt.Sprintf("hsl(%.0f, 70%%, 60%%)", g.Hue)
}

// Geometries lays out the floating shapes for seed, cycling box, sphere and cone
func Geometries(seed uint64) []Geometry {
	rng := rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))

	out := make([]Geometry, GeometryCount)
	for i := range out {
		out[i] = Geometry{
			Shape: shapeCycle[i%len(shapeCycle)],
			Position: Vec3{
				X: (rng.Float64() - 0.5) * GeometrySpread,
				Y: (rng.Float64() - 0.5) * GeometrySpread,
				Z: (rng.Float64() - 0.5) * GeometrySpread,
			},
			Rotation: Vec3{
				X: rng.Float64() * math.Pi,
				Y: rng.Float64() * math.Pi,
				Z: rng.Float64() * math.Pi,
			},
			Scale:     between(rng, 0.3, 0.7),
			Hue:       between(rng, 200, 260),
			Wireframe: rng.Float64() > 0.5,
		}
	}
	return out
}
