// Package starfield generates and animates the decorative point clouds drawn
// behind the site's pages.
package starfield

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown starfield variant")

type Variant string

const (
	Background  Variant = "background"
	Interactive Variant = "interactive"
	Hero        Variant = "hero"
)

var Variants = []Variant{Background, Interactive, Hero}

// ParseVariant matches a variant name case-insensitively
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme falls back to Dark for anything it does not recognise
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == Light {
		return Light
	}
	return Dark
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Color struct {
	R, G, B float64
}

type layout int

const (
	shell layout = iota
	cube
)

// Params holds the fixed tuning of one variant
type Params struct {
	Count int

	layout      layout
	InnerRadius float64
	OuterRadius float64
	CubeSize    float64

	// radians per second, scaled by the clamped frame delta
	SpinX float64
	SpinY float64

	// extra rotation per step while the pointer is held, times pointer position
	PointerSpin float64

	Wave  bool
	Repel bool

	PointSize float64
	MinSize   float64
	MaxSize   float64

	palette func(Theme, *rand.Rand) Color
}

const (
	RepelStrength = 3.0
	RepelRadius   = 8.0
	PointerScale  = 5.0
)

var params = map[Variant]Params{
	Background: {
		Count:       5000,
		layout:      shell,
		InnerRadius: 50,
		OuterRadius: 100,
		SpinX:       0.005,
		SpinY:       0.01,
		PointSize:   0.4,
		MinSize:     0.2,
		MaxSize:     1.0,
		palette:     backgroundColor,
	},
	Interactive: {
		Count:       1000,
		layout:      cube,
		CubeSize:    20,
		SpinX:       0.03,
		SpinY:       0.05,
		PointerSpin: 0.002,
		PointSize:   0.07,
		MinSize:     1,
		MaxSize:     1,
		palette:     interactiveColor,
	},
	Hero: {
		Count:       2000,
		layout:      shell,
		InnerRadius: 10,
		OuterRadius: 20,
		Wave:        true,
		Repel:       true,
		PointSize:   0.05,
		MinSize:     0.03,
		MaxSize:     0.1,
		palette:     heroColor,
	},
}

// ParamsFor returns the tuning of v
func ParamsFor(v Variant) (Params, error) {
	p, ok := params[v]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return p, nil
}

// sample places one point according to the variant layout. Shell points use a
// uniform radius in the band and phi = acos(2u-1) so directions are uniform.
func (p Params) sample(rng *rand.Rand) Vec3 {
	if p.layout == cube {
		return Vec3{
			X: (rng.Float64() - 0.5) * p.CubeSize,
			Y: (rng.Float64() - 0.5) * p.CubeSize,
			Z: (rng.Float64() - 0.5) * p.CubeSize,
		}
	}

	radius := p.InnerRadius + rng.Float64()*(p.OuterRadius-p.InnerRadius)
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(rng.Float64()*2 - 1)

	return Vec3{
		X: radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Sin(phi) * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}
