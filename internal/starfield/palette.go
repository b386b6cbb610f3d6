package starfield

import "math/rand/v2"

// ColoredShare is the fraction of background stars that get a hue instead of gray
const ColoredShare = 0.15

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func backgroundColor(t Theme, rng *rand.Rand) Color {
	colored := rng.Float64() > 1-ColoredShare

	if t == Light {
		if !colored {
			g := between(rng, 0.1, 0.3)
			return Color{g, g, g}
		}
		if rng.Float64() < 0.5 {
			// dark blue
			return Color{between(rng, 0.05, 0.15), between(rng, 0.1, 0.25), between(rng, 0.3, 0.5)}
		}
		// dark purple
		return Color{between(rng, 0.2, 0.3), between(rng, 0.05, 0.15), between(rng, 0.3, 0.45)}
	}

	if !colored {
		b := between(rng, 0.8, 1)
		return Color{b, b, b}
	}
	switch kind := rng.Float64(); {
	case kind < 0.25:
		return Color{between(rng, 0.5, 0.8), between(rng, 0.7, 1), 1}
	case kind < 0.5:
		return Color{1, between(rng, 0.4, 0.8), between(rng, 0.2, 0.5)}
	case kind < 0.75:
		return Color{between(rng, 0.8, 1), between(rng, 0.3, 0.6), between(rng, 0.9, 1)}
	default:
		return Color{between(rng, 0.3, 0.6), between(rng, 0.8, 1), between(rng, 0.7, 1)}
	}
}

func interactiveColor(t Theme, rng *rand.Rand) Color {
	if t == Light {
		return Color{between(rng, 0.05, 0.15), between(rng, 0.1, 0.25), between(rng, 0.3, 0.5)}
	}
	return Color{between(rng, 0.5, 1), between(rng, 0.7, 1), 1}
}

func heroColor(t Theme, rng *rand.Rand) Color {
	kind := rng.Float64()
	if t == Light {
		switch {
		case kind < 0.33:
			return Color{between(rng, 0.05, 0.15), between(rng, 0.1, 0.25), between(rng, 0.4, 0.6)}
		case kind < 0.66:
			return Color{between(rng, 0.2, 0.3), between(rng, 0.05, 0.15), between(rng, 0.4, 0.6)}
		default:
			return Color{between(rng, 0.02, 0.1), between(rng, 0.2, 0.3), between(rng, 0.35, 0.5)}
		}
	}

	switch {
	case kind < 0.33:
		return Color{between(rng, 0.3, 0.6), between(rng, 0.6, 1), 1}
	case kind < 0.66:
		return Color{between(rng, 0.6, 1), between(rng, 0.3, 0.6), 1}
	default:
		return Color{between(rng, 0.2, 0.5), between(rng, 0.8, 1), 1}
	}
}
