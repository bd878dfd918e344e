package material

import (
	"math"
	"math/rand"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// Metal represents a reflective material with an optional fuzzy perturbation
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz values with |fuzz| >= 1 clamp
// to 1.
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if math.Abs(fuzz) >= 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the incoming direction about the normal and perturbs it by
// the fuzz factor. The ray is absorbed when the mirror reflection points into
// the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Absorption is decided on the un-fuzzed mirror direction
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	direction := reflected
	if m.Fuzz != 0 {
		direction = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}
