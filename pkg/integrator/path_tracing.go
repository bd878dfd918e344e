package integrator

import (
	"math"
	"math/rand"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// shadowAcneBias is the lower intersection bound that keeps scattered rays
// from re-hitting the surface they just left due to floating-point error.
const shadowAcneBias = 0.001

// PathTracer computes ray colors by recursive path tracing against a scene,
// with a vertical background gradient for rays that escape. It holds no
// mutable state, so a single instance is safe for concurrent use.
type PathTracer struct {
	// Background gradient endpoints: BottomColor at the horizon blending to
	// TopColor at the zenith.
	TopColor    core.Color
	BottomColor core.Color
}

// NewPathTracer creates a path tracer with the classic white-to-sky-blue
// background gradient.
func NewPathTracer() *PathTracer {
	return &PathTracer{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor returns the color seen along a ray, following scattered bounces
// until the depth budget is exhausted, the ray is absorbed, or it escapes to
// the background.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int) core.Color {
	// Bounce budget exhausted: no more light is gathered. This also bounds
	// recursion between perfectly reflective surfaces.
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, shadowAcneBias, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Absorbed
		return core.Color{}
	}

	// Attenuate whatever light arrives along the scattered ray
	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, random, depth-1))
}

// backgroundGradient linearly blends the background colors by the ray
// direction's vertical component.
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
