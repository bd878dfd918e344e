package geometry

import (
	"math"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

const (
	// marchEpsilon is the surface distance at which marching stops and
	// reports a hit.
	marchEpsilon = 1e-6
	// marchMaxSteps bounds the march so grazing rays cannot loop forever.
	marchMaxSteps = 512
	// gradientStep is the central-difference step for normal estimation.
	gradientStep = 1e-5
)

// ImplicitMarched is a surface defined by a signed distance function,
// intersected by sphere marching. Dist returns the signed distance from a
// point to the surface; MaxDist returns an upper bound on the distance at
// which a ray starting at the given point can still hit the surface.
type ImplicitMarched struct {
	Dist     func(p core.Point3) float64
	MaxDist  func(p core.Point3) float64
	Material core.Material
}

// NewImplicitMarched creates a sphere-marched implicit surface
func NewImplicitMarched(dist, maxDist func(p core.Point3) float64, material core.Material) *ImplicitMarched {
	return &ImplicitMarched{Dist: dist, MaxDist: maxDist, Material: material}
}

// Hit marches along the ray from tMin, stepping by the unsigned distance at
// each point, until it converges on the surface or exceeds the distance
// budget. The step is unsigned so a ray starting inside the surface marches
// forward to its exit point instead of backward out of the window.
func (im *ImplicitMarched) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	dirLength := ray.Direction.Length()
	if dirLength == 0 {
		return nil, false
	}

	// The march is limited by both the caller's window and the surface's
	// own bound on how far away a hit can be.
	limit := math.Min(tMax, im.MaxDist(ray.Origin)/dirLength)

	t := tMin
	for step := 0; step < marchMaxSteps && t < limit; step++ {
		point := ray.At(t)
		d := im.Dist(point)
		if math.Abs(d) < marchEpsilon {
			hit := &core.HitRecord{
				T:        t,
				Point:    point,
				Material: im.Material,
			}
			hit.SetFaceNormal(ray, im.normalAt(point))
			return hit, true
		}
		// Steps are in world units; convert to ray-parameter units. The
		// magnitude keeps t monotonically increasing when d is negative.
		t += math.Abs(d) / dirLength
	}

	return nil, false
}

// normalAt estimates the outward normal as the central-difference gradient of
// the distance function.
func (im *ImplicitMarched) normalAt(p core.Point3) core.Vec3 {
	const h = gradientStep
	return core.NewVec3(
		im.Dist(core.NewVec3(p.X+h, p.Y, p.Z))-im.Dist(core.NewVec3(p.X-h, p.Y, p.Z)),
		im.Dist(core.NewVec3(p.X, p.Y+h, p.Z))-im.Dist(core.NewVec3(p.X, p.Y-h, p.Z)),
		im.Dist(core.NewVec3(p.X, p.Y, p.Z+h))-im.Dist(core.NewVec3(p.X, p.Y, p.Z-h)),
	).Normalize()
}
