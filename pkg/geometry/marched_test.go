package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

func sdfSphere(center core.Point3, radius float64) *ImplicitMarched {
	return NewImplicitMarched(
		func(p core.Point3) float64 {
			return p.Subtract(center).Length() - radius
		},
		func(p core.Point3) float64 {
			return p.Subtract(center).Length() + 2*radius
		},
		nil,
	)
}

func TestImplicitMarched_Hit_SDFSphere(t *testing.T) {
	surface := sdfSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := surface.Hit(ray, 0.001, math.Inf(1))
	require.True(t, isHit)
	assert.InDelta(t, 0.5, hit.T, 1e-3)
	assert.InDelta(t, 0, hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length(), 1e-3)
	assert.True(t, hit.FrontFace)
}

func TestImplicitMarched_Hit_Miss(t *testing.T) {
	surface := sdfSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1))

	_, isHit := surface.Hit(ray, 0.001, math.Inf(1))
	assert.False(t, isHit)
}

func TestImplicitMarched_Hit_NonUnitDirection(t *testing.T) {
	// Doubling the direction length halves the reported t
	surface := sdfSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -4))

	hit, isHit := surface.Hit(ray, 0.001, math.Inf(1))
	require.True(t, isHit)
	assert.InDelta(t, 0.125, hit.T, 1e-3)
}

func TestImplicitMarched_Hit_OriginInside(t *testing.T) {
	// The distance is negative at the start, so the march must still move
	// forward and report the exit point, never a t behind the window.
	surface := sdfSphere(core.NewVec3(0, 0, 0), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := surface.Hit(ray, 0.001, math.Inf(1))
	require.True(t, isHit)
	assert.GreaterOrEqual(t, hit.T, 0.001)
	assert.InDelta(t, 0.5, hit.T, 1e-3)
	assert.False(t, hit.FrontFace)
	assert.InDelta(t, 0, hit.Normal.Subtract(core.NewVec3(-1, 0, 0)).Length(), 1e-3)
}

func TestImplicitMarched_Hit_RespectsTMax(t *testing.T) {
	surface := sdfSphere(core.NewVec3(0, 0, -10), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	_, isHit := surface.Hit(ray, 0.001, 5.0)
	assert.False(t, isHit)

	_, isHit = surface.Hit(ray, 0.001, math.Inf(1))
	assert.True(t, isHit)
}

func TestImplicitMarched_Hit_SDFTorus(t *testing.T) {
	// A flat-lying torus (axis y) with major radius 0.6 and tube 0.2
	const major, minor = 0.6, 0.2
	surface := NewImplicitMarched(
		func(p core.Point3) float64 {
			ring := math.Sqrt(p.X*p.X+p.Z*p.Z) - major
			return math.Sqrt(ring*ring+p.Y*p.Y) - minor
		},
		func(p core.Point3) float64 {
			return p.Length() + major + minor
		},
		nil,
	)

	// Straight down onto the top of the tube at (0.6, 0.2, 0)
	ray := core.NewRay(core.NewVec3(major, 2, 0), core.NewVec3(0, -1, 0))
	hit, isHit := surface.Hit(ray, 0.001, math.Inf(1))

	require.True(t, isHit)
	assert.InDelta(t, 2-minor, hit.T, 1e-3)
	assert.InDelta(t, 0, hit.Normal.Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-3)

	// Down the axis through the hole
	ray = core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	_, isHit = surface.Hit(ray, 0.001, math.Inf(1))
	assert.False(t, isHit)
}

func TestImplicitMarched_Hit_DegenerateRay(t *testing.T) {
	surface := sdfSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	_, isHit := surface.Hit(ray, 0.001, math.Inf(1))
	assert.False(t, isHit)
}
