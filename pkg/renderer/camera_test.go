package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	lookFrom := core.NewVec3(8, 2.6, 4.4)
	lookAt := core.NewVec3(1, 0, -1.5)
	camera := NewCamera(lookFrom, lookAt, core.NewVec3(0, 1, 0), 20, 16.0/9.0, 0, 1.0)
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 0.5, random)

	assert.Equal(t, lookFrom, ray.Origin)
	expected := lookAt.Subtract(lookFrom).Normalize()
	assert.InDelta(t, 0, ray.Direction.Normalize().Subtract(expected).Length(), 1e-9)
}

func TestCamera_ZeroApertureIsDeterministic(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1.0, 0, 1.0)

	a := camera.GetRay(0.25, 0.75, rand.New(rand.NewSource(1)))
	b := camera.GetRay(0.25, 0.75, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b, "no lens sampling without an aperture")
}

func TestCamera_FieldOfView(t *testing.T) {
	// 90° vertical fov at focus distance 1: the viewport spans [-1,1]
	// vertically, so the corner rays leave at 45° from the axis.
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1.0, 0, 1.0)
	random := rand.New(rand.NewSource(42))

	top := camera.GetRay(0.5, 1.0, random).Direction.Normalize()
	bottom := camera.GetRay(0.5, 0.0, random).Direction.Normalize()

	assert.InDelta(t, math.Sqrt(0.5), top.Y, 1e-9)
	assert.InDelta(t, -math.Sqrt(0.5), bottom.Y, 1e-9)
}

func TestCamera_ApertureOffsetsStayOnFocusPlane(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	const focusDist = 3.0
	camera := NewCamera(lookFrom, lookAt, core.NewVec3(0, 1, 0), 60, 1.0, 0.4, focusDist)
	random := rand.New(rand.NewSource(42))

	// All lens-perturbed rays through the viewport center converge on the
	// same focus-plane point.
	focusPoint := camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(0))).At(1)
	wantTarget := core.NewVec3(0, 0, -focusDist)
	require.InDelta(t, 0, focusPoint.Subtract(wantTarget).Length(), 1e-6)

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		assert.InDelta(t, 0, ray.At(1).Subtract(wantTarget).Length(), 1e-9)
		assert.LessOrEqual(t, ray.Origin.Subtract(lookFrom).Length(), 0.2+1e-9)
	}
}

func TestViewportCamera_MatchesRectangle(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	lowerLeft := core.NewVec3(-2, -1, -1)
	horizontal := core.NewVec3(4, 0, 0)
	vertical := core.NewVec3(0, 2, 0)
	camera := NewViewportCamera(origin, lowerLeft, horizontal, vertical)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		s, t     float64
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-2, -1, -1)},
		{1, 1, core.NewVec3(2, 1, -1)},
		{0.5, 0.5, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.s, tt.t, random)
		assert.Equal(t, origin, ray.Origin)
		assert.InDelta(t, 0, ray.Direction.Subtract(tt.expected).Length(), 1e-12)
	}
}
