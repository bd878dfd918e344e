package renderer

import (
	"math"
	"math/rand"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// Camera generates primary rays for rendering
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewCamera creates a positionable thin-lens camera. verticalFov is in
// degrees; aperture 0 disables defocus blur.
func NewCamera(lookFrom, lookAt core.Point3, vup core.Vec3, verticalFov, aspectRatio, aperture, focusDist float64) *Camera {
	theta := verticalFov * math.Pi / 180
	h := math.Tan(theta / 2)

	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      aperture / 2,
	}
}

// NewViewportCamera creates a camera directly from a viewport rectangle
func NewViewportCamera(origin, lowerLeftCorner core.Point3, horizontal, vertical core.Vec3) *Camera {
	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               core.NewVec3(1, 0, 0),
		v:               core.NewVec3(0, 1, 0),
	}
}

// GetRay generates a ray through viewport coordinates (s, t) in [0,1]²,
// with a random lens offset when the aperture is open.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	var onLens core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		onLens = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(onLens)

	return core.NewRay(c.origin.Add(onLens), direction)
}
