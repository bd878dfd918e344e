package scene

import (
	"math"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
	"github.com/rtweekend/go-parallel-raytracer/pkg/geometry"
	"github.com/rtweekend/go-parallel-raytracer/pkg/material"
	"github.com/rtweekend/go-parallel-raytracer/pkg/renderer"
)

// NewMarchedScene creates the default layout with the torus expressed as a
// sphere-marched signed distance function instead of an analytic surface,
// plus a marched sphere for comparison against its analytic twin.
func NewMarchedScene(aspectRatio float64) *Scene {
	yellowDiffuse := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	blueDiffuse := material.NewLambertian(core.NewVec3(0.1, 0.1, 0.8))
	redDiffuse := material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1))
	metal := material.NewMetal(core.NewVec3(1.0, 1.0, 1.0), 0.1)

	const major, minor = 0.6, 0.2
	torusCenter := core.NewVec3(1, 0, -1.5)

	// Flat-lying torus: ring in the xz plane around the local y axis
	torus := geometry.NewImplicitMarched(
		func(p core.Point3) float64 {
			q := p.Subtract(torusCenter)
			ring := math.Sqrt(q.X*q.X+q.Z*q.Z) - major
			return math.Sqrt(ring*ring+q.Y*q.Y) - minor
		},
		func(p core.Point3) float64 {
			return p.Subtract(torusCenter).Length() + major + minor
		},
		metal,
	)

	marchedSphere := geometry.NewImplicitMarched(
		func(p core.Point3) float64 {
			return p.Subtract(core.NewVec3(-1.2, 0, -1.5)).Length() - 0.3
		},
		func(p core.Point3) float64 {
			return p.Subtract(core.NewVec3(-1.2, 0, -1.5)).Length() + 0.6
		},
		blueDiffuse,
	)

	world := core.HittableList{
		geometry.NewSphere(core.NewVec3(0, -100.5, 0), 100, yellowDiffuse),
		torus,
		marchedSphere,
		geometry.NewSphere(torusCenter, 0.05, redDiffuse),
	}

	camera := renderer.NewCamera(
		core.NewVec3(8, 2.6, 4.4),
		torusCenter,
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0, 1.0,
	)

	return &Scene{World: world, Camera: camera}
}
