package scene

import (
	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
	"github.com/rtweekend/go-parallel-raytracer/pkg/geometry"
	"github.com/rtweekend/go-parallel-raytracer/pkg/material"
	"github.com/rtweekend/go-parallel-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: two diffuse spheres resting on a
// large ground sphere, with a fuzzy metal torus ringed around a small red
// marker sphere.
func NewDefaultScene(aspectRatio float64) *Scene {
	yellowDiffuse := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	blueDiffuse := material.NewLambertian(core.NewVec3(0.1, 0.1, 0.8))
	redDiffuse := material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1))
	metal := material.NewMetal(core.NewVec3(1.0, 1.0, 1.0), 0.1)

	torusCenter := core.NewVec3(1, 0, -1.5)

	world := core.HittableList{
		// Ground
		geometry.NewSphere(core.NewVec3(0, -100.5, 0), 100, yellowDiffuse),
		geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5, blueDiffuse),
		geometry.NewTorus(torusCenter, 0.6, 0.2, metal),
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
