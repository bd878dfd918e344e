package scene

import (
	"math/rand"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
	"github.com/rtweekend/go-parallel-raytracer/pkg/geometry"
	"github.com/rtweekend/go-parallel-raytracer/pkg/material"
	"github.com/rtweekend/go-parallel-raytracer/pkg/renderer"
)

// NewCoverScene creates the classic "Ray Tracing in One Weekend" cover: a
// field of small random spheres around three large ones. The layout is
// deterministic for a given seed.
func NewCoverScene(seed int64, aspectRatio float64) *Scene {
	random := rand.New(rand.NewSource(seed))
	world := core.HittableList{}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world = append(world, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch chooseMat := random.Float64(); {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}

			world = append(world, geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	world = append(world,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0.1, 10.0,
	)

	return &Scene{World: world, Camera: camera}
}
