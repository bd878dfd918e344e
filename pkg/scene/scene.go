// Package scene builds the worlds the renderer can draw. Scenes own their
// primitives and camera; materials are constructed once and shared by
// reference across every primitive that uses them.
package scene

import (
	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
	"github.com/rtweekend/go-parallel-raytracer/pkg/renderer"
)

// Scene contains everything needed to render one image
type Scene struct {
	World  core.HittableList
	Camera *renderer.Camera
}
