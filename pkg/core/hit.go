package core

import "math/rand"

// Material decides how a ray interacts with a surface it has hit.
type Material interface {
	// Scatter produces an attenuation color and an outgoing ray for an
	// incoming ray at a hit point. A false return means the ray was absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The outgoing ray
	Attenuation Color // Fractional energy retained by this bounce
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length and point away from the surface.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. Hit tests the half-open parameter
// window [tMin, tMax) and returns the nearest intersection within it, if any.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// HittableList is a collection of hittables that is itself hittable.
type HittableList []Hittable

// Hit returns the closest intersection among all members within [tMin, tMax).
// The window is narrowed as hits are found, so every member is scanned and the
// minimum-t hit wins.
func (l HittableList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	for _, object := range l {
		if hit, isHit := object.Hit(ray, tMin, tMax); isHit {
			tMax = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}
