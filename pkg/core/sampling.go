package core

import (
	"math"
	"math/rand"
)

// RandomUnitVector generates a uniformly distributed point on the unit sphere
// by sampling z uniformly in [-1,1) and an azimuth uniformly in [0,2π).
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 2*random.Float64() - 1
	sinTheta := math.Sqrt(1 - z*z)
	phi := 2 * math.Pi * random.Float64()
	return Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: z,
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere by
// scaling a random unit vector by a random radius.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	return RandomUnitVector(random).Multiply(random.Float64())
}

// RandomInUnitDisk generates a random point in the unit disk in the z=0 plane
// (used for thin-lens defocus sampling).
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomVec3 generates a vector with each component uniform in [0,1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{X: random.Float64(), Y: random.Float64(), Z: random.Float64()}
}

// RandomVec3Range generates a vector with each component uniform in [lo,hi)
func RandomVec3Range(random *rand.Rand, lo, hi float64) Vec3 {
	span := hi - lo
	return Vec3{
		X: lo + span*random.Float64(),
		Y: lo + span*random.Float64(),
		Z: lo + span*random.Float64(),
	}
}
