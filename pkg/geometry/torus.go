package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// imagTolerance is the largest imaginary magnitude a companion-matrix
// eigenvalue may carry and still count as a real quartic root.
const imagTolerance = 1e-15

// Torus represents a torus centered at Center with its axis along z.
// MajorRadius is the distance from the center to the tube center and
// MinorRadius is the tube radius.
type Torus struct {
	Center      core.Point3
	MajorRadius float64
	MinorRadius float64
	Material    core.Material
}

// NewTorus creates a new torus
func NewTorus(center core.Point3, majorRadius, minorRadius float64, material core.Material) *Torus {
	return &Torus{
		Center:      center,
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
		Material:    material,
	}
}

// Hit tests if a ray intersects the torus within [tMin, tMax).
//
// Substituting the ray into the implicit torus equation
//
//	(x² + y² + z² + R² - r²)² = 4R²(x² + y²)
//
// yields a quartic in t whose real roots are the candidate intersection
// parameters. The roots are found as the eigenvalues of the quartic's
// companion matrix, which is robust against the cancellation that plagues
// closed-form quartic formulas.
func (tor *Torus) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	p := ray.Origin.Subtract(tor.Center)
	d := ray.Direction

	rr := tor.MajorRadius * tor.MajorRadius
	g := d.LengthSquared()
	if g == 0 {
		// Degenerate ray with zero direction
		return nil, false
	}
	h := 2 * p.Dot(d)
	i := p.LengthSquared() + rr - tor.MinorRadius*tor.MinorRadius
	j := d.X*d.X + d.Y*d.Y
	k := 2 * (p.X*d.X + p.Y*d.Y)
	l := p.X*p.X + p.Y*p.Y

	// (g t² + h t + i)² = 4R² (j t² + k t + l), expanded to a4..a0
	a4 := g * g
	a3 := 2 * g * h
	a2 := h*h + 2*g*i - 4*rr*j
	a1 := 2*h*i - 4*rr*k
	a0 := i*i - 4*rr*l

	root, ok := smallestQuarticRoot(a4, a3, a2, a1, a0, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: tor.Material,
	}
	hit.SetFaceNormal(ray, tor.normalAt(hit.Point))

	return hit, true
}

// normalAt computes the outward normal from the gradient of the implicit
// torus function at a surface point.
func (tor *Torus) normalAt(point core.Point3) core.Vec3 {
	q := point.Subtract(tor.Center)
	rr := tor.MajorRadius * tor.MajorRadius
	inner := q.LengthSquared() + rr - tor.MinorRadius*tor.MinorRadius

	// ∇f = 4(x(inner - 2R²), y(inner - 2R²), z·inner)
	return core.NewVec3(
		q.X*(inner-2*rr),
		q.Y*(inner-2*rr),
		q.Z*inner,
	).Normalize()
}

// smallestQuarticRoot returns the minimum real root of
// a4 t⁴ + a3 t³ + a2 t² + a1 t + a0 = 0 inside [tMin, tMax), computed as the
// eigenvalues of the monic polynomial's companion matrix.
func smallestQuarticRoot(a4, a3, a2, a1, a0, tMin, tMax float64) (float64, bool) {
	if a4 == 0 {
		return 0, false
	}
	c3 := a3 / a4
	c2 := a2 / a4
	c1 := a1 / a4
	c0 := a0 / a4

	companion := mat.NewDense(4, 4, []float64{
		0, 0, 0, -c0,
		1, 0, 0, -c1,
		0, 1, 0, -c2,
		0, 0, 1, -c3,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return 0, false
	}

	best := math.Inf(1)
	for _, ev := range eig.Values(nil) {
		if math.Abs(imag(ev)) > imagTolerance {
			continue
		}
		t := real(ev)
		if t < tMin || t >= tMax {
			continue
		}
		if t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
