package geometry

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rtweekend/go-parallel-raytracer/pkg/core"
)

// Parallelogram is the surface of an oriented parallelepiped defined by a
// corner and three edge vectors. Its six faces form three pairs of parallel
// planes, one pair per edge.
type Parallelogram struct {
	Corner   core.Point3
	Edges    [3]core.Vec3
	Material core.Material

	// faceNormals[k] is the unit normal of the face pair spanned by the two
	// edges other than k, oriented along edge k.
	faceNormals [3]core.Vec3
}

// NewParallelogram creates a parallelogram surface from a corner point and
// three edge vectors. The edges must be linearly independent.
func NewParallelogram(corner core.Point3, e0, e1, e2 core.Vec3, material core.Material) *Parallelogram {
	p := &Parallelogram{
		Corner:   corner,
		Edges:    [3]core.Vec3{e0, e1, e2},
		Material: material,
	}
	for k := 0; k < 3; k++ {
		a := p.Edges[(k+1)%3]
		b := p.Edges[(k+2)%3]
		n := a.Cross(b).Normalize()
		if n.Dot(p.Edges[k]) < 0 {
			n = n.Negate()
		}
		p.faceNormals[k] = n
	}
	return p
}

// Hit tests the ray against all six faces within [tMin, tMax).
//
// For the face pair k, spanned by edges A and B and offset by edge C, a point
// on the ray lies on a face when
//
//	corner + α·A + β·B + σ·C = origin + t·direction, σ ∈ {0, 1}
//
// which is a 3×3 linear system in (α, β, t), solved by LU decomposition. A
// candidate qualifies only if α and β lie in [0,1) and t improves on the best
// intersection found so far.
func (p *Parallelogram) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	bestT := tMax
	var bestNormal core.Vec3
	found := false

	var lu mat.LU
	var x mat.VecDense

	for k := 0; k < 3; k++ {
		a := p.Edges[(k+1)%3]
		b := p.Edges[(k+2)%3]
		c := p.Edges[k]

		// Columns are A, B and -direction; the matrix is shared by both
		// faces of the pair, so factorize once.
		m := mat.NewDense(3, 3, []float64{
			a.X, b.X, -ray.Direction.X,
			a.Y, b.Y, -ray.Direction.Y,
			a.Z, b.Z, -ray.Direction.Z,
		})
		lu.Factorize(m)

		for sigma := 0; sigma < 2; sigma++ {
			offset := ray.Origin.Subtract(p.Corner).Subtract(c.Multiply(float64(sigma)))
			rhs := mat.NewVecDense(3, []float64{offset.X, offset.Y, offset.Z})

			// A singular or hopelessly ill-conditioned system means the
			// ray is (numerically) parallel to this face pair: no hit.
			if err := lu.SolveVecTo(&x, false, rhs); err != nil {
				continue
			}

			alpha, beta, t := x.AtVec(0), x.AtVec(1), x.AtVec(2)
			if alpha < 0 || alpha >= 1 || beta < 0 || beta >= 1 {
				continue
			}
			if t < tMin || t >= bestT {
				continue
			}

			bestT = t
			bestNormal = p.faceNormals[k]
			if sigma == 0 {
				bestNormal = bestNormal.Negate()
			}
			found = true
		}
	}

	if !found {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        bestT,
		Point:    ray.At(bestT),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, bestNormal)

	return hit, true
}
