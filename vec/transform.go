/*
 * transform.go, part of goxtal.
 *
 * Copyright 2024 Rodrigo Molina <rmolina{at}nanomatDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vec

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// A Transform is a rigid rotation of 3-space about an anchor point:
// x' = R(x - anchor) + anchor. The zero anchor gives a plain linear
// rotation.
type Transform struct {
	m      *mat.Dense //3x3
	anchor []float64  //3
}

// NewTransform builds a Transform from a 3x3 operator and an optional
// anchor point (nil means the origin). The matrix is copied.
func NewTransform(m mat.Matrix, anchor *Point) (*Transform, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return nil, ErrNotRotation
	}
	t := &Transform{m: mat.DenseCopyOf(m), anchor: make([]float64, 3)}
	if anchor != nil {
		if anchor.Dims() != 3 {
			return nil, ErrShape
		}
		copy(t.anchor, anchor.coords)
	}
	return t, nil
}

// RotationAbout builds the rotation by angle radians about the given axis
// through the anchor point (nil anchor means the origin), using the
// Rodrigues formula. The axis need not be normalized but must not have zero
// length. Set degrees to interpret angle in degrees.
func RotationAbout(angle float64, axis *Vector, anchor *Point, degrees bool) (*Transform, error) {
	if axis == nil {
		return nil, ErrNilVector
	}
	if axis.Dims() != 3 {
		return nil, ErrShape
	}
	n := axis.Norm()
	if n <= appzero {
		return nil, ErrZeroLength
	}
	if degrees {
		angle = Deg2Rad(angle)
	}
	ux := axis.comps[0] / n
	uy := axis.comps[1] / n
	uz := axis.comps[2] / n
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	k := 1 - cos
	m := mat.NewDense(3, 3, []float64{
		cos + ux*ux*k, ux*uy*k - uz*sin, ux*uz*k + uy*sin,
		uy*ux*k + uz*sin, cos + uy*uy*k, uy*uz*k - ux*sin,
		uz*ux*k - uy*sin, uz*uy*k + ux*sin, cos + uz*uz*k,
	})
	return NewTransform(m, anchor)
}

// RotationBetween builds the rotation taking the direction of from onto the
// direction of to, about the anchor point. Parallel vectors give the
// identity; antiparallel vectors rotate by pi about an arbitrary
// perpendicular axis.
func RotationBetween(from, to *Vector, anchor *Point) (*Transform, error) {
	angle, err := Angle(from, to)
	if err != nil {
		return nil, err
	}
	if angle <= appzero {
		return NewTransform(eye3(), anchor)
	}
	if math.Pi-angle <= appzero {
		return RotationAbout(math.Pi, perpendicularTo(from), anchor, false)
	}
	axis, err := Cross(from, to)
	if err != nil {
		return nil, err
	}
	return RotationAbout(angle, axis, anchor, false)
}

// perpendicularTo returns some vector orthogonal to v, for the antiparallel
// alignment case where the rotation axis is not determined by the operands.
func perpendicularTo(v *Vector) *Vector {
	// Cross v with whichever coordinate axis it is least aligned with.
	axis := New(1, 0, 0)
	if math.Abs(v.comps[0]) >= math.Abs(v.comps[1]) {
		axis = New(0, 1, 0)
	}
	p, _ := Cross(v, axis) //v is nonzero and not parallel to axis
	return p
}

// Matrix returns a copy of the 3x3 operator.
func (t *Transform) Matrix() *mat.Dense {
	return mat.DenseCopyOf(t.m)
}

// Anchor returns the anchor point of the transform.
func (t *Transform) Anchor() *Point {
	return &Point{coords: append([]float64(nil), t.anchor...)}
}

// apply rotates a raw coordinate triple in place.
func (t *Transform) apply(x []float64) {
	var r [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i] += t.m.At(i, j) * (x[j] - t.anchor[j])
		}
	}
	for i := 0; i < 3; i++ {
		x[i] = r[i] + t.anchor[i]
	}
}

// ApplyPoint returns the image of p under the transform.
func (t *Transform) ApplyPoint(p *Point) (*Point, error) {
	if p == nil || p.Dims() != 3 {
		return nil, ErrShape
	}
	q := p.Clone()
	t.apply(q.coords)
	return q, nil
}

// ApplyVector returns a rotated copy of v. Both endpoints are transformed
// and the components re-derived, exactly as Vector.Rotate does in place.
func (t *Transform) ApplyVector(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	r := v.Clone()
	if err := r.Rotate(t); err != nil {
		return nil, err
	}
	return r, nil
}

// Compose returns the transform equivalent to applying t after s. Both must
// share an anchor for the composition to stay a pure rotation about that
// anchor; Compose keeps t's anchor.
func (t *Transform) Compose(s *Transform) *Transform {
	m := mat.NewDense(3, 3, nil)
	m.Mul(t.m, s.m)
	return &Transform{m: m, anchor: append([]float64(nil), t.anchor...)}
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}
