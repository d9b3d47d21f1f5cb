/*
 * vector.go, part of goxtal.
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
	"fmt"
	"math"
	"strings"
)

// A Vector is a directed displacement between an anchor point p0 and a head
// point p. The components, anchor and head are stored together and kept
// consistent: p == p0 + components at all times. Mutation happens only
// through methods; each one re-derives whichever of the three
// representations went stale.
type Vector struct {
	comps []float64
	p0    []float64 //anchor
	p     []float64 //head
}

// New returns a Vector with the given components anchored at the origin.
// With no arguments it returns a 3-dimensional zero vector.
func New(components ...float64) *Vector {
	if len(components) == 0 {
		return Zero(3)
	}
	v := &Vector{
		comps: append([]float64(nil), components...),
		p0:    make([]float64, len(components)),
		p:     make([]float64, len(components)),
	}
	v.updateHead()
	return v
}

// Zero returns an nd-dimensional zero vector anchored at the origin.
// Non-positive nd defaults to 3.
func Zero(nd int) *Vector {
	if nd <= 0 {
		nd = 3
	}
	return &Vector{
		comps: make([]float64, nd),
		p0:    make([]float64, nd),
		p:     make([]float64, nd),
	}
}

// WithAnchor returns a Vector with the given components anchored at p0, so
// its head is p0 + components. A nil anchor means the origin.
func WithAnchor(components []float64, p0 *Point) (*Vector, error) {
	v := New(components...)
	if p0 == nil {
		return v, nil
	}
	if p0.Dims() != v.Dims() {
		return nil, ErrShape
	}
	copy(v.p0, p0.coords)
	v.updateHead()
	return v, nil
}

// FromPoints returns the Vector from anchor p0 to head p, i.e. with
// components p - p0. A nil endpoint means the origin; if both are nil the
// result is the 3-dimensional zero vector.
func FromPoints(p0, p *Point) (*Vector, error) {
	nd := 3
	if p != nil {
		nd = p.Dims()
	} else if p0 != nil {
		nd = p0.Dims()
	}
	if p0 != nil && p != nil && p0.Dims() != p.Dims() {
		return nil, ErrShape
	}
	v := Zero(nd)
	if p0 != nil {
		copy(v.p0, p0.coords)
	}
	if p != nil {
		copy(v.p, p.coords)
	}
	v.updateComponents()
	return v, nil
}

// updateHead is the authoritative re-derivation after the components or the
// anchor changed: p = p0 + comps.
func (v *Vector) updateHead() {
	for i := range v.comps {
		v.p[i] = v.p0[i] + v.comps[i]
	}
}

// updateComponents is the authoritative re-derivation after an endpoint
// changed: comps = p - p0.
func (v *Vector) updateComponents() {
	for i := range v.comps {
		v.comps[i] = v.p[i] - v.p0[i]
	}
}

// Dims returns the dimensionality of the vector.
func (v *Vector) Dims() int { return len(v.comps) }

// At returns the ith component. Panics if out of range.
func (v *Vector) At(i int) float64 {
	if i < 0 || i >= len(v.comps) {
		panic(fmt.Sprintf("goxtal/vec: Vector component %d out of range (%d)", i, len(v.comps)))
	}
	return v.comps[i]
}

// SetAt assigns the ith component and re-derives the head.
func (v *Vector) SetAt(i int, val float64) {
	if i < 0 || i >= len(v.comps) {
		panic(fmt.Sprintf("goxtal/vec: Vector component %d out of range (%d)", i, len(v.comps)))
	}
	v.comps[i] = val
	v.p[i] = v.p0[i] + val
}

// X returns the first component.
func (v *Vector) X() float64 { return v.At(0) }

// Y returns the second component.
func (v *Vector) Y() float64 { return v.At(1) }

// Z returns the third component.
func (v *Vector) Z() float64 { return v.At(2) }

// SetX assigns the first component.
func (v *Vector) SetX(val float64) { v.SetAt(0, val) }

// SetY assigns the second component.
func (v *Vector) SetY(val float64) { v.SetAt(1, val) }

// SetZ assigns the third component.
func (v *Vector) SetZ(val float64) { v.SetAt(2, val) }

// Components returns a copy of the raw components.
func (v *Vector) Components() []float64 {
	return append([]float64(nil), v.comps...)
}

// Anchor returns a copy of the anchor point p0. The copy keeps callers from
// mutating vector state behind the consistency machinery.
func (v *Vector) Anchor() *Point {
	return &Point{coords: append([]float64(nil), v.p0...)}
}

// Head returns a copy of the head point p.
func (v *Vector) Head() *Point {
	return &Point{coords: append([]float64(nil), v.p...)}
}

// SetComponents replaces the components, keeping the anchor fixed and
// re-deriving the head.
func (v *Vector) SetComponents(components []float64) error {
	if len(components) != len(v.comps) {
		return ErrShape
	}
	copy(v.comps, components)
	v.updateHead()
	return nil
}

// SetAnchor moves the anchor, keeping the head fixed and re-deriving the
// components.
func (v *Vector) SetAnchor(p0 *Point) error {
	if p0 == nil || p0.Dims() != v.Dims() {
		return ErrShape
	}
	copy(v.p0, p0.coords)
	v.updateComponents()
	return nil
}

// SetHead moves the head, keeping the anchor fixed and re-deriving the
// components.
func (v *Vector) SetHead(p *Point) error {
	if p == nil || p.Dims() != v.Dims() {
		return ErrShape
	}
	copy(v.p, p.coords)
	v.updateComponents()
	return nil
}

// Clone returns an independent copy of the vector, endpoints included.
func (v *Vector) Clone() *Vector {
	return &Vector{
		comps: append([]float64(nil), v.comps...),
		p0:    append([]float64(nil), v.p0...),
		p:     append([]float64(nil), v.p...),
	}
}

// Add returns v + u as a new Vector anchored where v is anchored.
func (v *Vector) Add(u *Vector) (*Vector, error) {
	if u == nil {
		return nil, ErrNilVector
	}
	if u.Dims() != v.Dims() {
		return nil, ErrShape
	}
	s := make([]float64, len(v.comps))
	for i := range s {
		s[i] = v.comps[i] + u.comps[i]
	}
	return WithAnchor(s, v.Anchor())
}

// Sub returns v - u as a new Vector anchored where v is anchored.
func (v *Vector) Sub(u *Vector) (*Vector, error) {
	if u == nil {
		return nil, ErrNilVector
	}
	if u.Dims() != v.Dims() {
		return nil, ErrShape
	}
	s := make([]float64, len(v.comps))
	for i := range s {
		s[i] = v.comps[i] - u.comps[i]
	}
	return WithAnchor(s, v.Anchor())
}

// AddIn adds u to v in place. The anchor stays put; head is re-derived.
func (v *Vector) AddIn(u *Vector) error {
	if u == nil {
		return ErrNilVector
	}
	if u.Dims() != v.Dims() {
		return ErrShape
	}
	for i := range v.comps {
		v.comps[i] += u.comps[i]
	}
	v.updateHead()
	return nil
}

// SubIn subtracts u from v in place.
func (v *Vector) SubIn(u *Vector) error {
	if u == nil {
		return ErrNilVector
	}
	if u.Dims() != v.Dims() {
		return ErrShape
	}
	for i := range v.comps {
		v.comps[i] -= u.comps[i]
	}
	v.updateHead()
	return nil
}

// Scaled returns f*v as a new Vector with the same anchor as v.
func (v *Vector) Scaled(f float64) *Vector {
	s := make([]float64, len(v.comps))
	for i := range s {
		s[i] = f * v.comps[i]
	}
	r, _ := WithAnchor(s, v.Anchor()) //dims always match
	return r
}

// Divided returns v/f as a new Vector with the same anchor as v.
func (v *Vector) Divided(f float64) (*Vector, error) {
	if f == 0 {
		return nil, ErrZeroDivide
	}
	return v.Scaled(1 / f), nil
}

// Pow returns a new Vector with the same anchor as v and each component
// raised to the given power.
func (v *Vector) Pow(exp float64) *Vector {
	s := make([]float64, len(v.comps))
	for i := range s {
		s[i] = math.Pow(v.comps[i], exp)
	}
	r, _ := WithAnchor(s, v.Anchor())
	return r
}

// ScaleIn multiplies v by f in place.
func (v *Vector) ScaleIn(f float64) {
	for i := range v.comps {
		v.comps[i] *= f
	}
	v.updateHead()
}

// Mul is the degrade-gracefully multiply: a numeric operand scales the
// vector, anything else (another Vector included) is geometrically
// undefined here, so Mul reports a warning and returns v unchanged instead
// of aborting the caller. The scalar product of two vectors is the explicit
// Dot method.
func (v *Vector) Mul(x interface{}) *Vector {
	switch f := x.(type) {
	case float64:
		return v.Scaled(f)
	case float32:
		return v.Scaled(float64(f))
	case int:
		return v.Scaled(float64(f))
	case int64:
		return v.Scaled(float64(f))
	case *Vector:
		warnf("goxtal/vec: undefined multiplication of a Vector by a Vector (use Dot); returning the left operand")
		return v
	default:
		warnf("goxtal/vec: undefined multiplication of a Vector by %T; returning the left operand", x)
		return v
	}
}

// Div is the degrade-gracefully divide, mirroring Mul.
func (v *Vector) Div(x interface{}) *Vector {
	switch f := x.(type) {
	case float64:
		r, err := v.Divided(f)
		if err != nil {
			warnf("goxtal/vec: division of a Vector by zero; returning the left operand")
			return v
		}
		return r
	case float32:
		return v.Div(float64(f))
	case int:
		return v.Div(float64(f))
	default:
		warnf("goxtal/vec: undefined division of a Vector by %T; returning the left operand", x)
		return v
	}
}

// Dot returns the scalar product of v and u.
func (v *Vector) Dot(u *Vector) (float64, error) {
	if u == nil {
		return 0, ErrNilVector
	}
	if u.Dims() != v.Dims() {
		return 0, ErrShape
	}
	var d float64
	for i := range v.comps {
		d += v.comps[i] * u.comps[i]
	}
	return d, nil
}

// Norm returns the Euclidean norm of the components.
func (v *Vector) Norm() float64 {
	var s float64
	for _, c := range v.comps {
		s += c * c
	}
	return math.Sqrt(s)
}

// Length is an alias for Norm.
func (v *Vector) Length() float64 { return v.Norm() }

// Unit returns the unit vector in the direction of v, anchored where v is.
// A zero vector has no direction: Unit warns and returns v unchanged.
func (v *Vector) Unit() *Vector {
	n := v.Norm()
	if n <= appzero {
		warnf("goxtal/vec: unit vector of a zero-length vector; returning the operand")
		return v
	}
	return v.Scaled(1 / n)
}

// Normalize scales v to unit length in place. A zero vector warns and is
// left unchanged.
func (v *Vector) Normalize() {
	n := v.Norm()
	if n <= appzero {
		warnf("goxtal/vec: cannot normalize a zero-length vector; leaving it unchanged")
		return
	}
	v.ScaleIn(1 / n)
}

// Translate displaces the head by t, and the anchor too unless fixAnchor is
// set. With the anchor fixed the components grow by t; otherwise they are
// untouched (the whole vector rides along).
func (v *Vector) Translate(t *Vector, fixAnchor bool) error {
	if t == nil {
		return ErrNilVector
	}
	if t.Dims() != v.Dims() {
		return ErrShape
	}
	for i := range v.p {
		v.p[i] += t.comps[i]
	}
	if !fixAnchor {
		for i := range v.p0 {
			v.p0[i] += t.comps[i]
		}
	}
	v.updateComponents()
	return nil
}

// Rezero snaps components with absolute value at most epsilon to exactly
// zero and re-derives the head. A non-positive epsilon selects
// DefaultEpsilon. Required before coordinates round-trip through lossy
// exports.
func (v *Vector) Rezero(epsilon float64) {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	for i, c := range v.comps {
		if math.Abs(c) <= epsilon {
			v.comps[i] = 0
		}
	}
	v.updateHead()
}

// Rotate applies the transform to both endpoints of v and re-derives the
// components. The endpoints are the vector's own copies, so rotating one
// vector never moves another that was built from the same anchor.
func (v *Vector) Rotate(t *Transform) error {
	if t == nil {
		return ErrNotRotation
	}
	if v.Dims() != 3 {
		return ErrShape
	}
	t.apply(v.p0)
	t.apply(v.p)
	v.updateComponents()
	return nil
}

// Equal reports whether u has the same components, anchor and head as v
// within appzero.
func (v *Vector) Equal(u *Vector) bool {
	if u == nil || v.Dims() != u.Dims() {
		return false
	}
	for i := range v.comps {
		if math.Abs(v.comps[i]-u.comps[i]) > appzero ||
			math.Abs(v.p0[i]-u.p0[i]) > appzero ||
			math.Abs(v.p[i]-u.p[i]) > appzero {
			return false
		}
	}
	return true
}

// String returns a neat representation of the vector components.
func (v *Vector) String() string {
	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = fmt.Sprintf("%.6f", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Angle returns the angle between u and w in radians, in [0, pi]. Either
// operand having zero length is an error, never a silent NaN.
func Angle(u, w *Vector) (float64, error) {
	if u == nil || w == nil {
		return 0, ErrNilVector
	}
	if u.Dims() != w.Dims() {
		return 0, ErrShape
	}
	nprod := u.Norm() * w.Norm()
	if nprod <= appzero {
		return 0, ErrZeroLength
	}
	dot, err := u.Dot(w)
	if err != nil {
		return 0, err
	}
	arg := dot / nprod
	//Take care of floating point math errors
	if math.Abs(arg-1) <= appzero {
		arg = 1
	} else if math.Abs(arg+1) <= appzero {
		arg = -1
	}
	angle := math.Acos(arg)
	if math.Abs(angle) <= appzero {
		return 0, nil
	}
	return angle, nil
}

// Dot returns the scalar product of u and w.
func Dot(u, w *Vector) (float64, error) {
	if u == nil {
		return 0, ErrNilVector
	}
	return u.Dot(w)
}

// Cross returns the cross product of two 3-vectors, anchored at u's anchor
// unless an override is supplied. For 2-vectors use CrossScalar.
func Cross(u, w *Vector, anchor ...*Point) (*Vector, error) {
	if u == nil || w == nil {
		return nil, ErrNilVector
	}
	if u.Dims() != 3 || w.Dims() != 3 {
		return nil, ErrCrossDims
	}
	c := []float64{
		u.comps[1]*w.comps[2] - u.comps[2]*w.comps[1],
		u.comps[2]*w.comps[0] - u.comps[0]*w.comps[2],
		u.comps[0]*w.comps[1] - u.comps[1]*w.comps[0],
	}
	p0 := u.Anchor()
	if len(anchor) > 0 && anchor[0] != nil {
		p0 = anchor[0]
	}
	return WithAnchor(c, p0)
}

// CrossScalar returns the scalar cross product of two 2-vectors: the
// z-component of the 3D product of the same vectors lifted into the z=0
// plane.
func CrossScalar(u, w *Vector) (float64, error) {
	if u == nil || w == nil {
		return 0, ErrNilVector
	}
	if u.Dims() != 2 || w.Dims() != 2 {
		return 0, ErrCrossDims
	}
	return u.comps[0]*w.comps[1] - u.comps[1]*w.comps[0], nil
}

// ScalarTripleProduct returns u . (v x w).
func ScalarTripleProduct(u, v, w *Vector) (float64, error) {
	c, err := Cross(v, w)
	if err != nil {
		return 0, err
	}
	return u.Dot(c)
}

// VectorTripleProduct returns u x (v x w).
func VectorTripleProduct(u, v, w *Vector) (*Vector, error) {
	c, err := Cross(v, w)
	if err != nil {
		return nil, err
	}
	return Cross(u, c)
}

// Projection returns the vector projection of a onto b.
func Projection(a, b *Vector) (*Vector, error) {
	bb, err := b.Dot(b)
	if err != nil {
		return nil, err
	}
	if bb <= appzero {
		return nil, ErrZeroLength
	}
	ab, err := a.Dot(b)
	if err != nil {
		return nil, err
	}
	return b.Scaled(ab / bb), nil
}

// Rejection returns the component of a orthogonal to b.
func Rejection(a, b *Vector) (*Vector, error) {
	proj, err := Projection(a, b)
	if err != nil {
		return nil, err
	}
	return a.Sub(proj)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }
