/*
 * lattice.go, part of goxtal.
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

package xtal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rmolina/goxtal/vec"
)

//Trigonometric quantities derived from the lattice angles are rounded
//to 6 decimals and orthogonalization-matrix entries to 10, so that,
//e.g., a 90-degree angle yields an exactly zero off-diagonal term.
const (
	trigDecimals  = 6
	orthoDecimals = 10
)

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}

//Lattice is a 3D crystal lattice: six cell parameters (lengths in the
//same unit as the coordinates, angles in degrees) plus an orientation
//rotation and a Cartesian offset. The parameters are fixed at
//construction; orientation and offset change through Rotate and
//Translate.
type Lattice struct {
	a, b, c             float64
	alpha, beta, gamma  float64 //degrees
	ortho               *mat.Dense
	frac                *mat.Dense //inverse of ortho
	volume              float64
	orientation         *mat.Dense
	orientationInv      *mat.Dense
	offset              *vec.Point
}

//NewLattice builds a lattice from the six cell parameters, with angles
//in degrees. Lengths must be positive and finite, angles strictly
//between 0 and 180, and the cell must have positive volume; otherwise
//ErrLatticeParams is returned.
func NewLattice(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	for _, l := range []float64{a, b, c} {
		if !finite(l) || l <= 0 {
			return nil, fmt.Errorf("lattice length %v: %w", l, ErrLatticeParams)
		}
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if !finite(ang) || ang <= 0 || ang >= 180 {
			return nil, fmt.Errorf("lattice angle %v degrees: %w", ang, ErrLatticeParams)
		}
	}
	l := &Lattice{a: a, b: b, c: c, alpha: alpha, beta: beta, gamma: gamma}
	if err := l.computeMetric(); err != nil {
		return nil, err
	}
	l.orientation = eye()
	l.orientationInv = eye()
	l.offset = vec.ZeroPoint(3)
	return l, nil
}

//Cubic returns a cubic lattice with edge a.
func Cubic(a float64) (*Lattice, error) {
	return NewLattice(a, a, a, 90, 90, 90)
}

//Orthorhombic returns an orthorhombic lattice with edges a, b, c.
func Orthorhombic(a, b, c float64) (*Lattice, error) {
	return NewLattice(a, b, c, 90, 90, 90)
}

//Tetragonal returns a tetragonal lattice with edges a, a, c.
func Tetragonal(a, c float64) (*Lattice, error) {
	return NewLattice(a, a, c, 90, 90, 90)
}

//Hexagonal returns a hexagonal lattice with basal edge a, height c and
//gamma of 120 degrees.
func Hexagonal(a, c float64) (*Lattice, error) {
	return NewLattice(a, a, c, 90, 90, 120)
}

//Monoclinic returns a monoclinic lattice with the given edges and
//beta angle in degrees.
func Monoclinic(a, b, c, beta float64) (*Lattice, error) {
	return NewLattice(a, b, c, 90, beta, 90)
}

//LatticeFromVectors builds a lattice whose cell parameters are the
//lengths of, and angles between, the three given vectors.
func LatticeFromVectors(a1, a2, a3 *vec.Vector) (*Lattice, error) {
	for _, v := range []*vec.Vector{a1, a2, a3} {
		if v == nil || v.Dims() != 3 {
			return nil, fmt.Errorf("lattice vectors must be 3-dimensional: %w", ErrShape)
		}
	}
	alpha, err := vec.Angle(a2, a3)
	if err != nil {
		return nil, fmt.Errorf("lattice from vectors: %w", err)
	}
	beta, err := vec.Angle(a3, a1)
	if err != nil {
		return nil, fmt.Errorf("lattice from vectors: %w", err)
	}
	gamma, err := vec.Angle(a1, a2)
	if err != nil {
		return nil, fmt.Errorf("lattice from vectors: %w", err)
	}
	return NewLattice(a1.Norm(), a2.Norm(), a3.Norm(),
		vec.Rad2Deg(alpha), vec.Rad2Deg(beta), vec.Rad2Deg(gamma))
}

//LatticeFromMatrix builds a lattice from a 3 x 3 cell matrix whose
//rows are the lattice vectors in Cartesian coordinates.
func LatticeFromMatrix(cell *mat.Dense) (*Lattice, error) {
	r, c := cell.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("cell matrix is %dx%d, want 3x3: %w", r, c, ErrShape)
	}
	rows := make([]*vec.Vector, 3)
	for i := 0; i < 3; i++ {
		rows[i] = vec.New(cell.At(i, 0), cell.At(i, 1), cell.At(i, 2))
	}
	return LatticeFromVectors(rows[0], rows[1], rows[2])
}

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

//computeMetric fills the orthogonalization matrix, its inverse and the
//cell volume from the six parameters.
func (l *Lattice) computeMetric() error {
	ca, cb, cg := l.CosAlpha(), l.CosBeta(), l.CosGamma()
	sg := l.SinGamma()
	radicand := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if radicand <= 0 {
		return fmt.Errorf("lattice angles %v, %v, %v leave no cell volume: %w",
			l.alpha, l.beta, l.gamma, ErrLatticeParams)
	}
	root := math.Sqrt(radicand)
	m := mat.NewDense(3, 3, []float64{
		l.a, l.b * cg, l.c * cb,
		0, l.b * sg, l.c * (ca - cb*cg) / sg,
		0, 0, l.c * root / sg,
	})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, roundTo(m.At(i, j), orthoDecimals))
		}
	}
	l.ortho = m
	l.frac = mat.NewDense(3, 3, nil)
	if err := l.frac.Inverse(l.ortho); err != nil {
		return fmt.Errorf("orthogonalization matrix is singular: %w", ErrLatticeParams)
	}
	l.volume = l.a * l.b * l.c * root
	return nil
}

//A returns the a cell length.
func (l *Lattice) A() float64 { return l.a }

//B returns the b cell length.
func (l *Lattice) B() float64 { return l.b }

//C returns the c cell length.
func (l *Lattice) C() float64 { return l.c }

//Alpha returns the alpha cell angle, in degrees.
func (l *Lattice) Alpha() float64 { return l.alpha }

//Beta returns the beta cell angle, in degrees.
func (l *Lattice) Beta() float64 { return l.beta }

//Gamma returns the gamma cell angle, in degrees.
func (l *Lattice) Gamma() float64 { return l.gamma }

//CosAlpha returns cos(alpha), rounded.
func (l *Lattice) CosAlpha() float64 { return roundTo(math.Cos(vec.Deg2Rad(l.alpha)), trigDecimals) }

//CosBeta returns cos(beta), rounded.
func (l *Lattice) CosBeta() float64 { return roundTo(math.Cos(vec.Deg2Rad(l.beta)), trigDecimals) }

//CosGamma returns cos(gamma), rounded.
func (l *Lattice) CosGamma() float64 { return roundTo(math.Cos(vec.Deg2Rad(l.gamma)), trigDecimals) }

//SinAlpha returns sin(alpha), rounded.
func (l *Lattice) SinAlpha() float64 { return roundTo(math.Sin(vec.Deg2Rad(l.alpha)), trigDecimals) }

//SinBeta returns sin(beta), rounded.
func (l *Lattice) SinBeta() float64 { return roundTo(math.Sin(vec.Deg2Rad(l.beta)), trigDecimals) }

//SinGamma returns sin(gamma), rounded.
func (l *Lattice) SinGamma() float64 { return roundTo(math.Sin(vec.Deg2Rad(l.gamma)), trigDecimals) }

//CosAlphaStar returns the cosine of the reciprocal-lattice alpha
//angle, rounded.
func (l *Lattice) CosAlphaStar() float64 {
	return roundTo((l.CosBeta()*l.CosGamma()-l.CosAlpha())/(l.SinBeta()*l.SinGamma()), trigDecimals)
}

//CosBetaStar returns the cosine of the reciprocal-lattice beta angle,
//rounded.
func (l *Lattice) CosBetaStar() float64 {
	return roundTo((l.CosGamma()*l.CosAlpha()-l.CosBeta())/(l.SinGamma()*l.SinAlpha()), trigDecimals)
}

//CosGammaStar returns the cosine of the reciprocal-lattice gamma
//angle, rounded.
func (l *Lattice) CosGammaStar() float64 {
	return roundTo((l.CosAlpha()*l.CosBeta()-l.CosGamma())/(l.SinAlpha()*l.SinBeta()), trigDecimals)
}

//SinAlphaStar returns the sine of the reciprocal-lattice alpha angle,
//rounded.
func (l *Lattice) SinAlphaStar() float64 {
	c := l.CosAlphaStar()
	return roundTo(math.Sqrt(1-c*c), trigDecimals)
}

//SinBetaStar returns the sine of the reciprocal-lattice beta angle,
//rounded.
func (l *Lattice) SinBetaStar() float64 {
	c := l.CosBetaStar()
	return roundTo(math.Sqrt(1-c*c), trigDecimals)
}

//SinGammaStar returns the sine of the reciprocal-lattice gamma angle,
//rounded.
func (l *Lattice) SinGammaStar() float64 {
	c := l.CosGammaStar()
	return roundTo(math.Sqrt(1-c*c), trigDecimals)
}

//Volume returns the cell volume.
func (l *Lattice) Volume() float64 { return l.volume }

//OrthoMatrix returns a copy of the upper-triangular orthogonalization
//matrix, the one taking fractional to (unoriented) Cartesian
//coordinates.
func (l *Lattice) OrthoMatrix() *mat.Dense {
	return mat.DenseCopyOf(l.ortho)
}

//FractionalMatrix returns a copy of the inverse of the
//orthogonalization matrix.
func (l *Lattice) FractionalMatrix() *mat.Dense {
	return mat.DenseCopyOf(l.frac)
}

//Orientation returns a copy of the orientation rotation.
func (l *Lattice) Orientation() *mat.Dense {
	return mat.DenseCopyOf(l.orientation)
}

//Offset returns a copy of the Cartesian offset of the lattice origin.
func (l *Lattice) Offset() *vec.Point {
	return l.offset.Clone()
}

//SetOffset moves the lattice origin to the given Cartesian point.
func (l *Lattice) SetOffset(p *vec.Point) error {
	if p == nil || p.Dims() != 3 {
		return fmt.Errorf("lattice offset must be a 3D point: %w", ErrShape)
	}
	l.offset = p.Clone()
	return nil
}

//orientedOrtho returns orientation * ortho.
func (l *Lattice) orientedOrtho() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Mul(l.orientation, l.ortho)
	return m
}

//Matrix returns the cell matrix: rows are the lattice vectors in
//Cartesian coordinates, orientation applied.
func (l *Lattice) Matrix() *mat.Dense {
	oo := l.orientedOrtho()
	m := mat.NewDense(3, 3, nil)
	m.CloneFrom(oo.T())
	return m
}

func (l *Lattice) directVector(col int) *vec.Vector {
	oo := l.orientedOrtho()
	return vec.New(oo.At(0, col), oo.At(1, col), oo.At(2, col))
}

//A1 returns the first direct lattice vector, orientation applied.
func (l *Lattice) A1() *vec.Vector { return l.directVector(0) }

//A2 returns the second direct lattice vector, orientation applied.
func (l *Lattice) A2() *vec.Vector { return l.directVector(1) }

//A3 returns the third direct lattice vector, orientation applied.
func (l *Lattice) A3() *vec.Vector { return l.directVector(2) }

func (l *Lattice) reciprocalVector(u, w *vec.Vector) *vec.Vector {
	cr, _ := vec.Cross(u, w) //3D inputs by construction
	return cr.Scaled(1 / l.volume)
}

//B1 returns the first reciprocal lattice vector, a2 x a3 / V
//(crystallographic convention, no 2 pi factor).
func (l *Lattice) B1() *vec.Vector { return l.reciprocalVector(l.A2(), l.A3()) }

//B2 returns the second reciprocal lattice vector, a3 x a1 / V.
func (l *Lattice) B2() *vec.Vector { return l.reciprocalVector(l.A3(), l.A1()) }

//B3 returns the third reciprocal lattice vector, a1 x a2 / V.
func (l *Lattice) B3() *vec.Vector { return l.reciprocalVector(l.A1(), l.A2()) }

//FractionalToCartesian maps fractional coordinates to Cartesian:
//orientation * ortho * f + offset.
func (l *Lattice) FractionalToCartesian(f *vec.Point) (*vec.Point, error) {
	if f == nil || f.Dims() != 3 {
		return nil, fmt.Errorf("fractional coordinates must be 3D: %w", ErrShape)
	}
	oo := l.orientedOrtho()
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i] += oo.At(i, j) * f.At(j)
		}
		out[i] += l.offset.At(i)
	}
	return vec.NewPoint(out...), nil
}

//CartesianToFractional is the exact inverse of FractionalToCartesian.
func (l *Lattice) CartesianToFractional(r *vec.Point) (*vec.Point, error) {
	if r == nil || r.Dims() != 3 {
		return nil, fmt.Errorf("cartesian coordinates must be 3D: %w", ErrShape)
	}
	shifted := make([]float64, 3)
	for i := 0; i < 3; i++ {
		shifted[i] = r.At(i) - l.offset.At(i)
	}
	unrot := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			unrot[i] += l.orientationInv.At(i, j) * shifted[j]
		}
	}
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i] += l.frac.At(i, j) * unrot[j]
		}
	}
	return vec.NewPoint(out...), nil
}

//WrapFractional wraps each fractional coordinate into [0, 1).
func WrapFractional(f *vec.Point) *vec.Point {
	out := make([]float64, f.Dims())
	for i := 0; i < f.Dims(); i++ {
		w := math.Mod(f.At(i), 1)
		if w < 0 {
			w++
		}
		//mod can land exactly on 1 after the negative correction
		if w >= 1 {
			w = 0
		}
		out[i] = w
	}
	return vec.NewPoint(out...)
}

//Rotate composes the transform's rotation into the lattice
//orientation. Prior orientation and offset are kept: the new
//orientation is R * old, and the offset itself is carried through the
//transform (so rotations about an anchor behave as expected).
func (l *Lattice) Rotate(t *vec.Transform) error {
	if t == nil {
		return fmt.Errorf("rotate lattice: %w", vec.ErrNotRotation)
	}
	r := t.Matrix()
	newOrient := mat.NewDense(3, 3, nil)
	newOrient.Mul(r, l.orientation)
	newInv := mat.NewDense(3, 3, nil)
	if err := newInv.Inverse(newOrient); err != nil {
		return fmt.Errorf("rotate lattice: %w", vec.ErrNotRotation)
	}
	off, err := t.ApplyPoint(l.offset)
	if err != nil {
		return err
	}
	l.orientation = newOrient
	l.orientationInv = newInv
	l.offset = off
	return nil
}

//Translate displaces the lattice origin by t. Prior offset is kept.
func (l *Lattice) Translate(t *vec.Vector) error {
	return l.offset.Translate(t)
}

//Copy returns a deep copy of the lattice.
func (l *Lattice) Copy() *Lattice {
	return &Lattice{
		a: l.a, b: l.b, c: l.c,
		alpha: l.alpha, beta: l.beta, gamma: l.gamma,
		ortho:          mat.DenseCopyOf(l.ortho),
		frac:           mat.DenseCopyOf(l.frac),
		volume:         l.volume,
		orientation:    mat.DenseCopyOf(l.orientation),
		orientationInv: mat.DenseCopyOf(l.orientationInv),
		offset:         l.offset.Clone(),
	}
}

//Equal reports whether two lattices have the same parameters,
//orientation and offset, within epsilon.
func (l *Lattice) Equal(o *Lattice, epsilon float64) bool {
	if o == nil {
		return false
	}
	params := [][2]float64{
		{l.a, o.a}, {l.b, o.b}, {l.c, o.c},
		{l.alpha, o.alpha}, {l.beta, o.beta}, {l.gamma, o.gamma},
	}
	for _, p := range params {
		if math.Abs(p[0]-p[1]) > epsilon {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(l.orientation.At(i, j)-o.orientation.At(i, j)) > epsilon {
				return false
			}
		}
		if math.Abs(l.offset.At(i)-o.offset.At(i)) > epsilon {
			return false
		}
	}
	return true
}

func (l *Lattice) String() string {
	return fmt.Sprintf("Lattice(a=%.6g b=%.6g c=%.6g alpha=%.6g beta=%.6g gamma=%.6g)",
		l.a, l.b, l.c, l.alpha, l.beta, l.gamma)
}
