/*
 * point.go, part of goxtal.
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

// DefaultEpsilon is the threshold below which Rezero snaps a component to
// exactly 0.
const DefaultEpsilon = 1.0e-10

const appzero float64 = 1.0e-12 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// A Point is an n-dimensional coordinate tuple with no identity beyond its
// components. Typically n=3.
type Point struct {
	coords []float64
}

// NewPoint returns a Point with the given coordinates. With no arguments it
// returns the 3-dimensional origin.
func NewPoint(coords ...float64) *Point {
	if len(coords) == 0 {
		return ZeroPoint(3)
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return &Point{coords: c}
}

// ZeroPoint returns the origin of nd-dimensional space. Non-positive nd
// defaults to 3.
func ZeroPoint(nd int) *Point {
	if nd <= 0 {
		nd = 3
	}
	return &Point{coords: make([]float64, nd)}
}

// Dims returns the dimensionality of the point.
func (p *Point) Dims() int { return len(p.coords) }

// At returns the ith coordinate. Panics if out of range, as this is a
// fundamental accessor and an out-of-range index means the caller is wrong.
func (p *Point) At(i int) float64 {
	if i < 0 || i >= len(p.coords) {
		panic(fmt.Sprintf("goxtal/vec: Point coordinate %d out of range (%d)", i, len(p.coords)))
	}
	return p.coords[i]
}

// Set assigns the ith coordinate. Panics if out of range.
func (p *Point) Set(i int, v float64) {
	if i < 0 || i >= len(p.coords) {
		panic(fmt.Sprintf("goxtal/vec: Point coordinate %d out of range (%d)", i, len(p.coords)))
	}
	p.coords[i] = v
}

// X returns the first coordinate.
func (p *Point) X() float64 { return p.At(0) }

// Y returns the second coordinate.
func (p *Point) Y() float64 { return p.At(1) }

// Z returns the third coordinate.
func (p *Point) Z() float64 { return p.At(2) }

// Coords returns a copy of the coordinates.
func (p *Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// Clone returns an independent copy of the point.
func (p *Point) Clone() *Point {
	return &Point{coords: p.Coords()}
}

// Translate displaces the point by t in place. Returns ErrShape on
// mismatched dimensionality.
func (p *Point) Translate(t *Vector) error {
	if t == nil {
		return ErrNilVector
	}
	if t.Dims() != p.Dims() {
		return ErrShape
	}
	for i := range p.coords {
		p.coords[i] += t.comps[i]
	}
	return nil
}

// Rezero snaps coordinates with absolute value at most epsilon to exactly
// zero. A non-positive epsilon selects DefaultEpsilon.
func (p *Point) Rezero(epsilon float64) {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	for i, v := range p.coords {
		if math.Abs(v) <= epsilon {
			p.coords[i] = 0
		}
	}
}

// Equal reports whether q has the same dimensionality and coordinates
// within appzero.
func (p *Point) Equal(q *Point) bool {
	if q == nil || p.Dims() != q.Dims() {
		return false
	}
	for i, v := range p.coords {
		if math.Abs(v-q.coords[i]) > appzero {
			return false
		}
	}
	return true
}

// String returns a neat representation of the point.
func (p *Point) String() string {
	parts := make([]string, len(p.coords))
	for i, v := range p.coords {
		parts[i] = fmt.Sprintf("%.6f", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
