/*
 * lattice_test.go, part of goxtal.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmolina/goxtal/vec"
)

func TestOrthorhombicLattice(t *testing.T) {
	l, err := Orthorhombic(2.46, 4.26, 10.0)
	require.NoError(t, err)
	m := l.OrthoMatrix()
	//all angles are 90, so the orthogonalization matrix must be exactly
	//diagonal thanks to the trig rounding
	assert.Equal(t, 2.46, m.At(0, 0))
	assert.Equal(t, 4.26, m.At(1, 1))
	assert.Equal(t, 10.0, m.At(2, 2))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				assert.Zero(t, m.At(i, j), "ortho[%d,%d]", i, j)
			}
		}
	}
	assert.Equal(t, 2.46*4.26*10.0, l.Volume())
	assert.Equal(t, 0.0, l.CosAlpha())
	assert.Equal(t, 1.0, l.SinGamma())
}

func TestLatticeValidation(t *testing.T) {
	_, err := NewLattice(0, 1, 1, 90, 90, 90)
	require.ErrorIs(t, err, ErrLatticeParams)
	_, err = NewLattice(1, -2, 1, 90, 90, 90)
	require.ErrorIs(t, err, ErrLatticeParams)
	_, err = NewLattice(1, 1, 1, 180, 90, 90)
	require.ErrorIs(t, err, ErrLatticeParams)
	_, err = NewLattice(1, 1, 1, 90, 0, 90)
	require.ErrorIs(t, err, ErrLatticeParams)
	_, err = NewLattice(1, 1, 1, math.NaN(), 90, 90)
	require.ErrorIs(t, err, ErrLatticeParams)
	//angles that close the cell onto a plane
	_, err = NewLattice(1, 1, 1, 10, 10, 30)
	require.ErrorIs(t, err, ErrLatticeParams)
}

func TestTriclinicRoundTrip(t *testing.T) {
	l, err := NewLattice(4.0, 5.0, 6.0, 80, 95, 110)
	require.NoError(t, err)
	fracs := []*vec.Point{
		vec.NewPoint(0, 0, 0),
		vec.NewPoint(0.25, 0.5, 0.75),
		vec.NewPoint(1, 1, 1),
		vec.NewPoint(-0.3, 1.7, 0.01),
	}
	for _, f := range fracs {
		r, err := l.FractionalToCartesian(f)
		require.NoError(t, err)
		back, err := l.CartesianToFractional(r)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, f.At(i), back.At(i), 1e-8)
		}
	}
}

func TestRoundTripWithOrientationAndOffset(t *testing.T) {
	l, err := NewLattice(4.0, 5.0, 6.0, 80, 95, 110)
	require.NoError(t, err)
	rot, err := vec.RotationAbout(33, vec.New(1, 2, 3), nil, true)
	require.NoError(t, err)
	require.NoError(t, l.Rotate(rot))
	require.NoError(t, l.Translate(vec.New(1.5, -2.5, 0.5)))

	f := vec.NewPoint(0.2, 0.4, 0.6)
	r, err := l.FractionalToCartesian(f)
	require.NoError(t, err)
	back, err := l.CartesianToFractional(r)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, f.At(i), back.At(i), 1e-8)
	}
}

func TestHexagonalMetric(t *testing.T) {
	l, err := Hexagonal(2.46, 10.0)
	require.NoError(t, err)
	assert.Equal(t, -0.5, l.CosGamma())
	assert.InDelta(t, 2.46*2.46*10.0*math.Sin(vec.Deg2Rad(120)), l.Volume(), 1e-6)

	ang, err := vec.Angle(l.A1(), l.A2())
	require.NoError(t, err)
	assert.InDelta(t, vec.Deg2Rad(120), ang, 1e-6)

	//reciprocal vectors are dual to the direct ones
	dual := [][2]*vec.Vector{
		{l.B1(), l.A1()}, {l.B2(), l.A2()}, {l.B3(), l.A3()},
	}
	for i, pair := range dual {
		d, err := vec.Dot(pair[0], pair[1])
		require.NoError(t, err)
		assert.InDelta(t, 1.0, d, 1e-8, "b%d . a%d", i+1, i+1)
	}
	cross, err := vec.Dot(l.B1(), l.A2())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cross, 1e-8)
}

func TestLatticeFromVectors(t *testing.T) {
	orig, err := NewLattice(3.0, 4.0, 5.0, 75, 85, 95)
	require.NoError(t, err)
	rebuilt, err := LatticeFromVectors(orig.A1(), orig.A2(), orig.A3())
	require.NoError(t, err)
	assert.InDelta(t, orig.A(), rebuilt.A(), 1e-8)
	assert.InDelta(t, orig.B(), rebuilt.B(), 1e-8)
	assert.InDelta(t, orig.C(), rebuilt.C(), 1e-8)
	assert.InDelta(t, orig.Alpha(), rebuilt.Alpha(), 1e-5)
	assert.InDelta(t, orig.Beta(), rebuilt.Beta(), 1e-5)
	assert.InDelta(t, orig.Gamma(), rebuilt.Gamma(), 1e-5)
	assert.InDelta(t, orig.Volume(), rebuilt.Volume(), 1e-6)
}

func TestRotationsCompose(t *testing.T) {
	l, err := Cubic(2.0)
	require.NoError(t, err)
	quarter, err := vec.RotationAbout(math.Pi/2, vec.New(0, 0, 1), nil, false)
	require.NoError(t, err)
	require.NoError(t, l.Rotate(quarter))
	require.NoError(t, l.Rotate(quarter))
	//two quarter turns about z flip x and y
	r, err := l.FractionalToCartesian(vec.NewPoint(1, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, r.X(), 1e-9)
	assert.InDelta(t, 0.0, r.Y(), 1e-9)
	assert.InDelta(t, 0.0, r.Z(), 1e-9)
}

func TestTranslationsAccumulate(t *testing.T) {
	l, err := Cubic(1.0)
	require.NoError(t, err)
	require.NoError(t, l.Translate(vec.New(1, 0, 0)))
	require.NoError(t, l.Translate(vec.New(0, 2, 0)))
	off := l.Offset()
	assert.Equal(t, 1.0, off.X())
	assert.Equal(t, 2.0, off.Y())
}

func TestWrapFractional(t *testing.T) {
	w := WrapFractional(vec.NewPoint(1.25, -0.25, 0.5))
	assert.InDelta(t, 0.25, w.At(0), 1e-12)
	assert.InDelta(t, 0.75, w.At(1), 1e-12)
	assert.InDelta(t, 0.5, w.At(2), 1e-12)
	w = WrapFractional(vec.NewPoint(1.0, -1.0, 2.0))
	for i := 0; i < 3; i++ {
		assert.Zero(t, w.At(i))
	}
}

func TestLatticeCopyIsDeep(t *testing.T) {
	l, err := Hexagonal(2.46, 10.0)
	require.NoError(t, err)
	cp := l.Copy()
	require.NoError(t, cp.Translate(vec.New(5, 5, 5)))
	assert.Zero(t, l.Offset().X())
	assert.True(t, l.Equal(l.Copy(), 1e-12))
	assert.False(t, l.Equal(cp, 1e-12))
}
