/*
 * nanogen_test.go, part of goxtal.
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

package nanogen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmolina/goxtal"
)

func TestGrapheneCells(t *testing.T) {
	prim, err := PrimitiveGrapheneCell(0)
	require.NoError(t, err)
	assert.Equal(t, 2, prim.Basis().Len())
	assert.InDelta(t, math.Sqrt(3)*CCBond, prim.Lattice().A(), 1e-9)
	assert.InDelta(t, 60.0, prim.Lattice().Gamma(), 1e-9)

	conv, err := ConventionalGrapheneCell(0)
	require.NoError(t, err)
	assert.Equal(t, 4, conv.Basis().Len())
	assert.InDelta(t, 3*CCBond, conv.Lattice().A(), 1e-9)     //4.26
	assert.InDelta(t, math.Sqrt(3)*CCBond, conv.Lattice().B(), 1e-9) //2.46

	//in both cells the two sublattice sites are one bond apart
	for _, uc := range []*xtal.UnitCell{prim, conv} {
		r0, err := uc.Basis().Atom(0).R()
		require.NoError(t, err)
		r1, err := uc.Basis().Atom(1).R()
		require.NoError(t, err)
		var d2 float64
		for i := 0; i < 3; i++ {
			d := r0.At(i) - r1.At(i)
			d2 += d * d
		}
		assert.InDelta(t, CCBond, math.Sqrt(d2), 1e-8)
	}

	_, err = PrimitiveGrapheneCell(-1)
	assert.ErrorIs(t, err, ErrParams)
}

func nearestNeighbor(atoms *xtal.Atoms, i int) float64 {
	best := math.Inf(1)
	pi := atoms.Atom(i).Position()
	for j := 0; j < atoms.Len(); j++ {
		if j == i {
			continue
		}
		pj := atoms.Atom(j).Position()
		var d2 float64
		for k := 0; k < 3; k++ {
			d := pi.At(k) - pj.At(k)
			d2 += d * d
		}
		if d := math.Sqrt(d2); d < best {
			best = d
		}
	}
	return best
}

func TestGrapheneGenerate(t *testing.T) {
	g := NewGraphene(2, 3, 2)
	atoms, err := g.Generate()
	require.NoError(t, err)
	require.Equal(t, g.NumAtoms(), atoms.Len())
	assert.Equal(t, 4*2*3*2, atoms.Len())

	//one molecule id per layer, one z plane per layer
	zs := map[float64]bool{}
	mols := map[int]bool{}
	for i := 0; i < atoms.Len(); i++ {
		a := atoms.Atom(i).(*xtal.XAtom)
		mols[a.Mol()] = true
		zs[math.Round(a.Position().Z()*1e6)/1e6] = true
		assert.Equal(t, i+1, a.ID())
	}
	assert.Len(t, mols, 2)
	assert.Len(t, zs, 2)
	assert.True(t, zs[CCVdwRadius])
	assert.True(t, zs[CCVdwRadius+2*CCVdwRadius])

	//every atom has a neighbor at one bond length
	for i := 0; i < atoms.Len(); i++ {
		assert.InDelta(t, CCBond, nearestNeighbor(atoms, i), 1e-6)
	}
}

func TestGrapheneStacking(t *testing.T) {
	ab := NewGraphene(1, 1, 2)
	aa := NewGraphene(1, 1, 2)
	aa.Stacking = StackingAA

	abAtoms, err := ab.Generate()
	require.NoError(t, err)
	aaAtoms, err := aa.Generate()
	require.NoError(t, err)
	//AA layers sit in registry, AB layers are shifted by one bond
	//along the armchair direction
	assert.InDelta(t, aaAtoms.Atom(0).Position().X(), aaAtoms.Atom(4).Position().X(), 1e-9)
	assert.InDelta(t, ab.Bond,
		abAtoms.Atom(4).Position().X()-abAtoms.Atom(0).Position().X(), 1e-9)
}

func TestGrapheneDoping(t *testing.T) {
	//retype half the conventional basis to nitrogen before expansion:
	//the substitution must replicate across every cell and layer
	g := NewGraphene(2, 2, 2)
	g.EditCell = func(cc *xtal.CrystalCell) error {
		return cc.UpdateBasis("N", 1, 2) //basis sites 1 and 3
	}
	atoms, err := g.Generate()
	require.NoError(t, err)
	require.Equal(t, g.NumAtoms(), atoms.Len())
	var nN, nC int
	for i := 0; i < atoms.Len(); i++ {
		switch atoms.Atom(i).Element() {
		case "N":
			nN++
		case "C":
			nC++
		}
	}
	assert.Equal(t, atoms.Len()/2, nN)
	assert.Equal(t, atoms.Len()/2, nC)

	//a failing edit aborts the generation
	g.EditCell = func(cc *xtal.CrystalCell) error {
		return cc.UpdateBasis("N", 99, 0)
	}
	_, err = g.Generate()
	assert.Error(t, err)
}

func TestGrapheneValidation(t *testing.T) {
	_, err := NewGraphene(0, 1, 1).Generate()
	assert.ErrorIs(t, err, ErrParams)
	g := NewGraphene(1, 1, 1)
	g.LayerSpacing = -1
	_, err = g.Generate()
	assert.ErrorIs(t, err, ErrParams)
}

func TestSWNTNumbers(t *testing.T) {
	armchair, err := NewSWNT(10, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, armchair.DR())
	assert.Equal(t, 20, armchair.NumHexagons())
	assert.Equal(t, 40, armchair.NumAtoms())
	assert.InDelta(t, 30.0, armchair.ChiralAngle(), 1e-9)
	assert.InDelta(t, 1.42*30/math.Pi, armchair.Diameter(), 1e-9)

	zigzag, err := NewSWNT(10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, zigzag.DR())
	assert.Equal(t, 20, zigzag.NumHexagons())
	assert.InDelta(t, 0.0, zigzag.ChiralAngle(), 1e-9)

	chiral, err := NewSWNT(6, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, chiral.DR())
	assert.Equal(t, 182, chiral.NumHexagons())

	//m > n is swapped into convention
	swapped, err := NewSWNT(3, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, swapped.N)
	assert.Equal(t, 3, swapped.M)

	_, err = NewSWNT(0, 0, 1)
	assert.ErrorIs(t, err, ErrParams)
	_, err = NewSWNT(5, 0, 0)
	assert.ErrorIs(t, err, ErrParams)
}

func TestSWNTGenerate(t *testing.T) {
	for _, tc := range []struct{ n, m, nz int }{
		{5, 5, 1}, {8, 0, 1}, {6, 3, 1}, {5, 5, 3},
	} {
		tube, err := NewSWNT(tc.n, tc.m, tc.nz)
		require.NoError(t, err)
		atoms, err := tube.Generate()
		require.NoError(t, err, "(%d,%d) nz=%d", tc.n, tc.m, tc.nz)
		assert.Equal(t, tube.NumAtoms(), atoms.Len())

		radius := tube.Diameter() / 2
		zMax := float64(tc.nz) * tube.T()
		for i := 0; i < atoms.Len(); i++ {
			p := atoms.Atom(i).Position()
			r := math.Hypot(p.X(), p.Y())
			assert.InDelta(t, radius, r, 1e-8)
			assert.GreaterOrEqual(t, p.Z(), -1e-8)
			assert.Less(t, p.Z(), zMax+1e-8)
			//curvature shortens the chord slightly below the flat
			//bond length, never below ~95 percent for these tubes
			nn := nearestNeighbor(atoms, i)
			assert.Greater(t, nn, 0.9*CCBond)
			assert.Less(t, nn, 1.01*CCBond)
		}
	}
}

func TestSWNTMolPerCell(t *testing.T) {
	tube, err := NewSWNT(5, 5, 2)
	require.NoError(t, err)
	atoms, err := tube.Generate()
	require.NoError(t, err)
	mols := map[int]bool{}
	for i := 0; i < atoms.Len(); i++ {
		mols[atoms.Atom(i).(*xtal.XAtom).Mol()] = true
	}
	assert.Len(t, mols, 2)
}
