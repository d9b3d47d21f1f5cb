/*
 * graphene.go, part of goxtal.
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
	"fmt"
	"math"

	"github.com/rmolina/goxtal"
	"github.com/rmolina/goxtal/vec"
)

const (
	//CCBond is the C-C bond length in graphene, in Angstroms.
	CCBond = 1.42
	//CCVdwRadius is the carbon van der Waals radius used for layer
	//spacing, in Angstroms.
	CCVdwRadius = 1.7
)

//ErrParams is returned by the generators on invalid input.
const ErrParams = xtal.ConstError("nanogen: invalid generator parameters")

//Stacking selects the registry of adjacent graphene layers.
type Stacking int

const (
	//StackingAB is graphite-like Bernal stacking.
	StackingAB Stacking = iota
	//StackingAA places every layer in the same registry.
	StackingAA
)

//PrimitiveGrapheneCell returns the 2-atom primitive unit cell of a
//graphene sheet with the given bond length, oriented with the
//armchair direction along x and the sheet at z equal to the carbon
//vdW radius. A bond of 0 means CCBond.
func PrimitiveGrapheneCell(bond float64) (*xtal.UnitCell, error) {
	if bond == 0 {
		bond = CCBond
	}
	if bond < 0 {
		return nil, fmt.Errorf("bond length %v: %w", bond, ErrParams)
	}
	a := math.Sqrt(3) * bond
	l, err := xtal.NewLattice(a, a, 2*CCVdwRadius, 90, 90, 60)
	if err != nil {
		return nil, err
	}
	//rotate the 60-degree cell so the lattice vectors straddle x
	rot, err := vec.RotationAbout(-math.Pi/6, vec.New(0, 0, 1), nil, false)
	if err != nil {
		return nil, err
	}
	if err := l.Rotate(rot); err != nil {
		return nil, err
	}
	uc, err := xtal.NewUnitCell(l, nil)
	if err != nil {
		return nil, err
	}
	for _, r := range [][3]float64{{0, 0, CCVdwRadius}, {bond, 0, CCVdwRadius}} {
		if err := uc.AddBasisAtom("C", vec.NewPoint(r[0], r[1], r[2]), true); err != nil {
			return nil, err
		}
	}
	return uc, nil
}

//ConventionalGrapheneCell returns the rectangular 4-atom unit cell of
//a graphene sheet: a along the armchair direction (3 bond lengths), b
//along zigzag (sqrt(3) bond lengths). A bond of 0 means CCBond.
func ConventionalGrapheneCell(bond float64) (*xtal.UnitCell, error) {
	if bond == 0 {
		bond = CCBond
	}
	if bond < 0 {
		return nil, fmt.Errorf("bond length %v: %w", bond, ErrParams)
	}
	l, err := xtal.Orthorhombic(3*bond, math.Sqrt(3)*bond, 2*CCVdwRadius)
	if err != nil {
		return nil, err
	}
	uc, err := xtal.NewUnitCell(l, nil)
	if err != nil {
		return nil, err
	}
	half := math.Sqrt(3) * bond / 2
	for _, r := range [][3]float64{
		{0, 0, CCVdwRadius},
		{bond, 0, CCVdwRadius},
		{1.5 * bond, half, CCVdwRadius},
		{2.5 * bond, half, CCVdwRadius},
	} {
		if err := uc.AddBasisAtom("C", vec.NewPoint(r[0], r[1], r[2]), true); err != nil {
			return nil, err
		}
	}
	return uc, nil
}

//Graphene describes a generated multilayer graphene patch.
type Graphene struct {
	Bond         float64
	N1, N2       int //conventional cells along the armchair and zigzag edges
	Layers       int
	LayerSpacing float64
	Stacking     Stacking
	//EditCell, when set, is called with the crystal cell before it is
	//expanded, so callers can retype basis sites (say, UpdateBasis for
	//BN-substituted lattices) and have the substitution replicated
	//across the whole patch.
	EditCell func(*xtal.CrystalCell) error
}

//NewGraphene returns a generator for an n1 x n2 patch of nlayers
//graphene sheets with default bond length, layer spacing (twice the
//carbon vdW radius) and AB stacking.
func NewGraphene(n1, n2, nlayers int) *Graphene {
	return &Graphene{
		Bond:         CCBond,
		N1:           n1,
		N2:           n2,
		Layers:       nlayers,
		LayerSpacing: 2 * CCVdwRadius,
		Stacking:     StackingAB,
	}
}

//NumAtoms returns the number of atoms the generator will produce:
//4 atoms per conventional cell per layer.
func (g *Graphene) NumAtoms() int { return 4 * g.N1 * g.N2 * g.Layers }

//UnitCell returns the conventional cell the patch is built from.
func (g *Graphene) UnitCell() (*xtal.UnitCell, error) {
	return ConventionalGrapheneCell(g.Bond)
}

//Generate builds the patch and returns its atoms, one molecule id per
//layer, ids sequential from 1.
func (g *Graphene) Generate() (*xtal.Atoms, error) {
	if g.N1 < 1 || g.N2 < 1 || g.Layers < 1 {
		return nil, fmt.Errorf("cell counts %dx%d, %d layers: %w", g.N1, g.N2, g.Layers, ErrParams)
	}
	if g.LayerSpacing <= 0 || g.Bond <= 0 {
		return nil, fmt.Errorf("bond %v, layer spacing %v: %w", g.Bond, g.LayerSpacing, ErrParams)
	}
	uc, err := g.UnitCell()
	if err != nil {
		return nil, err
	}
	cc, err := xtal.NewCrystalCell(uc)
	if err != nil {
		return nil, err
	}
	if g.EditCell != nil {
		if err := g.EditCell(cc); err != nil {
			return nil, err
		}
	}
	if err := cc.SetScaling([]int{g.N1, g.N2, 1}, true); err != nil {
		return nil, err
	}
	out := xtal.NewAtoms()
	id := 0
	for layer := 0; layer < g.Layers; layer++ {
		atoms, err := cc.Atoms()
		if err != nil {
			return nil, err
		}
		dx := 0.0
		if g.Stacking == StackingAB && layer%2 == 1 {
			dx = g.Bond //the B-layer registry shift, along armchair
		}
		if err := atoms.Translate(vec.New(dx, 0, float64(layer)*g.LayerSpacing)); err != nil {
			return nil, err
		}
		for i := 0; i < atoms.Len(); i++ {
			a, ok := atoms.Atom(i).(*xtal.XAtom)
			if !ok {
				return nil, fmt.Errorf("unexpected atom type %T: %w", atoms.Atom(i), ErrParams)
			}
			id++
			a.SetID(id)
			a.SetMol(layer + 1)
			out.Append(a)
		}
	}
	return out, nil
}
