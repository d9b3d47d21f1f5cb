/*
 * atoms.go, part of goxtal.
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
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/rmolina/goxtal/vec"
)

//Region is any closed volume of Cartesian space that can answer
//whether a point lies inside it.
type Region interface {
	Contains(p *vec.Point) bool
}

//Box is an axis-aligned parallelepiped region.
type Box struct {
	Min [3]float64
	Max [3]float64
}

//Contains reports whether p lies inside the box, boundaries included.
func (b Box) Contains(p *vec.Point) bool {
	for i := 0; i < 3; i++ {
		if p.At(i) < b.Min[i] || p.At(i) > b.Max[i] {
			return false
		}
	}
	return true
}

//Sphere is a spherical region.
type Sphere struct {
	Center [3]float64
	Radius float64
}

//Contains reports whether p lies inside the sphere, boundary included.
func (s Sphere) Contains(p *vec.Point) bool {
	var d2 float64
	for i := 0; i < 3; i++ {
		d := p.At(i) - s.Center[i]
		d2 += d * d
	}
	return d2 <= s.Radius*s.Radius
}

//Cylinder is a region bounded by a cylinder along the z axis, the
//natural clipping volume for nanotubes.
type Cylinder struct {
	Center [2]float64 //x, y of the axis
	Radius float64
	ZMin   float64
	ZMax   float64
}

//Contains reports whether p lies inside the cylinder, boundaries
//included.
func (c Cylinder) Contains(p *vec.Point) bool {
	if p.At(2) < c.ZMin || p.At(2) > c.ZMax {
		return false
	}
	dx := p.At(0) - c.Center[0]
	dy := p.At(1) - c.Center[1]
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

//Atoms is an ordered container of atoms. The zero value is an empty,
//usable container.
type Atoms struct {
	atoms []Atomer
}

//NewAtoms returns a container holding the given atoms, in order.
func NewAtoms(atoms ...Atomer) *Atoms {
	return &Atoms{atoms: append([]Atomer{}, atoms...)}
}

//Len returns the number of atoms in the container.
func (as *Atoms) Len() int { return len(as.atoms) }

//Atom returns the i-th atom. It panics if i is out of range, as this
//is considered a fundamental access.
func (as *Atoms) Atom(i int) Atomer {
	if i < 0 || i >= len(as.atoms) {
		panic(PanicAtomOutOfRange)
	}
	return as.atoms[i]
}

//Append adds atoms at the end of the container.
func (as *Atoms) Append(atoms ...Atomer) {
	as.atoms = append(as.atoms, atoms...)
}

//Insert places the atom at position i, shifting later atoms up.
//It panics if i is out of range (0 to Len, inclusive).
func (as *Atoms) Insert(i int, a Atomer) {
	if i < 0 || i > len(as.atoms) {
		panic(PanicAtomOutOfRange)
	}
	as.atoms = append(as.atoms, nil)
	copy(as.atoms[i+1:], as.atoms[i:])
	as.atoms[i] = a
}

//Delete removes the i-th atom, shifting later atoms down.
//It panics if i is out of range.
func (as *Atoms) Delete(i int) {
	if i < 0 || i >= len(as.atoms) {
		panic(PanicAtomOutOfRange)
	}
	copy(as.atoms[i:], as.atoms[i+1:])
	as.atoms[len(as.atoms)-1] = nil
	as.atoms = as.atoms[:len(as.atoms)-1]
}

//Set replaces the i-th atom. It panics if i is out of range.
func (as *Atoms) Set(i int, a Atomer) {
	if i < 0 || i >= len(as.atoms) {
		panic(PanicAtomOutOfRange)
	}
	as.atoms[i] = a
}

//Slice returns a copy of the internal atom slice. The atoms themselves
//are shared.
func (as *Atoms) Slice() []Atomer {
	return append([]Atomer{}, as.atoms...)
}

//Elements returns the distinct element symbols present, sorted by
//atomic number, with symbols missing from the table last and
//alphabetical among themselves.
func (as *Atoms) Elements() []string {
	seen := map[string]bool{}
	var syms []string
	for _, a := range as.atoms {
		if !seen[a.Element()] {
			seen[a.Element()] = true
			syms = append(syms, a.Element())
		}
	}
	sort.Slice(syms, func(i, j int) bool {
		zi, oki := symbolZ[syms[i]]
		zj, okj := symbolZ[syms[j]]
		if oki != okj {
			return oki
		}
		if zi != zj {
			return zi < zj
		}
		return syms[i] < syms[j]
	})
	return syms
}

//Symbols returns the element symbol of every atom, in container order.
func (as *Atoms) Symbols() []string {
	syms := make([]string, len(as.atoms))
	for i, a := range as.atoms {
		syms[i] = a.Element()
	}
	return syms
}

//Masses returns the mass of every atom, in container order.
func (as *Atoms) Masses() []float64 {
	ms := make([]float64, len(as.atoms))
	for i, a := range as.atoms {
		ms[i] = a.Mass()
	}
	return ms
}

//TotalMass returns the sum of the atomic masses. Kahan compensation is
//used so the value does not drift with container size.
func (as *Atoms) TotalMass() float64 {
	var sum, comp float64
	for _, a := range as.atoms {
		y := a.Mass() - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}
	return sum
}

//CenterOfMass returns the mass-weighted mean position. Atoms with zero
//mass (unknown elements without an explicit mass) contribute position
//but no weight; if the total mass is zero the unweighted centroid is
//returned instead. An empty container is an error.
func (as *Atoms) CenterOfMass() (*vec.Point, error) {
	if len(as.atoms) == 0 {
		return nil, fmt.Errorf("center of mass: %w", ErrEmptyAtoms)
	}
	com := make([]float64, 3)
	total := as.TotalMass()
	if total == 0 {
		for _, a := range as.atoms {
			for i := 0; i < 3; i++ {
				com[i] += a.Position().At(i)
			}
		}
		for i := range com {
			com[i] /= float64(len(as.atoms))
		}
		return vec.NewPoint(com...), nil
	}
	for _, a := range as.atoms {
		m := a.Mass()
		for i := 0; i < 3; i++ {
			com[i] += m * a.Position().At(i)
		}
	}
	for i := range com {
		com[i] /= total
	}
	return vec.NewPoint(com...), nil
}

//Coordinates returns the Cartesian coordinates as a new n x 3 dense
//matrix, one atom per row.
func (as *Atoms) Coordinates() *mat.Dense {
	if len(as.atoms) == 0 {
		return nil
	}
	m := mat.NewDense(len(as.atoms), 3, nil)
	for i, a := range as.atoms {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.Position().At(j))
		}
	}
	return m
}

//Sort orders the atoms, stably, by atomic number, then element symbol
//for symbols missing from the table, then z coordinate.
func (as *Atoms) Sort() {
	sort.SliceStable(as.atoms, func(i, j int) bool {
		ai, aj := as.atoms[i], as.atoms[j]
		zi, oki := symbolZ[ai.Element()]
		zj, okj := symbolZ[aj.Element()]
		if oki != okj {
			return oki
		}
		if zi != zj {
			return zi < zj
		}
		if ai.Element() != aj.Element() {
			return ai.Element() < aj.Element()
		}
		return ai.Position().At(2) < aj.Position().At(2)
	})
}

//SortBy orders the atoms, stably, by a caller-supplied comparison.
func (as *Atoms) SortBy(less func(a, b Atomer) bool) {
	sort.SliceStable(as.atoms, func(i, j int) bool {
		return less(as.atoms[i], as.atoms[j])
	})
}

//Translate displaces every atom by t.
func (as *Atoms) Translate(t *vec.Vector) error {
	for i, a := range as.atoms {
		if err := a.Position().Translate(t); err != nil {
			return fmt.Errorf("atom %d: %w", i, err)
		}
	}
	return nil
}

//Rotate applies the transform to every atom position, and to the
//velocity of any atom that has one.
func (as *Atoms) Rotate(t *vec.Transform) error {
	for i, a := range as.atoms {
		q, err := t.ApplyPoint(a.Position())
		if err != nil {
			return fmt.Errorf("atom %d: %w", i, err)
		}
		for j := 0; j < 3; j++ {
			a.Position().Set(j, q.At(j))
		}
		if va, ok := a.(HasVelocity); ok {
			if err := va.Velocity().Rotate(t); err != nil {
				return fmt.Errorf("atom %d velocity: %w", i, err)
			}
		}
	}
	return nil
}

//Rezero snaps near-zero coordinates of every atom to exactly zero.
func (as *Atoms) Rezero(epsilon float64) {
	for _, a := range as.atoms {
		a.Position().Rezero(epsilon)
	}
}

//ClipToRegion removes, in place, the atoms whose positions fall
//outside the region. With centerFirst the region is tested with the
//center of mass at the origin, and the surviving atoms are moved back
//to their absolute positions afterwards, so the clip does not depend
//on where the structure happens to sit.
func (as *Atoms) ClipToRegion(r Region, centerFirst bool) error {
	var back *vec.Vector
	if centerFirst {
		com, err := as.CenterOfMass()
		if err != nil {
			return err
		}
		toOrigin, err := vec.FromPoints(com, vec.ZeroPoint(com.Dims()))
		if err != nil {
			return err
		}
		if err := as.Translate(toOrigin); err != nil {
			return err
		}
		back, err = vec.FromPoints(vec.ZeroPoint(com.Dims()), com)
		if err != nil {
			return err
		}
	}
	kept := as.atoms[:0]
	for _, a := range as.atoms {
		if r.Contains(a.Position()) {
			kept = append(kept, a)
		}
	}
	//let the dropped tail be collected
	for i := len(kept); i < len(as.atoms); i++ {
		as.atoms[i] = nil
	}
	as.atoms = kept
	if back != nil {
		return as.Translate(back)
	}
	return nil
}
