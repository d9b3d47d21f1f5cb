/*
 * atom.go, part of goxtal.
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

	"github.com/rmolina/goxtal/vec"
)

//Atomer is the interface for anything that behaves as a single atom:
//it has an element symbol, a mass, and a position in Cartesian space.
//The returned point is live, so mutating it moves the atom.
type Atomer interface {
	Element() string
	Mass() float64
	Position() *vec.Point
}

//HasVelocity is satisfied by atoms carrying a velocity.
type HasVelocity interface {
	Velocity() *vec.Vector
}

//HasCharge is satisfied by atoms carrying a partial charge.
type HasCharge interface {
	Charge() float64
}

//HasCoordinationNumber is satisfied by atoms that track how many
//neighbors they are bonded to.
type HasCoordinationNumber interface {
	CoordinationNumber() int
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

//Atom is the basic atom: an element symbol plus a Cartesian position.
//A zero mass means "look it up in the element table".
type Atom struct {
	symbol string
	mass   float64
	pos    *vec.Point
}

//NewAtom returns an atom of the given element at the given Cartesian
//coordinates. Missing coordinates default to zero in 3D.
func NewAtom(symbol string, coords ...float64) *Atom {
	p := vec.ZeroPoint(3)
	for i := 0; i < len(coords) && i < 3; i++ {
		p.Set(i, coords[i])
	}
	return &Atom{symbol: symbol, pos: p}
}

//Element returns the element symbol.
func (a *Atom) Element() string { return a.symbol }

//SetElement changes the element symbol. The mass, if not set
//explicitly, follows the new symbol.
func (a *Atom) SetElement(symbol string) { a.symbol = symbol }

//Mass returns the atomic mass: the explicitly set value if there is
//one, otherwise the table value for the element (zero if unknown).
func (a *Atom) Mass() float64 {
	if a.mass != 0 {
		return a.mass
	}
	m, _ := symbolMass[a.symbol]
	return m
}

//SetMass overrides the tabulated mass. It rejects non-finite and
//negative values.
func (a *Atom) SetMass(m float64) error {
	if !finite(m) || m < 0 {
		return fmt.Errorf("mass %v: %w", m, ErrBadCoordinate)
	}
	a.mass = m
	return nil
}

//Position returns the atom's Cartesian position. The point is live.
func (a *Atom) Position() *vec.Point { return a.pos }

//SetPosition moves the atom to the given Cartesian coordinates.
//It rejects NaN and Inf components.
func (a *Atom) SetPosition(coords ...float64) error {
	if len(coords) != a.pos.Dims() {
		return fmt.Errorf("got %d coordinates for a %d-dimensional atom: %w", len(coords), a.pos.Dims(), ErrShape)
	}
	if !finite(coords...) {
		return fmt.Errorf("position %v: %w", coords, ErrBadCoordinate)
	}
	for i, c := range coords {
		a.pos.Set(i, c)
	}
	return nil
}

//AtomicNumber returns the atomic number for the atom's element,
//or zero if the element is not in the table.
func (a *Atom) AtomicNumber() int {
	z, _ := symbolZ[a.symbol]
	return z
}

//Clone returns a deep copy of the atom.
func (a *Atom) Clone() *Atom {
	return &Atom{symbol: a.symbol, mass: a.mass, pos: a.pos.Clone()}
}

func (a *Atom) String() string {
	return fmt.Sprintf("Atom(%s, %s)", a.symbol, a.pos)
}

//XAtom is the extended atom used for generated structures: on top of
//the basic atom it carries an id, a molecule id, a numeric type, a
//velocity, periodic image flags, a partial charge and a coordination
//number, the fields a LAMMPS-style data file needs.
type XAtom struct {
	Atom
	id     int
	mol    int
	typ    int
	vel    *vec.Vector
	ix     int
	iy     int
	iz     int
	charge float64
	cn     int
}

//NewXAtom returns an extended atom of the given element at the given
//Cartesian coordinates, with zero velocity and all extra fields zero.
func NewXAtom(symbol string, coords ...float64) *XAtom {
	return &XAtom{Atom: *NewAtom(symbol, coords...), vel: vec.Zero(3)}
}

//ID returns the atom id.
func (a *XAtom) ID() int { return a.id }

//SetID sets the atom id.
func (a *XAtom) SetID(id int) { a.id = id }

//Mol returns the molecule id.
func (a *XAtom) Mol() int { return a.mol }

//SetMol sets the molecule id.
func (a *XAtom) SetMol(mol int) { a.mol = mol }

//Type returns the numeric atom type.
func (a *XAtom) Type() int { return a.typ }

//SetType sets the numeric atom type.
func (a *XAtom) SetType(t int) { a.typ = t }

//Velocity returns the atom's velocity. The vector is live.
func (a *XAtom) Velocity() *vec.Vector { return a.vel }

//SetVelocity sets the velocity components. It rejects NaN and Inf.
func (a *XAtom) SetVelocity(comps ...float64) error {
	if len(comps) != a.vel.Dims() {
		return fmt.Errorf("got %d velocity components for a %d-dimensional atom: %w", len(comps), a.vel.Dims(), ErrShape)
	}
	if !finite(comps...) {
		return fmt.Errorf("velocity %v: %w", comps, ErrBadCoordinate)
	}
	return a.vel.SetComponents(comps)
}

//Image returns the periodic image flags.
func (a *XAtom) Image() (ix, iy, iz int) { return a.ix, a.iy, a.iz }

//SetImage sets the periodic image flags.
func (a *XAtom) SetImage(ix, iy, iz int) { a.ix, a.iy, a.iz = ix, iy, iz }

//Charge returns the partial charge.
func (a *XAtom) Charge() float64 { return a.charge }

//SetCharge sets the partial charge. It rejects NaN and Inf.
func (a *XAtom) SetCharge(q float64) error {
	if !finite(q) {
		return fmt.Errorf("charge %v: %w", q, ErrBadCoordinate)
	}
	a.charge = q
	return nil
}

//CoordinationNumber returns the coordination number.
func (a *XAtom) CoordinationNumber() int { return a.cn }

//SetCoordinationNumber sets the coordination number. Negative values
//are rejected.
func (a *XAtom) SetCoordinationNumber(cn int) error {
	if cn < 0 {
		return fmt.Errorf("coordination number %d: %w", cn, ErrBadCoordinate)
	}
	a.cn = cn
	return nil
}

//Clone returns a deep copy of the extended atom.
func (a *XAtom) Clone() *XAtom {
	c := *a
	c.Atom = *a.Atom.Clone()
	c.vel = a.vel.Clone()
	return &c
}
