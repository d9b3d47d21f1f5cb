/*
 * basis.go, part of goxtal.
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

	"github.com/rmolina/goxtal/vec"
)

//BasisAtom is an atom of a crystal basis. Its fractional coordinates
//are the authoritative record; the Cartesian position is derived on
//demand through the lattice the atom belongs to. Rotating or
//translating the lattice therefore moves the atom with it, with no
//separate bookkeeping.
type BasisAtom struct {
	symbol  string
	frac    *vec.Point
	lattice *Lattice
	id      int
	mol     int
}

//NewBasisAtom returns a basis atom of the given element at the given
//fractional coordinates of the lattice.
func NewBasisAtom(symbol string, lattice *Lattice, frac *vec.Point) (*BasisAtom, error) {
	if lattice == nil {
		return nil, fmt.Errorf("basis atom: %w", ErrNilLattice)
	}
	if frac == nil || frac.Dims() != 3 {
		return nil, fmt.Errorf("basis atom fractional coordinates must be 3D: %w", ErrShape)
	}
	return &BasisAtom{symbol: symbol, frac: frac.Clone(), lattice: lattice}, nil
}

//Element returns the element symbol.
func (b *BasisAtom) Element() string { return b.symbol }

//SetElement changes the element symbol.
func (b *BasisAtom) SetElement(symbol string) { b.symbol = symbol }

//Mass returns the tabulated mass for the element, zero if unknown.
func (b *BasisAtom) Mass() float64 {
	m, _ := symbolMass[b.symbol]
	return m
}

//ID returns the atom id.
func (b *BasisAtom) ID() int { return b.id }

//SetID sets the atom id.
func (b *BasisAtom) SetID(id int) { b.id = id }

//Mol returns the molecule id.
func (b *BasisAtom) Mol() int { return b.mol }

//SetMol sets the molecule id.
func (b *BasisAtom) SetMol(mol int) { b.mol = mol }

//Frac returns a copy of the fractional coordinates.
func (b *BasisAtom) Frac() *vec.Point { return b.frac.Clone() }

//SetFrac replaces the fractional coordinates.
func (b *BasisAtom) SetFrac(f *vec.Point) error {
	if f == nil || f.Dims() != 3 {
		return fmt.Errorf("basis atom fractional coordinates must be 3D: %w", ErrShape)
	}
	b.frac = f.Clone()
	return nil
}

//Wrap wraps the fractional coordinates into [0, 1).
func (b *BasisAtom) Wrap() { b.frac = WrapFractional(b.frac) }

//R returns the Cartesian position, derived through the lattice.
func (b *BasisAtom) R() (*vec.Point, error) {
	if b.lattice == nil {
		return nil, fmt.Errorf("basis atom position: %w", ErrNilLattice)
	}
	return b.lattice.FractionalToCartesian(b.frac)
}

//Lattice returns the lattice the atom belongs to.
func (b *BasisAtom) Lattice() *Lattice { return b.lattice }

//clone duplicates the atom onto the given lattice.
func (b *BasisAtom) clone(lattice *Lattice) *BasisAtom {
	return &BasisAtom{symbol: b.symbol, frac: b.frac.Clone(), lattice: lattice, id: b.id, mol: b.mol}
}

func (b *BasisAtom) String() string {
	return fmt.Sprintf("BasisAtom(%s, frac=%s)", b.symbol, b.frac)
}

//BasisAtoms is an ordered container of basis atoms sharing a lattice.
type BasisAtoms struct {
	atoms []*BasisAtom
}

//NewBasisAtoms returns a container holding the given basis atoms.
func NewBasisAtoms(atoms ...*BasisAtom) *BasisAtoms {
	return &BasisAtoms{atoms: append([]*BasisAtom{}, atoms...)}
}

//Len returns the number of basis atoms.
func (bs *BasisAtoms) Len() int { return len(bs.atoms) }

//Atom returns the i-th basis atom. It panics if i is out of range.
func (bs *BasisAtoms) Atom(i int) *BasisAtom {
	if i < 0 || i >= len(bs.atoms) {
		panic(PanicAtomOutOfRange)
	}
	return bs.atoms[i]
}

//Append adds basis atoms at the end of the container.
func (bs *BasisAtoms) Append(atoms ...*BasisAtom) {
	bs.atoms = append(bs.atoms, atoms...)
}

//Wrap wraps every atom's fractional coordinates into [0, 1).
func (bs *BasisAtoms) Wrap() {
	for _, a := range bs.atoms {
		a.Wrap()
	}
}

//MaxMol returns the largest molecule id present, at least 1, so that
//supercell replicas get distinct molecule ids.
func (bs *BasisAtoms) MaxMol() int {
	max := 1
	for _, a := range bs.atoms {
		if a.mol > max {
			max = a.mol
		}
	}
	return max
}

//clone duplicates the container onto the given lattice.
func (bs *BasisAtoms) clone(lattice *Lattice) *BasisAtoms {
	out := &BasisAtoms{atoms: make([]*BasisAtom, len(bs.atoms))}
	for i, a := range bs.atoms {
		out.atoms[i] = a.clone(lattice)
	}
	return out
}
