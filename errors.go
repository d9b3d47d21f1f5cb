/*
 * errors.go, part of goxtal.
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

//ConstError is an error type for constant sentinel errors.
type ConstError string

func (e ConstError) Error() string { return string(e) }

const (
	//ErrLatticeParams is returned when lattice lengths or angles are
	//outside their admissible ranges, or when the resulting cell would
	//have no volume.
	ErrLatticeParams = ConstError("goxtal: invalid lattice parameters")

	//ErrNilLattice is returned by operations that need a lattice
	//when none has been set.
	ErrNilLattice = ConstError("goxtal: nil lattice")

	//ErrNilUnitCell is returned by crystal-cell operations when the
	//unit cell has not been set.
	ErrNilUnitCell = ConstError("goxtal: nil unit cell")

	//ErrScalingValue is returned when a supercell scaling argument is
	//not a positive scalar, a vector of positive integers, or an
	//integer matrix with nonzero determinant.
	ErrScalingValue = ConstError("goxtal: invalid supercell scaling")

	//ErrShape is returned on dimension mismatches between coordinate
	//slices, vectors and matrices.
	ErrShape = ConstError("goxtal: dimension mismatch")

	//ErrBadCoordinate is returned by setters that reject NaN or Inf
	//coordinate values.
	ErrBadCoordinate = ConstError("goxtal: coordinate is not finite")

	//ErrBasisIndex is returned when a basis-atom index is out of range.
	ErrBasisIndex = ConstError("goxtal: basis index out of range")

	//ErrUnknownElement is returned when an element symbol has no entry
	//in the internal tables and a value for it is required.
	ErrUnknownElement = ConstError("goxtal: unknown element symbol")

	//ErrEmptyAtoms is returned by reductions over an empty container,
	//such as the center of mass of zero atoms.
	ErrEmptyAtoms = ConstError("goxtal: empty atom container")
)

//PanicMsg is the type used for the (few) panics thrown by goxtal.
//They are thrown only on conditions that make any recovery impossible,
//such as indexing outside a fundamental data structure.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	//PanicAtomOutOfRange is thrown when an atom index is outside the
	//container being indexed.
	PanicAtomOutOfRange = PanicMsg("goxtal: atom index out of range")
)
