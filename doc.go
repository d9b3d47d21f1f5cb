/*
 * doc.go, part of goxtal.
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

/*
Package xtal provides atomic-coordinate models of crystalline
nanostructures: atoms and atom containers, crystal lattices with
fractional/Cartesian conversion, and the unit-cell/crystal-cell/
supercell hierarchy used to expand a basis over integer or matrix
scalings.

A Lattice carries the six cell parameters plus an orientation rotation
and a Cartesian offset. A UnitCell binds a basis of fractional-
coordinate atoms to a lattice; rotating or translating the cell only
touches the lattice, and the basis follows by construction. A
CrystalCell (or a SuperCell, which is one constructed with its scaling)
replicates the basis over the |det S| lattice translations of the
scaled cell.

Cartesian atoms live in the Atoms container, whose aggregates (center
of mass, total mass, coordinate matrix) are recomputed on demand.
Distances are in the unit of the lattice parameters, usually Angstroms;
angles in the public API are in degrees.

Lengths and matrix work use gonum (gonum.org/v1/gonum/mat); the vector
and point algebra with anchor semantics lives in the vec subpackage.
*/
package xtal
