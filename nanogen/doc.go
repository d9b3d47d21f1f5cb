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
Package nanogen generates atomic coordinates for carbon nanostructures:
single- and few-layer graphene, and single-walled carbon nanotubes
parameterized by their chirality (n, m).

The generators drive the crystal-cell machinery of the parent xtal
package: graphene is a conventional 4-atom unit cell expanded to a
supercell, a nanotube is the graphene lattice rolled onto a cylinder.
Both hand their result over as an *xtal.Atoms container and keep
nothing back.
*/
package nanogen
