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

/*Package vec implements the point and vector algebra used by the goxtal
crystallography engine.

A Vector is a directed displacement between an anchor Point and a head
Point. Both endpoints and the raw components are kept, and the package
guarantees that

	head == anchor + components

after every operation. All mutation goes through a single internal entry
point that re-derives whichever representation went stale; the raw storage
is never handed out mutably.

Geometrically undefined operations (multiplying a vector by another vector,
normalizing a zero vector) do not abort the caller: they report through the
package warning handler and return the left operand unchanged, so batch
transforms survive one malformed operand. Dimensionality mismatches in
binary operations are hard errors.

Rotations are expressed as Transform values, a 3x3 operator plus an anchor
point, built either from an axis and angle or from a pair of vectors to
align. Matrix work is done with gonum.
*/
package vec
