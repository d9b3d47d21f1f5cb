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

package vec

import (
	"fmt"
	"log"
)

// ConstError is a sentinel error. It satisfies the error interface while
// staying comparable with errors.Is.
type ConstError string

func (e ConstError) Error() string { return string(e) }

const (
	ErrShape       = ConstError("goxtal/vec: dimension mismatch")
	ErrZeroLength  = ConstError("goxtal/vec: zero-length vector")
	ErrZeroDivide  = ConstError("goxtal/vec: division by zero")
	ErrCrossDims   = ConstError("goxtal/vec: cross product needs 3 components (2 for the scalar form)")
	ErrNotRotation = ConstError("goxtal/vec: transform matrix must be 3x3")
	ErrNilVector   = ConstError("goxtal/vec: nil vector")
)

// The warning handler receives the messages produced by degenerate, but
// recoverable, operations (see package docs). Replacing it is how callers
// silence or collect warnings; the default writes to the standard logger.
var warnHandler = func(msg string) { log.Println(msg) }

// SetWarningHandler replaces the degenerate-operation warning handler.
// A nil handler discards warnings.
func SetWarningHandler(f func(msg string)) {
	if f == nil {
		f = func(string) {}
	}
	warnHandler = f
}

func warnf(format string, args ...interface{}) {
	warnHandler(fmt.Sprintf(format, args...))
}
