/*
 * atomicdata.go, part of goxtal.
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

//A map for assigning mass to elements.
//Only elements common in nanostructure and substrate work are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ge": 72.63,
	"Se": 78.96,
	"Br": 79.904,
	"Mo": 95.95,
	"Ag": 107.87,
	"I":  126.90,
	"W":  183.84,
	"Au": 196.97,
}

//A map for assigning atomic numbers to element symbols,
//used by the default atom ordering.
var symbolZ = map[string]int{
	"H":  1,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Ti": 22,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ge": 32,
	"Se": 34,
	"Br": 35,
	"Mo": 42,
	"Ag": 47,
	"I":  53,
	"W":  74,
	"Au": 79,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Fe": 1.52, //hs
	"Cu": 1.32,
	"Zn": 1.22,
	"Se": 1.2,
	"Br": 1.2,
	"Mo": 1.54,
	"Ag": 1.45,
	"I":  1.39,
	"Au": 1.36,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"B":  1.92,
	"C":  1.70, //the sp3 radius
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Na": 2.27,
	"Mg": 1.73,
	"Al": 1.84,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"K":  2.75,
	"Ca": 2.31,
	"Fe": 1.96,
	"Cu": 2.00,
	"Zn": 2.02,
	"Se": 1.90,
	"Br": 1.83,
	"I":  1.98,
	"Au": 2.14,
}

// SymbolMass returns the atomic mass for an element symbol, or 0 and false
// when the symbol is not in the table.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// AtomicNumber returns the atomic number for an element symbol, or 0 and
// false when the symbol is not in the table.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := symbolZ[symbol]
	return z, ok
}

// CovalentRadius returns the covalent radius for an element symbol, or 0
// and false when the symbol is not in the table.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

// VdwRadius returns the van der Waals radius for an element symbol, or 0
// and false when the symbol is not in the table.
func VdwRadius(symbol string) (float64, bool) {
	r, ok := symbolVdwrad[symbol]
	return r, ok
}
