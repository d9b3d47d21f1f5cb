/*
 * atoms_test.go, part of goxtal.
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
	"errors"
	"math"
	"testing"

	"github.com/rmolina/goxtal/vec"
)

func TestAtomMassLookup(Te *testing.T) {
	a := NewAtom("C")
	if a.Mass() != 12.01 {
		Te.Errorf("carbon mass %v, want 12.01", a.Mass())
	}
	if err := a.SetMass(13.003); err != nil {
		Te.Fatal(err)
	}
	if a.Mass() != 13.003 {
		Te.Errorf("explicit mass %v, want 13.003", a.Mass())
	}
	if err := a.SetMass(math.NaN()); !errors.Is(err, ErrBadCoordinate) {
		Te.Errorf("NaN mass accepted: %v", err)
	}
	unknown := NewAtom("Xx")
	if unknown.Mass() != 0 {
		Te.Errorf("unknown element mass %v, want 0", unknown.Mass())
	}
}

func TestAtomSetters(Te *testing.T) {
	a := NewXAtom("C", 1, 2, 3)
	if err := a.SetPosition(4, 5, math.Inf(1)); !errors.Is(err, ErrBadCoordinate) {
		Te.Errorf("Inf position accepted: %v", err)
	}
	if a.Position().X() != 1 {
		Te.Errorf("failed setter modified the position: %v", a.Position())
	}
	if err := a.SetVelocity(0.1, 0.2, 0.3); err != nil {
		Te.Fatal(err)
	}
	if err := a.SetVelocity(math.NaN(), 0, 0); !errors.Is(err, ErrBadCoordinate) {
		Te.Errorf("NaN velocity accepted: %v", err)
	}
	if err := a.SetCharge(math.Inf(-1)); !errors.Is(err, ErrBadCoordinate) {
		Te.Errorf("Inf charge accepted: %v", err)
	}
	if err := a.SetCoordinationNumber(-1); !errors.Is(err, ErrBadCoordinate) {
		Te.Errorf("negative CN accepted: %v", err)
	}
	if err := a.SetCoordinationNumber(3); err != nil || a.CoordinationNumber() != 3 {
		Te.Errorf("CN not stored: %v %v", a.CoordinationNumber(), err)
	}
}

func TestTotalMassCompensated(Te *testing.T) {
	as := NewAtoms()
	//a large count of small masses plus one big one is the classic
	//case where naive summation drifts
	big := NewAtom("C")
	big.SetMass(1e10)
	as.Append(big)
	for i := 0; i < 10000; i++ {
		a := NewAtom("H")
		a.SetMass(1e-7) //well below one ulp of the running sum
		as.Append(a)
	}
	got := as.TotalMass()
	want := 1e10 + 1e-3
	if math.Abs(got-want) > 1e-5 {
		Te.Errorf("total mass %v, want %v", got, want)
	}
}

func TestCenterOfMass(Te *testing.T) {
	as := NewAtoms(NewAtom("H", 0, 0, 0), NewAtom("C", 1, 0, 0))
	com, err := as.CenterOfMass()
	if err != nil {
		Te.Fatal(err)
	}
	want := 12.01 / (12.01 + 1.0)
	if math.Abs(com.X()-want) > 1e-12 || com.Y() != 0 {
		Te.Errorf("center of mass %v, want x=%v", com, want)
	}
	empty := NewAtoms()
	if _, err := empty.CenterOfMass(); !errors.Is(err, ErrEmptyAtoms) {
		Te.Errorf("empty container gave no error: %v", err)
	}
	//all-unknown elements fall back to the centroid
	weird := NewAtoms(NewAtom("Xx", 0, 0, 0), NewAtom("Xx", 2, 0, 0))
	com, err = weird.CenterOfMass()
	if err != nil || com.X() != 1 {
		Te.Errorf("centroid fallback %v (%v), want x=1", com, err)
	}
}

func TestAtomsSort(Te *testing.T) {
	as := NewAtoms(
		NewAtom("N", 0, 0, 5),
		NewAtom("C", 0, 0, 2),
		NewAtom("C", 0, 0, 1),
		NewAtom("H", 0, 0, 9),
	)
	as.Sort()
	want := []string{"H", "C", "C", "N"}
	for i, w := range want {
		if as.Atom(i).Element() != w {
			Te.Fatalf("position %d: %s, want %s", i, as.Atom(i).Element(), w)
		}
	}
	if as.Atom(1).Position().Z() != 1 || as.Atom(2).Position().Z() != 2 {
		Te.Errorf("carbons not ordered by z")
	}
	//caller-supplied key
	as.SortBy(func(a, b Atomer) bool { return a.Position().Z() > b.Position().Z() })
	if as.Atom(0).Position().Z() != 9 {
		Te.Errorf("custom sort ignored")
	}
}

func TestElements(Te *testing.T) {
	as := NewAtoms(NewAtom("N"), NewAtom("C"), NewAtom("N"), NewAtom("H"))
	el := as.Elements()
	want := []string{"H", "C", "N"}
	if len(el) != len(want) {
		Te.Fatalf("elements %v, want %v", el, want)
	}
	for i := range want {
		if el[i] != want[i] {
			Te.Errorf("elements %v, want %v", el, want)
		}
	}
}

func TestInsertDelete(Te *testing.T) {
	as := NewAtoms(NewAtom("C"), NewAtom("N"))
	as.Insert(1, NewAtom("B"))
	if as.Len() != 3 || as.Atom(1).Element() != "B" {
		Te.Fatalf("insert failed: %v atoms", as.Len())
	}
	as.Delete(0)
	if as.Len() != 2 || as.Atom(0).Element() != "B" {
		Te.Fatalf("delete failed")
	}
	defer func() {
		if recover() == nil {
			Te.Errorf("out-of-range access did not panic")
		}
	}()
	as.Atom(5)
}

func TestAtomsRotate(Te *testing.T) {
	a := NewXAtom("C", 1, 0, 0)
	if err := a.SetVelocity(1, 0, 0); err != nil {
		Te.Fatal(err)
	}
	as := NewAtoms(a, NewAtom("C", 0, 1, 0))
	rot, err := vec.RotationAbout(math.Pi/2, vec.New(0, 0, 1), nil, false)
	if err != nil {
		Te.Fatal(err)
	}
	d0 := dist(as.Atom(0).Position(), as.Atom(1).Position())
	if err := as.Rotate(rot); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(dist(as.Atom(0).Position(), as.Atom(1).Position())-d0) > 1e-9 {
		Te.Errorf("rotation changed interatomic distance")
	}
	if math.Abs(as.Atom(0).Position().Y()-1) > 1e-9 {
		Te.Errorf("atom not rotated: %v", as.Atom(0).Position())
	}
	//the velocity rotates with the frame
	if math.Abs(a.Velocity().Y()-1) > 1e-9 || math.Abs(a.Velocity().X()) > 1e-9 {
		Te.Errorf("velocity not rotated: %v", a.Velocity())
	}
}

func dist(p, q *vec.Point) float64 {
	var d2 float64
	for i := 0; i < p.Dims(); i++ {
		d := p.At(i) - q.At(i)
		d2 += d * d
	}
	return math.Sqrt(d2)
}

func TestClipToRegion(Te *testing.T) {
	as := NewAtoms(
		NewAtom("C", 0, 0, 0),
		NewAtom("C", 3, 0, 0),
		NewAtom("C", 0, 0, 10),
	)
	if err := as.ClipToRegion(Sphere{Radius: 5}, false); err != nil {
		Te.Fatal(err)
	}
	if as.Len() != 2 {
		Te.Fatalf("sphere clip kept %d atoms, want 2", as.Len())
	}
	//centerFirst tests the region about the center of mass, then puts
	//the survivors back where they were
	as2 := NewAtoms(NewAtom("C", 10, 0, 0), NewAtom("C", 12, 0, 0))
	if err := as2.ClipToRegion(Sphere{Radius: 1.5}, true); err != nil {
		Te.Fatal(err)
	}
	if as2.Len() != 2 {
		Te.Fatalf("centered clip kept %d atoms, want 2", as2.Len())
	}
	for i, wantX := range []float64{10, 12} {
		if x := as2.Atom(i).Position().X(); math.Abs(x-wantX) > 1e-9 {
			Te.Errorf("centered clip left atom %d at x=%v, want %v", i, x, wantX)
		}
	}
	//a centered clip that drops atoms also restores the survivors,
	//using the pre-clip center of mass
	as3 := NewAtoms(NewAtom("C", 10, 0, 0), NewAtom("C", 12, 0, 0), NewAtom("C", 16, 0, 0))
	if err := as3.ClipToRegion(Sphere{Radius: 3}, true); err != nil {
		Te.Fatal(err)
	}
	if as3.Len() != 2 {
		Te.Fatalf("centered clip kept %d atoms, want 2", as3.Len())
	}
	for i, wantX := range []float64{10, 12} {
		if x := as3.Atom(i).Position().X(); math.Abs(x-wantX) > 1e-9 {
			Te.Errorf("centered clip left atom %d at x=%v, want %v", i, x, wantX)
		}
	}
	box := NewAtoms(NewAtom("C", 0.5, 0.5, 0.5), NewAtom("C", 2, 0, 0))
	if err := box.ClipToRegion(Box{Max: [3]float64{1, 1, 1}}, false); err != nil {
		Te.Fatal(err)
	}
	if box.Len() != 1 {
		Te.Fatalf("box clip kept %d atoms, want 1", box.Len())
	}
	cyl := NewAtoms(NewAtom("C", 1, 0, 1), NewAtom("C", 5, 0, 1), NewAtom("C", 1, 0, 9))
	if err := cyl.ClipToRegion(Cylinder{Radius: 2, ZMax: 5}, false); err != nil {
		Te.Fatal(err)
	}
	if cyl.Len() != 1 {
		Te.Fatalf("cylinder clip kept %d atoms, want 1", cyl.Len())
	}
}

func TestCoordinatesMatrix(Te *testing.T) {
	as := NewAtoms(NewAtom("C", 1, 2, 3), NewAtom("H", 4, 5, 6))
	m := as.Coordinates()
	r, c := m.Dims()
	if r != 2 || c != 3 {
		Te.Fatalf("coordinates matrix is %dx%d", r, c)
	}
	if m.At(1, 2) != 6 {
		Te.Errorf("coordinates[1,2] = %v, want 6", m.At(1, 2))
	}
	//the matrix is a snapshot, not a view
	m.Set(0, 0, 99)
	if as.Atom(0).Position().X() != 1 {
		Te.Errorf("mutating the matrix moved the atom")
	}
}
