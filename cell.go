/*
 * cell.go, part of goxtal.
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

	"gonum.org/v1/gonum/mat"

	"github.com/rmolina/goxtal/vec"
)

//UnitCell is a lattice plus a basis. The basis stores fractional
//coordinates; Cartesian input is converted at insertion time.
type UnitCell struct {
	lattice *Lattice
	basis   *BasisAtoms
}

//NewUnitCell returns a unit cell over the given lattice, with an
//empty basis if basis is nil. The basis atoms are rebound to the
//cell's lattice.
func NewUnitCell(lattice *Lattice, basis *BasisAtoms) (*UnitCell, error) {
	if lattice == nil {
		return nil, fmt.Errorf("unit cell: %w", ErrNilLattice)
	}
	uc := &UnitCell{lattice: lattice}
	if basis == nil {
		uc.basis = NewBasisAtoms()
	} else {
		uc.basis = basis.clone(lattice)
	}
	return uc, nil
}

//Lattice returns the cell's lattice.
func (uc *UnitCell) Lattice() *Lattice { return uc.lattice }

//Basis returns the cell's basis container.
func (uc *UnitCell) Basis() *BasisAtoms { return uc.basis }

//AddBasisAtom adds an atom of the given element to the basis. With
//cartesian the coordinates are Cartesian and are converted to
//fractional through the lattice; otherwise they are fractional
//already.
func (uc *UnitCell) AddBasisAtom(symbol string, coords *vec.Point, cartesian bool) error {
	f := coords
	if cartesian {
		var err error
		f, err = uc.lattice.CartesianToFractional(coords)
		if err != nil {
			return err
		}
	}
	a, err := NewBasisAtom(symbol, uc.lattice, f)
	if err != nil {
		return err
	}
	a.SetID(uc.basis.Len() + 1)
	a.SetMol(1)
	uc.basis.Append(a)
	return nil
}

//Rotate rotates the cell. Only the lattice orientation changes; the
//basis, being fractional, follows by construction.
func (uc *UnitCell) Rotate(t *vec.Transform) error {
	return uc.lattice.Rotate(t)
}

//Translate displaces the cell by t, through the lattice offset.
func (uc *UnitCell) Translate(t *vec.Vector) error {
	return uc.lattice.Translate(t)
}

//Copy returns a deep copy: a fresh lattice rebuilt from the full
//parameter set and a fresh basis bound to it.
func (uc *UnitCell) Copy() *UnitCell {
	l := uc.lattice.Copy()
	return &UnitCell{lattice: l, basis: uc.basis.clone(l)}
}

//Equal reports structural equality of the two cells within epsilon:
//same lattice, same basis elements at the same fractional positions.
func (uc *UnitCell) Equal(o *UnitCell, epsilon float64) bool {
	if o == nil || !uc.lattice.Equal(o.lattice, epsilon) || uc.basis.Len() != o.basis.Len() {
		return false
	}
	for i := 0; i < uc.basis.Len(); i++ {
		a, b := uc.basis.Atom(i), o.basis.Atom(i)
		if a.Element() != b.Element() {
			return false
		}
		for j := 0; j < 3; j++ {
			if math.Abs(a.frac.At(j)-b.frac.At(j)) > epsilon {
				return false
			}
		}
	}
	return true
}

//Atoms materializes the basis as Cartesian extended atoms. The result
//shares nothing with the cell.
func (uc *UnitCell) Atoms() (*Atoms, error) {
	return materialize(uc.basis)
}

func materialize(basis *BasisAtoms) (*Atoms, error) {
	out := NewAtoms()
	for i := 0; i < basis.Len(); i++ {
		b := basis.Atom(i)
		r, err := b.R()
		if err != nil {
			return nil, fmt.Errorf("basis atom %d: %w", i, err)
		}
		a := NewXAtom(b.Element(), r.X(), r.Y(), r.Z())
		a.SetID(b.ID())
		a.SetMol(b.Mol())
		out.Append(a)
	}
	return out, nil
}

//CrystalCell is a unit cell plus a supercell scaling matrix. Setting
//a non-trivial scaling rebuilds the lattice and replicates the basis;
//the pristine unit cell is kept so the expansion can be redone from
//scratch.
type CrystalCell struct {
	lattice  *Lattice
	basis    *BasisAtoms
	unitCell *UnitCell
	scaling  *mat.Dense
}

//NewCrystalCell returns a crystal cell over a deep copy of the unit
//cell, with identity scaling.
func NewCrystalCell(uc *UnitCell) (*CrystalCell, error) {
	if uc == nil {
		return nil, ErrNilUnitCell
	}
	c := uc.Copy()
	return &CrystalCell{
		lattice:  c.lattice,
		basis:    c.basis,
		unitCell: c,
		scaling:  eye(),
	}, nil
}

//Lattice returns the (possibly scaled) lattice.
func (cc *CrystalCell) Lattice() *Lattice { return cc.lattice }

//Basis returns the (possibly replicated) basis.
func (cc *CrystalCell) Basis() *BasisAtoms { return cc.basis }

//UnitCell returns the pristine unit cell the crystal cell was built
//from.
func (cc *CrystalCell) UnitCell() *UnitCell { return cc.unitCell }

//Scaling returns a copy of the current scaling matrix.
func (cc *CrystalCell) Scaling() *mat.Dense { return mat.DenseCopyOf(cc.scaling) }

//normalizeScaling turns the accepted scaling forms into a 3 x 3
//integer matrix: a positive integer scalar k becomes k*I, a length-3
//vector of positive integers becomes a diagonal matrix, and a 3 x 3
//integer matrix with nonzero determinant passes through. Anything
//else is ErrScalingValue.
func normalizeScaling(x interface{}) (*mat.Dense, error) {
	intval := func(v float64) (float64, bool) {
		if !finite(v) || v != math.Trunc(v) {
			return 0, false
		}
		return v, true
	}
	diag := func(vals []float64) (*mat.Dense, error) {
		if len(vals) != 3 {
			return nil, fmt.Errorf("scaling vector has %d entries, want 3: %w", len(vals), ErrScalingValue)
		}
		m := eye()
		for i, v := range vals {
			k, ok := intval(v)
			if !ok || k <= 0 {
				return nil, fmt.Errorf("scaling factor %v: %w", v, ErrScalingValue)
			}
			m.Set(i, i, k)
		}
		return m, nil
	}
	switch s := x.(type) {
	case int:
		return diag([]float64{float64(s), float64(s), float64(s)})
	case float64:
		return diag([]float64{s, s, s})
	case []int:
		vals := make([]float64, len(s))
		for i, v := range s {
			vals[i] = float64(v)
		}
		return diag(vals)
	case []float64:
		return diag(s)
	case *mat.Dense:
		r, c := s.Dims()
		if r != 3 || c != 3 {
			return nil, fmt.Errorf("scaling matrix is %dx%d, want 3x3: %w", r, c, ErrScalingValue)
		}
		m := mat.NewDense(3, 3, nil)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				k, ok := intval(s.At(i, j))
				if !ok {
					return nil, fmt.Errorf("scaling matrix entry %v: %w", s.At(i, j), ErrScalingValue)
				}
				m.Set(i, j, k)
			}
		}
		if math.Abs(mat.Det(m)) < 0.5 {
			return nil, fmt.Errorf("scaling matrix is singular: %w", ErrScalingValue)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("scaling of type %T: %w", x, ErrScalingValue)
	}
}

func isIdentity(m *mat.Dense) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if m.At(i, j) != want {
				return false
			}
		}
	}
	return true
}

//SetScaling expands the cell by the given scaling: a positive integer
//scalar, a length-3 vector of positive integers ([]int or []float64
//with integer values), or a 3 x 3 integer *mat.Dense with nonzero
//determinant. Invalid input returns ErrScalingValue and leaves the
//cell untouched. Identity scaling is a true no-op. A real scaling
//rebuilds the lattice from S times the pristine cell matrix and
//replicates the pristine basis over the |det S| lattice translations
//of the scaled cell; with wrap the new fractional coordinates are
//wrapped into [0, 1). Repeated calls always expand the pristine unit
//cell, never the already-expanded basis.
func (cc *CrystalCell) SetScaling(x interface{}, wrap bool) error {
	s, err := normalizeScaling(x)
	if err != nil {
		return err
	}
	if isIdentity(s) {
		cc.scaling = s
		return nil
	}
	oldCell := cc.unitCell.lattice.Matrix()
	newCell := mat.NewDense(3, 3, nil)
	newCell.Mul(s, oldCell)
	newLattice, err := LatticeFromMatrix(newCell)
	if err != nil {
		return fmt.Errorf("scaled lattice: %w", err)
	}
	if err := newLattice.SetOffset(cc.unitCell.lattice.Offset()); err != nil {
		return err
	}
	tvecs := supercellTranslations(s)
	maxMol := cc.unitCell.basis.MaxMol()
	basis := NewBasisAtoms()
	id := 0
	for bi := 0; bi < cc.unitCell.basis.Len(); bi++ {
		b := cc.unitCell.basis.Atom(bi)
		r, err := b.R()
		if err != nil {
			return fmt.Errorf("basis atom %d: %w", bi, err)
		}
		for ti, n := range tvecs {
			//Cartesian translation: n[0]*a1 + n[1]*a2 + n[2]*a3
			cart := make([]float64, 3)
			for k := 0; k < 3; k++ {
				cart[k] = r.At(k)
				for d := 0; d < 3; d++ {
					cart[k] += n[d] * oldCell.At(d, k)
				}
			}
			f, err := newLattice.CartesianToFractional(vec.NewPoint(cart...))
			if err != nil {
				return err
			}
			if wrap {
				f = WrapFractional(f)
			}
			na, err := NewBasisAtom(b.Element(), newLattice, f)
			if err != nil {
				return err
			}
			id++
			na.SetID(id)
			na.SetMol(ti*maxMol + b.Mol())
			basis.Append(na)
		}
	}
	cc.lattice = newLattice
	cc.basis = basis
	cc.scaling = s
	return nil
}

//supercellTranslations enumerates the |det S| integer translations of
//the original lattice that tile one scaled cell: the integer triples
//n whose fractional coordinates n * inv(S) in the scaled cell fall in
//[0, 1). The triples come out in lexicographic order.
func supercellTranslations(s *mat.Dense) [][3]float64 {
	det := math.Abs(mat.Det(s))
	want := int(math.Round(det))
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(s); err != nil {
		return nil //det checked nonzero by the caller
	}
	//bounding box of the scaled cell's corners in original lattice units
	lo := [3]float64{0, 0, 0}
	hi := [3]float64{0, 0, 0}
	for mask := 0; mask < 8; mask++ {
		var f [3]float64
		for d := 0; d < 3; d++ {
			if mask&(1<<d) != 0 {
				f[d] = 1
			}
		}
		for d := 0; d < 3; d++ {
			//corner in original lattice units: f * S (row vector)
			var v float64
			for k := 0; k < 3; k++ {
				v += f[k] * s.At(k, d)
			}
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}
	const eps = 1e-8
	var out [][3]float64
	for i := math.Floor(lo[0]); i <= math.Ceil(hi[0]); i++ {
		for j := math.Floor(lo[1]); j <= math.Ceil(hi[1]); j++ {
			for k := math.Floor(lo[2]); k <= math.Ceil(hi[2]); k++ {
				n := [3]float64{i, j, k}
				inside := true
				for d := 0; d < 3; d++ {
					var f float64
					for q := 0; q < 3; q++ {
						f += n[q] * inv.At(q, d)
					}
					if f < -eps || f >= 1-eps {
						inside = false
						break
					}
				}
				if inside {
					out = append(out, n)
					if len(out) == want {
						return out
					}
				}
			}
		}
	}
	return out
}

//Rotate rotates the expanded lattice and the pristine unit cell in
//lockstep.
func (cc *CrystalCell) Rotate(t *vec.Transform) error {
	if err := cc.lattice.Rotate(t); err != nil {
		return err
	}
	if cc.lattice != cc.unitCell.lattice {
		return cc.unitCell.Rotate(t)
	}
	return nil
}

//Translate displaces the expanded lattice and the pristine unit cell
//in lockstep.
func (cc *CrystalCell) Translate(t *vec.Vector) error {
	if err := cc.lattice.Translate(t); err != nil {
		return err
	}
	if cc.lattice != cc.unitCell.lattice {
		return cc.unitCell.Translate(t)
	}
	return nil
}

//TranslateBasis displaces every basis atom, in both the expanded
//basis and the pristine unit-cell basis, by t. With cartesian the
//displacement is Cartesian and is converted through each atom's
//lattice; otherwise it is fractional. With wrap the results are
//wrapped into [0, 1).
func (cc *CrystalCell) TranslateBasis(t *vec.Vector, cartesian, wrap bool) error {
	if t == nil || t.Dims() != 3 {
		return fmt.Errorf("basis translation must be 3D: %w", ErrShape)
	}
	shift := func(bs *BasisAtoms, lattice *Lattice) error {
		df := t.Components()
		if cartesian {
			//convert the Cartesian step to a fractional step: the
			//offset cancels, so map head and anchor and subtract
			head, err := lattice.CartesianToFractional(t.Head())
			if err != nil {
				return err
			}
			tail, err := lattice.CartesianToFractional(t.Anchor())
			if err != nil {
				return err
			}
			for i := 0; i < 3; i++ {
				df[i] = head.At(i) - tail.At(i)
			}
		}
		for i := 0; i < bs.Len(); i++ {
			a := bs.Atom(i)
			f := a.Frac()
			for d := 0; d < 3; d++ {
				f.Set(d, f.At(d)+df[d])
			}
			if wrap {
				f = WrapFractional(f)
			}
			if err := a.SetFrac(f); err != nil {
				return err
			}
		}
		return nil
	}
	if err := shift(cc.basis, cc.lattice); err != nil {
		return err
	}
	if cc.basis != cc.unitCell.basis {
		return shift(cc.unitCell.basis, cc.unitCell.lattice)
	}
	return nil
}

//UpdateBasis changes the element of the basis atoms at positions
//index, index+step, index+2*step, ... of the pristine unit-cell
//basis, and of every replica of those atoms in the expanded basis.
//A step of zero updates only the single atom at index.
func (cc *CrystalCell) UpdateBasis(element string, index, step int) error {
	if index < 0 || index >= cc.unitCell.basis.Len() {
		return fmt.Errorf("basis index %d of %d: %w", index, cc.unitCell.basis.Len(), ErrBasisIndex)
	}
	var idx []int
	if step <= 0 {
		idx = []int{index}
	} else {
		for i := index; i < cc.unitCell.basis.Len(); i += step {
			idx = append(idx, i)
		}
	}
	return cc.UpdateBasisAt(element, idx)
}

//UpdateBasisAt changes the element of the basis atoms at the given
//positions of the pristine unit-cell basis, and of every replica of
//those atoms in the expanded basis.
func (cc *CrystalCell) UpdateBasisAt(element string, indices []int) error {
	nb := cc.unitCell.basis.Len()
	for _, i := range indices {
		if i < 0 || i >= nb {
			return fmt.Errorf("basis index %d of %d: %w", i, nb, ErrBasisIndex)
		}
	}
	//replicas of unit-cell atom i occupy the contiguous block
	//[i*reps, (i+1)*reps) of the expanded basis
	reps := 1
	if cc.basis != cc.unitCell.basis && nb > 0 {
		reps = cc.basis.Len() / nb
	}
	for _, i := range indices {
		cc.unitCell.basis.Atom(i).SetElement(element)
		if cc.basis != cc.unitCell.basis {
			for r := 0; r < reps; r++ {
				cc.basis.Atom(i*reps + r).SetElement(element)
			}
		}
	}
	return nil
}

//Atoms materializes the expanded basis as Cartesian extended atoms.
func (cc *CrystalCell) Atoms() (*Atoms, error) {
	return materialize(cc.basis)
}

//SuperCell is a crystal cell constructed directly with a scaling.
type SuperCell struct {
	CrystalCell
}

//NewSuperCell expands the unit cell by the given scaling (same forms
//as CrystalCell.SetScaling). A nil unit cell or an invalid scaling
//fails immediately.
func NewSuperCell(uc *UnitCell, scaling interface{}, wrap bool) (*SuperCell, error) {
	cc, err := NewCrystalCell(uc)
	if err != nil {
		return nil, err
	}
	if err := cc.SetScaling(scaling, wrap); err != nil {
		return nil, err
	}
	return &SuperCell{CrystalCell: *cc}, nil
}
