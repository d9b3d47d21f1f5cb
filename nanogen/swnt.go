/*
 * swnt.go, part of goxtal.
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

package nanogen

import (
	"fmt"
	"math"

	"github.com/rmolina/goxtal"
	"github.com/rmolina/goxtal/vec"
)

//SWNT describes a single-walled carbon nanotube of chirality (n, m):
//the graphene sheet is rolled so that the chiral vector
//Ch = n a1 + m a2 becomes the tube circumference. Nz counts the
//translational repeat units along the tube axis (z).
type SWNT struct {
	N, M int
	Nz   int
	Bond float64
}

//NewSWNT returns a generator for an (n, m) nanotube nz unit cells
//long, with the default bond length. By the usual convention m is not
//larger than n; arguments violating it are swapped. n must be
//positive, m nonnegative, nz positive.
func NewSWNT(n, m, nz int) (*SWNT, error) {
	if m > n {
		n, m = m, n
	}
	if n < 1 || m < 0 || nz < 1 {
		return nil, fmt.Errorf("chirality (%d, %d), nz %d: %w", n, m, nz, ErrParams)
	}
	return &SWNT{N: n, M: m, Nz: nz, Bond: CCBond}, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

//DR returns d_R = gcd(2n+m, 2m+n), the greatest common divisor that
//fixes the length of the translation vector.
func (t *SWNT) DR() int { return gcd(2*t.N+t.M, 2*t.M+t.N) }

//ChiralVectorLength returns |Ch| = bond * sqrt(3 (n^2 + n m + m^2)).
func (t *SWNT) ChiralVectorLength() float64 {
	n, m := float64(t.N), float64(t.M)
	return t.Bond * math.Sqrt(3*(n*n+n*m+m*m))
}

//Diameter returns the tube diameter, |Ch| / pi.
func (t *SWNT) Diameter() float64 { return t.ChiralVectorLength() / math.Pi }

//ChiralAngle returns the chiral angle in degrees: 0 for zigzag (m=0),
//30 for armchair (n=m).
func (t *SWNT) ChiralAngle() float64 {
	return vec.Rad2Deg(math.Atan2(math.Sqrt(3)*float64(t.M), float64(2*t.N+t.M)))
}

//T returns the length of the translation vector along the tube axis,
//sqrt(3) |Ch| / d_R.
func (t *SWNT) T() float64 { return math.Sqrt(3) * t.ChiralVectorLength() / float64(t.DR()) }

//NumHexagons returns N = 2 (n^2 + n m + m^2) / d_R, the hexagons per
//translational unit cell.
func (t *SWNT) NumHexagons() int {
	return 2 * (t.N*t.N + t.N*t.M + t.M*t.M) / t.DR()
}

//NumAtoms returns the atom count of the generated tube, 2 N per unit
//cell.
func (t *SWNT) NumAtoms() int { return 2 * t.NumHexagons() * t.Nz }

//Generate builds the tube, axis along z starting at z = 0, and
//returns its atoms with one molecule id per unit cell and sequential
//ids.
func (t *SWNT) Generate() (*xtal.Atoms, error) {
	if t.Bond <= 0 {
		return nil, fmt.Errorf("bond length %v: %w", t.Bond, ErrParams)
	}
	if t.Nz < 1 {
		return nil, fmt.Errorf("nz %d: %w", t.Nz, ErrParams)
	}
	//graphene primitive vectors in the flat sheet
	a := math.Sqrt(3) * t.Bond
	a1 := [2]float64{a, 0}
	a2 := [2]float64{a / 2, a * math.Sqrt(3) / 2}
	//chiral and translation vectors in lattice coordinates
	dR := t.DR()
	t1 := (2*t.M + t.N) / dR
	t2 := -(2*t.N + t.M) / dR
	ch := [2]float64{float64(t.N)*a1[0] + float64(t.M)*a2[0], float64(t.N)*a1[1] + float64(t.M)*a2[1]}
	tv := [2]float64{float64(t1)*a1[0] + float64(t2)*a2[0], float64(t1)*a1[1] + float64(t2)*a2[1]}
	chLen := math.Hypot(ch[0], ch[1])
	tvLen := math.Hypot(tv[0], tv[1])
	chHat := [2]float64{ch[0] / chLen, ch[1] / chLen}
	tvHat := [2]float64{tv[0] / tvLen, tv[1] / tvLen}
	//the two-atom basis of the flat sheet
	basis := [2][2]float64{
		{0, 0},
		{(a1[0] + a2[0]) / 3, (a1[1] + a2[1]) / 3},
	}
	radius := t.Diameter() / 2

	//sweep the lattice indices covering the Ch x T rectangle, keep one
	//representative per wrapped (u, v) site
	const eps = 1e-8
	wrap := func(x, period float64) float64 {
		w := math.Mod(x, period)
		if w < 0 {
			w += period
		}
		if period-w < eps*period {
			w = 0
		}
		return w
	}
	lo1, hi1 := boundIndices(t.N, t1)
	lo2, hi2 := boundIndices(t.M, t2)
	type site struct{ u, v int64 }
	seen := map[site]bool{}
	want := 2 * t.NumHexagons()
	out := xtal.NewAtoms()
	for i := lo1 - 1; i <= hi1+1 && len(seen) < want; i++ {
		for j := lo2 - 1; j <= hi2+1 && len(seen) < want; j++ {
			for _, b := range basis {
				x := float64(i)*a1[0] + float64(j)*a2[0] + b[0]
				y := float64(i)*a1[1] + float64(j)*a2[1] + b[1]
				u := wrap(x*chHat[0]+y*chHat[1], chLen)
				v := wrap(x*tvHat[0]+y*tvHat[1], tvLen)
				key := site{int64(math.Round(u / eps)), int64(math.Round(v / eps))}
				//distinct sites are many buckets apart, so checking the
				//adjacent buckets absorbs float jitter at bucket edges
				dup := false
				for du := int64(-1); du <= 1 && !dup; du++ {
					for dv := int64(-1); dv <= 1 && !dup; dv++ {
						dup = seen[site{key.u + du, key.v + dv}]
					}
				}
				if dup {
					continue
				}
				seen[key] = true
				phi := 2 * math.Pi * u / chLen
				for cell := 0; cell < t.Nz; cell++ {
					atom := xtal.NewXAtom("C",
						radius*math.Cos(phi),
						radius*math.Sin(phi),
						v+float64(cell)*tvLen)
					atom.SetMol(cell + 1)
					out.Append(atom)
				}
			}
		}
	}
	if out.Len() != t.NumAtoms() {
		return nil, fmt.Errorf("generated %d atoms for an (%d, %d) tube, want %d: %w",
			out.Len(), t.N, t.M, t.NumAtoms(), ErrParams)
	}
	out.Sort()
	for i := 0; i < out.Len(); i++ {
		out.Atom(i).(*xtal.XAtom).SetID(i + 1)
	}
	return out, nil
}

//boundIndices returns the min and max of the lattice-coordinate
//values of the four corners of the Ch x T rectangle: 0, c1, c2 and
//c1+c2.
func boundIndices(c1, c2 int) (lo, hi int) {
	vals := []int{0, c1, c2, c1 + c2}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
