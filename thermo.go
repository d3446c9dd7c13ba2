/*
 * thermo.go, part of gothermo.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package thermo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Thermo holds the thermo block read from one log file: the property names
//from the header line, in file order, and one row of numbers per thermo
//output step. A Thermo is never modified after LogRead builds it, so it
//can be queried concurrently.
type Thermo struct {
	names    []string
	data     *mat.Dense //nil when the block holds no data rows.
	filename string
}

//AvailableProps returns the names of the properties in the block, in the
//order they have in the log file.
func (T *Thermo) AvailableProps() []string {
	ret := make([]string, len(T.names))
	copy(ret, T.names)
	return ret
}

//Len returns the number of data rows in the block.
func (T *Thermo) Len() int {
	if T.data == nil {
		return 0
	}
	r, _ := T.data.Dims()
	return r
}

//NProps returns the number of properties (columns) in the block.
func (T *Thermo) NProps() int {
	return len(T.names)
}

//FileName returns the name of the log file the block was read from.
func (T *Thermo) FileName() string {
	return T.filename
}

//colIndex returns the column of the property name, or -1.
//Names are matched exactly, case included.
func (T *Thermo) colIndex(name string) int {
	for i, v := range T.names {
		if v == name {
			return i
		}
	}
	return -1
}

//Bounds restricts a query to the rows where a reference column, normally
//"Step" or "Time", lies within a closed interval. A side that is not set
//is unbounded. The reference column does not need to be among the
//properties requested.
type Bounds struct {
	ref            string
	min, max       float64
	hasmin, hasmax bool
}

//NewBounds returns a Bounds with "Step" as the reference column and both
//sides unbounded.
func NewBounds() *Bounds {
	r := new(Bounds)
	r.ref = "Step"
	return r
}

//Returns the name of the reference column,
//and sets it to a new value, if given.
func (B *Bounds) Ref(name ...string) string {
	if len(name) > 0 && name[0] != "" {
		B.ref = name[0]
	}
	return B.ref
}

//Returns the lower bound on the reference column,
//and sets it to a new value, if given.
func (B *Bounds) Min(v ...float64) float64 {
	if len(v) > 0 {
		B.min = v[0]
		B.hasmin = true
	}
	return B.min
}

//Returns the upper bound on the reference column,
//and sets it to a new value, if given.
func (B *Bounds) Max(v ...float64) float64 {
	if len(v) > 0 {
		B.max = v[0]
		B.hasmax = true
	}
	return B.max
}

//within returns true if v lies in the closed interval. Both ends are
//inclusive.
func (B *Bounds) within(v float64) bool {
	if B.hasmin && v < B.min {
		return false
	}
	if B.hasmax && v > B.max {
		return false
	}
	return true
}

//Prop returns a matrix with one column per requested property, in the
//order requested, not the order in the file. If a Bounds is given, only
//the rows whose reference-column value lies within it are returned.
//If no row qualifies (or the block is empty) Prop returns a nil matrix
//and no error, as gonum matrices cannot have zero rows. The Thermo
//remains usable after a failed call.
func (T *Thermo) Prop(names []string, b ...*Bounds) (*mat.Dense, error) {
	cols := make([]int, len(names))
	for i, v := range names {
		cols[i] = T.colIndex(v)
		if cols[i] < 0 {
			return nil, logError{fmt.Sprintf("%s: %q", UnknownProp, v), T.filename, []string{"Prop"}, true}
		}
	}
	rows, err := T.selectRows(b...)
	if err != nil {
		return nil, errDecorate(err, "Prop")
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, nil
	}
	ret := mat.NewDense(len(rows), len(cols), nil)
	for i, r := range rows {
		for j, c := range cols {
			ret.Set(i, j, T.data.At(r, c))
		}
	}
	return ret, nil
}

//OneProp returns the values of a single property as a slice, in file
//order, windowed by the Bounds if one is given. An empty selection yields
//an empty, non-nil slice.
func (T *Thermo) OneProp(name string, b ...*Bounds) ([]float64, error) {
	col := T.colIndex(name)
	if col < 0 {
		return nil, logError{fmt.Sprintf("%s: %q", UnknownProp, name), T.filename, []string{"OneProp"}, true}
	}
	rows, err := T.selectRows(b...)
	if err != nil {
		return nil, errDecorate(err, "OneProp")
	}
	ret := make([]float64, len(rows))
	for i, r := range rows {
		ret[i] = T.data.At(r, col)
	}
	return ret, nil
}

//selectRows returns the indexes of the rows admitted by the bounds, in
//file order, or all rows if no bounds are given.
func (T *Thermo) selectRows(b ...*Bounds) ([]int, error) {
	n := T.Len()
	if len(b) == 0 || b[0] == nil {
		ret := make([]int, n)
		for i := range ret {
			ret[i] = i
		}
		return ret, nil
	}
	bo := b[0]
	ref := T.colIndex(bo.ref)
	if ref < 0 {
		return nil, logError{fmt.Sprintf("%s: %q", RefColumnNotFound, bo.ref), T.filename, []string{"selectRows"}, true}
	}
	ret := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if bo.within(T.data.At(i, ref)) {
			ret = append(ret, i)
		}
	}
	return ret, nil
}
