// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// From normalizes an accepted numeric representation into a Tensor.
//
// Accepted forms:
//   - Tensor: returned as-is
//   - *mat.Dense: copied into a rank-2 tensor
//   - []float64: copied into a rank-1 tensor
//   - [][]float64: copied into a rank-2 tensor; rows must all have the
//     same length
//   - [][][]float64: copied into a rank-3 tensor; the nesting must be
//     rectangular
//
// Any other value, including nil, yields an error wrapping ErrValidation.
func From(v any) (Tensor, error) {
	switch x := v.(type) {
	case Tensor:
		return x, nil
	case *mat.Dense:
		return fromDense(x)
	case []float64:
		data := make([]float64, len(x))
		copy(data, x)
		return Tensor{shape: Shape{len(x)}, data: data}, nil
	case [][]float64:
		return fromNested2(x)
	case [][][]float64:
		return fromNested3(x)
	case nil:
		return Tensor{}, fmt.Errorf("%w: cannot build a tensor from nil", ErrValidation)
	default:
		return Tensor{}, fmt.Errorf("%w: cannot build a tensor from %T", ErrValidation, v)
	}
}

func fromDense(d *mat.Dense) (Tensor, error) {
	if d == nil {
		return Tensor{}, fmt.Errorf("%w: cannot build a tensor from a nil matrix", ErrValidation)
	}
	r, c := d.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		mat.Row(data[i*c:(i+1)*c], i, d)
	}
	return Tensor{shape: Shape{r, c}, data: data}, nil
}

func fromNested2(rows [][]float64) (Tensor, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Tensor{}, fmt.Errorf("%w: ragged nested slice: row 0 has %d elements, row %d has %d",
				ErrValidation, cols, i, len(row))
		}
		data = append(data, row...)
	}
	return Tensor{shape: Shape{len(rows), cols}, data: data}, nil
}

func fromNested3(rows [][][]float64) (Tensor, error) {
	d1, d2 := 0, 0
	if len(rows) > 0 {
		d1 = len(rows[0])
		if d1 > 0 {
			d2 = len(rows[0][0])
		}
	}
	data := make([]float64, 0, len(rows)*d1*d2)
	for i, row := range rows {
		if len(row) != d1 {
			return Tensor{}, fmt.Errorf("%w: ragged nested slice at index %d: expected %d sub-slices, actual %d",
				ErrValidation, i, d1, len(row))
		}
		for j, sub := range row {
			if len(sub) != d2 {
				return Tensor{}, fmt.Errorf("%w: ragged nested slice at index %d,%d: expected %d elements, actual %d",
					ErrValidation, i, j, d2, len(sub))
			}
			data = append(data, sub...)
		}
	}
	return Tensor{shape: Shape{len(rows), d1, d2}, data: data}, nil
}
