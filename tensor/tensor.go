// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides the canonical in-memory numeric representation
// used by the dataset types: dense, row-major, float64 tensors.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A Tensor is an immutable dense array of float64 values in row-major
// order. The zero value is a scalar holding no data; useful tensors are
// built with New or From.
type Tensor struct {
	shape Shape
	data  []float64
}

// New performs validity checks over the given properties and returns a
// Tensor with those properties if validation succeeds, otherwise an error.
//
// The shape must not contain negative values, and the number of data
// elements must match the shape (an empty shape implies a scalar of one
// element). The shape is copied before being assigned to the Tensor.
//
// Since "data" can possibly take a large amount of memory, its value is
// NOT copied, and is directly assigned to the Tensor. Accidental
// modifications to the data given to this function could lead to
// subsequent unexpected content, even in absence of errors.
func New(shape Shape, data []float64) (Tensor, error) {
	elems, err := shape.Elems()
	if err != nil {
		return Tensor{}, err
	}
	if elems != len(data) {
		return Tensor{}, fmt.Errorf("%w: element count computed from shape (%d) does not match data length (%d)",
			ErrValidation, elems, len(data))
	}
	return Tensor{shape: shape.Clone(), data: data}, nil
}

// The Shape of the tensor.
//
// If the shape is zero-length, it returns nil, otherwise a new slice
// is allocated and returned (the shape is copied to prevent tampering).
func (t Tensor) Shape() Shape {
	return t.shape.Clone()
}

// The Data of the tensor, in row-major order.
//
// The value returned is NOT a copy: any change to its content will
// affect the Tensor too. Use Float64s for a safe copy.
func (t Tensor) Data() []float64 {
	return t.data
}

// Rank returns the number of axes. A scalar has rank 0.
func (t Tensor) Rank() int {
	return len(t.shape)
}

// Len returns the leading-dimension length: the number of rows.
// A scalar has length 0.
func (t Tensor) Len() int {
	if len(t.shape) == 0 {
		return 0
	}
	return t.shape[0]
}

// RowShape returns the shape of a single row, i.e. the tensor's shape
// with the leading axis removed. For a rank-1 tensor the rows are scalars
// and the row shape is nil.
func (t Tensor) RowShape() Shape {
	if len(t.shape) == 0 {
		return nil
	}
	return t.shape[1:].Clone()
}

// Row returns a view of the i-th row: a sub-tensor whose shape is the
// tensor's shape without the leading axis.
//
// The view shares the backing data with the tensor (no copy is made),
// which is safe as long as neither is mutated.
func (t Tensor) Row(i int) (Tensor, error) {
	n := t.Len()
	if i < 0 || i >= n {
		return Tensor{}, fmt.Errorf("%w: row %d, length %d", ErrOutOfRange, i, n)
	}
	rowShape := t.RowShape()
	stride := len(t.data) / n
	return Tensor{
		shape: rowShape,
		data:  t.data[i*stride : (i+1)*stride],
	}, nil
}

// Equal reports whether two tensors have the same shape and the same
// elements.
func (t Tensor) Equal(other Tensor) bool {
	return t.shape.Equal(other.shape) && floats.Equal(t.data, other.data)
}

// Float64s returns a copy of the tensor's elements in row-major order.
func (t Tensor) Float64s() []float64 {
	c := make([]float64, len(t.data))
	copy(c, t.data)
	return c
}

// Dense converts a rank-2 tensor to a gonum dense matrix, copying the data.
// Tensors of any other rank, or with an empty axis, cannot be represented
// as a matrix and yield an error.
func (t Tensor) Dense() (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: rank %d tensor is not a matrix", ErrValidation, len(t.shape))
	}
	r, c := t.shape[0], t.shape[1]
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty axis in shape %v", ErrValidation, t.shape)
	}
	return mat.NewDense(r, c, t.Float64s()), nil
}
