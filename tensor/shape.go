// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
	"math/bits"
)

// The Shape of a tensor: one length per axis, leading axis first.
// An empty or nil Shape describes a scalar.
type Shape []int

// Elems returns the number of elements a tensor of this shape holds.
// An empty shape counts as 1 scalar value.
//
// It returns an error if the shape contains a negative value, or if
// the product overflows the "int" type.
func (s Shape) Elems() (int, error) {
	size := uint(1)
	for _, v := range s {
		if v < 0 {
			return 0, fmt.Errorf("%w: shape contains negative value %d", ErrValidation, v)
		}
		var hi uint
		if hi, size = bits.Mul(size, uint(v)); hi != 0 {
			return 0, fmt.Errorf("%w: int overflow computing element count from shape", ErrValidation)
		}
	}
	if size > math.MaxInt {
		return 0, fmt.Errorf("%w: element count computed from shape is too large for int type: %d", ErrValidation, size)
	}
	return int(size), nil
}

// Equal reports whether two shapes have the same rank and axis lengths.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if v != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape, or nil if the shape is zero-length.
func (s Shape) Clone() Shape {
	if len(s) == 0 {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}
