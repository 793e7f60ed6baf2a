// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imbalanced provides in-memory dataset wrappers for
// class-imbalance-aware data pipelines: a paired inputs/targets dataset,
// masked views that filter its rows while preserving order, and sampling
// helpers that build such views.
package imbalanced

import "github.com/deesatz/imbalanced/tensor"

// A Sample is the pair of records a dataset yields for one index:
// the input row and its corresponding target row.
type Sample struct {
	Input  tensor.Tensor
	Target tensor.Tensor
}

// Equal reports whether both rows of two samples are equal.
func (s Sample) Equal(other Sample) bool {
	return s.Input.Equal(other.Input) && s.Target.Equal(other.Target)
}

// A Dataset is a finite, immutable sequence of paired input/target rows.
//
// Implementations are side-effect-free: Len and At never mutate state,
// so concurrent lookups against the same instance are safe.
type Dataset interface {
	// Len returns the number of rows.
	Len() int

	// At returns the sample at index i.
	// The index must satisfy 0 <= i < Len(), otherwise the returned
	// error wraps ErrOutOfRange.
	At(i int) (Sample, error)
}
