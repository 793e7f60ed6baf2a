// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imbalanced

import (
	"fmt"

	"github.com/deesatz/imbalanced/tensor"
)

// SimpleDataset pairs an inputs tensor with a targets tensor sharing the
// same leading-dimension length. Row i of the dataset is the pair of row i
// of each tensor.
//
// The dataset is immutable after construction.
type SimpleDataset struct {
	inputs  tensor.Tensor
	targets tensor.Tensor
}

// NewSimpleDataset builds a dataset from two numeric representations of
// equal leading length.
//
// Each argument is normalized through tensor.From, so gonum dense
// matrices, flat slices and rectangular nested slices are all accepted.
// Beyond the equal leading length, no constraint ties the shape of the
// inputs to the shape of the targets.
func NewSimpleDataset(inputs, targets any) (*SimpleDataset, error) {
	in, err := tensor.From(inputs)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	tg, err := tensor.From(targets)
	if err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}
	if in.Len() != tg.Len() {
		return nil, fmt.Errorf("%w: inputs length (%d) does not match targets length (%d)",
			ErrValidation, in.Len(), tg.Len())
	}
	return &SimpleDataset{inputs: in, targets: tg}, nil
}

// Len returns the number of rows.
func (d *SimpleDataset) Len() int {
	return d.inputs.Len()
}

// At returns the sample at index i. The rows are views sharing the
// dataset's backing data.
func (d *SimpleDataset) At(i int) (Sample, error) {
	input, err := d.inputs.Row(i)
	if err != nil {
		return Sample{}, err
	}
	target, err := d.targets.Row(i)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Input: input, Target: target}, nil
}

// The Inputs tensor.
func (d *SimpleDataset) Inputs() tensor.Tensor {
	return d.inputs
}

// The Targets tensor.
func (d *SimpleDataset) Targets() tensor.Tensor {
	return d.targets
}
