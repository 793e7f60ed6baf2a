// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imbalanced

import "fmt"

// MaskedDataset is a filtered view over another Dataset: only the rows
// selected by its mask are visible, in their original relative order.
//
// The view holds a non-owning reference to its source and copies no row
// data; the source must outlive the view. Since a MaskedDataset is itself
// a Dataset, masked views compose.
type MaskedDataset struct {
	source Dataset
	mask   *Mask
}

// NewMaskedDataset builds a masked view over source.
//
// The mask is normalized through NewMask against source.Len(): nil selects
// every row, a []bool or *Mask must have exactly that length, and anything
// else is rejected. All validation happens here, never on first access.
func NewMaskedDataset(source Dataset, mask any) (*MaskedDataset, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil source dataset", ErrValidation)
	}
	m, err := NewMask(mask, source.Len())
	if err != nil {
		return nil, err
	}
	return &MaskedDataset{source: source, mask: m}, nil
}

// Len returns the number of selected rows.
func (d *MaskedDataset) Len() int {
	return d.mask.Count()
}

// At returns the sample at logical index j: the j-th selected row of the
// source in ascending source order.
func (d *MaskedDataset) At(j int) (Sample, error) {
	i, err := d.mask.Position(j)
	if err != nil {
		return Sample{}, err
	}
	return d.source.At(i)
}

// The Mask of the view.
func (d *MaskedDataset) Mask() *Mask {
	return d.mask
}

// The Source dataset the view filters.
func (d *MaskedDataset) Source() Dataset {
	return d.source
}
