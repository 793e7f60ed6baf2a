// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imbalanced

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Labels derives a class id for every row of the dataset: the index of
// the maximum element of the target row. This matches one-hot and
// per-class-score target encodings.
func Labels(ds Dataset) ([]int, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrValidation)
	}
	labels := make([]int, ds.Len())
	for i := range labels {
		s, err := ds.At(i)
		if err != nil {
			return nil, err
		}
		row := s.Target.Float64s()
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: target row %d has no elements", ErrValidation, i)
		}
		labels[i] = floats.MaxIdx(row)
	}
	return labels, nil
}

// RandomSplit partitions a dataset into two complementary masked views.
// The first view selects a uniformly random subset of frac * Len() rows
// (rounded to nearest), the second selects the rest. The fraction must
// lie in [0, 1] and rng must not be nil.
func RandomSplit(ds Dataset, frac float64, rng *rand.Rand) (*MaskedDataset, *MaskedDataset, error) {
	if ds == nil {
		return nil, nil, fmt.Errorf("%w: nil dataset", ErrValidation)
	}
	if frac < 0 || frac > 1 {
		return nil, nil, fmt.Errorf("%w: split fraction %g outside [0, 1]", ErrValidation, frac)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%w: nil random source", ErrValidation)
	}

	n := ds.Len()
	keep := make([]bool, n)
	// frac*n can land just under the exact product in float64
	// (100 * 0.29 is 28.999...), so round rather than truncate.
	for _, i := range rng.Perm(n)[:int(math.Round(float64(n)*frac))] {
		keep[i] = true
	}

	first, err := NewMaskedDataset(ds, keep)
	if err != nil {
		return nil, nil, err
	}
	second, err := NewMaskedDataset(ds, first.Mask().Invert())
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// Undersample builds a class-balanced view of the dataset: for each
// distinct label it keeps a uniformly random subset of rows the size of
// the smallest class, discarding the rest. labels must hold one class id
// per row and rng must not be nil.
func Undersample(ds Dataset, labels []int, rng *rand.Rand) (*MaskedDataset, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrValidation)
	}
	if len(labels) != ds.Len() {
		return nil, fmt.Errorf("%w: labels length (%d) does not match dataset length (%d)",
			ErrValidation, len(labels), ds.Len())
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrValidation)
	}

	byClass := make(map[int][]int)
	for i, c := range labels {
		byClass[c] = append(byClass[c], i)
	}

	minCount := ds.Len()
	for _, rows := range byClass {
		if len(rows) < minCount {
			minCount = len(rows)
		}
	}

	keep := make([]bool, ds.Len())
	for _, rows := range byClass {
		rng.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
		for _, i := range rows[:minCount] {
			keep[i] = true
		}
	}
	return NewMaskedDataset(ds, keep)
}
