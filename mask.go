// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imbalanced

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// A Mask is a one-dimensional boolean selection over the rows of a
// dataset of known length. The positions of the true entries are stored
// in a roaring bitmap, which makes counting and rank/select lookups cheap.
//
// Masks are immutable after construction.
type Mask struct {
	n  int
	rb *roaring.Bitmap
}

// NewMask normalizes an accepted mask representation into a Mask over n
// rows.
//
// Accepted forms:
//   - nil, including a nil *Mask: all n rows selected
//   - []bool: one flag per row; the length must equal n
//   - *Mask: returned as-is; its length must equal n
//
// A [][]bool is rejected as not one-dimensional, and any other value is
// rejected as not a boolean array. All rejections wrap ErrValidation.
func NewMask(v any, n int) (*Mask, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative mask length %d", ErrValidation, n)
	}
	switch m := v.(type) {
	case nil:
		rb := roaring.New()
		rb.AddRange(0, uint64(n))
		return &Mask{n: n, rb: rb}, nil
	case *Mask:
		if m == nil {
			return NewMask(nil, n)
		}
		if m.n != n {
			return nil, fmt.Errorf("%w: mask length (%d) does not match expected length (%d)",
				ErrValidation, m.n, n)
		}
		return m, nil
	case []bool:
		if len(m) != n {
			return nil, fmt.Errorf("%w: mask length (%d) does not match expected length (%d)",
				ErrValidation, len(m), n)
		}
		rb := roaring.New()
		for i, active := range m {
			if active {
				rb.Add(uint32(i))
			}
		}
		return &Mask{n: n, rb: rb}, nil
	case [][]bool:
		return nil, fmt.Errorf("%w: mask must be one-dimensional", ErrValidation)
	default:
		return nil, fmt.Errorf("%w: mask must be a boolean array, actual type %T", ErrValidation, v)
	}
}

// Len returns the number of rows the mask covers.
func (m *Mask) Len() int {
	return m.n
}

// Count returns the number of selected (true) rows.
func (m *Mask) Count() int {
	return int(m.rb.GetCardinality())
}

// Active reports whether row i is selected. Rows outside [0, Len()) are
// never selected.
func (m *Mask) Active(i int) bool {
	return i >= 0 && i < m.n && m.rb.Contains(uint32(i))
}

// Position returns the k-th selected row in ascending order, so that the
// k-th row of a masked view maps to the k-th occurrence of true scanning
// the mask from index 0.
func (m *Mask) Position(k int) (int, error) {
	if k < 0 || k >= m.Count() {
		return 0, fmt.Errorf("%w: selected position %d, count %d", ErrOutOfRange, k, m.Count())
	}
	p, err := m.rb.Select(uint32(k))
	if err != nil {
		return 0, fmt.Errorf("%w: selected position %d, count %d", ErrOutOfRange, k, m.Count())
	}
	return int(p), nil
}

// Invert returns a new mask of the same length selecting exactly the rows
// this mask does not.
func (m *Mask) Invert() *Mask {
	rb := roaring.New()
	for i := 0; i < m.n; i++ {
		if !m.rb.Contains(uint32(i)) {
			rb.Add(uint32(i))
		}
	}
	return &Mask{n: m.n, rb: rb}
}

// Bools returns the mask as a newly allocated flag-per-row slice.
func (m *Mask) Bools() []bool {
	flags := make([]bool, m.n)
	it := m.rb.Iterator()
	for it.HasNext() {
		flags[it.Next()] = true
	}
	return flags
}
