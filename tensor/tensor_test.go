// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	tr, err := New(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, tr.Shape())
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, 2, tr.Rank())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, tr.Data())
}

func TestNew_scalar(t *testing.T) {
	tr, err := New(nil, []float64{42})
	require.NoError(t, err)
	assert.Nil(t, tr.Shape())
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Rank())
}

func TestNew_errors(t *testing.T) {
	testCases := []struct {
		name  string
		shape Shape
		data  []float64
	}{
		{"too little data", Shape{2, 3}, []float64{1, 2, 3}},
		{"too much data", Shape{2}, []float64{1, 2, 3}},
		{"scalar needs one element", nil, nil},
		{"negative dimension", Shape{-2, 3}, []float64{1, 2, 3, 4, 5, 6}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.shape, tc.data)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTensor_Row(t *testing.T) {
	tr, err := New(Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	want := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	for i := 0; i < tr.Len(); i++ {
		row, err := tr.Row(i)
		require.NoError(t, err)
		assert.Equal(t, Shape{2}, row.Shape())
		assert.Equal(t, want[i], row.Data())
	}
}

func TestTensor_Row_scalarRows(t *testing.T) {
	tr, err := New(Shape{3}, []float64{1, 2, 3})
	require.NoError(t, err)

	row, err := tr.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Rank())
	assert.Equal(t, []float64{2}, row.Data())
}

func TestTensor_Row_outOfRange(t *testing.T) {
	tr, err := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		_, err := tr.Row(i)
		require.ErrorIs(t, err, ErrOutOfRange, i)
		assert.NotErrorIs(t, err, ErrValidation, i)
	}

	var scalar Tensor
	_, err = scalar.Row(0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestTensor_Row_sharesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	tr, err := New(Shape{2, 2}, data)
	require.NoError(t, err)

	row, err := tr.Row(1)
	require.NoError(t, err)
	data[2] = 30
	assert.Equal(t, []float64{30, 4}, row.Data())
}

func TestTensor_Equal(t *testing.T) {
	a, err := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	c, err := New(Shape{4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	d, err := New(Shape{2, 2}, []float64{1, 2, 3, 5})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same data, different shape")
	assert.False(t, a.Equal(d))
}

func TestTensor_Float64s(t *testing.T) {
	tr, err := New(Shape{2}, []float64{1, 2})
	require.NoError(t, err)

	c := tr.Float64s()
	c[0] = 10
	assert.Equal(t, []float64{1, 2}, tr.Data())
}

func TestTensor_Dense(t *testing.T) {
	tr, err := New(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	d, err := tr.Dense()
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
}

func TestTensor_Dense_errors(t *testing.T) {
	vec, err := New(Shape{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = vec.Dense()
	require.ErrorIs(t, err, ErrValidation)

	empty, err := New(Shape{0, 3}, nil)
	require.NoError(t, err)
	_, err = empty.Dense()
	require.ErrorIs(t, err, ErrValidation)
}
