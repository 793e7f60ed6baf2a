// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imbalanced

import "github.com/deesatz/imbalanced/tensor"

// The failure kinds of the library, re-exported from the tensor package so
// callers only need one import. Every construction-time rejection wraps
// ErrValidation; every lookup past the bounds wraps ErrOutOfRange.
var (
	ErrValidation = tensor.ErrValidation
	ErrOutOfRange = tensor.ErrOutOfRange
)
