// Copyright 2024 The Imbalanced Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "errors"

// The two failure kinds of the library. Construction-time rejections wrap
// ErrValidation; index lookups past the bounds wrap ErrOutOfRange. Callers
// distinguish them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrOutOfRange = errors.New("index out of range")
)
