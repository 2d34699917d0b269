// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fastview/internal/tensor"
)

// Errors returned by view construction and assignment. Test with errors.Is.
var (
	ErrInvalidShape       = tensor.ErrInvalidShape
	ErrRankTooLarge       = tensor.ErrRankTooLarge
	ErrSelectorCount      = tensor.ErrSelectorCount
	ErrSelectorOutOfRange = tensor.ErrSelectorOutOfRange
	ErrIncompatibleShape  = tensor.ErrIncompatibleShape
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrStaleView          = tensor.ErrStaleView
	ErrDenseRank          = tensor.ErrDenseRank
)

// ShapeError reports the two shapes behind a failed resolution or
// expression build.
type ShapeError = tensor.ShapeError
