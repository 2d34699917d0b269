package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; messages carry the
// "tensor:" prefix so they grep cleanly in logs.
var (
	// ErrInvalidShape is returned when a shape has a non-positive extent.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrRankTooLarge is returned when a shape has more than MaxRank axes.
	ErrRankTooLarge = errors.New("tensor: rank too large")

	// ErrSelectorCount is returned when the number of selectors differs from
	// the rank of the selected entity. Trailing wildcards are never implied.
	ErrSelectorCount = errors.New("tensor: selector count does not match rank")

	// ErrSelectorOutOfRange is returned when an index or range lies outside
	// the extent of its axis, or a range is empty or has a negative step.
	ErrSelectorOutOfRange = errors.New("tensor: selector out of range")

	// ErrIncompatibleShape is returned when a source cannot be bound to a
	// destination shape by inserting or removing singleton axes.
	ErrIncompatibleShape = errors.New("tensor: incompatible shapes")

	// ErrShapeMismatch is raised when expression operands differ in shape.
	ErrShapeMismatch = errors.New("tensor: operand shapes differ")

	// ErrStaleView is returned when a view is used after its source tensor
	// has been released.
	ErrStaleView = errors.New("tensor: view outlived its source tensor")

	// ErrDenseRank is returned when a source with more than two non-singleton
	// axes is converted to a matrix.
	ErrDenseRank = errors.New("tensor: core rank exceeds 2")
)

// ShapeError describes a failed shape check between two shapes.
type ShapeError struct {
	Op   string // operation that performed the check
	Have Shape  // source or left operand shape
	Want Shape  // destination or right operand shape
	Err  error  // one of the sentinel errors
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %v vs %v", e.Op, e.Err, []int(e.Have), []int(e.Want))
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
