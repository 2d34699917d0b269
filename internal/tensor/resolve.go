package tensor

// Plan is the outcome of binding a source to a destination shape: the
// source shape it was matched against and the edit that reconciles them.
//
// Removed lists source axes (all singletons) that have no counterpart in
// the destination. Inserted lists destination axes (all singletons) that have
// no counterpart in the source. Both are nil for an identity binding.
type Plan struct {
	Src      Shape
	Dst      Shape
	Removed  []int
	Inserted []int
}

// Edits returns the number of axis insertions and removals.
func (p Plan) Edits() int {
	return len(p.Removed) + len(p.Inserted)
}

// Identity reports whether the shapes match without any edit.
func (p Plan) Identity() bool {
	return p.Edits() == 0
}

// Resolve decides whether src can be read as, or written into, an entity of
// shape dst. See ResolveShapes for the rule.
func Resolve[T DType](src Source[T], dst Shape) (Plan, error) {
	return ResolveShapes(src.Shape(), src.NaturalShape(), dst)
}

// ResolveShapes binds a source, described by its reduced and natural shapes,
// to a destination shape.
//
// Rules:
//  1. dst equal to the reduced or the natural shape binds as is.
//  2. Otherwise a dst with the rank of either source shape is rejected: a
//     same-rank destination must match exactly, so the row view (1, 3)
//     does not bind to (3, 1) and the column view (2, 1) not to (1, 2).
//  3. Otherwise the core shapes (singleton axes stripped) must be equal and
//     the core must stay contiguous: singleton axes may be added or removed
//     before or after it, never between two core axes. A source whose
//     natural shape already carries such an interior singleton keeps it.
//
// Examples for a(1, all) of a (2, 3) tensor (reduced (3), natural (1, 3)):
//
//	(3), (1, 3), (1, 1, 3), (1, 1, 3, 1), (1, 1, 3, 1, 1) → ok
//	(3, 1)                                                → ErrIncompatibleShape
//
// The returned plan carries the minimal edit, computed against whichever of
// the two source shapes needs fewer insertions and removals.
func ResolveShapes(reduced, natural, dst Shape) (Plan, error) {
	if natural == nil {
		natural = reduced
	}

	switch {
	case dst.Equal(reduced):
		return Plan{Src: reduced.Clone(), Dst: dst.Clone()}, nil
	case dst.Equal(natural):
		return Plan{Src: natural.Clone(), Dst: dst.Clone()}, nil
	case len(dst) == len(reduced) || len(dst) == len(natural):
		return Plan{}, &ShapeError{Op: "resolve", Have: natural.Clone(), Want: dst.Clone(), Err: ErrIncompatibleShape}
	}

	if !reduced.Core().Equal(dst.Core()) {
		return Plan{}, &ShapeError{Op: "resolve", Have: natural.Clone(), Want: dst.Clone(), Err: ErrIncompatibleShape}
	}

	var (
		plan  Plan
		found bool
	)
	for _, src := range []Shape{reduced, natural} {
		if !sameInterior(src, dst) {
			continue
		}
		if alt := alignSingletons(src, dst); !found || alt.Edits() < plan.Edits() {
			plan, found = alt, true
		}
	}
	if !found {
		return Plan{}, &ShapeError{Op: "resolve", Have: natural.Clone(), Want: dst.Clone(), Err: ErrIncompatibleShape}
	}
	return plan, nil
}

// sameInterior reports whether a and b have the same number of singleton
// axes between each pair of adjacent core axes. Only the leading and
// trailing singleton runs may differ.
func sameInterior(a, b Shape) bool {
	ag, bg := a.singletonGaps(), b.singletonGaps()
	for j := 1; j < len(ag)-1; j++ {
		if len(ag[j]) != len(bg[j]) {
			return false
		}
	}
	return true
}

// alignSingletons pairs the singleton axes of src and dst that fall into the
// same gap between core axes. The unpaired ones form the edit.
// src and dst must have equal core shapes.
func alignSingletons(src, dst Shape) Plan {
	plan := Plan{Src: src.Clone(), Dst: dst.Clone()}
	sg, dg := src.singletonGaps(), dst.singletonGaps()
	for j := range sg {
		k := min(len(sg[j]), len(dg[j]))
		plan.Removed = append(plan.Removed, sg[j][k:]...)
		plan.Inserted = append(plan.Inserted, dg[j][k:]...)
	}
	return plan
}
