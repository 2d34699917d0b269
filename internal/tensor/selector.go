package tensor

import "fmt"

// Selector is one axis' extraction rule in a selection.
//
// Implementations:
//   - Index: a single position; the axis is removed from the view.
//   - Range (Seq, SeqStep): runtime [start, end) with a positive step.
//   - All: the whole axis.
//   - FixedRange (FSeq): [start, end) validated when the selector is built.
type Selector interface {
	fmt.Stringer
	span(extent int) (axisSpan, error)
}

// axisSpan is a selector resolved against a concrete axis extent.
type axisSpan struct {
	start  int
	step   int
	extent int
	keep   bool // false for Index: the axis does not survive
}

// Index selects a single position and removes the axis from the result.
type Index int

func (i Index) span(extent int) (axisSpan, error) {
	if int(i) < 0 || int(i) >= extent {
		return axisSpan{}, fmt.Errorf("%w: index %d for extent %d", ErrSelectorOutOfRange, int(i), extent)
	}
	return axisSpan{start: int(i), step: 1, extent: 1}, nil
}

func (i Index) String() string {
	return fmt.Sprintf("%d", int(i))
}

// Range selects [Start, End) with stride Step. A zero Step means 1.
// The resulting extent is ceil((End-Start)/Step).
type Range struct {
	Start int
	End   int
	Step  int
}

// Seq returns the unit-step range [start, end).
func Seq(start, end int) Range {
	return Range{Start: start, End: end, Step: 1}
}

// SeqStep returns the range [start, end) with the given step.
func SeqStep(start, end, step int) Range {
	return Range{Start: start, End: end, Step: step}
}

func (r Range) step() int {
	if r.Step == 0 {
		return 1
	}
	return r.Step
}

// Len returns the number of positions the range selects.
func (r Range) Len() int {
	if r.End <= r.Start || r.step() < 0 {
		return 0
	}
	return (r.End - r.Start + r.step() - 1) / r.step()
}

func (r Range) span(extent int) (axisSpan, error) {
	if r.step() < 0 {
		return axisSpan{}, fmt.Errorf("%w: %v has negative step", ErrSelectorOutOfRange, r)
	}
	if r.Start < 0 || r.End > extent || r.Start >= r.End {
		return axisSpan{}, fmt.Errorf("%w: %v for extent %d", ErrSelectorOutOfRange, r, extent)
	}
	return axisSpan{start: r.Start, step: r.step(), extent: r.Len(), keep: true}, nil
}

func (r Range) String() string {
	if r.step() == 1 {
		return fmt.Sprintf("seq(%d,%d)", r.Start, r.End)
	}
	return fmt.Sprintf("seq(%d,%d,%d)", r.Start, r.End, r.step())
}

type wildcard struct{}

// All keeps the whole axis.
var All Selector = wildcard{}

// Fall is the fixed-extent spelling of All.
var Fall = All

func (wildcard) span(extent int) (axisSpan, error) {
	return axisSpan{start: 0, step: 1, extent: extent, keep: true}, nil
}

func (wildcard) String() string {
	return "all"
}

// FixedRange is a unit-step range whose bounds are checked when it is
// constructed, so its extent is known before it meets an axis.
type FixedRange struct {
	start int
	end   int
}

// FSeq returns the fixed range [start, end).
// Panics if start < 0 or end <= start.
func FSeq(start, end int) FixedRange {
	if start < 0 || end <= start {
		panic(fmt.Sprintf("fseq<%d,%d>: bounds must satisfy 0 <= start < end", start, end))
	}
	return FixedRange{start: start, end: end}
}

// Len returns the number of positions the fixed range selects.
func (f FixedRange) Len() int {
	return f.end - f.start
}

func (f FixedRange) span(extent int) (axisSpan, error) {
	if f.end <= f.start || f.end > extent {
		return axisSpan{}, fmt.Errorf("%w: %v for extent %d", ErrSelectorOutOfRange, f, extent)
	}
	return axisSpan{start: f.start, step: 1, extent: f.Len(), keep: true}, nil
}

func (f FixedRange) String() string {
	return fmt.Sprintf("fseq<%d,%d>", f.start, f.end)
}

// selection is the result of applying one selector per axis.
type selection struct {
	offset  int
	shape   Shape // reduced: only kept axes
	strides []int
	kept    []int // input axes that survive, in order
	spans   []axisSpan
}

// selectAxes applies sels to the axes described by shape and strides.
func selectAxes(shape Shape, strides []int, sels []Selector) (selection, error) {
	if len(sels) != len(shape) {
		return selection{}, fmt.Errorf("%w: got %d selectors for shape %v", ErrSelectorCount, len(sels), []int(shape))
	}

	sel := selection{
		shape:   make(Shape, 0, len(shape)),
		strides: make([]int, 0, len(shape)),
		spans:   make([]axisSpan, len(shape)),
	}
	for d, s := range sels {
		if s == nil {
			return selection{}, fmt.Errorf("%w: nil selector at axis %d", ErrSelectorOutOfRange, d)
		}
		sp, err := s.span(shape[d])
		if err != nil {
			return selection{}, fmt.Errorf("axis %d: %w", d, err)
		}
		sel.spans[d] = sp
		sel.offset += sp.start * strides[d]
		if sp.keep {
			sel.shape = append(sel.shape, sp.extent)
			sel.strides = append(sel.strides, strides[d]*sp.step)
			sel.kept = append(sel.kept, d)
		}
	}
	return sel, nil
}
