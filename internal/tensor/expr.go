package tensor

// Op is the operator tag of an expression node.
type Op int

// Supported operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
)

// String returns the operator name.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpNeg:
		return "neg"
	default:
		return "unknown"
	}
}

// Expr is an unevaluated elementwise expression over tensors, views,
// scalars and other expressions. It owns no storage: each element is
// computed when the node is assigned or reduced, and evaluating a node
// again recomputes it from the current operand values.
//
// Example:
//
//	a := tensor.Iota[float64](Shape{2, 3})
//	col := a.MustView(All, Index(1))
//	b := tensor.MustFromSource[float64](Shape{2, 1}, tensor.Sub(col, tensor.Scalar(0.0)))
type Expr[T DType] struct {
	op      Op
	lhs     Source[T]
	rhs     Source[T] // nil for unary operators
	shape   Shape
	natural Shape
}

// Op returns the node's operator.
func (e *Expr[T]) Op() Op {
	return e.op
}

// Shape returns the shape shared by the node's operands.
func (e *Expr[T]) Shape() Shape {
	return e.shape
}

// NaturalShape returns the operands' common natural shape. A tensor operand
// takes on the natural shape of a view it is combined with; two views that
// disagree leave the reduced shape.
func (e *Expr[T]) NaturalShape() Shape {
	return e.natural
}

func (e *Expr[T]) evalAt(k int) T {
	switch e.op {
	case OpAdd:
		return e.lhs.evalAt(k) + e.rhs.evalAt(k)
	case OpSub:
		return e.lhs.evalAt(k) - e.rhs.evalAt(k)
	case OpMul:
		return e.lhs.evalAt(k) * e.rhs.evalAt(k)
	case OpDiv:
		return e.lhs.evalAt(k) / e.rhs.evalAt(k)
	case OpNeg:
		return -e.lhs.evalAt(k)
	default:
		panic("unknown op " + e.op.String())
	}
}

// Sum returns the sum of the expression's elements.
func (e *Expr[T]) Sum() T {
	return Sum[T](e)
}

// scalar is a shape-less operand that yields the same value everywhere.
type scalar[T DType] struct {
	v T
}

// Scalar wraps a value as an expression operand. It takes the shape of
// the other operand; as an assignment source by itself it has shape ().
func Scalar[T DType](v T) Source[T] {
	return scalar[T]{v: v}
}

func (s scalar[T]) Shape() Shape        { return Shape{} }
func (s scalar[T]) NaturalShape() Shape { return Shape{} }
func (s scalar[T]) evalAt(int) T        { return s.v }

func isScalar[T DType](src Source[T]) bool {
	_, ok := src.(scalar[T])
	return ok
}

// Add returns the lazy elementwise sum a + b.
// Panics with a *ShapeError if neither operand is a Scalar and their shapes differ.
func Add[T DType](a, b Source[T]) *Expr[T] { return binary(OpAdd, a, b) }

// Sub returns the lazy elementwise difference a - b.
func Sub[T DType](a, b Source[T]) *Expr[T] { return binary(OpSub, a, b) }

// Mul returns the lazy elementwise product a * b.
func Mul[T DType](a, b Source[T]) *Expr[T] { return binary(OpMul, a, b) }

// Div returns the lazy elementwise quotient a / b.
func Div[T DType](a, b Source[T]) *Expr[T] { return binary(OpDiv, a, b) }

// Neg returns the lazy elementwise negation -a.
func Neg[T DType](a Source[T]) *Expr[T] {
	return &Expr[T]{op: OpNeg, lhs: a, shape: a.Shape(), natural: a.NaturalShape()}
}

// AddScalar returns a + s.
func AddScalar[T DType](a Source[T], s T) *Expr[T] { return Add(a, Scalar(s)) }

// SubScalar returns a - s.
func SubScalar[T DType](a Source[T], s T) *Expr[T] { return Sub(a, Scalar(s)) }

// MulScalar returns a * s.
func MulScalar[T DType](a Source[T], s T) *Expr[T] { return Mul(a, Scalar(s)) }

// DivScalar returns a / s.
func DivScalar[T DType](a Source[T], s T) *Expr[T] { return Div(a, Scalar(s)) }

func binary[T DType](op Op, a, b Source[T]) *Expr[T] {
	e := &Expr[T]{op: op, lhs: a, rhs: b}
	switch as, bs := isScalar(a), isScalar(b); {
	case as && bs:
		e.shape, e.natural = Shape{}, Shape{}
	case as:
		e.shape, e.natural = b.Shape(), b.NaturalShape()
	case bs:
		e.shape, e.natural = a.Shape(), a.NaturalShape()
	default:
		if !a.Shape().Equal(b.Shape()) {
			panic(&ShapeError{Op: op.String(), Have: a.Shape().Clone(), Want: b.Shape().Clone(), Err: ErrShapeMismatch})
		}
		e.shape, e.natural = a.Shape(), commonNatural(a, b)
	}
	return e
}

// commonNatural picks the natural shape of a node over a and b, whose
// reduced shapes are equal. An operand whose natural shape is just its
// reduced shape (a tensor) defers to the other one; two operands with
// conflicting natural shapes leave only the reduced shape.
func commonNatural[T DType](a, b Source[T]) Shape {
	an, bn := a.NaturalShape(), b.NaturalShape()
	switch {
	case an.Equal(bn):
		return an
	case an.Equal(a.Shape()):
		return bn
	case bn.Equal(b.Shape()):
		return an
	default:
		return a.Shape()
	}
}
