package tint

import "fmt"

// Operand is the right-hand side of list arithmetic: either a scalar applied
// to every channel of every color, or a list combined index by index.
type Operand[T Channel[T]] struct {
	scalar T
	list   *List[T]
	isList bool
}

// Scalar returns an operand that broadcasts v across every channel.
func Scalar[T Channel[T]](v T) Operand[T] {
	return Operand[T]{scalar: v}
}

// Of returns an operand that combines with l element by element. A nil l
// acts as an empty list.
func Of[T Channel[T]](l *List[T]) Operand[T] {
	if l == nil {
		l = &List[T]{}
	}
	return Operand[T]{list: l, isList: true}
}

// IsList reports whether o wraps a list.
func (o Operand[T]) IsList() bool { return o.isList }

// channel returns channel ch of element i of o.
func (o Operand[T]) channel(i, ch int) T {
	if o.isList {
		return o.list.colors[i][ch]
	}
	return o.scalar
}

// arith is a channel-level binary operation.
type arith struct {
	name string
	fn   func(p NumericPolicy, a, b float64) (float64, error)
	// total operations never fail, so no validation pass is needed.
	total bool
}

var (
	opAdd = arith{"add", func(_ NumericPolicy, a, b float64) (float64, error) { return a + b, nil }, true}
	opSub = arith{"sub", func(_ NumericPolicy, a, b float64) (float64, error) { return a - b, nil }, true}
	opMul = arith{"mul", func(_ NumericPolicy, a, b float64) (float64, error) { return a * b, nil }, true}
	opDiv = arith{"div", NumericPolicy.TrueDiv, false}
	opMod = arith{"mod", NumericPolicy.Mod, false}
	opPow = arith{"pow", NumericPolicy.Pow, false}

	opLimitMin = arith{"limit_min", func(_ NumericPolicy, a, b float64) (float64, error) { return max(a, b), nil }, true}
	opLimitMax = arith{"limit_max", func(_ NumericPolicy, a, b float64) (float64, error) { return min(a, b), nil }, true}
)

// apply combines every channel of l with o in place. With reflected set the
// operand is the left argument, so RSub computes o - l.
//
// Fallible operations are checked over the whole list before anything is
// written, so a failure leaves l unchanged without allocating a copy.
func (l *List[T]) apply(op arith, o Operand[T], reflected bool) error {
	name := op.name
	if reflected {
		name = "r" + name
	}
	if o.isList && len(o.list.colors) != len(l.colors) {
		return &LengthMismatchError{Op: name, Got: len(o.list.colors), Want: len(l.colors)}
	}

	p := l.config().policy
	eval := func(i, ch int) (float64, error) {
		a, b := float64(l.colors[i][ch]), float64(o.channel(i, ch))
		if reflected {
			a, b = b, a
		}
		return op.fn(p, a, b)
	}

	if !op.total {
		for i := range l.colors {
			for ch := range l.colors[i] {
				if _, err := eval(i, ch); err != nil {
					return fmt.Errorf("tint: %s at index %d: %w", name, i, err)
				}
			}
		}
	}
	for i := range l.colors {
		for ch := range l.colors[i] {
			v, _ := eval(i, ch)
			l.colors[i][ch] = T(v)
		}
	}
	return nil
}

// Add adds o to l in place.
func (l *List[T]) Add(o Operand[T]) error { return l.apply(opAdd, o, false) }

// Sub subtracts o from l in place.
func (l *List[T]) Sub(o Operand[T]) error { return l.apply(opSub, o, false) }

// Mul multiplies l by o in place.
func (l *List[T]) Mul(o Operand[T]) error { return l.apply(opMul, o, false) }

// Div divides l by o in place using the list's numeric policy.
func (l *List[T]) Div(o Operand[T]) error { return l.apply(opDiv, o, false) }

// Mod replaces l with l modulo o.
func (l *List[T]) Mod(o Operand[T]) error { return l.apply(opMod, o, false) }

// Pow raises l to the power o in place.
func (l *List[T]) Pow(o Operand[T]) error { return l.apply(opPow, o, false) }

// RSub replaces l with o - l.
func (l *List[T]) RSub(o Operand[T]) error { return l.apply(opSub, o, true) }

// RDiv replaces l with o / l.
func (l *List[T]) RDiv(o Operand[T]) error { return l.apply(opDiv, o, true) }

// RMod replaces l with o modulo l.
func (l *List[T]) RMod(o Operand[T]) error { return l.apply(opMod, o, true) }

// RPow replaces l with o raised to the power l.
func (l *List[T]) RPow(o Operand[T]) error { return l.apply(opPow, o, true) }

// LimitMin raises every channel of l to at least the matching channel of o.
func (l *List[T]) LimitMin(o Operand[T]) error { return l.apply(opLimitMin, o, false) }

// LimitMax lowers every channel of l to at most the matching channel of o.
func (l *List[T]) LimitMax(o Operand[T]) error { return l.apply(opLimitMax, o, false) }

// over computes a op b into a new list. Whichever operand is a list is
// copied and the other is applied to the copy, reflected when the scalar is
// on the left.
func over[T Channel[T]](op arith, a, b Operand[T]) (*List[T], error) {
	var (
		out *List[T]
		err error
	)
	switch {
	case a.isList:
		out = a.list.Clone()
		err = out.apply(op, b, false)
	case b.isList:
		out = b.list.Clone()
		err = out.apply(op, a, true)
	default:
		return nil, &ConversionError{
			Value: [2]T{a.scalar, b.scalar},
			Err:   fmt.Errorf("%s needs at least one list operand", op.name),
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddOver returns a + b as a new list.
func AddOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opAdd, a, b) }

// SubOver returns a - b as a new list.
func SubOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opSub, a, b) }

// MulOver returns a * b as a new list.
func MulOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opMul, a, b) }

// DivOver returns a / b as a new list.
func DivOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opDiv, a, b) }

// ModOver returns a modulo b as a new list.
func ModOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opMod, a, b) }

// PowOver returns a raised to the power b as a new list.
func PowOver[T Channel[T]](a, b Operand[T]) (*List[T], error) { return over(opPow, a, b) }

// LimitMinOver returns a copy of a with every channel raised to at least b.
func LimitMinOver[T Channel[T]](a, b Operand[T]) (*List[T], error) {
	return over(opLimitMin, a, b)
}

// LimitMaxOver returns a copy of a with every channel lowered to at most b.
func LimitMaxOver[T Channel[T]](a, b Operand[T]) (*List[T], error) {
	return over(opLimitMax, a, b)
}
