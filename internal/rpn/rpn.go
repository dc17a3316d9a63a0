package rpn

import "errors"

var (
	ErrEmptyInput      = errors.New("empty expression")
	ErrTooFewOperands  = errors.New("operator is missing operands")
	ErrTooManyOperands = errors.New("operands left without an operator")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Op is the kind of one input token.
type Op int

const (
	Value Op = iota
	Add
	Subtract
	Multiply
	Divide
)

// Input is one token of a postfix expression. N is only meaningful for Value.
type Input struct {
	Op Op
	N  int
}

// Val is shorthand for a Value input.
func Val(n int) Input { return Input{Op: Value, N: n} }

// Evaluate runs inputs on a stack machine and returns the single value left on it.
// Operators pop the right-hand operand first: "7 11 -" is 7-11. Division truncates
// toward zero. Any malformed expression fails as a whole with no partial result.
func Evaluate(inputs []Input) (int, error) {
	if len(inputs) == 0 {
		return 0, ErrEmptyInput
	}

	stack := make([]int, 0, len(inputs))
	for _, in := range inputs {
		if in.Op == Value {
			stack = append(stack, in.N)
			continue
		}
		if len(stack) < 2 {
			return 0, ErrTooFewOperands
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		v, err := apply(in.Op, a, b)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, ErrTooManyOperands
	}
	return stack[0], nil
}

func apply(op Op, a, b int) (int, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, errors.New("unknown operator")
}
