package tally

import (
	"errors"
	"fmt"
)

type (
	// Kind identifies one of the four arithmetic transforms
	Kind int

	// Operation describes a single reversible arithmetic step. The value the
	// accumulator held before the first successful execute is captured once,
	// after which the Operation is treated as immutable
	Operation struct {
		kind        Kind
		operand     float64
		valueBefore float64
		executed    bool
	}
)

const (
	// Add increases the accumulator by the operand
	Add Kind = iota

	// Subtract decreases the accumulator by the operand
	Subtract

	// Multiply scales the accumulator by the operand
	Multiply

	// Divide divides the accumulator by a non-zero operand
	Divide
)

var (
	// ErrInvalidOperator indicates an operator symbol outside + - * /
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrDivisionByZero indicates a divide with a zero operand
	ErrDivisionByZero = errors.New("division by zero")
)

// ParseOperator maps an operator symbol to its Kind
func ParseOperator(operator rune) (Kind, error) {
	switch operator {
	case '+':
		return Add, nil
	case '-':
		return Subtract, nil
	case '*':
		return Multiply, nil
	case '/':
		return Divide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, operator)
	}
}

// NewOperation constructs an Operation for the given Kind and operand. A
// Divide with a zero operand is rejected here even though Compute performs
// the same check before construction, so the guarantee holds for callers
// that construct Operations directly
func NewOperation(kind Kind, operand float64) (*Operation, error) {
	switch kind {
	case Add, Subtract, Multiply:
	case Divide:
		if operand == 0 {
			return nil, ErrDivisionByZero
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidOperator, kind)
	}
	return &Operation{kind: kind, operand: operand}, nil
}

// Kind returns the Operation's arithmetic transform
func (o *Operation) Kind() Kind {
	return o.kind
}

// Operand returns the right-hand scalar the Operation applies
func (o *Operation) Operand() float64 {
	return o.operand
}

// apply computes the next accumulator value from the current one. It never
// mutates anything, so a failure leaves the caller's state untouched. The
// zero-operand check is repeated here because apply runs again on redo
func (o *Operation) apply(current float64) (float64, error) {
	switch o.kind {
	case Add:
		return current + o.operand, nil
	case Subtract:
		return current - o.operand, nil
	case Multiply:
		return current * o.operand, nil
	case Divide:
		if o.operand == 0 {
			return 0, ErrDivisionByZero
		}
		return current / o.operand, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %d", ErrInvalidOperator, o.kind)
	}
}

// revert returns the value captured before the first execute. Restoring the
// captured value rather than applying a mathematical inverse keeps undo
// exact; multiply-by-zero has no inverse and division can lose bits
func (o *Operation) revert() float64 {
	return o.valueBefore
}

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the operator symbol that ParseOperator maps to the Kind
func (k Kind) Symbol() rune {
	switch k {
	case Add:
		return '+'
	case Subtract:
		return '-'
	case Multiply:
		return '*'
	case Divide:
		return '/'
	default:
		return '?'
	}
}
