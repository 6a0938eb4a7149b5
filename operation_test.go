package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tally"
)

func TestParseOperator(t *testing.T) {
	kinds := map[rune]tally.Kind{
		'+': tally.Add,
		'-': tally.Subtract,
		'*': tally.Multiply,
		'/': tally.Divide,
	}

	for sym, want := range kinds {
		kind, err := tally.ParseOperator(sym)
		assert.NoError(t, err)
		assert.Equal(t, want, kind)
		assert.Equal(t, sym, kind.Symbol())
	}
}

func TestParseOperatorRejected(t *testing.T) {
	for _, sym := range []rune{'%', '^', ' ', '0'} {
		_, err := tally.ParseOperator(sym)
		assert.ErrorIs(t, err, tally.ErrInvalidOperator)
	}
}

func TestNewOperation(t *testing.T) {
	op, err := tally.NewOperation(tally.Multiply, 0)
	assert.NoError(t, err)
	assert.Equal(t, tally.Multiply, op.Kind())
	assert.Equal(t, 0.0, op.Operand())
}

func TestNewOperationDivideByZero(t *testing.T) {
	op, err := tally.NewOperation(tally.Divide, 0)
	assert.Nil(t, op)
	assert.ErrorIs(t, err, tally.ErrDivisionByZero)
}

func TestNewOperationUnknownKind(t *testing.T) {
	op, err := tally.NewOperation(tally.Kind(42), 1)
	assert.Nil(t, op)
	assert.ErrorIs(t, err, tally.ErrInvalidOperator)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "add", tally.Add.String())
	assert.Equal(t, "subtract", tally.Subtract.String())
	assert.Equal(t, "multiply", tally.Multiply.String())
	assert.Equal(t, "divide", tally.Divide.String())
	assert.Equal(t, "unknown", tally.Kind(42).String())
}
