package tally

import (
	"errors"
	"time"

	"github.com/kode4food/caravan"
	"github.com/kode4food/caravan/topic"
	"go.uber.org/zap"
)

// Tally owns the accumulator value and the undo/redo history. Every public
// operation is a complete transition on that state; callers only ever
// observe fully-settled values. It is not safe for concurrent use
type Tally struct {
	config   Config
	log      *zap.Logger
	hub      TransitionHub
	producer topic.Producer[*Transition]
	value    float64
	undo     []*Operation
	redo     []*Operation
}

var (
	// ErrNothingToUndo indicates Undo was called with an empty undo stack.
	// It is a notice rather than a failure; state is unchanged
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates Redo was called with an empty redo stack.
	// It is a notice rather than a failure; state is unchanged
	ErrNothingToRedo = errors.New("nothing to redo")
)

// NewTally creates a new Tally instance with the given configuration
func NewTally(cfg Config) *Tally {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	hub := caravan.NewTopic[*Transition]()

	return &Tally{
		config:   cfg,
		log:      log,
		hub:      hub,
		producer: hub.NewProducer(),
	}
}

// GetHub returns the TransitionHub instance
func (t *Tally) GetHub() TransitionHub {
	return t.hub
}

// Value returns the accumulator's current value
func (t *Tally) Value() float64 {
	return t.value
}

// Depths returns the current undo and redo stack sizes
func (t *Tally) Depths() Depths {
	return Depths{Undo: len(t.undo), Redo: len(t.redo)}
}

// Close releases the transition producer
func (t *Tally) Close() error {
	if t.producer != nil {
		t.producer.Close()
		t.producer = nil
	}
	return nil
}

// Compute builds an Operation from the operator symbol and operand, executes
// it, and records it on the undo stack. A successful Compute clears the redo
// stack entirely; a failed one leaves the accumulator and both stacks
// untouched
func (t *Tally) Compute(operator rune, operand float64) (*Result, error) {
	kind, err := ParseOperator(operator)
	if err != nil {
		t.log.Warn("operator rejected",
			zap.String("operator", string(operator)),
			zap.Error(err),
		)
		return nil, err
	}

	op, err := NewOperation(kind, operand)
	if err != nil {
		t.log.Warn("operation rejected",
			zap.Stringer("kind", kind),
			zap.Float64("operand", operand),
			zap.Error(err),
		)
		return nil, err
	}

	if err := t.execute(op); err != nil {
		return nil, err
	}

	t.undo = t.push(t.undo, op)
	t.redo = nil
	return t.settle(ActionCompute, op), nil
}

// Undo pops the most recent operation, restores the value it captured
// before executing, and moves it to the redo stack
func (t *Tally) Undo() (*Result, error) {
	if len(t.undo) == 0 {
		t.log.Debug("nothing to undo")
		return t.result(), ErrNothingToUndo
	}

	op := t.undo[len(t.undo)-1]
	t.undo = t.undo[:len(t.undo)-1]
	t.value = op.revert()
	t.redo = append(t.redo, op)
	return t.settle(ActionUndo, op), nil
}

// Redo pops the most recently undone operation, re-executes it, and moves
// it back to the undo stack. Re-execution cannot fail for an operation the
// factory accepted, but if it somehow does the operation is dropped from
// history unless Config.RequeueFailedRedo is set
func (t *Tally) Redo() (*Result, error) {
	if len(t.redo) == 0 {
		t.log.Debug("nothing to redo")
		return t.result(), ErrNothingToRedo
	}

	op := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]

	if err := t.execute(op); err != nil {
		if t.config.RequeueFailedRedo {
			t.redo = append(t.redo, op)
		}
		return nil, err
	}

	t.undo = t.push(t.undo, op)
	return t.settle(ActionRedo, op), nil
}

// execute applies the operation to the accumulator. The next value is
// computed before anything is written, so a failure leaves the accumulator
// exactly as it was and commits no valueBefore on a first attempt
func (t *Tally) execute(op *Operation) error {
	next, err := op.apply(t.value)
	if err != nil {
		t.log.Warn("execute failed",
			zap.Stringer("kind", op.Kind()),
			zap.Float64("operand", op.Operand()),
			zap.Error(err),
		)
		return err
	}

	if !op.executed {
		op.valueBefore = t.value
		op.executed = true
	}
	t.value = next
	return nil
}

// push appends to the undo stack, evicting the oldest entry once a bounded
// MaxDepth is reached
func (t *Tally) push(stack []*Operation, op *Operation) []*Operation {
	if max := t.config.MaxDepth; max > 0 && len(stack) >= max {
		stack = stack[len(stack)-max+1:]
	}
	return append(stack, op)
}

func (t *Tally) settle(action Action, op *Operation) *Result {
	res := t.result()
	t.log.Debug("state settled",
		zap.String("action", string(action)),
		zap.Stringer("kind", op.Kind()),
		zap.Float64("operand", op.Operand()),
		zap.Float64("value", res.Value),
		zap.Int("undo_depth", res.Depths.Undo),
		zap.Int("redo_depth", res.Depths.Redo),
	)

	if t.producer != nil {
		t.producer.Send() <- &Transition{
			Timestamp: time.Now(),
			Action:    action,
			Kind:      op.Kind(),
			Operand:   op.Operand(),
			Value:     res.Value,
			Depths:    res.Depths,
		}
	}
	return res
}

func (t *Tally) result() *Result {
	return &Result{Value: t.value, Depths: t.Depths()}
}
