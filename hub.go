package tally

import (
	"time"

	"github.com/kode4food/caravan/topic"
)

type (
	// TransitionHub publishes a Transition after every successful mutation
	TransitionHub topic.Topic[*Transition]

	// Action identifies which public operation produced a Transition
	Action string

	// Transition is the record published to the TransitionHub once a public
	// operation has fully settled
	Transition struct {
		Timestamp time.Time `json:"timestamp"`
		Action    Action    `json:"action"`
		Kind      Kind      `json:"kind"`
		Operand   float64   `json:"operand"`
		Value     float64   `json:"value"`
		Depths    Depths    `json:"depths"`
	}
)

const (
	ActionCompute Action = "compute"
	ActionUndo    Action = "undo"
	ActionRedo    Action = "redo"
)
