package tally

type (
	// Depths reports the sizes of the undo and redo stacks
	Depths struct {
		Undo int `json:"undo"`
		Redo int `json:"redo"`
	}

	// Result describes the fully-settled state after a public operation
	Result struct {
		Value  float64 `json:"value"`
		Depths Depths  `json:"depths"`
	}
)
