package main

const (
	DEFAULT_PPQ   = 24
	DEFAULT_STEPS = 64

	// quarter notes per measure, ppb = ppq * BEATS
	BEATS = 4

	MIN_PPQ   = 0
	MAX_PPQ   = 960
	MIN_STEPS = 0
	MAX_STEPS = 512

	// smallest distance two neighbouring step lengths may have, in ticks
	MIN_GAP = 2.0

	// search stops before reaching this multiplier
	MAX_MULTIPLIER = 1000
)
