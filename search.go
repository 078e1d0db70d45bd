package main

import "fmt"

type Result struct {
	Found      bool
	Multiplier int // on failure, the first multiplier outside the searched range
	PPQ        int
	MaxSteps   int
}

// TicksPerMeasure is the clock resolution a sequencer would run at.
func (r Result) TicksPerMeasure() int {
	return r.Multiplier * r.PPQ * BEATS
}

func (r Result) String() string {
	if r.Found {
		return fmt.Sprintf("m=%d is enough resolution per tick to allow maxSteps=%d", r.Multiplier, r.MaxSteps)
	}
	return fmt.Sprintf("failed to find solution after m=%d attempts", r.Multiplier)
}

// Observer is told about every rejected multiplier and the step it failed at.
type Observer func(m, step int)

// search returns the smallest multiplier m below MAX_MULTIPLIER for which
// m*ppq*BEATS ticks pass checkClockRes.
func search(ppq, maxSteps int, observe Observer) Result {
	ppb := float64(ppq * BEATS)

	m := 1
	for ; m < MAX_MULTIPLIER; m++ {
		n := float64(m) * ppb
		step := firstCollision(n, maxSteps)
		if step == 0 {
			return Result{Found: true, Multiplier: m, PPQ: ppq, MaxSteps: maxSteps}
		}
		if observe != nil {
			observe(m, step)
		}
	}
	return Result{Found: false, Multiplier: m, PPQ: ppq, MaxSteps: maxSteps}
}
