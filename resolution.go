package main

import "math"

// checkClockRes reports whether n ticks can be split into 1..maxSteps equal
// steps with every step length at least MIN_GAP ticks away from the previous one.
func checkClockRes(n float64, maxSteps int) bool {
	return firstCollision(n, maxSteps) == 0
}

// firstCollision returns the step count at which n/i lands closer than
// MIN_GAP to n/(i-1), or 0 if no such step exists up to maxSteps.
// The step before i=1 is taken as 0.
func firstCollision(n float64, maxSteps int) int {
	prev := 0.0
	for i := 1; i <= maxSteps; i++ {
		v := n / float64(i)
		if math.Abs(v-prev) < MIN_GAP {
			return i
		}
		prev = v
	}
	return 0
}
