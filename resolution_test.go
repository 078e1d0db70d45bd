package main

import "testing"

func TestCheckClockRes(t *testing.T) {
	cases := []struct {
		name     string
		n        float64
		maxSteps int
		want     bool
	}{
		{"zero ticks", 0, 64, false},
		{"wide gaps", 1000, 5, true},
		{"single step", 2, 1, true},
		{"single step too small", 1.5, 1, false},
		{"gap exactly two", 8064, 64, true},
		{"gap just below two", 7968, 64, false},
		{"default ppb", 96, 64, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checkClockRes(tc.n, tc.maxSteps); got != tc.want {
				t.Fatalf("checkClockRes(%v, %d) = %v, want %v", tc.n, tc.maxSteps, got, tc.want)
			}
		})
	}
}

func TestFirstCollision(t *testing.T) {
	cases := []struct {
		n        float64
		maxSteps int
		want     int
	}{
		{0, 64, 1},
		{96, 64, 8},    // 96/7 - 96/8 = 1.71
		{7968, 64, 64}, // 7968/63 - 7968/64 = 1.98
		{8064, 64, 0},
		{96, 7, 0},
	}
	for _, tc := range cases {
		if got := firstCollision(tc.n, tc.maxSteps); got != tc.want {
			t.Errorf("firstCollision(%v, %d) = %d, want %d", tc.n, tc.maxSteps, got, tc.want)
		}
	}
}

func TestFirstCollisionStopsEarly(t *testing.T) {
	// once a collision is found, raising maxSteps must not move it
	for steps := 8; steps <= 128; steps *= 2 {
		if got := firstCollision(96, steps); got != 8 {
			t.Fatalf("steps=%d: got %d, want 8", steps, got)
		}
	}
}
