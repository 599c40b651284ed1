package grow

import (
	"math"
	"testing"
)

func TestNextNoGrowthWhenSatisfied(t *testing.T) {
	if got := Next(16, 10, 8); got != 16 {
		t.Fatalf("Next(16,10,8)=%d want 16 (no growth needed)", got)
	}
	if got := Next(10, 10, 8); got != 10 {
		t.Fatalf("Next(10,10,8)=%d want 10", got)
	}
	if got := Next(0, 0, 8); got != 0 {
		t.Fatalf("Next(0,0,8)=%d want 0", got)
	}
}

func TestNextAppliesFloor(t *testing.T) {
	// An empty container growing for its first item starts at the floor.
	if got := Next(0, 1, 8); got != 8 {
		t.Fatalf("Next(0,1,8)=%d want 8", got)
	}
	if got := Next(0, 1, 128); got != 128 {
		t.Fatalf("Next(0,1,128)=%d want 128", got)
	}
	// A floor below the current capacity has no effect.
	if got := Next(20, 21, 8); got != 31 {
		t.Fatalf("Next(20,21,8)=%d want 31", got)
	}
}

func TestNextGeometricSequence(t *testing.T) {
	// 8 -> 13 -> 20 -> 31 -> 47 ...
	want := []int{13, 20, 31, 47}
	cur := 8
	for _, w := range want {
		got := Next(cur, cur+1, 8)
		if got != w {
			t.Fatalf("Next(%d,%d,8)=%d want %d", cur, cur+1, got, w)
		}
		cur = got
	}
}

func TestNextReachesLargeRequirement(t *testing.T) {
	got := Next(8, 1_000_000, 8)
	if got < 1_000_000 {
		t.Fatalf("Next(8,1000000,8)=%d is below the requirement", got)
	}
	// The previous step of the sequence must be below the requirement,
	// i.e. the result is the smallest reachable capacity.
	prev := (got - 1) * 2 / 3
	if prev >= 1_000_000 {
		t.Fatalf("Next returned %d which is not the smallest reachable capacity", got)
	}
}

func TestNextSaturatesInsteadOfWrapping(t *testing.T) {
	if got := Next(math.MaxInt-1, math.MaxInt, 1); got != math.MaxInt {
		t.Fatalf("Next near MaxInt = %d want MaxInt", got)
	}
	if got := Next(math.MaxInt/2, math.MaxInt, 1); got != math.MaxInt {
		t.Fatalf("Next(MaxInt/2,MaxInt,1)=%d want MaxInt", got)
	}
}

func TestNextClampsNegativeInputs(t *testing.T) {
	if got := Next(-5, -3, -1); got != 0 {
		t.Fatalf("Next(-5,-3,-1)=%d want 0", got)
	}
	if got := Next(-5, 1, 8); got != 8 {
		t.Fatalf("Next(-5,1,8)=%d want 8", got)
	}
}
