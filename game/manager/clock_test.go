package manager

import (
	"testing"
	"time"
)

func TestClockShortenSequence(t *testing.T) {
	c := NewClock(400*time.Millisecond, 100*time.Millisecond, 2*time.Millisecond)

	want := []time.Duration{398 * time.Millisecond, 394 * time.Millisecond, 388 * time.Millisecond}
	for i, w := range want {
		if got := c.Shorten(i + 1); got != w {
			t.Fatalf("after score %d: interval = %v, want %v", i+1, got, w)
		}
	}
}

func TestClockNeverBelowFloorOrIncreasing(t *testing.T) {
	c := NewClock(400*time.Millisecond, 100*time.Millisecond, 2*time.Millisecond)

	prev := c.Interval()
	for score := 1; score <= 100; score++ {
		got := c.Shorten(score)
		if got > prev {
			t.Fatalf("score %d: interval grew from %v to %v", score, prev, got)
		}
		if got < 100*time.Millisecond {
			t.Fatalf("score %d: interval %v below floor", score, got)
		}
		prev = got
	}
	if prev != 100*time.Millisecond {
		t.Fatalf("interval = %v, want floor", prev)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(400*time.Millisecond, 100*time.Millisecond, 2*time.Millisecond)
	c.Shorten(10)

	c.Reset(0)
	if c.Interval() != 400*time.Millisecond {
		t.Fatalf("interval after reset = %v, want 400ms", c.Interval())
	}

	c.Reset(250 * time.Millisecond)
	if c.Interval() != 250*time.Millisecond {
		t.Fatalf("interval after fast reset = %v, want 250ms", c.Interval())
	}
	if c.Running() {
		t.Fatal("clock running after reset")
	}
}

func TestClockDue(t *testing.T) {
	c := NewClock(400*time.Millisecond, 100*time.Millisecond, 2*time.Millisecond)
	t0 := time.Unix(1000, 0)

	if c.Due(t0.Add(time.Second)) {
		t.Fatal("stopped clock reported a tick")
	}

	c.Start(t0)
	if c.Due(t0.Add(399 * time.Millisecond)) {
		t.Fatal("tick before the interval elapsed")
	}
	if !c.Due(t0.Add(400 * time.Millisecond)) {
		t.Fatal("no tick after the interval elapsed")
	}
	if c.Due(t0.Add(500 * time.Millisecond)) {
		t.Fatal("tick consumed twice")
	}

	c.Stop()
	if c.Due(t0.Add(10 * time.Second)) {
		t.Fatal("tick after Stop")
	}
}

func TestClockDueKeepsCadence(t *testing.T) {
	c := NewClock(400*time.Millisecond, 100*time.Millisecond, 2*time.Millisecond)
	t0 := time.Unix(1000, 0)
	c.Start(t0)

	// frames land a little after each deadline
	if !c.Due(t0.Add(416 * time.Millisecond)) {
		t.Fatal("no tick at 416ms")
	}
	if !c.Due(t0.Add(800 * time.Millisecond)) {
		t.Fatal("second tick late: frame delay carried over")
	}
	if c.Due(t0.Add(1199 * time.Millisecond)) {
		t.Fatal("tick before the third deadline")
	}

	// a long stall yields one tick, not a burst
	if !c.Due(t0.Add(5 * time.Second)) {
		t.Fatal("no tick after a stall")
	}
	if c.Due(t0.Add(5*time.Second + 399*time.Millisecond)) {
		t.Fatal("missed ticks replayed after a stall")
	}
	if !c.Due(t0.Add(5*time.Second + 400*time.Millisecond)) {
		t.Fatal("no tick one interval after the stall")
	}
}
