package entity

import (
	"testing"

	"snaek/game/types"
)

func TestMoveMarksOnlyNewHead(t *testing.T) {
	s := NewSnake(types.Point{X: 40, Y: 40}, types.Up, 3, 1)
	s.Move(s.NextHead(20))
	s.Move(s.NextHead(20))

	if got := s.Len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	for i, seg := range s.Body {
		wantHead := i == len(s.Body)-1
		if seg.IsHead != wantHead {
			t.Fatalf("segment %d IsHead = %v, want %v", i, seg.IsHead, wantHead)
		}
	}
	if head := s.GetHead().Position; head != (types.Point{X: 40, Y: 0}) {
		t.Fatalf("head = %+v, want {40 0}", head)
	}
}

func TestTrimKeepsTargetLength(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 200}, types.Up, 3, 1)

	wantLens := []int{2, 3, 3, 3}
	for i, want := range wantLens {
		s.Move(s.NextHead(20))
		s.Trim()
		if got := s.Len(); got != want {
			t.Fatalf("after move %d: len = %d, want %d", i+1, got, want)
		}
	}

	s.Grow()
	s.Move(s.NextHead(20))
	if removed := s.Trim(); removed != 0 {
		t.Fatalf("trim right after growing removed %d segments, want 0", removed)
	}
	if s.Len() != 4 {
		t.Fatalf("len after growth = %d, want 4", s.Len())
	}

	s.Move(s.NextHead(20))
	if removed := s.Trim(); removed != 1 {
		t.Fatalf("steady state trim removed %d segments, want 1", removed)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		current types.Direction
		next    types.Direction
		ok      bool
	}{
		{types.Up, types.Down, false},
		{types.Down, types.Up, false},
		{types.Left, types.Right, false},
		{types.Right, types.Left, false},
		{types.Up, types.Left, true},
		{types.Left, types.Down, true},
		{types.Right, types.Right, true},
	}

	for _, tt := range tests {
		s := NewSnake(types.Point{}, tt.current, 3, 1)
		if got := s.SetDirection(tt.next); got != tt.ok {
			t.Errorf("%v -> %v accepted = %v, want %v", tt.current, tt.next, got, tt.ok)
		}
		want := tt.current
		if tt.ok {
			want = tt.next
		}
		if s.Direction != want {
			t.Errorf("%v -> %v direction = %v, want %v", tt.current, tt.next, s.Direction, want)
		}
	}
}

func TestSetDirectionLocksUntilEndTick(t *testing.T) {
	s := NewSnake(types.Point{}, types.Up, 3, 1)

	if !s.SetDirection(types.Left) {
		t.Fatal("first turn refused")
	}
	if s.SetDirection(types.Down) {
		t.Fatal("second turn in the same tick accepted")
	}
	if s.Direction != types.Left {
		t.Fatalf("direction = %v, want left", s.Direction)
	}

	s.EndTick()
	if !s.SetDirection(types.Down) {
		t.Fatal("turn after EndTick refused")
	}
}

func TestTwoTurnsPerTick(t *testing.T) {
	s := NewSnake(types.Point{}, types.Down, 3, 2)

	if !s.SetDirection(types.Left) || !s.SetDirection(types.Up) {
		t.Fatal("expected two turns to be accepted")
	}
	if s.SetDirection(types.Right) {
		t.Fatal("third turn accepted")
	}
	if s.Direction != types.Up {
		t.Fatalf("direction = %v, want up", s.Direction)
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 20, Y: 20}, types.Right, 3, 1)
	s.Move(s.NextHead(20))

	if !s.Occupies(types.Point{X: 20, Y: 20}) || !s.Occupies(types.Point{X: 40, Y: 20}) {
		t.Fatal("expected both cells to be occupied")
	}
	if s.Occupies(types.Point{X: 60, Y: 20}) {
		t.Fatal("cell ahead of the head reported as occupied")
	}
}
