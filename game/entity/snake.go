package entity

import (
	"snaek/game/types"
)

type Color struct {
	R, G, B uint8
}

var (
	HeadColor = Color{R: 15, G: 61, B: 196}
	BodyColor = Color{R: 94, G: 135, B: 214}
	FoodColor = Color{R: 212, G: 39, B: 39}
)

// Snake keeps its segments ordered from tail to head, so the head is the last
// element of Body.
type Snake struct {
	Body         []types.Segment
	Direction    types.Direction
	TargetLength int

	turnsPerTick int
	turns        int
}

func NewSnake(startPos types.Point, dir types.Direction, targetLength, turnsPerTick int) *Snake {
	if turnsPerTick < 1 {
		turnsPerTick = 1
	}
	return &Snake{
		Body:         []types.Segment{{Position: startPos, IsHead: true, Facing: dir}},
		Direction:    dir,
		TargetLength: targetLength,
		turnsPerTick: turnsPerTick,
	}
}

// Move appends newHead as the head segment, clearing the flag on the old one.
func (s *Snake) Move(newHead types.Point) {
	for i := range s.Body {
		s.Body[i].IsHead = false
	}
	s.Body = append(s.Body, types.Segment{Position: newHead, IsHead: true, Facing: s.Direction})
}

// Trim removes tail segments until the snake is no longer than its target
// length. It returns the number of removed segments.
func (s *Snake) Trim() int {
	removed := 0
	for len(s.Body) > s.TargetLength && len(s.Body) > 1 {
		s.Body = s.Body[1:]
		removed++
	}
	return removed
}

// Grow raises the target length; the tail stays in place on the next tick.
func (s *Snake) Grow() {
	s.TargetLength++
}

func (s *Snake) GetHead() types.Segment {
	return s.Body[len(s.Body)-1]
}

// NextHead is where the head lands after one step of cellSize pixels.
func (s *Snake) NextHead(cellSize int) types.Point {
	return s.GetHead().Position.Add(s.Direction.Step(cellSize))
}

// Len is the current number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part.Position == p {
			return true
		}
	}
	return false
}

// SetDirection buffers a heading change for the next tick. Reversals into
// the neck are refused, and so is anything past the per-tick turn budget.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if s.turns >= s.turnsPerTick {
		return false
	}
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	s.turns++
	return true
}

// EndTick releases the turn lock.
func (s *Snake) EndTick() {
	s.turns = 0
}
