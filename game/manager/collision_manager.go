package manager

import (
	"snaek/game/entity"
	"snaek/game/types"
)

// CollisionType represents what the head ran into on a tick.
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Terminal reports whether the collision ends the session.
func (c CollisionType) Terminal() bool {
	return c == WallCollision || c == SelfCollision
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head. Food is checked first,
// so a move reaching food is always growth.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, food *types.Food) CollisionType {
	head := snake.GetHead().Position

	if food != nil && cm.IsFoodCollision(head, food.Position) {
		return FoodCollision
	}

	if cm.isWallCollision(head) {
		return WallCollision
	}

	if cm.isSelfCollision(head, snake) {
		return SelfCollision
	}

	return NoCollision
}

// isWallCollision checks if a position lies outside the play area
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares pos with every segment except the head itself.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	for _, part := range snake.Body[:len(snake.Body)-1] {
		if pos == part.Position {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for a new food item.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
