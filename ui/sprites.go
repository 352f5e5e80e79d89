package ui

import (
	"snaek/game/entity"
	"snaek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sprite coordinates are fractions of a cell, origin at the cell's top-left.
type headSprite struct {
	eyes   [2]rl.Vector2
	tongue [3]rl.Vector2 // counter-clockwise
}

var headSprites = map[types.Direction]headSprite{
	types.Up: {
		eyes:   [2]rl.Vector2{{X: 0.3, Y: 0.35}, {X: 0.7, Y: 0.35}},
		tongue: [3]rl.Vector2{{X: 0.5, Y: 0}, {X: 0.4, Y: 0.2}, {X: 0.6, Y: 0.2}},
	},
	types.Down: {
		eyes:   [2]rl.Vector2{{X: 0.3, Y: 0.65}, {X: 0.7, Y: 0.65}},
		tongue: [3]rl.Vector2{{X: 0.5, Y: 1}, {X: 0.6, Y: 0.8}, {X: 0.4, Y: 0.8}},
	},
	types.Left: {
		eyes:   [2]rl.Vector2{{X: 0.35, Y: 0.3}, {X: 0.35, Y: 0.7}},
		tongue: [3]rl.Vector2{{X: 0, Y: 0.5}, {X: 0.2, Y: 0.6}, {X: 0.2, Y: 0.4}},
	},
	types.Right: {
		eyes:   [2]rl.Vector2{{X: 0.65, Y: 0.3}, {X: 0.65, Y: 0.7}},
		tongue: [3]rl.Vector2{{X: 1, Y: 0.5}, {X: 0.8, Y: 0.4}, {X: 0.8, Y: 0.6}},
	},
}

var (
	headColor = toRL(entity.HeadColor)
	bodyColor = toRL(entity.BodyColor)
	foodColor = toRL(entity.FoodColor)
	stemColor = rl.NewColor(96, 64, 32, 255)
)

func toRL(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func at(x, y, cell float32, v rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: x + v.X*cell, Y: y + v.Y*cell}
}

func drawHead(x, y, cell float32, dir types.Direction) {
	rl.DrawRectangleRounded(rl.NewRectangle(x+1, y+1, cell-2, cell-2), 0.5, 8, headColor)
	s := headSprites[dir]
	rl.DrawTriangle(at(x, y, cell, s.tongue[0]), at(x, y, cell, s.tongue[1]), at(x, y, cell, s.tongue[2]), rl.Red)
	for _, e := range s.eyes {
		rl.DrawCircleV(at(x, y, cell, e), cell/10, rl.White)
	}
}

func drawBody(x, y, cell float32) {
	rl.DrawRectangleRounded(rl.NewRectangle(x+1, y+1, cell-2, cell-2), 0.35, 8, bodyColor)
	inner := cell / 4
	rl.DrawRectangleLinesEx(rl.NewRectangle(x+cell/2-inner/2, y+cell/2-inner/2, inner, inner), 1, headColor)
}

// foodSprites draws each food kind inside a cell.
var foodSprites = map[types.FoodKind]func(x, y, cell float32){
	types.Apple: func(x, y, cell float32) {
		rl.DrawCircleV(rl.Vector2{X: x + cell*0.5, Y: y + cell*0.58}, cell*0.38, foodColor)
		rl.DrawRectangleV(rl.Vector2{X: x + cell*0.47, Y: y + cell*0.05}, rl.Vector2{X: cell * 0.06, Y: cell * 0.2}, stemColor)
	},
	types.Chicken: func(x, y, cell float32) {
		rl.DrawCircleV(rl.Vector2{X: x + cell*0.35, Y: y + cell*0.65}, cell*0.3, foodColor)
		rl.DrawLineEx(rl.Vector2{X: x + cell*0.5, Y: y + cell*0.5}, rl.Vector2{X: x + cell*0.9, Y: y + cell*0.1}, cell*0.08, rl.RayWhite)
	},
	types.Fries: func(x, y, cell float32) {
		for i := 0; i < 5; i++ {
			fx := x + cell*(0.2+0.13*float32(i))
			rl.DrawRectangleV(rl.Vector2{X: fx, Y: y + cell*0.05}, rl.Vector2{X: cell * 0.08, Y: cell * 0.45}, rl.Gold)
		}
		rl.DrawRectangleV(rl.Vector2{X: x + cell*0.15, Y: y + cell*0.45}, rl.Vector2{X: cell * 0.7, Y: cell * 0.5}, foodColor)
	},
	types.Taco: func(x, y, cell float32) {
		rl.DrawCircleSector(rl.Vector2{X: x + cell*0.5, Y: y + cell*0.8}, cell*0.45, 180, 360, 16, rl.Gold)
		rl.DrawCircleSector(rl.Vector2{X: x + cell*0.5, Y: y + cell*0.8}, cell*0.32, 180, 360, 16, foodColor)
	},
	types.Hotdog: func(x, y, cell float32) {
		rl.DrawRectangleRounded(rl.NewRectangle(x+cell*0.05, y+cell*0.35, cell*0.9, cell*0.3), 1, 8, rl.Gold)
		rl.DrawRectangleRounded(rl.NewRectangle(x+cell*0.1, y+cell*0.42, cell*0.8, cell*0.16), 1, 8, foodColor)
	},
	types.Popcorn: func(x, y, cell float32) {
		rl.DrawTriangle(
			rl.Vector2{X: x + cell*0.15, Y: y + cell*0.4},
			rl.Vector2{X: x + cell*0.3, Y: y + cell},
			rl.Vector2{X: x + cell*0.7, Y: y + cell},
			foodColor)
		rl.DrawTriangle(
			rl.Vector2{X: x + cell*0.15, Y: y + cell*0.4},
			rl.Vector2{X: x + cell*0.7, Y: y + cell},
			rl.Vector2{X: x + cell*0.85, Y: y + cell*0.4},
			foodColor)
		for i := 0; i < 4; i++ {
			rl.DrawCircleV(rl.Vector2{X: x + cell*(0.22+0.19*float32(i)), Y: y + cell*0.3}, cell*0.12, rl.RayWhite)
		}
	},
}

func drawFood(x, y, cell float32, kind types.FoodKind) {
	draw, ok := foodSprites[kind]
	if !ok {
		draw = foodSprites[types.Apple]
	}
	draw(x, y, cell)
}
