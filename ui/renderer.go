package ui

import (
	"fmt"
	"time"

	"snaek/game"
	"snaek/game/manager"
	"snaek/ui/control"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HUDHeight = 40 // status bar above the play area
	fontSize  = 20
)

var (
	backgroundColor = rl.NewColor(20, 24, 32, 255)
	gridColor       = rl.NewColor(32, 38, 50, 255)
	panelColor      = rl.NewColor(0, 0, 0, 190)
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize), offsetY: HUDHeight}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(g *game.Game, s *control.Screen) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridW := int32(g.Grid.Width)
	gridH := int32(g.Grid.Height)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, backgroundColor)
	for x := int32(0); x < gridW; x += r.cellSize {
		for y := int32(0); y < gridH; y += r.cellSize {
			rl.DrawRectangleLines(r.offsetX+x, r.offsetY+y, r.cellSize, r.cellSize, gridColor)
		}
	}

	if food, ok := g.Food(); ok {
		drawFood(float32(r.offsetX+int32(food.Position.X)), float32(r.offsetY+int32(food.Position.Y)), float32(r.cellSize), food.Kind)
	}

	for _, seg := range g.Segments() {
		if !g.Grid.Contains(seg.Position) {
			continue
		}
		x := float32(r.offsetX + int32(seg.Position.X))
		y := float32(r.offsetY + int32(seg.Position.Y))
		if seg.IsHead {
			drawHead(x, y, float32(r.cellSize), seg.Facing)
		} else {
			drawBody(x, y, float32(r.cellSize))
		}
	}

	r.drawHUD(g, s)
	r.drawPanel(g, s)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(g *game.Game, s *control.Screen) {
	rl.DrawRectangle(0, 0, r.screenWidth, HUDHeight, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 10, (HUDHeight-fontSize)/2, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dms", g.Interval().Milliseconds()), 180, (HUDHeight-fontSize)/2, fontSize, rl.White)

	if s.FastFoodRevealed {
		label := "Fast food: off (F)"
		if g.FastFood() {
			label = "Fast food: on (F)"
		}
		w := rl.MeasureText(label, fontSize)
		rl.DrawText(label, r.screenWidth-w-10, (HUDHeight-fontSize)/2, fontSize, rl.Gold)
	}
}

func (r *Renderer) drawPanel(g *game.Game, s *control.Screen) {
	var lines []string
	switch s.Panel(g) {
	case control.PanelNone:
		return
	case control.PanelWelcome:
		lines = []string{
			"SNAEK",
			"",
			"Arrow keys steer the snake.",
			"Eat the food, avoid walls and yourself.",
			"",
			"SPACE: new game   TAB: pause",
			"H: highscores   ESC: quit",
		}
	case control.PanelPause:
		lines = []string{"PAUSED", "", "TAB to continue"}
	case control.PanelEndOfGame:
		title := "GAME OVER"
		if g.EndReason() == game.BoardFull {
			title = "BOARD CLEARED"
		}
		lines = []string{
			title,
			"",
			fmt.Sprintf("Final score: %d", g.Score()),
			fmt.Sprintf("Time: %s", g.ElapsedTime().Round(time.Second)),
			"",
			"SPACE: new game   H: highscores",
		}
	case control.PanelNameEntry:
		lines = []string{
			"NEW HIGHSCORE!",
			"",
			fmt.Sprintf("Score: %d", g.Score()),
			"Enter your name:",
			string(s.Name) + "_",
			"",
			"ENTER to save",
		}
	case control.PanelHighscores:
		lines = highscoreLines(g.Highscores())
	}
	r.drawLines(lines)
}

func highscoreLines(entries []manager.HighscoreEntry) []string {
	lines := []string{"HIGHSCORES", ""}
	if len(entries) == 0 {
		lines = append(lines, "No scores yet")
	}
	for i, e := range entries {
		name := e.PlayerName
		if name == "" {
			name = "???"
		}
		lines = append(lines, fmt.Sprintf("%d. %-16s %5d", i+1, name, e.Score))
	}
	return append(lines, "", "H: hide   SPACE: new game")
}

func (r *Renderer) drawLines(lines []string) {
	lineHeight := int32(fontSize + 8)
	var width int32
	for _, l := range lines {
		if w := rl.MeasureText(l, fontSize); w > width {
			width = w
		}
	}
	height := lineHeight * int32(len(lines))
	boxW, boxH := width+40, height+30
	boxX := (r.screenWidth - boxW) / 2
	boxY := r.offsetY + (r.screenHeight-r.offsetY-boxH)/2

	rl.DrawRectangle(boxX, boxY, boxW, boxH, panelColor)
	rl.DrawRectangleLines(boxX, boxY, boxW, boxH, rl.LightGray)
	for i, l := range lines {
		w := rl.MeasureText(l, fontSize)
		rl.DrawText(l, boxX+(boxW-w)/2, boxY+15+int32(i)*lineHeight, fontSize, rl.White)
	}
}
