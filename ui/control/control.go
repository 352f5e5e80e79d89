package control

import (
	"time"

	"snaek/game"
	"snaek/game/types"
	"snaek/logger"
)

// Panel is the overlay drawn on top of the play area.
type Panel int

const (
	PanelNone Panel = iota
	PanelWelcome
	PanelPause
	PanelEndOfGame
	PanelNameEntry
	PanelHighscores
)

// Screen holds the bits of UI state that don't belong to the session.
type Screen struct {
	ShowHighscores   bool
	FastFoodRevealed bool
	Name             []rune
}

// Panel picks the overlay for the current session phase.
func (s *Screen) Panel(g *game.Game) Panel {
	switch g.Phase() {
	case game.Running:
		return PanelNone
	case game.Paused:
		return PanelPause
	case game.Ended:
		if g.AwaitingName() {
			return PanelNameEntry
		}
		if s.ShowHighscores {
			return PanelHighscores
		}
		return PanelEndOfGame
	default:
		if s.ShowHighscores {
			return PanelHighscores
		}
		return PanelWelcome
	}
}

// Command is a player action decoded from the keyboard.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdStart
	CmdPause
	CmdToggleHighscores
	CmdConfirm
	CmdBackspace
	CmdRevealFastFood
	CmdToggleFastFood
	CmdClose
)

var turns = map[Command]types.Direction{
	CmdUp:    types.Up,
	CmdDown:  types.Down,
	CmdLeft:  types.Left,
	CmdRight: types.Right,
}

// Controller routes commands to the session and the screen.
type Controller struct {
	Game   *game.Game
	Screen *Screen
}

// Naming reports whether keystrokes should go to the name field.
func (c *Controller) Naming() bool {
	return c.Screen.Panel(c.Game) == PanelNameEntry
}

// Handle applies cmd and reports whether the window should close.
func (c *Controller) Handle(cmd Command, now time.Time) bool {
	if dir, ok := turns[cmd]; ok {
		c.Game.Turn(dir)
		return false
	}

	switch cmd {
	case CmdClose:
		return true
	case CmdStart:
		if c.Naming() {
			return false
		}
		if c.Game.Start(now) {
			c.Screen.ShowHighscores = false
		}
	case CmdPause:
		c.Game.TogglePause(now)
	case CmdToggleHighscores:
		switch c.Screen.Panel(c.Game) {
		case PanelWelcome, PanelEndOfGame, PanelHighscores:
			c.Screen.ShowHighscores = !c.Screen.ShowHighscores
		}
	case CmdConfirm:
		if !c.Naming() {
			return false
		}
		if err := c.Game.SubmitName(string(c.Screen.Name)); err != nil {
			logger.Log.Warnw("highscore not saved", "error", err)
		}
		c.Screen.Name = c.Screen.Name[:0]
		c.Screen.ShowHighscores = true
	case CmdBackspace:
		if n := len(c.Screen.Name); n > 0 && c.Naming() {
			c.Screen.Name = c.Screen.Name[:n-1]
		}
	case CmdRevealFastFood:
		c.Screen.FastFoodRevealed = true
	case CmdToggleFastFood:
		if c.Screen.FastFoodRevealed {
			c.Game.SetFastFood(!c.Game.FastFood())
		}
	}
	return false
}

// Type appends a character to the name field.
func (c *Controller) Type(r rune, maxLen int) {
	if !c.Naming() || r < ' ' || len(c.Screen.Name) >= maxLen {
		return
	}
	c.Screen.Name = append(c.Screen.Name, r)
}
