package ui

import (
	"snaek/ui/control"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCommands = []struct {
	key int32
	cmd control.Command
}{
	{rl.KeyUp, control.CmdUp},
	{rl.KeyDown, control.CmdDown},
	{rl.KeyLeft, control.CmdLeft},
	{rl.KeyRight, control.CmdRight},
	{rl.KeySpace, control.CmdStart},
	{rl.KeyTab, control.CmdPause},
	{rl.KeyH, control.CmdToggleHighscores},
	{rl.KeyF, control.CmdToggleFastFood},
}

// Poll reads this frame's key presses. While naming, printable keys are
// returned as runes instead of commands.
func Poll(naming bool) ([]control.Command, []rune) {
	var cmds []control.Command
	var typed []rune

	if rl.IsKeyPressed(rl.KeyEscape) {
		cmds = append(cmds, control.CmdClose)
	}

	if naming {
		for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
			typed = append(typed, r)
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			cmds = append(cmds, control.CmdConfirm)
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			cmds = append(cmds, control.CmdBackspace)
		}
		return cmds, typed
	}

	// drop characters typed outside the name field
	for rl.GetCharPressed() > 0 {
	}

	// Ctrl+Shift+Up unlocks the fast food switch
	if rl.IsKeyDown(rl.KeyLeftControl) && rl.IsKeyDown(rl.KeyLeftShift) && rl.IsKeyPressed(rl.KeyUp) {
		cmds = append(cmds, control.CmdRevealFastFood)
	}

	for _, kc := range keyCommands {
		if rl.IsKeyPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds, typed
}
