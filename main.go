package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"snaek/audio"
	"snaek/config"
	"snaek/game"
	"snaek/game/manager"
	"snaek/logger"
	"snaek/ui"
	"snaek/ui/control"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.LogFile); err != nil {
		panic(err)
	}
	defer logger.Sync()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	highscores := manager.NewHighscoreManager(cfg.HighscoreFile, cfg.HighscoreCapacity)
	if err := highscores.Load(); err != nil {
		if errors.Is(err, manager.ErrCorruptHighscores) {
			logger.Log.Warnw("highscore file unreadable, starting with an empty list", "file", highscores.Path(), "error", err)
		} else {
			logger.Log.Errorw("loading highscores failed", "file", highscores.Path(), "error", err)
		}
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Cols*cfg.CellSize), int32(cfg.Rows*cfg.CellSize+ui.HUDHeight), "Snaek")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.FPS))

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	player := audio.NewPlayer(
		audio.DefaultPools(cfg.AudioDir), cfg.EffectVolume,
		audio.MusicFile(cfg.AudioDir), cfg.MusicVolume,
		rng,
	)
	defer player.Close()

	g := game.NewGame(cfg, highscores, player, rng)
	screen := &control.Screen{}
	ctrl := &control.Controller{Game: g, Screen: screen}
	renderer := ui.NewRenderer(cfg.CellSize)

	logger.Log.Infow("window opened",
		"cols", cfg.Cols,
		"rows", cfg.Rows,
		"cell", cfg.CellSize,
		"highscores", len(highscores.Entries()),
		"capacity", highscores.Capacity())

	for !rl.WindowShouldClose() {
		now := time.Now()

		cmds, typed := ui.Poll(ctrl.Naming())
		for _, r := range typed {
			ctrl.Type(r, manager.MaxNameLength)
		}
		quit := false
		for _, cmd := range cmds {
			if ctrl.Handle(cmd, now) {
				quit = true
			}
		}
		if quit {
			break
		}

		g.Update(now)
		player.Update()
		renderer.Draw(g, screen)
	}

	logger.Log.Info("window closed")
}
