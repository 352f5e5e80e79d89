package config

import (
	"flag"
	"fmt"
	"time"
)

// Config holds everything that can be tuned from the command line.
type Config struct {
	CellSize int
	Cols     int
	Rows     int

	StartCol    int
	StartRow    int
	StartLength int

	StartInterval    time.Duration
	FastFoodInterval time.Duration
	MinInterval      time.Duration
	SpeedStep        time.Duration // interval cut per point scored

	TurnsPerTick int

	HighscoreFile     string
	HighscoreCapacity int

	AudioDir     string
	EffectVolume int // 0-100
	MusicVolume  int // 0-100

	LogFile string
	FPS     int
}

// Default matches the classic game.
func Default() Config {
	return Config{
		CellSize: 40,
		Cols:     20,
		Rows:     15,

		StartCol:    5,
		StartRow:    5,
		StartLength: 3,

		StartInterval:    400 * time.Millisecond,
		FastFoodInterval: 250 * time.Millisecond,
		MinInterval:      100 * time.Millisecond,
		SpeedStep:        2 * time.Millisecond,

		TurnsPerTick: 1,

		HighscoreFile:     "snake_highscorelist.json",
		HighscoreCapacity: 3,

		AudioDir:     "resources/audio",
		EffectVolume: 50,
		MusicVolume:  10,

		LogFile: "snaek.log",
		FPS:     60,
	}
}

// BindFlags registers one flag per field, defaulting to the current values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.IntVar(&c.Cols, "cols", c.Cols, "Play area width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "Play area height in cells")
	fs.IntVar(&c.StartLength, "length", c.StartLength, "Snake length at session start")
	fs.DurationVar(&c.StartInterval, "speed", c.StartInterval, "Tick interval at session start")
	fs.DurationVar(&c.FastFoodInterval, "fastfood-speed", c.FastFoodInterval, "Tick interval at session start in fast food mode")
	fs.DurationVar(&c.MinInterval, "min-speed", c.MinInterval, "Shortest tick interval")
	fs.DurationVar(&c.SpeedStep, "speed-step", c.SpeedStep, "Interval cut per point scored")
	fs.IntVar(&c.TurnsPerTick, "turns", c.TurnsPerTick, "Direction changes accepted per tick (1 or 2)")
	fs.StringVar(&c.HighscoreFile, "highscores", c.HighscoreFile, "Highscore list file")
	fs.IntVar(&c.HighscoreCapacity, "highscore-size", c.HighscoreCapacity, "Number of highscore entries kept")
	fs.StringVar(&c.AudioDir, "audio", c.AudioDir, "Directory holding the sound files")
	fs.IntVar(&c.EffectVolume, "effect-volume", c.EffectVolume, "Sound effect volume (0-100)")
	fs.IntVar(&c.MusicVolume, "music-volume", c.MusicVolume, "Background music volume (0-100)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Log file")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Frames per second")
}

func (c Config) Validate() error {
	if c.CellSize <= 0 || c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("play area must be positive, got %dx%d cells of %dpx", c.Cols, c.Rows, c.CellSize)
	}
	if c.StartCol < 0 || c.StartCol >= c.Cols || c.StartRow < 0 || c.StartRow >= c.Rows {
		return fmt.Errorf("start cell (%d,%d) is outside the play area", c.StartCol, c.StartRow)
	}
	if c.StartLength < 1 {
		return fmt.Errorf("start length must be at least 1, got %d", c.StartLength)
	}
	if c.MinInterval <= 0 {
		return fmt.Errorf("min interval must be positive, got %v", c.MinInterval)
	}
	if c.StartInterval < c.MinInterval || c.FastFoodInterval < c.MinInterval {
		return fmt.Errorf("start intervals (%v, %v) must not be below the floor %v", c.StartInterval, c.FastFoodInterval, c.MinInterval)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative, got %v", c.SpeedStep)
	}
	if c.TurnsPerTick < 1 || c.TurnsPerTick > 2 {
		return fmt.Errorf("turns per tick must be 1 or 2, got %d", c.TurnsPerTick)
	}
	if c.HighscoreCapacity < 1 {
		return fmt.Errorf("highscore size must be at least 1, got %d", c.HighscoreCapacity)
	}
	if c.HighscoreFile == "" {
		return fmt.Errorf("highscore file must be set")
	}
	if c.EffectVolume < 0 || c.EffectVolume > 100 || c.MusicVolume < 0 || c.MusicVolume > 100 {
		return fmt.Errorf("volumes must be within 0-100, got effect=%d music=%d", c.EffectVolume, c.MusicVolume)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
