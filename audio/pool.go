package audio

import (
	"path/filepath"

	"snaek/game"

	"golang.org/x/exp/rand"
)

// Pool is a set of interchangeable clips; one is drawn at random per play.
type Pool struct {
	Files []string
}

// Pick returns the index of the clip to play, or -1 for an empty pool.
func (p Pool) Pick(rng *rand.Rand) int {
	if len(p.Files) == 0 {
		return -1
	}
	return rng.Intn(len(p.Files))
}

// DefaultPools lists the clips shipped under dir/snake.
func DefaultPools(dir string) map[game.Sound]Pool {
	join := func(sub string, names ...string) Pool {
		files := make([]string, len(names))
		for i, n := range names {
			files[i] = filepath.Join(dir, "snake", sub, n)
		}
		return Pool{Files: files}
	}
	return map[game.Sound]Pool{
		game.SoundEat:       join("eating", "Mmh.wav", "Laekkert.wav", "haps.wav", "SaftigtAeble.wav"),
		game.SoundHighscore: join("highscore", "FlotKlaret.wav", "Tillykke.wav"),
		game.SoundLose:      join("loosing", "Av.wav", "AvForSoeren.wav", "DinKlovn.wav", "Hovsa.wav"),
	}
}

// MusicFile is the background track under dir.
func MusicFile(dir string) string {
	return filepath.Join(dir, "music", "backgroundMusic.wav")
}
