package audio

import (
	"os"

	"snaek/game"
	"snaek/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

type clip struct {
	sound  rl.Sound
	loaded bool
}

// Player plays sound effects and keeps the background music looping. Files
// that can't be found are skipped, so a missing clip is silent rather than fatal.
type Player struct {
	rng     *rand.Rand
	pools   map[game.Sound]Pool
	clips   map[game.Sound][]clip
	music   rl.Music
	playing bool
}

// NewPlayer loads every clip of pools at effectVolume and starts musicFile at
// musicVolume. Volumes are 0-100. The audio device must already be open.
func NewPlayer(pools map[game.Sound]Pool, effectVolume int, musicFile string, musicVolume int, rng *rand.Rand) *Player {
	p := &Player{
		rng:   rng,
		pools: pools,
		clips: make(map[game.Sound][]clip, len(pools)),
	}

	for s, pool := range pools {
		clips := make([]clip, len(pool.Files))
		for i, f := range pool.Files {
			if !fileExists(f) {
				logger.Log.Warnw("sound file missing", "file", f)
				continue
			}
			snd := rl.LoadSound(f)
			rl.SetSoundVolume(snd, volume(effectVolume))
			clips[i] = clip{sound: snd, loaded: true}
		}
		p.clips[s] = clips
	}

	if musicFile != "" && fileExists(musicFile) {
		p.music = rl.LoadMusicStream(musicFile)
		p.music.Looping = false
		rl.SetMusicVolume(p.music, volume(musicVolume))
		rl.PlayMusicStream(p.music)
		p.playing = true
	} else if musicFile != "" {
		logger.Log.Warnw("music file missing", "file", musicFile)
	}
	return p
}

// Play implements game.SoundPlayer.
func (p *Player) Play(s game.Sound) {
	idx := p.pools[s].Pick(p.rng)
	if idx < 0 {
		return
	}
	if c := p.clips[s][idx]; c.loaded {
		rl.PlaySound(c.sound)
	}
}

// Update feeds the music stream; call it once per frame. When the track runs
// out it is rewound and restarted.
func (p *Player) Update() {
	if !p.playing {
		return
	}
	rl.UpdateMusicStream(p.music)
	if !rl.IsMusicStreamPlaying(p.music) {
		rl.SeekMusicStream(p.music, 0)
		rl.PlayMusicStream(p.music)
	}
}

// Close unloads everything.
func (p *Player) Close() {
	for _, clips := range p.clips {
		for _, c := range clips {
			if c.loaded {
				rl.UnloadSound(c.sound)
			}
		}
	}
	if p.playing {
		rl.StopMusicStream(p.music)
		rl.UnloadMusicStream(p.music)
		p.playing = false
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func volume(v int) float32 {
	return float32(v) / 100
}
