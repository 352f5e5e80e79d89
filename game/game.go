package game

import (
	"time"

	"snaek/config"
	"snaek/game/entity"
	"snaek/game/manager"
	"snaek/game/types"
	"snaek/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrNoPendingScore is returned by SubmitName when no highscore waits for a name.
var ErrNoPendingScore = errors.New("no highscore waiting for a name")

// Phase is the session state.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Ended
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// EndReason tells why a session stopped.
type EndReason int

const (
	NotEnded EndReason = iota
	HitWall
	HitSelf
	BoardFull
)

func (r EndReason) String() string {
	switch r {
	case HitWall:
		return "wall"
	case HitSelf:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Sound names a side effect the session asks the audio layer to play.
type Sound int

const (
	SoundEat Sound = iota
	SoundHighscore
	SoundLose
)

// SoundPlayer is implemented by the audio layer.
type SoundPlayer interface {
	Play(s Sound)
}

type silent struct{}

func (silent) Play(Sound) {}

// Game is one window's worth of state: the current session plus the
// highscore list it reports to. All methods must be called from the same
// goroutine.
type Game struct {
	Grid      types.Grid
	Steps     int
	StartTime time.Time
	EndTime   time.Time

	cfg          config.Config
	id           string
	phase        Phase
	snake        *entity.Snake
	food         *types.Food
	score        int
	endReason    EndReason
	awaitingName bool

	clock        *manager.Clock
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	highscores   *manager.HighscoreManager
	sounds       SoundPlayer
}

func NewGame(cfg config.Config, highscores *manager.HighscoreManager, sounds SoundPlayer, rng *rand.Rand) *Game {
	grid := types.NewGrid(cfg.Cols, cfg.Rows, cfg.CellSize)
	collisionMgr := manager.NewCollisionManager(grid)
	if sounds == nil {
		sounds = silent{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &Game{
		Grid:         grid,
		cfg:          cfg,
		phase:        Idle,
		clock:        manager.NewClock(cfg.StartInterval, cfg.MinInterval, cfg.SpeedStep),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
		highscores:   highscores,
		sounds:       sounds,
	}
}

// Start begins a new session. It is refused while one is in progress.
func (g *Game) Start(now time.Time) bool {
	if g.phase == Running || g.phase == Paused {
		return false
	}

	initial := g.cfg.StartInterval
	if g.foodMgr.FastFood() {
		initial = g.cfg.FastFoodInterval
	}

	g.id = uuid.New().String()
	g.score = 0
	g.Steps = 0
	g.endReason = NotEnded
	g.awaitingName = false
	g.snake = entity.NewSnake(
		g.Grid.CellAt(g.cfg.StartCol, g.cfg.StartRow),
		types.Up,
		g.cfg.StartLength,
		g.cfg.TurnsPerTick,
	)
	g.clock.Reset(initial)
	g.StartTime = now
	g.EndTime = time.Time{}
	g.phase = Running

	if err := g.placeFood(); err != nil {
		g.end(BoardFull, now)
		return true
	}

	g.clock.Start(now)
	logger.Log.Infow("session started",
		"session", g.id,
		"interval", g.clock.Interval(),
		"fastFood", g.foodMgr.FastFood())
	return true
}

// TogglePause switches between Running and Paused. Nothing but the clock changes.
func (g *Game) TogglePause(now time.Time) bool {
	switch g.phase {
	case Running:
		g.clock.Stop()
		g.phase = Paused
	case Paused:
		g.clock.Start(now)
		g.phase = Running
	default:
		return false
	}
	logger.Log.Debugw("pause toggled", "session", g.id, "phase", g.phase)
	return true
}

// Turn buffers a direction change for the next tick.
func (g *Game) Turn(dir types.Direction) bool {
	if g.phase != Running {
		return false
	}
	return g.snake.SetDirection(dir)
}

// Update runs a tick if the clock says one is due.
func (g *Game) Update(now time.Time) bool {
	if !g.clock.Due(now) {
		return false
	}
	g.tick(now)
	return true
}

// Tick advances the session by one step regardless of the clock.
func (g *Game) Tick() manager.CollisionType {
	return g.tick(time.Now())
}

func (g *Game) tick(now time.Time) manager.CollisionType {
	if g.phase != Running {
		return manager.NoCollision
	}

	g.Steps++

	g.snake.Move(g.snake.NextHead(g.Grid.CellSize))
	g.snake.Trim()
	g.snake.EndTick()

	collision := g.collisionMgr.CheckCollision(g.snake, g.food)
	switch collision {
	case manager.FoodCollision:
		g.eat(now)
	case manager.WallCollision:
		g.end(HitWall, now)
	case manager.SelfCollision:
		g.end(HitSelf, now)
	}
	return collision
}

func (g *Game) eat(now time.Time) {
	g.score++
	g.snake.Grow()
	interval := g.clock.Shorten(g.score)
	g.sounds.Play(SoundEat)

	logger.Log.Debugw("food eaten",
		"session", g.id,
		"score", g.score,
		"interval", interval)

	if err := g.placeFood(); err != nil {
		g.end(BoardFull, now)
	}
}

func (g *Game) placeFood() error {
	g.food = nil
	food, err := g.foodMgr.GenerateFood(g.snake)
	if err != nil {
		logger.Log.Warnw("food placement failed", "session", g.id, "error", err)
		return err
	}
	g.food = &food
	return nil
}

func (g *Game) end(reason EndReason, now time.Time) {
	g.phase = Ended
	g.endReason = reason
	g.EndTime = now
	g.clock.Stop()

	if g.highscores != nil && g.highscores.Qualifies(g.score) {
		g.awaitingName = true
		g.sounds.Play(SoundHighscore)
	} else {
		g.sounds.Play(SoundLose)
	}

	logger.Log.Infow("session ended",
		"session", g.id,
		"reason", reason,
		"score", g.score,
		"steps", g.Steps,
		"duration", g.ElapsedTime(),
		"highscore", g.awaitingName)
}

// SubmitName records the finished session's score under name.
func (g *Game) SubmitName(name string) error {
	if !g.awaitingName || g.highscores == nil {
		return ErrNoPendingScore
	}
	g.awaitingName = false

	idx, err := g.highscores.Insert(name, g.score)
	if err != nil {
		logger.Log.Errorw("saving highscores failed", "session", g.id, "error", err)
		return err
	}
	logger.Log.Infow("highscore recorded",
		"session", g.id,
		"name", manager.CleanName(name),
		"score", g.score,
		"rank", idx+1)
	return nil
}

// SetFastFood toggles fast food mode. It only takes effect between sessions.
func (g *Game) SetFastFood(enabled bool) bool {
	if g.phase == Running || g.phase == Paused {
		return false
	}
	g.foodMgr.SetFastFood(enabled)
	return true
}

func (g *Game) FastFood() bool { return g.foodMgr.FastFood() }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Score() int { return g.score }

func (g *Game) SessionID() string { return g.id }

func (g *Game) EndReason() EndReason { return g.endReason }

func (g *Game) AwaitingName() bool { return g.awaitingName }

func (g *Game) Interval() time.Duration { return g.clock.Interval() }

func (g *Game) TargetLength() int {
	if g.snake == nil {
		return 0
	}
	return g.snake.TargetLength
}

// Direction is the heading the next tick will use.
func (g *Game) Direction() types.Direction {
	if g.snake == nil {
		return types.Up
	}
	return g.snake.Direction
}

// Segments returns a copy of the snake, tail first.
func (g *Game) Segments() []types.Segment {
	if g.snake == nil {
		return nil
	}
	out := make([]types.Segment, len(g.snake.Body))
	copy(out, g.snake.Body)
	return out
}

// Food returns the current food item, if any.
func (g *Game) Food() (types.Food, bool) {
	if g.food == nil {
		return types.Food{}, false
	}
	return *g.food, true
}

// Highscores returns the ranked list.
func (g *Game) Highscores() []manager.HighscoreEntry {
	if g.highscores == nil {
		return nil
	}
	return g.highscores.Entries()
}

// ElapsedTime returns how long the current (or last) session lasted.
func (g *Game) ElapsedTime() time.Duration {
	if g.StartTime.IsZero() {
		return 0
	}
	if !g.EndTime.IsZero() {
		return g.EndTime.Sub(g.StartTime)
	}
	return time.Since(g.StartTime)
}
