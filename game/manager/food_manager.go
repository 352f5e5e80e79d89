package manager

import (
	"snaek/game/entity"
	"snaek/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when the snake covers every cell.
var ErrBoardFull = errors.New("no free cell left for food")

// Random picks beyond this fall back to a scan of the free cells.
const MaxFoodAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	fastFood     bool
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SetFastFood switches between apples and the fast food menu.
func (fm *FoodManager) SetFastFood(enabled bool) {
	fm.fastFood = enabled
}

func (fm *FoodManager) FastFood() bool {
	return fm.fastFood
}

// GenerateFood picks a uniformly random free cell. Rejection sampling is tried
// first; once MaxFoodAttempts are spent the free cells are enumerated and one
// of them is drawn, so a crowded board still terminates.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Food, error) {
	cols, rows := fm.grid.Cols(), fm.grid.Rows()
	if cols <= 0 || rows <= 0 {
		return types.Food{}, errors.Wrapf(ErrBoardFull, "grid %dx%d", cols, rows)
	}

	for i := 0; i < MaxFoodAttempts; i++ {
		pos := fm.grid.CellAt(fm.rng.Intn(cols), fm.rng.Intn(rows))
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
			return types.Food{Position: pos, Kind: fm.nextKind()}, nil
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells())
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := fm.grid.CellAt(col, row)
			if fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Food{}, errors.Wrapf(ErrBoardFull, "snake length %d", snake.Len())
	}
	return types.Food{Position: free[fm.rng.Intn(len(free))], Kind: fm.nextKind()}, nil
}

func (fm *FoodManager) nextKind() types.FoodKind {
	if !fm.fastFood {
		return types.Apple
	}
	return types.FastFoodKinds[fm.rng.Intn(len(types.FastFoodKinds))]
}
