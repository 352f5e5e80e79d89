package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrCorruptHighscores is returned by Load when the file exists but can't be decoded.
var ErrCorruptHighscores = errors.New("highscore file is corrupt")

// MaxNameLength bounds player names.
const MaxNameLength = 16

type HighscoreEntry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

// HighscoreManager keeps a fixed-size list sorted by descending score and
// rewrites the whole file on every insert.
type HighscoreManager struct {
	path     string
	capacity int
	entries  []HighscoreEntry
}

func NewHighscoreManager(path string, capacity int) *HighscoreManager {
	if capacity < 1 {
		capacity = 1
	}
	return &HighscoreManager{
		path:     path,
		capacity: capacity,
		entries:  make([]HighscoreEntry, 0, capacity+1),
	}
}

// Load reads the list from disk. A missing file means no scores yet. On a
// decode error the list is left empty and ErrCorruptHighscores is returned.
func (hm *HighscoreManager) Load() error {
	hm.entries = hm.entries[:0]

	data, err := os.ReadFile(hm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read highscores %s", hm.path)
	}

	var loaded []HighscoreEntry
	if err := json.Unmarshal(data, &loaded); err != nil {
		return errors.Wrapf(ErrCorruptHighscores, "%s: %v", hm.path, err)
	}

	hm.entries = Rank(loaded, hm.capacity)
	return nil
}

// Save writes the full list.
func (hm *HighscoreManager) Save() error {
	if dir := filepath.Dir(hm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create highscore directory")
		}
	}

	data, err := json.MarshalIndent(hm.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal highscores")
	}

	if err := os.WriteFile(hm.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write highscores %s", hm.path)
	}
	return nil
}

// Qualifies reports whether score earns a place on the list.
func (hm *HighscoreManager) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(hm.entries) < hm.capacity {
		return true
	}
	lowest := hm.entries[0].Score
	for _, e := range hm.entries {
		if e.Score < lowest {
			lowest = e.Score
		}
	}
	return score > lowest
}

// Insert ranks a new entry, persists the list and returns the entry's index,
// or -1 if it fell off the end.
func (hm *HighscoreManager) Insert(name string, score int) (int, error) {
	var idx int
	hm.entries, idx = InsertRanked(hm.entries, HighscoreEntry{PlayerName: CleanName(name), Score: score}, hm.capacity)
	return idx, hm.Save()
}

// Entries returns a copy of the ranked list.
func (hm *HighscoreManager) Entries() []HighscoreEntry {
	out := make([]HighscoreEntry, len(hm.entries))
	copy(out, hm.entries)
	return out
}

func (hm *HighscoreManager) Capacity() int {
	return hm.capacity
}

func (hm *HighscoreManager) Path() string {
	return hm.path
}

// Rank sorts entries by descending score, keeping file order for ties, and
// cuts the result to capacity.
func Rank(entries []HighscoreEntry, capacity int) []HighscoreEntry {
	out := make([]HighscoreEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

// InsertRanked places e right after the last entry scoring at least as much,
// then truncates to capacity. entries must already be ranked.
func InsertRanked(entries []HighscoreEntry, e HighscoreEntry, capacity int) ([]HighscoreEntry, int) {
	idx := 0
	for i, cur := range entries {
		if cur.Score >= e.Score {
			idx = i + 1
		}
	}

	out := make([]HighscoreEntry, 0, len(entries)+1)
	out = append(out, entries[:idx]...)
	out = append(out, e)
	out = append(out, entries[idx:]...)

	if len(out) > capacity {
		out = out[:capacity]
	}
	if idx >= capacity {
		idx = -1
	}
	return out, idx
}

// CleanName trims whitespace and caps the name length.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return name
}
