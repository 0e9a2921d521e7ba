package mines

import (
	"fmt"
	"math"
	"strings"
)

const MaxSide = 256

type Difficulty struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MineDensity float64 `json:"mine_density"`
}

var (
	Easy   = Difficulty{Key: "easy", Name: "简单", Width: 8, Height: 8, MineDensity: 0.1}
	Medium = Difficulty{Key: "medium", Name: "中等", Width: 10, Height: 10, MineDensity: 0.15}
	Hard   = Difficulty{Key: "hard", Name: "困难", Width: 12, Height: 12, MineDensity: 0.2}
	Expert = Difficulty{Key: "expert", Name: "专家", Width: 16, Height: 16, MineDensity: 0.25}
)

// Difficulties is the preset catalog, easiest first.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

// Default is used when a game is created without explicit parameters.
var Default = Difficulty{Key: "default", Width: 10, Height: 10, MineDensity: 0.15}

// DifficultyByName looks a preset up by key (case-insensitive) or by its
// display name.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Key, name) || d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Custom derives the density from an exact mine count.
func Custom(width, height, mineCount int) (Difficulty, error) {
	if err := validateSize(width, height); err != nil {
		return Difficulty{}, err
	}
	if mineCount < 0 || mineCount >= width*height {
		return Difficulty{}, fmt.Errorf(
			"%w: %d on a %dx%d board", ErrInvalidMineCount, mineCount, width, height,
		)
	}
	return Difficulty{
		Key:         "custom",
		Width:       width,
		Height:      height,
		MineDensity: float64(mineCount) / float64(width*height),
	}, nil
}

func validateSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxSide || height > MaxSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func (d Difficulty) Validate() error {
	if err := validateSize(d.Width, d.Height); err != nil {
		return err
	}
	if math.IsNaN(d.MineDensity) || d.MineDensity < 0 || d.MineDensity >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, d.MineDensity)
	}
	return nil
}

// MineCount is floor(width*height*density). The epsilon keeps densities
// derived from an exact count (see [Custom]) from rounding down by one.
func (d Difficulty) MineCount() int {
	return int(math.Floor(float64(d.Width*d.Height)*d.MineDensity + 1e-9))
}

// Capacity is the largest number of mines that fits whatever cell is opened
// first: every cell outside the biggest possible safe area.
func (d Difficulty) Capacity() int {
	return d.Width*d.Height - min(d.Width, 3)*min(d.Height, 3)
}

// PlacedMines is how many mines a game with d lays on the first open.
func (d Difficulty) PlacedMines() int {
	return min(d.MineCount(), d.Capacity())
}

func (d Difficulty) Unpack() (w int, h int, density float64) {
	return d.Width, d.Height, d.MineDensity
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%d:%d:%g", d.Width, d.Height, d.MineDensity)
}

// ParseDifficulty accepts either a preset key/name or the "w:h:density" form
// produced by [Difficulty.String].
func ParseDifficulty(s string) (Difficulty, error) {
	if d, ok := DifficultyByName(s); ok {
		return d, nil
	}
	var d Difficulty
	n, err := fmt.Sscanf(
		strings.ReplaceAll(s, ":", " "), "%d %d %g", &d.Width, &d.Height, &d.MineDensity,
	)
	if n != 3 || err != nil {
		return Difficulty{}, fmt.Errorf(
			`invalid difficulty (s = "%s", n = %d, err = %v)`, s, n, err,
		)
	}
	d.Key = "custom"
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}
