// Package config holds the tunables of the game: field geometry, scoring,
// randomizer, gravity speed, timer rate, debounce timing and display layout.
package config

import (
	"errors"
	"fmt"

	"lcdtris/input"
	"lcdtris/tetris"
)

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Board   BoardConfig   `yaml:"board"`
	Game    GameConfig    `yaml:"game"`
	Speed   SpeedConfig   `yaml:"speed"`
	Timer   TimerConfig   `yaml:"timer"`
	Input   InputConfig   `yaml:"input"`
}

// DisplayConfig describes the LCD in pixels.
type DisplayConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BlockSize int `yaml:"block_size"`
	HUDHeight int `yaml:"hud_height"` // rows of pixels above the field for the score label
}

// BoardConfig overrides the field size. Zero derives it from the display.
type BoardConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	SpawnRow int `yaml:"spawn_row"`
}

// GameConfig holds scoring and randomizer settings.
type GameConfig struct {
	LineBonus     int    `yaml:"line_bonus"`
	Randomizer    string `yaml:"randomizer"` // "simple" or "bag"
	BagCopies     int    `yaml:"bag_copies"`
	Seed          uint32 `yaml:"seed"` // 0 seeds from the entropy source at boot
	ReseedOnReset bool   `yaml:"reseed_on_reset"`
}

// SpeedConfig is the gravity curve in timer ticks.
type SpeedConfig struct {
	Base       int   `yaml:"base"`
	Min        int   `yaml:"min"`
	Thresholds []int `yaml:"thresholds"`
}

// TimerConfig sets the periodic tick rate.
type TimerConfig struct {
	Hz int `yaml:"hz"`
}

// InputConfig sets the debounce timing.
type InputConfig struct {
	SettleMs    int `yaml:"settle_ms"`
	LongPressMs int `yaml:"long_press_ms"`
}

// Default returns the configuration of the stock board: a 128x160 panel, 8px
// blocks under a 16px score line, and a 256 Hz timer so the base gravity
// interval of 32 ticks gives the historical 8 steps per second.
func Default() Config {
	const lineBonus = 50
	curve := tetris.SpeedCurveFor(lineBonus)
	return Config{
		Display: DisplayConfig{
			Width:     128,
			Height:    160,
			BlockSize: 8,
			HUDHeight: 16,
		},
		Board: BoardConfig{
			SpawnRow: tetris.DefaultSpawnRow,
		},
		Game: GameConfig{
			LineBonus:  lineBonus,
			Randomizer: tetris.ModeBag.String(),
			BagCopies:  2,
		},
		Speed: SpeedConfig{
			Base:       curve.Base,
			Min:        curve.Min,
			Thresholds: append([]int(nil), curve.Thresholds...),
		},
		Timer: TimerConfig{Hz: 256},
		Input: InputConfig{
			SettleMs:    50,
			LongPressMs: 3000,
		},
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, d.Width, d.Height)
	}
	if d.BlockSize <= 0 {
		return fmt.Errorf("%w: display block_size %d must be > 0", ErrInvalid, d.BlockSize)
	}
	if d.HUDHeight < 0 || d.HUDHeight >= d.Height {
		return fmt.Errorf("%w: display hud_height %d outside [0,%d)", ErrInvalid, d.HUDHeight, d.Height)
	}
	if c.Board.Cols < 0 || c.Board.Rows < 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Cols, c.Board.Rows)
	}
	cols, rows := c.Geometry()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: field %dx%d does not fit the display", ErrInvalid, cols, rows)
	}
	if cols*d.BlockSize > d.Width || rows*d.BlockSize > d.Height-d.HUDHeight {
		return fmt.Errorf("%w: field %dx%d of %dpx blocks exceeds the display", ErrInvalid, cols, rows, d.BlockSize)
	}
	cat := tetris.DefaultCatalog()
	if minCols, minRows := cat.MinCols(), cat.MinRows(); cols < minCols || rows < minRows {
		return fmt.Errorf("%w: field %dx%d cannot hold the pieces, need at least %dx%d", ErrInvalid, cols, rows, minCols, minRows)
	}
	if maxRow := cat.MaxSpawnRow(rows); c.Board.SpawnRow > maxRow {
		return fmt.Errorf("%w: board spawn_row %d must be <= %d", ErrInvalid, c.Board.SpawnRow, maxRow)
	}
	if c.Game.LineBonus < 0 {
		return fmt.Errorf("%w: game line_bonus %d is negative", ErrInvalid, c.Game.LineBonus)
	}
	if _, err := tetris.ParseMode(c.Game.Randomizer); err != nil {
		return fmt.Errorf("%w: game randomizer: %v", ErrInvalid, err)
	}
	if c.Game.BagCopies < 1 {
		return fmt.Errorf("%w: game bag_copies %d must be >= 1", ErrInvalid, c.Game.BagCopies)
	}
	if c.Speed.Base <= 0 || c.Speed.Min <= 0 || c.Speed.Min > c.Speed.Base {
		return fmt.Errorf("%w: speed base %d min %d", ErrInvalid, c.Speed.Base, c.Speed.Min)
	}
	for i := 1; i < len(c.Speed.Thresholds); i++ {
		if c.Speed.Thresholds[i] <= c.Speed.Thresholds[i-1] {
			return fmt.Errorf("%w: speed thresholds must increase: %v", ErrInvalid, c.Speed.Thresholds)
		}
	}
	if c.Timer.Hz <= 0 {
		return fmt.Errorf("%w: timer hz %d must be > 0", ErrInvalid, c.Timer.Hz)
	}
	if c.Input.SettleMs <= 0 || c.Input.LongPressMs <= c.Input.SettleMs {
		return fmt.Errorf("%w: input settle_ms %d long_press_ms %d", ErrInvalid, c.Input.SettleMs, c.Input.LongPressMs)
	}
	return nil
}

// Geometry returns the field size in cells. Explicit board sizes win over
// the size derived from the display.
func (c Config) Geometry() (cols, rows int) {
	cols, rows = c.Board.Cols, c.Board.Rows
	if c.Display.BlockSize <= 0 {
		return cols, rows
	}
	if cols == 0 {
		cols = c.Display.Width / c.Display.BlockSize
	}
	if rows == 0 {
		rows = (c.Display.Height - c.Display.HUDHeight) / c.Display.BlockSize
	}
	return cols, rows
}

// EngineOptions builds the engine options. seed replaces Game.Seed when the
// latter is zero; entropy feeds reseeding on reset.
func (c Config) EngineOptions(seed uint32, entropy func() uint32) tetris.Options {
	cols, rows := c.Geometry()
	mode, err := tetris.ParseMode(c.Game.Randomizer)
	if err != nil {
		mode = tetris.ModeBag
	}
	if c.Game.Seed != 0 {
		seed = c.Game.Seed
	}
	return tetris.Options{
		Cols:      cols,
		Rows:      rows,
		LineBonus: c.Game.LineBonus,
		Speed: tetris.SpeedCurve{
			Base:       c.Speed.Base,
			Min:        c.Speed.Min,
			Thresholds: c.Speed.Thresholds,
		},
		Mode:          mode,
		BagCopies:     c.Game.BagCopies,
		Seed:          seed,
		SpawnRow:      c.Board.SpawnRow,
		ReseedOnReset: c.Game.ReseedOnReset,
		Entropy:       entropy,
	}
}

// DebounceConfig converts the millisecond timings to timer ticks.
func (c Config) DebounceConfig() input.Config {
	return input.Config{
		SettleTicks:    input.TicksFor(c.Input.SettleMs, c.Timer.Hz),
		LongPressTicks: input.TicksFor(c.Input.LongPressMs, c.Timer.Hz),
	}
}
