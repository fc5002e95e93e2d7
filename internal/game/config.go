package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the fixed geometry and pacing of a game.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	HeadSize     int // side of one segment, and the grid cell size
	Margin       int // gap between the window edge and the playable area
	PortalWidth  int
	PortalCells  int // portal height in cells

	StartVelocity int // movement ticks per second
	VelocityStep  int
	MinVelocity   int

	FoodPeriod    time.Duration
	QueueCapacity int
}

// DefaultConfig returns the 800x800 layout the game ships with.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   800,
		ScreenHeight:  800,
		HeadSize:      20,
		Margin:        10,
		PortalWidth:   10,
		PortalCells:   6,
		StartVelocity: 10,
		VelocityStep:  5,
		MinVelocity:   5,
		FoodPeriod:    time.Second,
		QueueCapacity: 64,
	}
}

// Validate reports geometry or pacing that the rules cannot work with.
func (c Config) Validate() error {
	if c.HeadSize <= 0 {
		return fmt.Errorf("head size must be > 0, got %d", c.HeadSize)
	}
	w, h := c.ScreenWidth-2*c.Margin, c.ScreenHeight-2*c.Margin
	if w/c.HeadSize < 3 || h/c.HeadSize < 3 {
		return fmt.Errorf("playable area %dx%d is smaller than 3x3 cells of %d", w, h, c.HeadSize)
	}
	if c.MinVelocity <= 0 || c.StartVelocity < c.MinVelocity {
		return fmt.Errorf("velocity start=%d min=%d out of range", c.StartVelocity, c.MinVelocity)
	}
	if c.VelocityStep <= 0 {
		return errors.New("velocity step must be > 0")
	}
	if c.FoodPeriod <= 0 {
		return errors.New("food period must be > 0")
	}
	if c.QueueCapacity <= 0 {
		return errors.New("queue capacity must be > 0")
	}
	return nil
}

// Arena derives the playable area and portal geometry from the config.
func (c Config) Arena() Arena {
	return Arena{
		Width:        c.ScreenWidth - 2*c.Margin,
		Height:       c.ScreenHeight - 2*c.Margin,
		Cell:         c.HeadSize,
		PortalHeight: c.HeadSize * c.PortalCells,
	}
}

// movementPeriod truncates to whole milliseconds: 15 ticks/s gives 66ms.
func movementPeriod(velocity int) time.Duration {
	return time.Duration(1000/velocity) * time.Millisecond
}
