package object

import (
	"time"

	"github.com/tomz197/orbit-arcade/internal/loop/config"
)

// Difficulty is the spawn policy derived from elapsed game time.
type Difficulty struct {
	BaseSpeed      float64
	SpeedVariation float64
	SpawnInterval  time.Duration
}

// DifficultyAt derives the difficulty after elapsed whole seconds of play.
func DifficultyAt(elapsed int) Difficulty {
	return Difficulty{
		BaseSpeed:      BaseSpeed(elapsed),
		SpeedVariation: SpeedVariation(elapsed),
		SpawnInterval:  SpawnInterval(elapsed),
	}
}

// SpeedRange returns the lowest and highest speed an asteroid can spawn with.
func (d Difficulty) SpeedRange() (lo, hi float64) {
	return d.BaseSpeed, d.BaseSpeed + d.SpeedVariation
}

// BaseSpeed rises from 0.012 to a ceiling of 0.027.
func BaseSpeed(elapsed int) float64 {
	t := float64(max(elapsed, 0))
	return config.BaseSpeed + min(t*config.BaseSpeedPerSecond, config.BaseSpeedMaxBonus)
}

// SpeedVariation rises from 0.008 to a ceiling of 0.015.
func SpeedVariation(elapsed int) float64 {
	t := float64(max(elapsed, 0))
	return config.SpeedVariation + min(t*config.SpeedVariationPerSecond, config.SpeedVariationMaxBonus)
}

// SpawnInterval shrinks from 1500ms to a floor of 600ms.
func SpawnInterval(elapsed int) time.Duration {
	t := time.Duration(max(elapsed, 0))
	return max(config.SpawnIntervalStart-t*config.SpawnIntervalPerSecond, config.SpawnIntervalFloor)
}
