package system

import (
	"math"
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// SpawnSystem решает, когда и куда падает следующая ракета.
type SpawnSystem struct {
	world           *entity.World
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng utils.Random, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnInterval - пауза между ракетами для данного счёта:
// минус 100 мс за каждые полные 100 очков, но не меньше 500 мс.
func SpawnInterval(score int) time.Duration {
	interval := config.InitialSpawnInterval - time.Duration(score/config.SpawnScoreStep)*config.SpawnIntervalStep
	if interval < config.MinSpawnInterval {
		return config.MinSpawnInterval
	}
	return interval
}

// Update выпускает ракету, если с прошлой прошло больше интервала.
// Первая ракета партии появляется на первом же шаге.
func (s *SpawnSystem) Update(now time.Duration) *component.Rocket {
	if s.world.HasSpawned && now-s.world.LastSpawn <= SpawnInterval(s.world.Score) {
		return nil
	}

	rocket := s.MaybeSpawn()
	if rocket == nil {
		return nil
	}
	s.world.LastSpawn = now
	s.world.HasSpawned = true
	return rocket
}

// MaybeSpawn создаёт ракету на случайную живую цель. Если целей нет, ничего не делает.
func (s *SpawnSystem) MaybeSpawn() *component.Rocket {
	targets := s.world.ActiveTargets()
	if len(targets) == 0 {
		return nil
	}

	start := component.Position{
		X: s.rng.Range(0, config.GameWidth),
		Y: config.RocketSpawnY,
	}
	target, _ := utils.Pick(s.rng, targets)

	rocket := &component.Rocket{
		ID:       s.world.NewEntity(),
		Position: start,
		Target:   target,
		Speed:    s.rng.Range(config.RocketSpeedMin, config.RocketSpeedMax),
		Angle:    math.Atan2(target.Y-start.Y, target.X-start.X),
	}
	s.world.Rockets = append(s.world.Rockets, rocket)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RocketSpawned,
		Data: event.RocketData{ID: rocket.ID, Position: start, Target: target},
	})
	return rocket
}
