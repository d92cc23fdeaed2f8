package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// ExplosionSystem ведёт жизнь взрывов и сбивает ракеты внутри них.
type ExplosionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{world: world, eventDispatcher: eventDispatcher}
}

// ExplosionRadius - треугольная огибающая: 0 при life = 0, maxRadius
// в середине жизни и снова 0 при life = maxLife.
func ExplosionRadius(life, maxLife int, maxRadius float64) float64 {
	if maxLife <= 0 {
		return 0
	}
	half := float64(maxLife) / 2
	l := float64(life)
	var r float64
	if l <= half {
		r = l / half * maxRadius
	} else {
		r = (1 - (l-half)/half) * maxRadius
	}
	if r < 0 {
		return 0
	}
	return r
}

func (s *ExplosionSystem) Update() {
	for _, e := range s.world.Explosions {
		e.Life++
		e.Radius = ExplosionRadius(e.Life, e.MaxLife, e.MaxRadius)

		// Сбитая ракета сразу удаляется и следующим взрывам уже не достаётся.
		s.world.Rockets = removeIf(s.world.Rockets, func(r *component.Rocket) bool {
			if r.Position.DistanceTo(e.Position) >= e.Radius {
				return false
			}
			s.world.Score += config.PointsPerRocket
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.RocketDestroyed,
				Data: event.KillData{RocketID: r.ID, ExplosionID: e.ID, Points: config.PointsPerRocket, Score: s.world.Score},
			})
			return true
		})
	}

	s.world.Explosions = removeIf(s.world.Explosions, func(e *component.Explosion) bool {
		return e.Life >= e.MaxLife
	})
}
