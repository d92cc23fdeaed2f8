package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// CollisionSystem обрабатывает попадания ракет и подрывы перехватчиков.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CollisionSystem) Update() {
	s.world.Rockets = removeIf(s.world.Rockets, func(r *component.Rocket) bool {
		if r.Position.DistanceTo(r.Target) < config.RocketHitRange {
			s.impact(r)
			return true
		}
		if r.Position.Y >= config.GameHeight {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.RocketLost,
				Data: event.RocketData{ID: r.ID, Position: r.Position, Target: r.Target},
			})
			return true
		}
		return false
	})

	s.world.Missiles = removeIf(s.world.Missiles, func(m *component.Missile) bool {
		if m.Progress < 1 {
			return false
		}
		addExplosion(s.world, s.eventDispatcher, component.Detonation, m.Target)
		return true
	})
}

// impact разрушает всё наземное в квадрате вокруг точки попадания.
func (s *CollisionSystem) impact(r *component.Rocket) {
	addExplosion(s.world, s.eventDispatcher, component.Impact, r.Position)

	for _, c := range s.world.Cities {
		if c.Active && c.Position.WithinBox(r.Position, config.CityHitRange) {
			c.Active = false
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.CityDestroyed,
				Data: event.GroundData{ID: c.ID, Position: c.Position},
			})
		}
	}
	for _, t := range s.world.Turrets {
		if t.Active && t.Position.WithinBox(r.Position, config.TurretHitRange) {
			t.Active = false
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TurretDestroyed,
				Data: event.GroundData{ID: t.ID, Position: t.Position},
			})
		}
	}
}
