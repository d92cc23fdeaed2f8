package system

import (
	"math"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// TargetingSystem отвечает на выстрел игрока ближайшей по горизонтали башней.
type TargetingSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewTargetingSystem(world *entity.World, eventDispatcher *event.Dispatcher) *TargetingSystem {
	return &TargetingSystem{world: world, eventDispatcher: eventDispatcher}
}

// NearestTurret возвращает живую башню со снарядами, ближайшую к x по горизонтали.
// При равенстве побеждает первая в списке.
func NearestTurret(turrets []*component.Turret, x float64) *component.Turret {
	var best *component.Turret
	bestDist := math.Inf(1)
	for _, t := range turrets {
		if !t.CanFire() {
			continue
		}
		if d := math.Abs(t.Position.X - x); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// Fire выпускает перехватчик в точку (x, y). Вне игры или без подходящей
// башни ничего не меняет и возвращает false.
func (s *TargetingSystem) Fire(x, y float64) (*component.Missile, bool) {
	target := component.Position{X: x, Y: y}
	if s.world.Status != component.StatusPlaying {
		s.reject(target, event.RejectNotPlaying)
		return nil, false
	}

	turret := NearestTurret(s.world.Turrets, x)
	if turret == nil {
		s.reject(target, event.RejectNoTurret)
		return nil, false
	}

	turret.Ammo--
	missile := &component.Missile{
		ID:       s.world.NewEntity(),
		Position: turret.Position,
		Start:    turret.Position,
		Target:   target,
		Distance: turret.Position.DistanceTo(target),
		TurretID: turret.ID,
	}
	s.world.Missiles = append(s.world.Missiles, missile)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MissileFired,
		Data: event.MissileData{ID: missile.ID, TurretID: turret.ID, Target: target, AmmoLeft: turret.Ammo},
	})
	return missile, true
}

func (s *TargetingSystem) reject(target component.Position, reason event.RejectReason) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.FireRejected,
		Data: event.RejectData{Target: target, Reason: reason},
	})
}
