// Package headless гоняет партии без окна: автопилот вместо игрока
// и пачка партий параллельно, для прогонов баланса.
package headless

import (
	"math"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
)

// ReactionSteps - сколько шагов автопилот ждёт между выстрелами.
const ReactionSteps = 12

// Autopilot стреляет по ракетам с упреждением, по одной цели за раз.
// Каждую ракету обстреливает не больше одного раза.
type Autopilot struct {
	game     *app.Game
	aimed    map[types.EntityID]bool
	cooldown int
}

func NewAutopilot(game *app.Game) *Autopilot {
	return &Autopilot{
		game:  game,
		aimed: make(map[types.EntityID]bool),
	}
}

// Act вызывается перед каждым шагом. Возвращает true, если был выстрел.
func (a *Autopilot) Act() bool {
	w := a.game.World
	if w.Status != component.StatusPlaying {
		return false
	}

	alive := make(map[types.EntityID]bool, len(w.Rockets))
	for _, r := range w.Rockets {
		alive[r.ID] = true
	}
	for id := range a.aimed {
		if !alive[id] {
			delete(a.aimed, id)
		}
	}

	if a.cooldown > 0 {
		a.cooldown--
		return false
	}

	// Самая низкая ракета опаснее всех.
	var target *component.Rocket
	for _, r := range w.Rockets {
		if a.aimed[r.ID] {
			continue
		}
		if target == nil || r.Position.Y > target.Position.Y {
			target = r
		}
	}
	if target == nil {
		return false
	}

	turret := system.NearestTurret(w.Turrets, target.Position.X)
	if turret == nil {
		return false
	}

	aim := Intercept(turret.Position, *target)
	a.aimed[target.ID] = true
	a.cooldown = ReactionSteps
	return a.game.Fire(aim.X, aim.Y)
}

// Intercept ищет точку, где ракета окажется к прилёту перехватчика из from.
// Несколько итераций: время полёта зависит от самой точки.
func Intercept(from component.Position, r component.Rocket) component.Position {
	dx := math.Cos(r.Angle) * r.Speed
	dy := math.Sin(r.Angle) * r.Speed

	aim := r.Position
	for i := 0; i < 5; i++ {
		steps := from.DistanceTo(aim) / config.MissileSpeed
		aim = component.Position{
			X: r.Position.X + dx*steps,
			Y: r.Position.Y + dy*steps,
		}
	}

	aim.X = math.Max(0, math.Min(config.GameWidth, aim.X))
	aim.Y = math.Max(0, math.Min(config.GameHeight, aim.Y))
	return aim
}
