// internal/app/game.go
package app

import (
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/utils"
)

// Game holds the simulation state and runs one full step per frame.
// Не потокобезопасен: все вызовы должны идти из одного цикла хоста.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher

	SpawnSystem     *system.SpawnSystem
	TargetingSystem *system.TargetingSystem
	PhysicsSystem   *system.PhysicsSystem
	CollisionSystem *system.CollisionSystem
	ExplosionSystem *system.ExplosionSystem
	StateSystem     *system.StateSystem
}

// NewGame initializes a new game instance in the START state.
func NewGame(rng utils.Random) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}

	world := entity.NewWorld()
	world.Reset()
	dispatcher := event.NewDispatcher()
	return &Game{
		World:           world,
		EventDispatcher: dispatcher,
		SpawnSystem:     system.NewSpawnSystem(world, rng, dispatcher),
		TargetingSystem: system.NewTargetingSystem(world, dispatcher),
		PhysicsSystem:   system.NewPhysicsSystem(world),
		CollisionSystem: system.NewCollisionSystem(world, dispatcher),
		ExplosionSystem: system.NewExplosionSystem(world, dispatcher),
		StateSystem:     system.NewStateSystem(world, dispatcher),
	}
}

// Step продвигает симуляцию на один шаг. now - монотонное время хоста,
// по нему считается интервал появления ракет. Вне PLAYING ничего не делает.
func (g *Game) Step(now time.Duration) bool {
	if g.World.Status != component.StatusPlaying {
		return false
	}

	g.SpawnSystem.Update(now)
	g.PhysicsSystem.Update()
	g.CollisionSystem.Update()
	g.ExplosionSystem.Update()
	g.World.Step++
	g.StateSystem.Check()
	return true
}

// Fire - выстрел игрока в логические координаты поля.
func (g *Game) Fire(x, y float64) bool {
	_, ok := g.TargetingSystem.Fire(x, y)
	return ok
}

func (g *Game) Start() error         { return g.StateSystem.Apply(system.CmdStart) }
func (g *Game) Pause() error         { return g.StateSystem.Apply(system.CmdPause) }
func (g *Game) Resume() error        { return g.StateSystem.Apply(system.CmdResume) }
func (g *Game) ReturnToStart() error { return g.StateSystem.Apply(system.CmdReturnToStart) }
func (g *Game) Replay() error        { return g.StateSystem.Apply(system.CmdReplay) }

// TogglePause ставит на паузу или снимает с неё, в зависимости от состояния.
func (g *Game) TogglePause() error {
	if g.World.Status == component.StatusPaused {
		return g.Resume()
	}
	return g.Pause()
}

func (g *Game) Status() component.Status {
	return g.World.Status
}

func (g *Game) Score() int {
	return g.World.Score
}
