package entity

import (
	"fmt"
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/types"

	"github.com/google/uuid"
)

// World - контекст одной партии. Им владеет app.Game, системы получают его
// по указателю и меняют только в своей фазе шага.
// Коллекции - срезы в порядке добавления, чтобы обход был детерминированным.
type World struct {
	RunID  uuid.UUID
	NextID types.EntityID
	Score  int
	Status component.Status
	Step   int // шагов симуляции в текущей партии

	LastSpawn  time.Duration
	HasSpawned bool

	Rockets    []*component.Rocket
	Missiles   []*component.Missile
	Explosions []*component.Explosion
	Cities     []*component.City
	Turrets    []*component.Turret
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		Status: component.StatusStart,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset готовит новую партию: счёт с нуля, все города и башни целы.
func (w *World) Reset() {
	w.RunID = uuid.New()
	w.NextID = 1
	w.Score = 0
	w.Step = 0
	w.LastSpawn = 0
	w.HasSpawned = false
	w.Rockets = nil
	w.Missiles = nil
	w.Explosions = nil

	w.Cities = make([]*component.City, 0, len(config.CityXs))
	for _, x := range config.CityXs {
		w.Cities = append(w.Cities, &component.City{
			ID:       w.NewEntity(),
			Position: component.Position{X: x, Y: config.CityY},
			Active:   true,
		})
	}

	w.Turrets = make([]*component.Turret, 0, len(config.TurretXs))
	for i, x := range config.TurretXs {
		w.Turrets = append(w.Turrets, &component.Turret{
			ID:       w.NewEntity(),
			Slot:     i,
			Position: component.Position{X: x, Y: config.TurretY},
			Active:   true,
			Ammo:     config.TurretAmmo[i],
			MaxAmmo:  config.TurretAmmo[i],
		})
	}
}

// ActiveTargets возвращает позиции живых городов, затем живых башен.
func (w *World) ActiveTargets() []component.Position {
	targets := make([]component.Position, 0, len(w.Cities)+len(w.Turrets))
	for _, c := range w.Cities {
		if c.Active {
			targets = append(targets, c.Position)
		}
	}
	for _, t := range w.Turrets {
		if t.Active {
			targets = append(targets, t.Position)
		}
	}
	return targets
}

func (w *World) ActiveTurrets() int {
	n := 0
	for _, t := range w.Turrets {
		if t.Active {
			n++
		}
	}
	return n
}

func (w *World) ActiveCities() int {
	n := 0
	for _, c := range w.Cities {
		if c.Active {
			n++
		}
	}
	return n
}

// TotalAmmo - сумма снарядов в живых башнях.
func (w *World) TotalAmmo() int {
	n := 0
	for _, t := range w.Turrets {
		if t.Active {
			n += t.Ammo
		}
	}
	return n
}

// Validate проверяет инварианты мира и возвращает первое нарушение.
func (w *World) Validate() error {
	if w.Score < 0 {
		return fmt.Errorf("score is negative: %d", w.Score)
	}
	for _, t := range w.Turrets {
		if t.Ammo < 0 || t.Ammo > t.MaxAmmo {
			return fmt.Errorf("turret %d ammo %d out of [0, %d]", t.ID, t.Ammo, t.MaxAmmo)
		}
	}
	for _, r := range w.Rockets {
		if r.Speed < config.RocketSpeedMin || r.Speed > config.RocketSpeedMax {
			return fmt.Errorf("rocket %d speed %f out of range", r.ID, r.Speed)
		}
	}
	for _, m := range w.Missiles {
		if m.Progress < 0 || m.Progress > 1 {
			return fmt.Errorf("missile %d progress %f out of [0, 1]", m.ID, m.Progress)
		}
	}
	for _, e := range w.Explosions {
		if e.Radius < 0 || e.Radius > e.MaxRadius {
			return fmt.Errorf("explosion %d radius %f out of [0, %f]", e.ID, e.Radius, e.MaxRadius)
		}
		if e.Life < 0 || e.Life > e.MaxLife {
			return fmt.Errorf("explosion %d life %d out of [0, %d]", e.ID, e.Life, e.MaxLife)
		}
	}
	return nil
}
