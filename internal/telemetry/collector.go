// Package telemetry собирает статистику партий: сколько ракет сбито,
// сколько выстрелов потрачено, что потеряно на земле.
package telemetry

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/event"
)

// RunRecord - итог одной партии, одна строка CSV.
type RunRecord struct {
	RunID           string  `csv:"run_id"`
	Seed            int64   `csv:"seed"`
	Status          string  `csv:"status"`
	Score           int     `csv:"score"`
	Steps           int     `csv:"steps"`
	RocketsSpawned  int     `csv:"rockets_spawned"`
	RocketsKilled   int     `csv:"rockets_killed"`
	RocketsImpacted int     `csv:"rockets_impacted"`
	RocketsLost     int     `csv:"rockets_lost"`
	MissilesFired   int     `csv:"missiles_fired"`
	FiresRejected   int     `csv:"fires_rejected"`
	CitiesLost      int     `csv:"cities_lost"`
	TurretsLost     int     `csv:"turrets_lost"`
	Accuracy        float64 `csv:"accuracy"` // сбито на один выстрел
	Fingerprint     string  `csv:"fingerprint"`
}

// Collector считает события одной партии. Подписывается через SubscribeAll.
type Collector struct {
	rec RunRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.RocketSpawned:
		c.rec.RocketsSpawned++
	case event.RocketDestroyed:
		c.rec.RocketsKilled++
	case event.RocketImpact:
		c.rec.RocketsImpacted++
	case event.RocketLost:
		c.rec.RocketsLost++
	case event.MissileFired:
		c.rec.MissilesFired++
	case event.FireRejected:
		c.rec.FiresRejected++
	case event.CityDestroyed:
		c.rec.CitiesLost++
	case event.TurretDestroyed:
		c.rec.TurretsLost++
	case event.StatusChanged:
		data := e.Data.(event.StatusData)
		if data.To == component.StatusPlaying && data.From != component.StatusPaused {
			// Новая партия, старые счётчики больше не нужны.
			c.rec = RunRecord{}
		}
		c.rec.Status = data.To.String()
		c.rec.Score = data.Score
	}
}

// Record возвращает итог. Поля, которых нет в событиях, заполняет вызывающий.
func (c *Collector) Record() RunRecord {
	rec := c.rec
	if rec.MissilesFired > 0 {
		rec.Accuracy = float64(rec.RocketsKilled) / float64(rec.MissilesFired)
	}
	return rec
}
