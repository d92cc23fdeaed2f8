package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// removeIf удаляет элементы на месте, сохраняя порядок остальных.
func removeIf[T any](items []*T, drop func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// addExplosion создаёт взрыв в точке. Радиус стартует с нуля.
func addExplosion(w *entity.World, d *event.Dispatcher, kind component.ExplosionKind, pos component.Position) *component.Explosion {
	e := &component.Explosion{
		ID:       w.NewEntity(),
		Kind:     kind,
		Position: pos,
	}
	switch kind {
	case component.Impact:
		e.MaxRadius = config.ImpactRadiusMax
		e.MaxLife = config.ImpactDuration
	default:
		e.MaxRadius = config.ExplosionRadiusMax
		e.MaxLife = config.ExplosionDuration
	}
	w.Explosions = append(w.Explosions, e)

	evType := event.MissileDetonated
	if kind == component.Impact {
		evType = event.RocketImpact
	}
	d.Dispatch(event.Event{Type: evType, Data: event.ExplosionData{ID: e.ID, Kind: kind, Position: pos}})
	return e
}
