package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// playingWorld - свежая партия в состоянии PLAYING с журналом событий.
func playingWorld() (*entity.World, *event.Dispatcher, *eventLog) {
	w := entity.NewWorld()
	w.Reset()
	w.Status = component.StatusPlaying
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return w, d, log
}

func addRocket(w *entity.World, pos, target component.Position, speed, angle float64) *component.Rocket {
	r := &component.Rocket{ID: w.NewEntity(), Position: pos, Target: target, Speed: speed, Angle: angle}
	w.Rockets = append(w.Rockets, r)
	return r
}

func addExplosionAt(w *entity.World, pos component.Position, life int) *component.Explosion {
	e := &component.Explosion{
		ID:        w.NewEntity(),
		Kind:      component.Detonation,
		Position:  pos,
		MaxRadius: 46,
		MaxLife:   60,
		Life:      life,
	}
	w.Explosions = append(w.Explosions, e)
	return e
}
