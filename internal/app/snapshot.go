package app

import (
	"encoding/binary"
	"math"
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/system"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Snapshot - копия мира на конец шага. Рендерер читает её и ничего не меняет.
type Snapshot struct {
	RunID         uuid.UUID
	Step          int
	Score         int
	Status        component.Status
	SpawnInterval time.Duration

	Rockets    []component.Rocket
	Missiles   []component.Missile
	Explosions []component.Explosion
	Cities     []component.City
	Turrets    []component.Turret
}

func (g *Game) Snapshot() Snapshot {
	w := g.World
	return Snapshot{
		RunID:         w.RunID,
		Step:          w.Step,
		Score:         w.Score,
		Status:        w.Status,
		SpawnInterval: system.SpawnInterval(w.Score),
		Rockets:       copyAll(w.Rockets),
		Missiles:      copyAll(w.Missiles),
		Explosions:    copyAll(w.Explosions),
		Cities:        copyAll(w.Cities),
		Turrets:       copyAll(w.Turrets),
	}
}

func copyAll[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}

// Fingerprint хэширует состояние симуляции. RunID не учитывается, поэтому
// две партии с одинаковым сидом и вводом дают одинаковый отпечаток.
func (s Snapshot) Fingerprint() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 256)

	putInt := func(v int) { buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) }
	putFloat := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }
	putPos := func(p component.Position) {
		putFloat(p.X)
		putFloat(p.Y)
	}
	putBool := func(v bool) {
		if v {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	flush := func() {
		_, _ = h.Write(buf)
		buf = buf[:0]
	}

	putInt(s.Step)
	putInt(s.Score)
	putInt(int(s.Status))
	flush()

	for _, r := range s.Rockets {
		putInt(int(r.ID))
		putPos(r.Position)
		putPos(r.Target)
		putFloat(r.Speed)
		flush()
	}
	for _, m := range s.Missiles {
		putInt(int(m.ID))
		putPos(m.Position)
		putFloat(m.Progress)
		flush()
	}
	for _, e := range s.Explosions {
		putInt(int(e.ID))
		putPos(e.Position)
		putInt(e.Life)
		flush()
	}
	for _, c := range s.Cities {
		putBool(c.Active)
	}
	for _, t := range s.Turrets {
		putBool(t.Active)
		putInt(t.Ammo)
	}
	flush()

	return h.Sum64()
}
