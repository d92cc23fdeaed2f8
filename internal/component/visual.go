package component

import "go-missile-defense/internal/types"

// ExplosionKind различает подрыв перехватчика и попадание вражеской ракеты.
type ExplosionKind int

const (
	Detonation ExplosionKind = iota
	Impact
)

// Explosion - взрыв, радиус растёт до половины жизни и затем спадает до нуля.
// Ракеты, попавшие внутрь текущего радиуса, уничтожаются.
type Explosion struct {
	ID        types.EntityID
	Kind      ExplosionKind
	Position  Position
	Radius    float64
	MaxRadius float64
	Life      int // прошедших шагов
	MaxLife   int
}
