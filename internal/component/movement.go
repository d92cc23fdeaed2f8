// component/movement.go
package component

import "math"

// Position - позиция в логических координатах поля
type Position struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// WithinBox проверяет, что точка ближе чем r по каждой оси отдельно.
func (p Position) WithinBox(o Position, r float64) bool {
	return math.Abs(o.X-p.X) < r && math.Abs(o.Y-p.Y) < r
}
