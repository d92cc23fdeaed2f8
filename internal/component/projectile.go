// internal/component/projectile.go
package component

import "go-missile-defense/internal/types"

// Missile - ракета-перехватчик игрока, летит по прямой к выбранной точке.
type Missile struct {
	ID       types.EntityID
	Position Position
	Start    Position
	Target   Position
	Distance float64 // от Start до Target, фиксируется при выстреле
	Progress float64 // доля пройденного пути, 0..1
	Steps    int     // сколько шагов уже в полёте
	TurretID types.EntityID
}
