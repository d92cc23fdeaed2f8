// component/tower.go
package component

import "go-missile-defense/internal/types"

type Turret struct {
	ID       types.EntityID
	Slot     int // 0 - левая, 1 - средняя, 2 - правая
	Position Position
	Active   bool // false навсегда после попадания
	Ammo     int
	MaxAmmo  int
}

// CanFire - башня жива и в ней есть снаряды.
func (t *Turret) CanFire() bool {
	return t.Active && t.Ammo > 0
}

// City - защищаемый город. Разрушенный город остаётся на поле для отрисовки.
type City struct {
	ID       types.EntityID
	Position Position
	Active   bool
}
