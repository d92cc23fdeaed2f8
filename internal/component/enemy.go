package component

import "go-missile-defense/internal/types"

// Rocket - вражеская ракета. Курс и скорость задаются при появлении и не меняются.
type Rocket struct {
	ID       types.EntityID
	Position Position
	Target   Position
	Speed    float64 // единиц за шаг
	Angle    float64 // радианы, направление от точки появления на цель
}
