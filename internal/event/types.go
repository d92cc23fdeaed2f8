package event

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/types"
)

const (
	RocketSpawned    EventType = "RocketSpawned"
	RocketDestroyed  EventType = "RocketDestroyed" // сбита взрывом, начислены очки
	RocketImpact     EventType = "RocketImpact"    // долетела до цели
	RocketLost       EventType = "RocketLost"      // ушла за нижний край
	MissileFired     EventType = "MissileFired"
	FireRejected     EventType = "FireRejected"
	MissileDetonated EventType = "MissileDetonated"
	CityDestroyed    EventType = "CityDestroyed"
	TurretDestroyed  EventType = "TurretDestroyed"
	StatusChanged    EventType = "StatusChanged"
)

type RocketData struct {
	ID       types.EntityID
	Position component.Position
	Target   component.Position
}

type KillData struct {
	RocketID    types.EntityID
	ExplosionID types.EntityID
	Points      int
	Score       int
}

type MissileData struct {
	ID       types.EntityID
	TurretID types.EntityID
	Target   component.Position
	AmmoLeft int
}

// RejectReason объясняет, почему выстрел не состоялся.
type RejectReason string

const (
	RejectNotPlaying RejectReason = "not playing"
	RejectNoTurret   RejectReason = "no turret with ammo"
)

type RejectData struct {
	Target component.Position
	Reason RejectReason
}

type ExplosionData struct {
	ID       types.EntityID
	Kind     component.ExplosionKind
	Position component.Position
}

type GroundData struct {
	ID       types.EntityID
	Position component.Position
}

type StatusData struct {
	From, To component.Status
	Score    int
}
