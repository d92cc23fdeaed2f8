package config

import (
	"image/color"
	"time"
)

// Игровое поле в логических координатах. Хост масштабирует его под окно.
const (
	GameWidth  = 800
	GameHeight = 600

	StepsPerSecond = 60
	MaxDeltaTime   = 0.06
)

const (
	RocketSpeedMin = 0.5
	RocketSpeedMax = 1.5
	RocketSpawnY   = -20.0
	RocketHitRange = 5.0 // ракета взрывается, когда до цели меньше этого

	MissileSpeed = 5.5 // единиц за шаг

	ExplosionRadiusMax = 46.0
	ExplosionDuration  = 60 // шагов

	ImpactRadiusMax = 20.0
	ImpactDuration  = 30

	CityHitRange   = 10.0
	TurretHitRange = 15.0

	PointsPerRocket = 20
	WinScore        = 1000
)

// Интервал появления ракет сокращается на SpawnIntervalStep за каждые
// SpawnScoreStep очков, но не ниже MinSpawnInterval.
const (
	InitialSpawnInterval = 2000 * time.Millisecond
	MinSpawnInterval     = 500 * time.Millisecond
	SpawnIntervalStep    = 100 * time.Millisecond
	SpawnScoreStep       = 100
)

// Расстановка наземных объектов.
const (
	TurretY = 550.0
	CityY   = 560.0
)

var (
	TurretXs   = []float64{60, 400, 740}
	TurretAmmo = []int{20, 40, 20}
	CityXs     = []float64{150, 225, 300, 500, 575, 650}
)

var (
	BackgroundColor  = color.RGBA{8, 10, 24, 255}
	GroundColor      = color.RGBA{52, 40, 28, 255}
	CityColor        = color.RGBA{70, 170, 230, 255}
	CityRuinColor    = color.RGBA{60, 60, 60, 255}
	TurretColor      = color.RGBA{90, 200, 90, 255}
	TurretDeadColor  = color.RGBA{80, 40, 40, 255}
	RocketColor      = color.RGBA{230, 60, 50, 255}
	RocketTrailColor = color.RGBA{230, 60, 50, 90}
	MissileColor     = color.RGBA{240, 240, 240, 255}
	CrosshairColor   = color.RGBA{240, 240, 240, 160}
	ExplosionInner   = color.RGBA{255, 240, 170, 230}
	ExplosionOuter   = color.RGBA{255, 120, 30, 160}
	ImpactColor      = color.RGBA{255, 70, 40, 200}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 150}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 240}
	WonColor         = color.RGBA{80, 220, 120, 255}
	LostColor        = color.RGBA{220, 60, 60, 255}
)
