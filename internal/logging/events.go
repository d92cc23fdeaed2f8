package logging

import (
	"go-missile-defense/internal/event"

	"go.uber.org/zap"
)

// EventLogger пишет события симуляции в лог. Смена статуса - Info,
// остальное - Debug, чтобы в обычном режиме лог не забивался.
type EventLogger struct {
	logger *zap.Logger
}

func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.StatusData:
		l.logger.Info("status changed",
			zap.Stringer("from", data.From),
			zap.Stringer("to", data.To),
			zap.Int("score", data.Score),
		)
	case event.KillData:
		l.logger.Debug(string(e.Type),
			zap.Uint64("rocket", uint64(data.RocketID)),
			zap.Uint64("explosion", uint64(data.ExplosionID)),
			zap.Int("score", data.Score),
		)
	case event.MissileData:
		l.logger.Debug(string(e.Type),
			zap.Uint64("missile", uint64(data.ID)),
			zap.Uint64("turret", uint64(data.TurretID)),
			zap.Float64("x", data.Target.X),
			zap.Float64("y", data.Target.Y),
			zap.Int("ammo_left", data.AmmoLeft),
		)
	case event.RejectData:
		l.logger.Debug(string(e.Type), zap.String("reason", string(data.Reason)))
	case event.GroundData:
		l.logger.Info(string(e.Type),
			zap.Uint64("id", uint64(data.ID)),
			zap.Float64("x", data.Position.X),
		)
	default:
		if ce := l.logger.Check(zap.DebugLevel, string(e.Type)); ce != nil {
			ce.Write(zap.Any("data", e.Data))
		}
	}
}
