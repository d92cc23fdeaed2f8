package state

import (
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/render"
	"go-missile-defense/internal/ui"

	"go.uber.org/zap"
)

// Host - общее окружение экранов. Input заполняется хостом перед каждым Update.
type Host struct {
	Game     *app.Game
	Renderer *render.Renderer
	Input    ui.Input
	Now      func() time.Duration
	Logger   *zap.Logger
}

// apply выполняет команду игры. Недопустимая команда только логируется.
func (h *Host) apply(name string, cmd func() error) bool {
	if err := cmd(); err != nil {
		h.Logger.Warn("command rejected", zap.String("command", name), zap.Error(err))
		return false
	}
	return true
}

// hovered - находится ли курсор над кнопкой.
func hovered(b *ui.Button, viewW, viewH int) bool {
	x, y, ok := ui.Cursor(viewW, viewH)
	return ok && b.Contains(x, y)
}
