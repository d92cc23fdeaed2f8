package tty

import (
	"context"
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Host - цикл терминальной версии. Game трогается только из горутины Run.
type Host struct {
	screen  tcell.Screen
	game    *app.Game
	logger  *zap.Logger
	buttons tcell.ButtonMask
	now     func() time.Duration
}

func NewHost(screen tcell.Screen, game *app.Game, logger *zap.Logger) *Host {
	started := time.Now()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		screen: screen,
		game:   game,
		logger: logger,
		now:    func() time.Duration { return time.Since(started) },
	}
}

// Run крутит шаги с частотой 60 в секунду до выхода или отмены ctx.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / config.StepsPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Экран закрыт.
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.game.Step(h.now())
			Draw(h.screen, h.game.Snapshot())
			h.screen.Show()
		}
	}
}

// HandleEvent возвращает false, когда пора выходить.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.HandleMouse(col, row, ev.Buttons())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// HandleKey: Enter - старт или новая партия, P - пауза, M - в меню, Q/Esc - выход.
func (h *Host) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		switch h.game.Status() {
		case component.StatusStart:
			h.apply("start", h.game.Start)
		case component.StatusWon, component.StatusLost:
			h.apply("replay", h.game.Replay)
		}
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case 'p', 'P', ' ':
			h.apply("togglePause", h.game.TogglePause)
		case 'm', 'M':
			h.apply("returnToStart", h.game.ReturnToStart)
		}
	}
	return true
}

// HandleMouse стреляет по нажатию левой кнопки. Терминал присылает событие
// и на удержание, поэтому реагируем только на переход из отпущенного состояния.
func (h *Host) HandleMouse(col, row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed {
		return
	}

	cols, rows := h.screen.Size()
	x, y, ok := ui.ToLogical(float64(col)+0.5, float64(row)+0.5, cols, rows)
	if !ok {
		return
	}
	h.game.Fire(x, y)
}

func (h *Host) apply(name string, cmd func() error) {
	if err := cmd(); err != nil {
		h.logger.Debug("command rejected", zap.String("command", name), zap.Error(err))
	}
}
