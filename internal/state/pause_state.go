// internal/state/pause_state.go
package state

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную партию под затемнением. Мир не меняется.
type PauseState struct {
	sm            *StateMachine
	host          *Host
	previousState *GameState
	resume        *ui.Button
}

func NewPauseState(sm *StateMachine, host *Host, prevState *GameState) *PauseState {
	return &PauseState{
		sm:            sm,
		host:          host,
		previousState: prevState,
		resume:        ui.NewButton(config.GameWidth/2, config.GameHeight/2+20, 180, 36, "RESUME"),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	in := s.host.Input
	if in.Pause || in.Confirm || s.resume.IsClicked(in) {
		if s.host.apply("resume", s.host.Game.Resume) {
			s.sm.SetState(s.previousState)
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.drawField(screen)

	r := s.host.Renderer
	r.DrawOverlay("PAUSED", config.TextLightColor, "Press P to continue")
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	s.resume.Draw(r.Field(), r.Face(), hovered(s.resume, w, h))
	r.Present(screen)
}

func (s *PauseState) Exit() {}
