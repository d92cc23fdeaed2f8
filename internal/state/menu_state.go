// internal/state/menu_state.go
package state

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState - стартовый экран, партия ещё не начата.
type MenuState struct {
	sm    *StateMachine
	host  *Host
	start *ui.Button
}

func NewMenuState(sm *StateMachine, host *Host) *MenuState {
	return &MenuState{
		sm:    sm,
		host:  host,
		start: ui.NewButton(config.GameWidth/2, config.GameHeight/2+40, 180, 36, "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	in := m.host.Input
	if in.Confirm || m.start.IsClicked(in) {
		if m.host.apply("start", m.host.Game.Start) {
			m.sm.SetState(NewGameState(m.sm, m.host))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	r := m.host.Renderer
	r.DrawWorld(m.host.Game.Snapshot())
	r.DrawOverlay("MISSILE DEFENSE", config.TextLightColor,
		"Click to launch interceptors from the nearest turret.",
		"Protect the cities. Reach 1000 points to win.",
	)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m.start.Draw(r.Field(), r.Face(), hovered(m.start, w, h))
	r.Present(screen)
}

func (m *MenuState) Exit() {}
