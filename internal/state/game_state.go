// internal/state/game_state.go
package state

import (
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState - идёт партия: клики превращаются в выстрелы, каждый кадр - шаг симуляции.
type GameState struct {
	sm    *StateMachine
	host  *Host
	pause *ui.Button
}

func NewGameState(sm *StateMachine, host *Host) *GameState {
	return &GameState{
		sm:    sm,
		host:  host,
		pause: ui.NewButton(765, 15, 50, 20, "II"),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	in := g.host.Input
	game := g.host.Game

	// Клик по кнопке паузы не должен стать выстрелом.
	if in.Pause || g.pause.IsClicked(in) {
		if g.host.apply("pause", game.Pause) {
			g.sm.SetState(NewPauseState(g.sm, g.host, g))
		}
		return
	}

	if in.Click {
		game.Fire(in.X, in.Y)
	}
	game.Step(g.host.Now())

	if game.Status().Terminal() {
		g.sm.SetState(NewGameOverState(g.sm, g.host))
	}
}

func (g *GameState) drawField(screen *ebiten.Image) {
	r := g.host.Renderer
	snap := g.host.Game.Snapshot()
	r.DrawWorld(snap)
	r.DrawHUD(snap)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.pause.Draw(r.Field(), r.Face(), hovered(g.pause, w, h))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.drawField(screen)
	g.host.Renderer.Present(screen)
}

func (g *GameState) Exit() {}
