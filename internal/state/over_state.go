package state

import (
	"fmt"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameOverState - партия закончена победой или поражением.
type GameOverState struct {
	sm     *StateMachine
	host   *Host
	replay *ui.Button
	menu   *ui.Button
}

func NewGameOverState(sm *StateMachine, host *Host) *GameOverState {
	return &GameOverState{
		sm:     sm,
		host:   host,
		replay: ui.NewButton(config.GameWidth/2, config.GameHeight/2+20, 180, 36, "PLAY AGAIN"),
		menu:   ui.NewButton(config.GameWidth/2, config.GameHeight/2+70, 180, 36, "MENU"),
	}
}

func (s *GameOverState) Enter() {
	snap := s.host.Game.Snapshot()
	s.host.Logger.Info("run finished",
		zap.String("run_id", snap.RunID.String()),
		zap.Stringer("status", snap.Status),
		zap.Int("score", snap.Score),
		zap.Int("steps", snap.Step),
		zap.String("fingerprint", fmt.Sprintf("%016x", snap.Fingerprint())),
	)
}

func (s *GameOverState) Update(deltaTime float64) {
	in := s.host.Input
	game := s.host.Game
	switch {
	case in.Confirm || s.replay.IsClicked(in):
		if s.host.apply("replay", game.Replay) {
			s.sm.SetState(NewGameState(s.sm, s.host))
		}
	case in.Back || s.menu.IsClicked(in):
		if s.host.apply("returnToStart", game.ReturnToStart) {
			s.sm.SetState(NewMenuState(s.sm, s.host))
		}
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	r := s.host.Renderer
	snap := s.host.Game.Snapshot()
	r.DrawWorld(snap)

	title, clr := "GAME OVER", config.LostColor
	if snap.Status == component.StatusWon {
		title, clr = "YOU WIN", config.WonColor
	}
	r.DrawOverlay(title, clr, fmt.Sprintf("Score %d", snap.Score))

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	s.replay.Draw(r.Field(), r.Face(), hovered(s.replay, w, h))
	s.menu.Draw(r.Field(), r.Face(), hovered(s.menu, w, h))
	r.Present(screen)
}

func (s *GameOverState) Exit() {}
