package system

import (
	"errors"
	"fmt"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

// ErrInvalidTransition - команда не допустима в текущем состоянии.
var ErrInvalidTransition = errors.New("invalid status transition")

// Command - внешняя команда меню.
type Command string

const (
	CmdStart         Command = "start"
	CmdPause         Command = "pause"
	CmdResume        Command = "resume"
	CmdReturnToStart Command = "returnToStart"
	CmdReplay        Command = "replay"
)

// transitions - все разрешённые переходы по командам.
// В WON и LOST автоматически попадают только из PLAYING, см. Check.
var transitions = map[component.Status]map[Command]component.Status{
	component.StatusStart:   {CmdStart: component.StatusPlaying},
	component.StatusPlaying: {CmdPause: component.StatusPaused},
	component.StatusPaused:  {CmdResume: component.StatusPlaying},
	component.StatusWon:     {CmdReturnToStart: component.StatusStart, CmdReplay: component.StatusPlaying},
	component.StatusLost:    {CmdReturnToStart: component.StatusStart, CmdReplay: component.StatusPlaying},
}

type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

// Apply выполняет команду. Переход в PLAYING из START или из конца партии
// начинает новую партию с чистого мира.
func (s *StateSystem) Apply(cmd Command) error {
	from := s.world.Status
	to, ok := transitions[from][cmd]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, cmd, from)
	}
	if to == component.StatusPlaying && from != component.StatusPaused {
		s.world.Reset()
	}
	s.switchTo(to)
	return nil
}

// Check проверяет конец партии после шага. Поражение проверяется раньше
// победы: если в одном шаге пала последняя башня и набрано 1000 очков,
// партия проиграна.
func (s *StateSystem) Check() {
	if s.world.Status != component.StatusPlaying {
		return
	}
	switch {
	case s.world.ActiveTurrets() == 0:
		s.switchTo(component.StatusLost)
	case s.world.Score >= config.WinScore:
		s.switchTo(component.StatusWon)
	}
}

func (s *StateSystem) Current() component.Status {
	return s.world.Status
}

func (s *StateSystem) switchTo(to component.Status) {
	from := s.world.Status
	s.world.Status = to
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StatusChanged,
		Data: event.StatusData{From: from, To: to, Score: s.world.Score},
	})
}
