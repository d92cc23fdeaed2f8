package audio

import (
	"fmt"
	"time"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink - куда отправляются готовые звуки. В игре это колонки.
type Sink interface {
	Play(s beep.Streamer)
}

type speakerSink struct{}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }

// SoundManager озвучивает события симуляции.
// Одинаковые звуки в пределах одного шага не накладываются.
type SoundManager struct {
	sink   Sink
	volume float64
	played map[event.EventType]int
	tick   int
}

// NewSoundManager открывает аудиоустройство. volume в [0, 1].
func NewSoundManager(volume float64) (*SoundManager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return NewSoundManagerWithSink(speakerSink{}, volume), nil
}

func NewSoundManagerWithSink(sink Sink, volume float64) *SoundManager {
	return &SoundManager{
		sink:   sink,
		volume: volume,
		played: make(map[event.EventType]int),
	}
}

// Tick вызывается хостом раз в кадр и снимает ограничение на повтор.
func (m *SoundManager) Tick() {
	m.tick++
}

func (m *SoundManager) OnEvent(e event.Event) {
	var s beep.Streamer
	switch e.Type {
	case event.MissileFired:
		s = launchSound()
	case event.FireRejected:
		if data, ok := e.Data.(event.RejectData); ok && data.Reason == event.RejectNoTurret {
			s = emptySound()
		}
	case event.MissileDetonated:
		s = blastSound(250 * time.Millisecond)
	case event.RocketImpact:
		s = blastSound(500 * time.Millisecond)
	case event.CityDestroyed, event.TurretDestroyed:
		s = NewEnvelope(NewSweep(220, 55, 600*time.Millisecond, WaveSaw, sampleRate),
			600*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, sampleRate)
	case event.StatusChanged:
		if data, ok := e.Data.(event.StatusData); ok {
			s = statusSound(data.To)
		}
	}
	if s == nil {
		return
	}
	if last, ok := m.played[e.Type]; ok && last == m.tick {
		return
	}
	m.played[e.Type] = m.tick
	m.sink.Play(m.withVolume(s))
}

func (m *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	if m.volume <= 0 {
		return &effects.Volume{Streamer: s, Silent: true}
	}
	// beep считает громкость в логарифмической шкале.
	return &effects.Volume{Streamer: s, Base: 2, Volume: (m.volume - 1) * 4}
}

func launchSound() beep.Streamer {
	d := 180 * time.Millisecond
	return NewEnvelope(NewSweep(400, 1400, d, WaveSquare, sampleRate), d, 5*time.Millisecond, 120*time.Millisecond, sampleRate)
}

func emptySound() beep.Streamer {
	d := 60 * time.Millisecond
	return NewEnvelope(NewOscillator(90, d, WaveSquare, sampleRate), d, 0, 30*time.Millisecond, sampleRate)
}

func blastSound(d time.Duration) beep.Streamer {
	return NewEnvelope(NewOscillator(1, d, WaveNoise, sampleRate), d, 2*time.Millisecond, d*3/4, sampleRate)
}

func statusSound(to component.Status) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		d := 150 * time.Millisecond
		return NewEnvelope(NewOscillator(freq, d, WaveSine, sampleRate), d, 10*time.Millisecond, 60*time.Millisecond, sampleRate)
	}
	switch to {
	case component.StatusWon:
		return beep.Seq(note(523.25), note(659.25), note(783.99), note(1046.5))
	case component.StatusLost:
		return beep.Seq(note(392), note(311.13), note(246.94), note(196))
	}
	return nil
}
