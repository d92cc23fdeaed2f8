package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Settings - настройки хоста. Правила игры сюда не входят, они заданы константами.
type Settings struct {
	Window    WindowSettings    `yaml:"window"`
	Seed      int64             `yaml:"seed"` // 0 - сид от текущего времени
	Audio     AudioSettings     `yaml:"audio"`
	Log       LogSettings       `yaml:"log"`
	Telemetry TelemetrySettings `yaml:"telemetry"`
	Headless  HeadlessSettings  `yaml:"headless"`
}

type WindowSettings struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type LogSettings struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type TelemetrySettings struct {
	Dir string `yaml:"dir"` // пусто - CSV не пишется
}

type HeadlessSettings struct {
	Runs     int `yaml:"runs"`
	Workers  int `yaml:"workers"`
	MaxSteps int `yaml:"max_steps"`
}

// Load читает настройки по умолчанию и поверх них файл path, если он задан.
// Поля, которых нет в файле, сохраняют значения по умолчанию.
func Load(path string) (*Settings, error) {
	s := &Settings{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	}

	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	} else if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
	if s.Headless.Runs < 1 {
		s.Headless.Runs = 1
	}
	if s.Headless.Workers < 1 {
		s.Headless.Workers = 1
	}
}

// WriteYAML сохраняет итоговые настройки, например рядом с телеметрией.
func (s *Settings) WriteYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
