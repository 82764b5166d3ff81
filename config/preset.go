package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"spinWheelServer/game"
)

// WheelPreset is the optional wheel section of the YAML config file.
type WheelPreset struct {
	Sectors  int           `yaml:"sectors"`
	Palette  []string      `yaml:"palette"`
	Duration time.Duration `yaml:"duration"`
}

type presetFile struct {
	Wheel WheelPreset `yaml:"wheel"`
}

// LoadWheelPreset reads the wheel section of a YAML file. An empty path or a
// missing file yields the zero preset, which leaves engine defaults alone.
func LoadWheelPreset(path string) (WheelPreset, error) {
	if path == "" {
		return WheelPreset{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return WheelPreset{}, nil
	}
	if err != nil {
		return WheelPreset{}, fmt.Errorf("read wheel config: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return WheelPreset{}, fmt.Errorf("parse wheel config %s: %w", path, err)
	}
	if d := file.Wheel.Duration; d != 0 && (d < game.SpinDuration || d > game.MaxSpinDuration) {
		return WheelPreset{}, fmt.Errorf("parse wheel config %s: duration %s outside [%s, %s]",
			path, d, game.SpinDuration, game.MaxSpinDuration)
	}
	return file.Wheel, nil
}

// EngineOptions turns the preset into engine options; unset fields keep the
// engine defaults.
func (p WheelPreset) EngineOptions() []game.Option {
	var opts []game.Option
	if p.Sectors != 0 {
		opts = append(opts, game.WithSectorCount(p.Sectors))
	}
	if len(p.Palette) > 0 {
		opts = append(opts, game.WithPalette(p.Palette))
	}
	if p.Duration > 0 {
		opts = append(opts, game.WithDuration(p.Duration))
	}
	return opts
}
