package env

import (
	"fmt"
	"os"

	"slot_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type slotYAML struct {
	Slot struct {
		StartCredits uint   `yaml:"start_credits"`
		BetDefault   uint   `yaml:"bet_default"`
		BetMin       uint   `yaml:"bet_min"`
		BetMax       uint   `yaml:"bet_max"`
		BetLevels    []uint `yaml:"bet_levels"`
	} `yaml:"slot"`
}

type slotConfig struct {
	startCredits uint
	betDefault   uint
	betMin       uint
	betMax       uint
	betLevels    []uint
}

// NewSlotConfigFromYAML - читает настройки автомата из YAML файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}

	var parsed slotYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	s := parsed.Slot
	if s.BetMin == 0 || s.BetMax == 0 {
		return nil, fmt.Errorf("slot config: bet_min and bet_max are required")
	}
	if s.BetMin > s.BetMax || s.BetDefault < s.BetMin || s.BetDefault > s.BetMax {
		return nil, fmt.Errorf("slot config: bet_default %d out of bounds [%d, %d]",
			s.BetDefault, s.BetMin, s.BetMax)
	}
	for _, lvl := range s.BetLevels {
		if lvl < s.BetMin || lvl > s.BetMax {
			return nil, fmt.Errorf("slot config: bet level %d out of bounds [%d, %d]",
				lvl, s.BetMin, s.BetMax)
		}
	}

	return &slotConfig{
		startCredits: s.StartCredits,
		betDefault:   s.BetDefault,
		betMin:       s.BetMin,
		betMax:       s.BetMax,
		betLevels:    s.BetLevels,
	}, nil
}

func (cfg *slotConfig) StartCredits() uint {
	return cfg.startCredits
}

func (cfg *slotConfig) BetDefault() uint {
	return cfg.betDefault
}

func (cfg *slotConfig) BetMin() uint {
	return cfg.betMin
}

func (cfg *slotConfig) BetMax() uint {
	return cfg.betMax
}

func (cfg *slotConfig) BetLevels() []uint {
	return cfg.betLevels
}
