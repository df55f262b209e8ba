package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// LevelConfig is the root config for level JSON files
type LevelConfig struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SpawnPoint Vec2Config      `json:"spawnPoint"`
	Surfaces   []SurfaceConfig `json:"surfaces"`
}

type SurfaceConfig struct {
	P1 Vec2Config `json:"p1"`
	P2 Vec2Config `json:"p2"`
}

// WriteLevel writes cfg as indented JSON
func WriteLevel(w io.Writer, cfg *LevelConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode level %s: %w", cfg.ID, err)
	}
	return nil
}
