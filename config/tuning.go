package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional YAML overlay for timing and feel constants. Only
// fields present in the file override the compiled defaults; zero values in
// the file are treated as "not set".
type Tuning struct {
	Player struct {
		MoveSpeed      float64 `yaml:"move_speed"`
		JumpSpeed      float64 `yaml:"jump_speed"`
		ComboWindow    float64 `yaml:"combo_window"`
		InvulnDuration float64 `yaml:"invuln_duration"`
		RollDuration   float64 `yaml:"roll_duration"`
		RollCooldown   float64 `yaml:"roll_cooldown"`
		WallHoldGrace  float64 `yaml:"wall_hold_grace"`
	} `yaml:"player"`
	Physics struct {
		Gravity      float64 `yaml:"gravity"`
		MaxFallSpeed float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`
	Camera struct {
		FollowSmoothing    float64 `yaml:"follow_smoothing"`
		LookAheadDistanceX float64 `yaml:"look_ahead_distance_x"`
	} `yaml:"camera"`
}

// LoadTuning reads a tuning overlay and applies it to the global config.
// A missing file is not an error; a malformed one is.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read tuning %s: %w", path, err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning %s: %w", path, err)
	}

	override(&Player.MoveSpeed, t.Player.MoveSpeed)
	override(&Player.JumpSpeed, t.Player.JumpSpeed)
	override(&Player.ComboWindow, t.Player.ComboWindow)
	override(&Player.InvulnDuration, t.Player.InvulnDuration)
	override(&Player.RollDuration, t.Player.RollDuration)
	override(&Player.RollCooldown, t.Player.RollCooldown)
	override(&Player.WallHoldGrace, t.Player.WallHoldGrace)
	override(&Physics.Gravity, t.Physics.Gravity)
	override(&Physics.MaxFallSpeed, t.Physics.MaxFallSpeed)
	override(&Camera.FollowSmoothing, t.Camera.FollowSmoothing)
	override(&Camera.LookAheadDistanceX, t.Camera.LookAheadDistanceX)
	return nil
}

func override(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
