package config

// StateID identifies one logical entity state. Animation bindings map these
// to sheet tag names, and the transition table in transitions.go defines
// which state changes are legal.
type StateID int

const (
	StateNone StateID = iota

	// Player states.
	Spawn
	Idle
	Walk
	Jump
	DoubleJump
	Fall
	Attack1
	Attack2
	Roll
	Hit
	Death
	WallHold
	WallSlide
	LedgeGrab

	// Enemy AI states.
	Patrol
	Chase
	EnemyAttack

	// Interactable states. Chests run their own phase logic and never go
	// through the transition table.
	ChestOpening
	ChestUsed

	StateCount // must be last
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Spawn:        "spawn",
	Idle:         "idle",
	Walk:         "walk",
	Jump:         "jump",
	DoubleJump:   "double_jump",
	Fall:         "fall",
	Attack1:      "attack1",
	Attack2:      "attack2",
	Roll:         "roll",
	Hit:          "hit",
	Death:        "death",
	WallHold:     "wall_hold",
	WallSlide:    "wall_slide",
	LedgeGrab:    "ledge_grab",
	Patrol:       "patrol",
	Chase:        "chase",
	EnemyAttack:  "enemy_attack",
	ChestOpening: "chest_opening",
	ChestUsed:    "chest_used",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// OneShotStates play once and freeze on their last frame instead of looping.
var OneShotStates = map[StateID]bool{
	Spawn:        true,
	Attack1:      true,
	Attack2:      true,
	Roll:         true,
	Hit:          true,
	Death:        true,
	LedgeGrab:    true,
	EnemyAttack:  true,
	ChestOpening: true,
	ChestUsed:    true,
}
