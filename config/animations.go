package config

// AnimationBinding maps an entity's logical states to the tag names of its
// sprite sheet. Required states that resolve to no tag are substituted via
// the fallback chains; the baseline state must always resolve or the entity
// cannot be constructed.
type AnimationBinding struct {
	Entity    string
	States    map[StateID]string
	Required  []StateID
	Fallbacks map[StateID][]StateID
	Baseline  StateID
}

// PlayerBinding binds the player states to the Sword Master sheet tags.
var PlayerBinding = AnimationBinding{
	Entity: "player",
	States: map[StateID]string{
		Idle:       "Idle",
		Walk:       "Walk",
		Jump:       "Jump",
		DoubleJump: "Jump",
		Fall:       "Fall",
		Attack1:    "Slash 1",
		Attack2:    "Slash 2",
		Spawn:      "Appear Tele",
		Hit:        "Hit",
		Death:      "death",
		Roll:       "Roll",
		LedgeGrab:  "Ledge Grab",
		WallHold:   "Wall hold",
		WallSlide:  "Wall Slide",
	},
	Required: []StateID{Idle, Walk, Jump, Fall, Spawn, Hit, Death},
	Fallbacks: map[StateID][]StateID{
		Spawn:      {Idle},
		Hit:        {Idle},
		Death:      {Hit, Idle},
		DoubleJump: {Jump, Fall},
		Roll:       {Walk, Idle},
		WallHold:   {Idle},
		WallSlide:  {WallHold, Fall},
		LedgeGrab:  {WallHold, Idle},
	},
	Baseline: Idle,
}

// AssassinBinding binds the enemy states to the Assassin sheet tags.
// The assassin sheet has no hit or death tags, so those fall back down the
// chain to idle.
var AssassinBinding = AnimationBinding{
	Entity: "assassin",
	States: map[StateID]string{
		Idle:        "idle",
		Patrol:      "run",
		Chase:       "run",
		Walk:        "run",
		Jump:        "jump",
		Fall:        "fall",
		EnemyAttack: "attack 1",
		Attack2:     "attack 2",
		Hit:         "hit",
		Death:       "death",
	},
	Required: []StateID{Idle, Patrol, Chase, EnemyAttack, Hit, Death},
	Fallbacks: map[StateID][]StateID{
		Patrol:      {Walk, Idle},
		Chase:       {Patrol, Walk, Idle},
		EnemyAttack: {Attack2, Idle},
		Hit:         {Idle},
		Death:       {Hit, Idle},
	},
	Baseline: Idle,
}

// ChestBinding binds chest phases to the chest sheet tags. The opening
// animation falls back to the opened frame when a sheet lacks it.
var ChestBinding = AnimationBinding{
	Entity: "chest",
	States: map[StateID]string{
		Idle:         "idle",
		ChestOpening: "open",
		ChestUsed:    "used",
	},
	Required: []StateID{Idle, ChestOpening, ChestUsed},
	Fallbacks: map[StateID][]StateID{
		ChestOpening: {ChestUsed, Idle},
		ChestUsed:    {Idle},
	},
	Baseline: Idle,
}

// CollectibleBinding is the minimal binding for pickups, which only ever
// play an idle loop.
var CollectibleBinding = AnimationBinding{
	Entity: "collectible",
	States: map[StateID]string{
		Idle: "idle",
	},
	Baseline: Idle,
}

// HitboxWindow is the inclusive range of animation frames during which an
// attack state has a live hitbox.
type HitboxWindow struct {
	From, To int
}

// AttackHitboxFrames gives the active frame window per attack state.
// Frame indices are 0-based within the attack animation.
var AttackHitboxFrames = map[StateID]HitboxWindow{
	Attack1:     {From: 2, To: 4},
	Attack2:     {From: 1, To: 3},
	EnemyAttack: {From: 2, To: 4},
}
