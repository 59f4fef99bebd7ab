package config

import "fmt"

// Transitions is the set of legal state changes. A state machine may only
// move from a state to one of the states listed for it here; anything else
// is a logic bug and is rejected by StateData.TransitionTo.
//
// Hit is reachable from every non-terminal state (damage cancels whatever
// the entity was doing) and Death from every state including Hit. Those two
// edges are added programmatically in init rather than listed per state.
var Transitions = map[StateID][]StateID{
	StateNone: {Spawn, Idle, Patrol},

	Spawn:      {Idle, Walk, Fall},
	Idle:       {Walk, Jump, Fall, Attack1, Roll},
	Walk:       {Idle, Jump, Fall, Attack1, Roll},
	Jump:       {DoubleJump, Fall, WallHold, LedgeGrab},
	DoubleJump: {Fall, WallHold, LedgeGrab},
	Fall:       {Idle, Walk, DoubleJump, WallHold, LedgeGrab},

	Attack1: {Attack2, Idle, Walk, Fall},
	Attack2: {Idle, Walk, Fall},
	Roll:    {Idle, Walk, Fall},
	Hit:     {Idle, Walk, Fall, Patrol, Chase},
	Death:   {Spawn},

	WallHold:  {WallSlide, Jump, Fall, Idle, Walk},
	WallSlide: {Jump, Fall, Idle, Walk, WallHold},
	LedgeGrab: {Jump, Fall, Idle},

	Patrol:      {Chase},
	Chase:       {Patrol, EnemyAttack},
	EnemyAttack: {Chase, Patrol},
}

func init() {
	for from := range Transitions {
		if from == Death {
			continue
		}
		if from != Hit {
			Transitions[from] = append(Transitions[from], Hit)
		}
		Transitions[from] = append(Transitions[from], Death)
	}
}

// CanTransition reports whether moving from one state to another is legal.
// A self transition is always a no-op and allowed.
func CanTransition(from, to StateID) bool {
	if from == to {
		return true
	}
	for _, next := range Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransitions checks the table for references to undefined states.
// Called once at startup so a malformed table fails before gameplay.
func ValidateTransitions() error {
	for from, nexts := range Transitions {
		if from < StateNone || from >= StateCount {
			return fmt.Errorf("transition table: invalid source state %d", from)
		}
		for _, to := range nexts {
			if to <= StateNone || to >= StateCount {
				return fmt.Errorf("transition table: state %s references invalid target %d", from, to)
			}
		}
	}
	return nil
}
