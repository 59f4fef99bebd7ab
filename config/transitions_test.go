package config

import "testing"

func TestValidateTransitions(t *testing.T) {
	if err := ValidateTransitions(); err != nil {
		t.Fatalf("transition table invalid: %v", err)
	}
}

// Every grounded recovery state must be able to leave into both Idle and
// Walk, or a player holding a direction when the state ends gets stuck.
func TestGroundedExitsAllowWalk(t *testing.T) {
	for _, from := range []StateID{Spawn, Attack1, Attack2, Roll, Hit, WallHold, WallSlide} {
		if !CanTransition(from, Idle) {
			t.Errorf("%s -> idle rejected", from)
		}
		if !CanTransition(from, Walk) {
			t.Errorf("%s -> walk rejected", from)
		}
	}
}

func TestHitReachableFromActiveStates(t *testing.T) {
	for _, from := range []StateID{Idle, Walk, Jump, Fall, Attack1, WallSlide, Patrol, Chase} {
		if !CanTransition(from, Hit) {
			t.Errorf("%s -> hit rejected", from)
		}
	}
	if CanTransition(Death, Hit) {
		t.Error("death -> hit allowed")
	}
}

func TestSelfTransitionAllowed(t *testing.T) {
	if !CanTransition(Attack1, Attack1) {
		t.Error("attack1 self transition rejected")
	}
}
