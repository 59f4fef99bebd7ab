package components

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	Elapsed       float64 // seconds in the current state
}

// TransitionTo moves to the requested state if the transition table allows
// it. Illegal requests are logged and ignored so a bad caller cannot put an
// entity into an unreachable state.
func (s *StateData) TransitionTo(state config.StateID) bool {
	if state == s.CurrentState {
		return true
	}
	if !config.CanTransition(s.CurrentState, state) {
		logging.L().WithFields(logrus.Fields{
			"from": s.CurrentState.String(),
			"to":   state.String(),
		}).Warn("rejected illegal state transition")
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.Elapsed = 0
	return true
}

// Is reports whether the entity is currently in the given state.
func (s *StateData) Is(state config.StateID) bool {
	return s.CurrentState == state
}

var State = donburi.NewComponentType[StateData]()
