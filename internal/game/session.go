// Package game implements the typing game core: the session state
// machine, the per-attempt progress tracker, and the mode controller.
package game

import "github.com/keydrill/keydrill/internal/model"

// State identifies the current screen of the session.
type State int

// Session states.
const (
	StateUserSetup State = iota
	StateUserSelect
	StateMenu
	StateReady
	StateInTest
	StateComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUserSetup:
		return "user-setup"
	case StateUserSelect:
		return "user-select"
	case StateMenu:
		return "menu"
	case StateReady:
		return "ready"
	case StateInTest:
		return "in-test"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session tracks which screen the user is on and routes transitions.
// All transition methods are guarded: calling one from the wrong state
// is a no-op returning false.
type Session struct {
	state State
	mode  model.Mode
	user  string
}

// NewSession builds a session routed to the correct entry gate.
// Without a resolvable user the session cannot start at the menu.
func NewSession(currentUser string, haveUsers bool) *Session {
	s := &Session{}
	switch {
	case !haveUsers:
		s.state = StateUserSetup
	case currentUser == "":
		s.state = StateUserSelect
	default:
		s.state = StateMenu
		s.user = currentUser
	}
	return s
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Mode returns the selected mode.
func (s *Session) Mode() model.Mode { return s.mode }

// User returns the current user, or "" when unresolved.
func (s *Session) User() string { return s.user }

// ResolveUser sets the current user and leaves the entry gates.
func (s *Session) ResolveUser(name string) bool {
	if name == "" {
		return false
	}
	if s.state != StateUserSetup && s.state != StateUserSelect {
		s.user = name
		return true
	}
	s.user = name
	s.state = StateMenu
	return true
}

// ClearUser drops the current user and routes back to an entry gate.
func (s *Session) ClearUser(haveUsers bool) {
	s.user = ""
	if haveUsers {
		s.state = StateUserSelect
	} else {
		s.state = StateUserSetup
	}
}

// SelectMode picks a mode from the menu.
func (s *Session) SelectMode(m model.Mode) bool {
	if s.state != StateMenu || m == model.ModeNone {
		return false
	}
	s.mode = m
	return true
}

// ReadyUp moves Menu to Ready. Requires a selected mode and a user.
func (s *Session) ReadyUp() bool {
	if s.state != StateMenu || s.mode == model.ModeNone || s.user == "" {
		return false
	}
	s.state = StateReady
	return true
}

// CancelReady moves Ready back to Menu.
func (s *Session) CancelReady() bool {
	if s.state != StateReady {
		return false
	}
	s.state = StateMenu
	return true
}

// Begin moves Ready to InTest on the first printable input.
func (s *Session) Begin() bool {
	if s.state != StateReady {
		return false
	}
	s.state = StateInTest
	return true
}

// Finish moves InTest to Complete.
func (s *Session) Finish() bool {
	if s.state != StateInTest {
		return false
	}
	s.state = StateComplete
	return true
}

// CancelTest abandons a running test and returns to the menu.
func (s *Session) CancelTest() bool {
	if s.state != StateInTest {
		return false
	}
	s.state = StateMenu
	return true
}

// Again moves Complete back to Ready, keeping the mode.
func (s *Session) Again() bool {
	if s.state != StateComplete {
		return false
	}
	s.state = StateReady
	return true
}

// ToMenu moves Complete back to Menu and drops the mode selection.
func (s *Session) ToMenu() bool {
	if s.state != StateComplete {
		return false
	}
	s.state = StateMenu
	s.mode = model.ModeNone
	return true
}
