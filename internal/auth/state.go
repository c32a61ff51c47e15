package auth

import "backoffice/internal/models"

// State is the sign-in state of one browser session.
type State struct {
	Authenticated bool             `json:"authenticated"`
	Loading       bool             `json:"loading"`
	Token         string           `json:"-"`
	User          *models.User     `json:"user"`
	Employee      *models.Employee `json:"employee"`
}

// Role derives the access role from the employee record.
func (s State) Role() Role {
	return RoleFromEmployee(s.Employee)
}

func BeginLogin(s State) State {
	s.Loading = true
	return s
}

func SignedIn(s State, resp models.LoginResponse) State {
	return State{
		Authenticated: true,
		Token:         resp.Token,
		User:          &models.User{Username: resp.Username},
		Employee:      resp.Employee,
	}
}

// LoginFailed keeps whatever was there before the attempt.
func LoginFailed(s State) State {
	s.Loading = false
	return s
}

func SignedOut(State) State {
	return State{}
}

// FromSession restores the state persisted for a token.
func FromSession(session *models.Session) State {
	if session == nil {
		return State{}
	}
	return State{
		Authenticated: true,
		Token:         session.Token,
		User:          &models.User{Username: session.Username},
		Employee:      session.Employee,
	}
}

// ToSession is the persisted form of an authenticated state.
func ToSession(s State) *models.Session {
	username := ""
	if s.User != nil {
		username = s.User.Username
	}
	return &models.Session{
		Token:    s.Token,
		Username: username,
		Employee: s.Employee,
	}
}
