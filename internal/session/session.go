package session

import (
	"github.com/tasktorch/core/internal/domain/entities"
)

// Session carries the signed-in user and the active theme for one run of a
// front end. It replaces any notion of process-global current-user or
// current-theme state: the front end owns exactly one Session and passes it
// to whatever needs it.
type Session struct {
	user  *entities.User
	theme entities.Theme
}

// New creates a session with no signed-in user and the given theme.
func New(theme entities.Theme) *Session {
	if !theme.IsValid() {
		theme = entities.ThemeLight
	}
	return &Session{theme: theme}
}

// SignIn records the authenticated user.
func (s *Session) SignIn(user entities.User) {
	u := user
	s.user = &u
}

// SignOut clears the authenticated user.
func (s *Session) SignOut() {
	s.user = nil
}

// User returns the signed-in user, or nil.
func (s *Session) User() *entities.User {
	return s.user
}

// SignedIn reports whether a user is signed in.
func (s *Session) SignedIn() bool {
	return s.user != nil
}

// Theme returns the active theme.
func (s *Session) Theme() entities.Theme {
	return s.theme
}

// SetTheme switches the active theme. Invalid values are ignored.
func (s *Session) SetTheme(theme entities.Theme) {
	if theme.IsValid() {
		s.theme = theme
	}
}
