package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tasktorch/core/internal/domain/entities"
)

func TestSessionLifecycle(t *testing.T) {
	s := New(entities.ThemeDark)
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.User())
	assert.Equal(t, entities.ThemeDark, s.Theme())

	s.SignIn(entities.User{Username: "alice", Password: "x"})
	assert.True(t, s.SignedIn())
	assert.Equal(t, "alice", s.User().Username)

	s.SignOut()
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.User())
}

func TestSessionThemeValidation(t *testing.T) {
	s := New(entities.Theme("neon"))
	assert.Equal(t, entities.ThemeLight, s.Theme())

	s.SetTheme(entities.ThemeDark)
	assert.Equal(t, entities.ThemeDark, s.Theme())

	s.SetTheme(entities.Theme("neon"))
	assert.Equal(t, entities.ThemeDark, s.Theme())
}
