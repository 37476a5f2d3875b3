package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
)

func TestLoginModel(t *testing.T) {
	var attempts []string
	login := func(_ context.Context, username, password string) error {
		attempts = append(attempts, username+":"+password)
		if password != "rahasia" {
			return &client.APIError{Status: 401, Message: "Username atau password salah"}
		}
		return nil
	}

	model := NewLoginModel(context.Background(), "admin", login)
	for i := range model.inputs {
		model.inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
	require.Equal(t, 1, model.focused)

	send := func(m LoginModel, msg tea.Msg) (LoginModel, tea.Cmd) {
		updated, cmd := m.Update(msg)
		return updated.(LoginModel), cmd
	}

	model, _ = send(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("salah")})
	model, cmd := send(model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	model, _ = send(model, cmd())
	assert.Equal(t, "Username atau password salah", model.err)
	assert.False(t, model.LoggedIn)
	assert.Empty(t, model.inputs[1].Value())

	model, _ = send(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rahasia")})
	model, cmd = send(model, tea.KeyMsg{Type: tea.KeyEnter})
	model, quit := send(model, cmd())

	assert.True(t, model.LoggedIn)
	assert.Equal(t, []string{"admin:salah", "admin:rahasia"}, attempts)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestLoginModel_RequiresFields(t *testing.T) {
	model := NewLoginModel(context.Background(), "", func(context.Context, string, string) error {
		t.Fatal("login must not be called")
		return nil
	})
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter}) // moves to password
	updated, cmd := updated.(LoginModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Username dan password wajib diisi", updated.(LoginModel).err)
}
