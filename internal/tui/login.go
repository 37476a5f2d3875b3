package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
)

// LoginFunc authenticates and reports a failure to show under the form.
type LoginFunc func(ctx context.Context, username, password string) error

type loginResultMsg struct{ err error }

// LoginModel asks for admin credentials before the dashboard starts.
type LoginModel struct {
	ctx   context.Context
	login LoginFunc
	keys  KeyMap
	theme Theme

	inputs   [2]textinput.Model
	focused  int
	err      string
	busy     bool
	LoggedIn bool
}

func NewLoginModel(ctx context.Context, username string, login LoginFunc) LoginModel {
	u := textinput.New()
	u.Prompt = "Username: "
	u.CharLimit = 50
	u.SetValue(username)

	p := textinput.New()
	p.Prompt = "Password: "
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.CharLimit = 72

	model := LoginModel{ctx: ctx, login: login, keys: DefaultKeyMap, theme: DefaultTheme, inputs: [2]textinput.Model{u, p}}
	if username != "" {
		model.focused = 1
	}
	model.inputs[model.focused].Focus()
	return model
}

func (model LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (model LoginModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case loginResultMsg:
		model.busy = false
		if message.err != nil {
			model.err = client.MessageOf(message.err)
			model.inputs[1].SetValue("")
			return model, nil
		}
		model.LoggedIn = true
		return model, tea.Quit

	case tea.KeyMsg:
		switch {
		case message.Type == tea.KeyCtrlC, key.Matches(message, model.keys.Cancel):
			return model, tea.Quit
		case message.Type == tea.KeyTab, message.Type == tea.KeyShiftTab, message.Type == tea.KeyUp, message.Type == tea.KeyDown:
			cmd := model.moveFocus()
			return model, cmd
		case message.Type == tea.KeyEnter:
			if model.focused == 0 {
				cmd := model.moveFocus()
				return model, cmd
			}
			if model.busy {
				return model, nil
			}
			username := strings.TrimSpace(model.inputs[0].Value())
			password := model.inputs[1].Value()
			if username == "" || password == "" {
				model.err = "Username dan password wajib diisi"
				return model, nil
			}
			model.busy = true
			model.err = ""
			ctx, login := model.ctx, model.login
			return model, func() tea.Msg {
				return loginResultMsg{err: login(ctx, username, password)}
			}
		}
	}

	var cmd tea.Cmd
	model.inputs[model.focused], cmd = model.inputs[model.focused].Update(message)
	return model, cmd
}

func (model *LoginModel) moveFocus() tea.Cmd {
	model.inputs[model.focused].Blur()
	model.focused = (model.focused + 1) % len(model.inputs)
	return model.inputs[model.focused].Focus()
}

func (model LoginModel) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(model.theme.ActiveTab).Render("Paskibra Rajawali · Login Admin"))
	b.WriteString("\n\n")
	b.WriteString(model.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(model.inputs[1].View())
	b.WriteString("\n\n")
	switch {
	case model.busy:
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Masuk..."))
	case model.err != "":
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.ErrorToast).Render(model.err))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("Enter masuk · Tab pindah · Esc batal"))
	}
	b.WriteString("\n")
	return b.String()
}
