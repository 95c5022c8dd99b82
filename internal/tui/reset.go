// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneefojay/flashai-client/internal/service"
)

// ResetPasswordModel completes the password-reset flow: the user pastes the
// token from the reset email and chooses a new password. On success the
// router returns to the menu with the backend's confirmation message.
type ResetPasswordModel struct {
	ctx     context.Context
	session service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewResetPasswordModel(ctx context.Context, session service.ClientSessionService) *ResetPasswordModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "token from the reset email"
	tokenInput.CharLimit = 512
	tokenInput.Width = 40
	tokenInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &ResetPasswordModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{tokenInput, passwordInput},
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(actionDoneMsg); ok {
		if !m.submitting {
			// forwarded confirmation of the reset-link request
			m.status = done.message
			return m, nil
		}

		m.submitting = false
		if done.err != nil {
			m.errMsg = humanizeError(done.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: done}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			token := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if token == "" || pass == "" {
				m.errMsg = "Token and new password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdResetPassword(token, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ResetPasswordModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼──────────────────────────────────────\n")
	b.WriteString("Token        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Resetting...]\n")
	} else {
		b.WriteString("\n[Reset password]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *ResetPasswordModel) cmdResetPassword(token, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		message, err := session.ResetPassword(ctx, token, password)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m *ResetPasswordModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ResetPasswordModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
