// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneefojay/flashai-client/internal/service"
)

// ForgotPasswordModel asks for an email address and requests a password-reset
// link. The backend answers with a status message regardless of whether the
// account exists, so the screen only ever shows that message or a transport
// error.
type ForgotPasswordModel struct {
	ctx     context.Context
	session service.ClientSessionService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewForgotPasswordModel(ctx context.Context, session service.ClientSessionService) *ForgotPasswordModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	return &ForgotPasswordModel{
		ctx:     ctx,
		session: session,
		input:   emailInput,
	}
}

func (m *ForgotPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(actionDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = humanizeError(done.err)
			return m, nil
		}
		// continue to the token entry screen with the confirmation
		return m, func() tea.Msg {
			return NavigateTo{Page: "reset", Payload: done}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.input.Value())
			if email == "" {
				m.errMsg = "Email is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdForgotPassword(email)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ForgotPasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Sending reset link...]\n")
	} else {
		b.WriteString("\n[Send reset link]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}

func (m *ForgotPasswordModel) cmdForgotPassword(email string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		message, err := session.ForgotPassword(ctx, email)
		return actionDoneMsg{message: message, err: err}
	}
}
