// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneefojay/flashai-client/internal/service"
)

// GoogleLoginModel signs in with a pasted Google identity credential. The
// terminal client cannot run the browser consent flow itself, so the user
// obtains the ID token elsewhere and pastes it here.
type GoogleLoginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewGoogleLoginModel(ctx context.Context, session service.ClientSessionService) *GoogleLoginModel {
	credentialInput := textinput.New()
	credentialInput.Placeholder = "Google ID token"
	credentialInput.CharLimit = 4096
	credentialInput.Width = 54
	credentialInput.Focus()

	return &GoogleLoginModel{
		ctx:     ctx,
		session: session,
		input:   credentialInput,
	}
}

func (m *GoogleLoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *GoogleLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
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

			credential := strings.TrimSpace(m.input.Value())
			if credential == "" {
				m.errMsg = "Google ID token is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdGoogleLogin(credential)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GoogleLoginModel) View() string {
	var b strings.Builder
	b.WriteString("ID token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in with Google]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("GOOGLE SIGN-IN", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}

func (m *GoogleLoginModel) cmdGoogleLogin(credential string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return authResultMsg{err: session.LoginWithGoogle(ctx, credential)}
	}
}
