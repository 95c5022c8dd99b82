package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/service"
)

// ErrUserQuit is returned when the user exits the program from the auth flow
// instead of signing in.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// AuthFlow runs the pre-login screens (menu, sign-in, registration, password
// reset) until a session is open. Returns [ErrUserQuit] if the user quits
// without signing in.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.SessionService),
		"register": NewRegisterModel(ctx, t.services.SessionService),
		"google":   NewGoogleLoginModel(ctx, t.services.SessionService),
		"forgot":   NewForgotPasswordModel(ctx, t.services.SessionService),
		"reset":    NewResetPasswordModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the post-login screens (decks, study, generation, profile)
// until the user quits or logs out. Returns logout=true when the caller
// should tear the session down and restart the auth flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
