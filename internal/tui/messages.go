package tui

import (
	"github.com/haneefojay/flashai-client/models"
)

// authResultMsg finishes a sign-in, registration, or Google sign-in attempt.
type authResultMsg struct {
	err error
}

// actionDoneMsg finishes a fire-and-forget action that only yields a status
// message (password reset, resend verification).
type actionDoneMsg struct {
	message string
	err     error
}

type decksLoadedMsg struct {
	err error
}

type deckSavedMsg struct {
	err error
}

type deckDeletedMsg struct {
	err error
}

type cardsLoadedMsg struct {
	cards []models.Flashcard
	err   error
}

// sharedLoadedMsg finishes opening a publicly shared deck by its share id.
type sharedLoadedMsg struct {
	deck  models.Deck
	cards []models.Flashcard
	err   error
}

type generateDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type shareDoneMsg struct {
	url string
	err error
}

type profileUpdatedMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type healthTickMsg struct{}
