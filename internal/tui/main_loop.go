// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneefojay/flashai-client/internal/service"
	"github.com/haneefojay/flashai-client/models"
)

type mainMode int

const (
	modeDecks mainMode = iota
	modeCards
	modeDeckForm
	modeGenerate
	modeProfile
	modeProfileEdit
	modeVerifyToken
	modeSharedInput
)

type genStage int

const (
	genStageNone genStage = iota
	genStageSource
	genStageText
	genStageFile
	genStageOptions
)

const healthRefreshEvery = 5 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	mode    mainMode
	idx     int
	loading bool
	status  string
	errMsg  string

	// deck create/edit form
	formInputs []textinput.Model
	formFocus  int
	formSaving bool
	formDeckID string

	// study view
	cards        []models.Flashcard
	cardIdx      int
	cardDeckName string
	revealed     bool

	// generation flow
	genStage     genStage
	genSourceIdx int
	genTextArea  textarea.Model
	genFileInput textinput.Model
	genOptInputs []textinput.Model
	genOptFocus  int
	genSaving    bool
	genErr       string

	// profile edit form
	profileInputs []textinput.Model
	profileFocus  int
	profileSaving bool

	// email verification token entry
	verifyInput  textinput.Model
	verifySaving bool

	// shared deck entry
	sharedInput   textinput.Model
	sharedLoading bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadDecks(), m.cmdHealthTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case deckSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeDecks
		m.formInputs = nil
		if m.formDeckID == "" {
			m.status = "Deck created"
		} else {
			m.status = "Deck updated"
		}
		m.errMsg = ""
		return m, nil
	case deckDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Deck deleted"
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case cardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.cards = msg.cards
		m.cardIdx = 0
		m.revealed = false
		m.errMsg = ""
		m.mode = modeCards
		return m, nil
	case sharedLoadedMsg:
		m.sharedLoading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.cards = msg.cards
		m.cardIdx = 0
		m.revealed = false
		m.cardDeckName = msg.deck.Name + " (shared)"
		m.errMsg = ""
		m.mode = modeCards
		return m, nil
	case generateDoneMsg:
		m.genSaving = false
		if msg.err != nil {
			m.genErr = humanizeError(msg.err)
			return m, nil
		}
		m.resetGenerateFlow()
		m.mode = modeDecks
		m.status = generationStatus(m.services.FlashcardsService.State())
		m.errMsg = ""
		m.loading = true
		// generation may have created a new deck
		return m, m.cmdLoadDecks()
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Exported to " + msg.path
		m.errMsg = ""
		return m, nil
	case shareDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if err := clipboard.WriteAll(msg.url); err != nil {
			m.status = "Share link: " + msg.url
			return m, nil
		}
		m.status = "Share link copied to clipboard"
		m.errMsg = ""
		return m, nil
	case profileUpdatedMsg:
		m.profileSaving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeProfile
		m.profileInputs = nil
		m.status = "Profile updated"
		m.errMsg = ""
		return m, nil
	case accountDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case actionDoneMsg:
		m.verifySaving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if m.mode == modeVerifyToken {
			m.mode = modeProfile
		}
		m.status = msg.message
		m.errMsg = ""
		return m, nil
	case healthTickMsg:
		return m, m.cmdHealthTick()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		switch m.mode {
		case modeGenerate:
			return m.updateGenerateFlow(msg)
		case modeDeckForm:
			return m.updateDeckForm(msg)
		case modeProfileEdit:
			return m.updateProfileEdit(msg)
		case modeVerifyToken:
			return m.updateVerifyToken(msg)
		case modeSharedInput:
			return m.updateSharedInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeGenerate:
		return m.updateGenerateFlow(msg)
	case modeDeckForm:
		return m.updateDeckForm(msg)
	case modeProfileEdit:
		return m.updateProfileEdit(msg)
	case modeVerifyToken:
		return m.updateVerifyToken(msg)
	case modeSharedInput:
		return m.updateSharedInput(msg)
	case modeCards:
		return m.updateCards(keyMsg)
	case modeProfile:
		return m.updateProfile(keyMsg)
	}

	return m.updateDecks(keyMsg)
}

func (m mainLoopModel) updateDecks(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	decks := m.decks()

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(decks)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadDecks()
	case "enter":
		deck, ok := m.current()
		if !ok {
			m.status = "No decks yet"
			return m, nil
		}
		m.loading = true
		m.cardDeckName = deck.Name
		return m, m.cmdLoadCards(deck.ID)
	case "n":
		m.startDeckForm(models.Deck{})
		return m, nil
	case "e":
		deck, ok := m.current()
		if !ok {
			m.status = "No decks yet"
			return m, nil
		}
		m.startDeckForm(deck)
		return m, nil
	case "ctrl+d":
		deck, ok := m.current()
		if !ok {
			m.status = "No decks yet"
			return m, nil
		}
		return m, m.cmdDeleteDeck(deck.ID)
	case "g":
		m.startGenerateFlow()
		return m, nil
	case "s":
		deck, ok := m.current()
		if !ok {
			m.status = "No decks yet"
			return m, nil
		}
		m.status = "Sharing..."
		return m, m.cmdShare(deck.ID)
	case "x":
		deck, ok := m.current()
		if !ok {
			m.status = "No decks yet"
			return m, nil
		}
		m.status = "Exporting..."
		return m, m.cmdExport(deck.ID)
	case "o":
		m.startSharedInput()
		return m, nil
	case "p":
		m.mode = modeProfile
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateCards(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeDecks
		m.cards = nil
		m.revealed = false
	case "up", "k", "left", "h":
		if m.cardIdx > 0 {
			m.cardIdx--
			m.revealed = false
		}
	case "down", "j", "right", "l", "enter":
		if m.cardIdx < len(m.cards)-1 {
			m.cardIdx++
			m.revealed = false
		}
	case " ":
		m.revealed = !m.revealed
	}

	return m, nil
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.mode = modeDecks
		m.status = ""
		m.errMsg = ""
	case "e":
		m.startProfileEdit()
		return m, nil
	case "v":
		profile := m.services.SessionService.State().Profile
		if profile.IsVerified {
			m.status = "Email is already verified"
			return m, nil
		}
		m.status = "Sending verification email..."
		return m, m.cmdResendVerification(profile.Email)
	case "t":
		profile := m.services.SessionService.State().Profile
		if profile.IsVerified {
			m.status = "Email is already verified"
			return m, nil
		}
		m.startVerifyToken()
		return m, nil
	case "ctrl+d":
		return m, m.cmdDeleteAccount()
	}

	return m, nil
}

// ── Deck form ─────────────────────────────────────────────────────

func (m *mainLoopModel) startDeckForm(deck models.Deck) {
	name := textinput.New()
	name.Placeholder = "deck name"
	name.CharLimit = 200
	name.Width = 40
	name.SetValue(deck.Name)
	name.Focus()

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.CharLimit = 500
	description.Width = 40
	description.SetValue(deck.Description)

	m.formInputs = []textinput.Model{name, description}
	m.formFocus = 0
	m.formSaving = false
	m.formDeckID = deck.ID
	m.mode = modeDeckForm
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateDeckForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeDecks
			m.formInputs = nil
			m.errMsg = ""
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSaving {
				return m, nil
			}

			name := strings.TrimSpace(m.formInputs[0].Value())
			description := strings.TrimSpace(m.formInputs[1].Value())
			if name == "" {
				m.errMsg = "Deck name is required"
				return m, nil
			}

			m.errMsg = ""
			m.formSaving = true
			if m.formDeckID == "" {
				return m, m.cmdCreateDeck(name, description)
			}
			return m, m.cmdUpdateDeck(m.formDeckID, name, description)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

// ── Generation flow ───────────────────────────────────────────────

func (m *mainLoopModel) startGenerateFlow() {
	m.genStage = genStageSource
	m.genSourceIdx = 0
	m.genErr = ""
	m.genSaving = false
	m.mode = modeGenerate
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) resetGenerateFlow() {
	m.genStage = genStageNone
	m.genSourceIdx = 0
	m.genErr = ""
	m.genSaving = false
	m.genOptInputs = nil
	m.genOptFocus = 0
}

func (m mainLoopModel) updateGenerateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.genStage {
	case genStageSource:
		return m.updateGenerateSource(msg)
	case genStageText:
		return m.updateGenerateText(msg)
	case genStageFile:
		return m.updateGenerateFile(msg)
	case genStageOptions:
		return m.updateGenerateOptions(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateGenerateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.resetGenerateFlow()
		m.mode = modeDecks
		return m, nil
	case "up", "k":
		if m.genSourceIdx > 0 {
			m.genSourceIdx--
		}
	case "down", "j":
		if m.genSourceIdx < 1 {
			m.genSourceIdx++
		}
	case "1":
		m.genSourceIdx = 0
		m.selectGenerateSource()
		return m, nil
	case "2":
		m.genSourceIdx = 1
		m.selectGenerateSource()
		return m, nil
	case "enter":
		m.selectGenerateSource()
		return m, nil
	}

	return m, nil
}

func (m *mainLoopModel) selectGenerateSource() {
	m.genErr = ""
	if m.genSourceIdx == 0 {
		ta := textarea.New()
		ta.Placeholder = "Paste the source material here"
		ta.SetWidth(54)
		ta.SetHeight(8)
		ta.Focus()
		m.genTextArea = ta
		m.genStage = genStageText
		return
	}

	path := textinput.New()
	path.Placeholder = "/path/to/notes.pdf"
	path.Width = 54
	path.Focus()
	m.genFileInput = path
	m.genStage = genStageFile
}

func (m mainLoopModel) updateGenerateText(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.genStage = genStageSource
			m.genErr = ""
			return m, nil
		case "ctrl+s":
			if strings.TrimSpace(m.genTextArea.Value()) == "" {
				m.genErr = "Source text is required"
				return m, nil
			}
			m.genErr = ""
			m.startGenerateOptions()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.genTextArea, cmd = m.genTextArea.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateGenerateFile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.genStage = genStageSource
			m.genErr = ""
			return m, nil
		case "enter":
			if strings.TrimSpace(m.genFileInput.Value()) == "" {
				m.genErr = "File path is required"
				return m, nil
			}
			m.genErr = ""
			m.startGenerateOptions()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.genFileInput, cmd = m.genFileInput.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) startGenerateOptions() {
	count := textinput.New()
	count.Placeholder = "card count 1-50 (empty for default)"
	count.CharLimit = 3
	count.Width = 40
	count.Focus()

	mode := textinput.New()
	mode.Placeholder = "multiple_choice / open-ended / true_false"
	mode.CharLimit = 20
	mode.Width = 40

	difficulty := textinput.New()
	difficulty.Placeholder = "beginner / intermediate / advanced"
	difficulty.CharLimit = 20
	difficulty.Width = 40

	deckID := textinput.New()
	deckID.Placeholder = "existing deck id (empty for a new deck)"
	deckID.CharLimit = 64
	deckID.Width = 40
	if deck, ok := m.current(); ok {
		deckID.SetValue(deck.ID)
	}

	m.genOptInputs = []textinput.Model{count, mode, difficulty, deckID}
	m.genOptFocus = 0
	m.genStage = genStageOptions
}

func (m mainLoopModel) updateGenerateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.genSourceIdx == 0 {
				m.genStage = genStageText
			} else {
				m.genStage = genStageFile
			}
			m.genErr = ""
			return m, nil
		case "tab":
			m.genOptInputs[m.genOptFocus].Blur()
			m.genOptFocus = (m.genOptFocus + 1) % len(m.genOptInputs)
			m.genOptInputs[m.genOptFocus].Focus()
			return m, nil
		case "shift+tab":
			m.genOptInputs[m.genOptFocus].Blur()
			m.genOptFocus = (m.genOptFocus - 1 + len(m.genOptInputs)) % len(m.genOptInputs)
			m.genOptInputs[m.genOptFocus].Focus()
			return m, nil
		case "enter":
			if m.genSaving {
				return m, nil
			}

			opts, err := m.collectGenerateOptions()
			if err != nil {
				m.genErr = err.Error()
				return m, nil
			}

			m.genErr = ""
			m.genSaving = true
			if m.genSourceIdx == 0 {
				return m, m.cmdGenerate(strings.TrimSpace(m.genTextArea.Value()), opts)
			}
			return m, m.cmdGenerateFromFile(strings.TrimSpace(m.genFileInput.Value()), opts)
		}
	}

	var cmd tea.Cmd
	m.genOptInputs[m.genOptFocus], cmd = m.genOptInputs[m.genOptFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) collectGenerateOptions() (models.GenerateOptions, error) {
	opts := models.GenerateOptions{
		QuestionMode: models.QuestionMode(strings.TrimSpace(m.genOptInputs[1].Value())),
		Difficulty:   models.Difficulty(strings.TrimSpace(m.genOptInputs[2].Value())),
		DeckID:       strings.TrimSpace(m.genOptInputs[3].Value()),
	}

	rawCount := strings.TrimSpace(m.genOptInputs[0].Value())
	if rawCount != "" {
		count, err := strconv.Atoi(rawCount)
		if err != nil {
			return opts, fmt.Errorf("card count must be a number")
		}
		opts.Count = count
	}

	return opts, opts.Validate()
}

// ── Profile edit ──────────────────────────────────────────────────

func (m *mainLoopModel) startProfileEdit() {
	profile := m.services.SessionService.State().Profile

	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 100
	name.Width = 40
	name.SetValue(profile.Name)
	name.Focus()

	newPass := textinput.New()
	newPass.Placeholder = "new password (empty to keep)"
	newPass.CharLimit = 256
	newPass.Width = 40
	newPass.EchoMode = textinput.EchoPassword
	newPass.EchoCharacter = '*'

	currentPass := textinput.New()
	currentPass.Placeholder = "current password"
	currentPass.CharLimit = 256
	currentPass.Width = 40
	currentPass.EchoMode = textinput.EchoPassword
	currentPass.EchoCharacter = '*'

	m.profileInputs = []textinput.Model{name, newPass, currentPass}
	m.profileFocus = 0
	m.profileSaving = false
	m.mode = modeProfileEdit
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateProfileEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeProfile
			m.profileInputs = nil
			m.errMsg = ""
			return m, nil
		case "tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "shift+tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus - 1 + len(m.profileInputs)) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "enter":
			if m.profileSaving {
				return m, nil
			}

			req := models.UpdateProfileRequest{
				Name:            strings.TrimSpace(m.profileInputs[0].Value()),
				Password:        m.profileInputs[1].Value(),
				CurrentPassword: m.profileInputs[2].Value(),
			}
			if req.Password != "" && req.CurrentPassword == "" {
				m.errMsg = "Current password is required to set a new one"
				return m, nil
			}

			m.errMsg = ""
			m.profileSaving = true
			return m, m.cmdUpdateProfile(req)
		}
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

// ── Email verification ────────────────────────────────────────────

func (m *mainLoopModel) startVerifyToken() {
	token := textinput.New()
	token.Placeholder = "token from the verification email"
	token.CharLimit = 512
	token.Width = 40
	token.Focus()

	m.verifyInput = token
	m.verifySaving = false
	m.mode = modeVerifyToken
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateVerifyToken(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeProfile
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.verifySaving {
				return m, nil
			}

			token := strings.TrimSpace(m.verifyInput.Value())
			if token == "" {
				m.errMsg = "Token is required"
				return m, nil
			}

			m.errMsg = ""
			m.verifySaving = true
			return m, m.cmdVerifyEmail(token)
		}
	}

	var cmd tea.Cmd
	m.verifyInput, cmd = m.verifyInput.Update(msg)
	return m, cmd
}

// ── Shared deck ───────────────────────────────────────────────────

func (m *mainLoopModel) startSharedInput() {
	shareID := textinput.New()
	shareID.Placeholder = "share id from the link"
	shareID.CharLimit = 64
	shareID.Width = 40
	shareID.Focus()

	m.sharedInput = shareID
	m.sharedLoading = false
	m.mode = modeSharedInput
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateSharedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeDecks
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.sharedLoading {
				return m, nil
			}

			shareID := strings.TrimSpace(m.sharedInput.Value())
			if shareID == "" {
				m.errMsg = "Share id is required"
				return m, nil
			}

			m.errMsg = ""
			m.sharedLoading = true
			return m, m.cmdOpenShared(shareID)
		}
	}

	var cmd tea.Cmd
	m.sharedInput, cmd = m.sharedInput.Update(msg)
	return m, cmd
}

// ── Views ─────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeCards:
		return m.viewCards()
	case modeDeckForm:
		return m.viewDeckForm()
	case modeGenerate:
		return m.viewGenerate()
	case modeProfile:
		return m.viewProfile()
	case modeProfileEdit:
		return m.viewProfileEdit()
	case modeVerifyToken:
		return m.viewVerifyToken()
	case modeSharedInput:
		return m.viewSharedInput()
	}

	return m.viewDecks()
}

func (m mainLoopModel) viewDecks() string {
	out := ""

	if m.loading {
		out += "Loading decks...\n"
		return renderPage("MY DECKS", strings.TrimRight(out, "\n"), m.decksHotKeys())
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	decks := m.decks()
	if len(decks) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No decks yet. Press g to generate your first one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Name                     │ Cards │ Description\n"
		out += "─────┼──────────────────────────┼───────┼────────────────\n"
		for i, deck := range decks {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-5d │ %s\n",
				cursor,
				i+1,
				fitText(deck.Name, 24),
				deck.CardCount,
				fitText(deck.Description, 16),
			)
		}
	}

	out += "\n" + m.healthLine()

	return renderPage("MY DECKS", strings.TrimRight(out, "\n"), m.decksHotKeys())
}

func (m mainLoopModel) decksHotKeys() string {
	return "g: generate │ n: new │ enter: study │ e: edit │ s: share │ o: open shared │ x: export │ ctrl+d: delete │ p: profile │ r: refresh │ l: logout"
}

func (m mainLoopModel) viewCards() string {
	title := "STUDY: " + strings.ToUpper(fitText(m.cardDeckName, 30))

	if len(m.cards) == 0 {
		return renderPage(title, "This deck has no cards", "esc: back")
	}

	card := m.cards[m.cardIdx]

	out := fmt.Sprintf("Card %d of %d\n\n", m.cardIdx+1, len(m.cards))
	out += "Q: " + card.Question + "\n"

	if card.Options != nil {
		out += "\n"
		out += "  A) " + card.Options.A + "\n"
		out += "  B) " + card.Options.B + "\n"
		out += "  C) " + card.Options.C + "\n"
		out += "  D) " + card.Options.D + "\n"
	}

	out += "\n"
	if m.revealed {
		if card.CorrectAnswer != "" {
			out += "Answer: " + card.CorrectAnswer + "\n"
		}
		if card.Answer != "" {
			out += "Answer: " + card.Answer + "\n"
		}
	} else {
		out += "Answer: [press space to reveal]\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "space: reveal │ ↑/↓: prev/next │ esc: back")
}

func (m mainLoopModel) viewDeckForm() string {
	title := "NEW DECK"
	if m.formDeckID != "" {
		title = "EDIT DECK"
	}

	out := "Field       │ Value\n"
	out += "────────────┼──────────────────────────────────────────\n"
	out += "Name        │ [" + m.formInputs[0].View() + "]\n"
	out += "Description │ [" + m.formInputs[1].View() + "]\n"

	if m.formSaving {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewGenerate() string {
	switch m.genStage {
	case genStageSource:
		out := ""
		for i, label := range []string{"From text", "From file (PDF, DOCX, TXT)"} {
			cursor := " "
			if i == m.genSourceIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, label)
		}
		if m.genErr != "" {
			out += "\n" + errorStyle.Render("Error: "+m.genErr) + "\n"
		}
		return renderPage("GENERATE: SOURCE", strings.TrimRight(out, "\n"), "1-2/enter: select │ ↑/↓: move │ esc: cancel")

	case genStageText:
		out := "Source text:\n"
		out += m.genTextArea.View()
		if m.genErr != "" {
			out += "\n" + errorStyle.Render("Error: "+m.genErr) + "\n"
		}
		return renderPage("GENERATE: TEXT", strings.TrimRight(out, "\n"), "enter: new line │ ctrl+s: next │ esc: back")

	case genStageFile:
		out := "File path │ [" + m.genFileInput.View() + "]\n"
		if m.genErr != "" {
			out += "\n" + errorStyle.Render("Error: "+m.genErr) + "\n"
		}
		return renderPage("GENERATE: FILE", strings.TrimRight(out, "\n"), "enter: next │ esc: back")

	case genStageOptions:
		out := "Field      │ Value\n"
		out += "───────────┼──────────────────────────────────────────\n"
		out += "Count      │ [" + m.genOptInputs[0].View() + "]\n"
		out += "Mode       │ [" + m.genOptInputs[1].View() + "]\n"
		out += "Difficulty │ [" + m.genOptInputs[2].View() + "]\n"
		out += "Deck id    │ [" + m.genOptInputs[3].View() + "]\n"

		if m.genSaving {
			out += "\n[Generating... this can take a while]\n"
		} else {
			out += "\n[Generate]\n"
		}

		if m.genErr != "" {
			out += "\n" + errorStyle.Render("Error: "+m.genErr) + "\n"
		}
		return renderPage("GENERATE: OPTIONS", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: generate")
	}

	return renderPage("GENERATE", "", "esc: cancel")
}

func (m mainLoopModel) viewProfile() string {
	session := m.services.SessionService.State()
	profile := session.Profile

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	out += "Email     : " + profile.Email + "\n"
	out += "Name      : " + valueOrDash(profile.Name) + "\n"
	out += "Verified  : " + yesNo(profile.IsVerified) + "\n"
	out += "Password  : " + yesNo(profile.HasPassword) + "\n"
	if !profile.CreatedAt.IsZero() {
		out += "Member for: " + memberFor(profile.CreatedAt) + "\n"
	}
	if !session.TokenExpiresAt.IsZero() {
		out += "Session   : valid until " + session.TokenExpiresAt.Local().Format("2006-01-02 15:04") + "\n"
	}

	out += "\n" + m.healthLine()

	return renderPage("PROFILE", strings.TrimRight(out, "\n"), "e: edit │ v: resend verification │ t: enter token │ ctrl+d: delete account │ esc: back")
}

func (m mainLoopModel) viewProfileEdit() string {
	out := "Field            │ Value\n"
	out += "─────────────────┼──────────────────────────────────\n"
	out += "Name             │ [" + m.profileInputs[0].View() + "]\n"
	out += "New password     │ [" + m.profileInputs[1].View() + "]\n"
	out += "Current password │ [" + m.profileInputs[2].View() + "]\n"

	if m.profileSaving {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("EDIT PROFILE", strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewVerifyToken() string {
	out := "Token │ [" + m.verifyInput.View() + "]\n"

	if m.verifySaving {
		out += "\n[Verifying...]\n"
	} else {
		out += "\n[Verify email]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("VERIFY EMAIL", strings.TrimRight(out, "\n"), "esc: back │ enter: verify")
}

func (m mainLoopModel) viewSharedInput() string {
	out := "Share id │ [" + m.sharedInput.View() + "]\n"

	if m.sharedLoading {
		out += "\n[Opening...]\n"
	} else {
		out += "\n[Open shared deck]\n"
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("OPEN SHARED DECK", strings.TrimRight(out, "\n"), "esc: back │ enter: open")
}

// ── Commands ──────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadDecks() tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		return decksLoadedMsg{err: svc.Fetch(ctx)}
	}
}

func (m mainLoopModel) cmdLoadCards(deckID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FlashcardsService

	return func() tea.Msg {
		cards, err := svc.List(ctx, deckID)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m mainLoopModel) cmdCreateDeck(name, description string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		_, err := svc.Create(ctx, models.CreateDeckRequest{Name: name, Description: description})
		return deckSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateDeck(deckID, name, description string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		_, err := svc.Update(ctx, deckID, models.UpdateDeckRequest{
			Name:        &name,
			Description: &description,
		})
		return deckSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteDeck(deckID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		return deckDeletedMsg{err: svc.Delete(ctx, deckID)}
	}
}

func (m mainLoopModel) cmdGenerate(text string, opts models.GenerateOptions) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FlashcardsService

	return func() tea.Msg {
		err := svc.Generate(ctx, models.GenerateRequest{
			Text:         text,
			Count:        opts.Count,
			QuestionMode: opts.QuestionMode,
			Difficulty:   opts.Difficulty,
			DeckID:       opts.DeckID,
		})
		return generateDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdGenerateFromFile(path string, opts models.GenerateOptions) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FlashcardsService

	return func() tea.Msg {
		return generateDoneMsg{err: svc.GenerateFromFile(ctx, path, opts)}
	}
}

func (m mainLoopModel) cmdOpenShared(shareID string) tea.Cmd {
	ctx := m.ctx
	decks := m.services.DecksService
	flashcards := m.services.FlashcardsService

	return func() tea.Msg {
		deck, err := decks.Shared(ctx, shareID)
		if err != nil {
			return sharedLoadedMsg{err: err}
		}
		cards, err := flashcards.Shared(ctx, shareID)
		return sharedLoadedMsg{deck: deck, cards: cards, err: err}
	}
}

func (m mainLoopModel) cmdExport(deckID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		path, err := svc.ExportPDF(ctx, deckID)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m mainLoopModel) cmdShare(deckID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.DecksService

	return func() tea.Msg {
		url, err := svc.Share(ctx, deckID)
		return shareDoneMsg{url: url, err: err}
	}
}

func (m mainLoopModel) cmdUpdateProfile(req models.UpdateProfileRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		return profileUpdatedMsg{err: svc.UpdateProfile(ctx, req)}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		return accountDeletedMsg{err: svc.DeleteAccount(ctx)}
	}
}

func (m mainLoopModel) cmdVerifyEmail(token string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		message, err := svc.VerifyEmail(ctx, token)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m mainLoopModel) cmdResendVerification(email string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		message, err := svc.ResendVerification(ctx, email)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m mainLoopModel) cmdHealthTick() tea.Cmd {
	return tea.Tick(healthRefreshEvery, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

// ── Helpers ───────────────────────────────────────────────────────

func (m mainLoopModel) decks() []models.Deck {
	return m.services.DecksService.State().Decks
}

func (m mainLoopModel) current() (models.Deck, bool) {
	decks := m.decks()
	if len(decks) == 0 || m.idx < 0 || m.idx >= len(decks) {
		return models.Deck{}, false
	}
	return decks[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	decks := m.decks()
	if m.idx >= len(decks) {
		m.idx = len(decks) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) healthLine() string {
	state := m.services.HealthService.State()
	if state.CheckedAt.IsZero() {
		return helpStyle.Render("Backend: checking...")
	}
	if state.Healthy {
		return helpStyle.Render("Backend: " + state.Status)
	}
	if state.Status != "" {
		return errorStyle.Render("Backend: " + state.Status)
	}
	return errorStyle.Render("Backend: unreachable")
}

func generationStatus(state service.FlashcardsState) string {
	if len(state.Cards) == 0 {
		return "Flashcards generated"
	}
	return fmt.Sprintf("Generated %d flashcards", len(state.Cards))
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func memberFor(since time.Time) string {
	days := int(time.Since(since).Hours() / 24)
	switch {
	case days < 1:
		return "less than a day"
	case days == 1:
		return "1 day"
	case days < 60:
		return fmt.Sprintf("%d days", days)
	default:
		return fmt.Sprintf("%d months", days/30)
	}
}
