package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tectra-games/tectra-arcade/internal/config"
	"github.com/tectra-games/tectra-arcade/internal/core"
	"github.com/tectra-games/tectra-arcade/internal/games/blackjack"
	"github.com/tectra-games/tectra-arcade/internal/registry"
	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

// BlackjackID is the menu identifier for the blackjack table. Blackjack is
// turn-based and wallet-bound, so it lives outside the tick-driven registry.
const BlackjackID = "blackjack"

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	walletID  string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	notice    string
	selected  *MenuItem // Set when user selects a game
}

// NewMenuModel creates a new menu model listing every registered game plus
// the blackjack table.
func NewMenuModel(walletID string, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)

	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	items = append(items, MenuItem{GameID: BlackjackID, Title: "Tectra Blackjack"})

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		walletID:  walletID,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			if selected.GameID == BlackjackID && m.walletID == "" {
				m.notice = "Blackjack needs a wallet: restart with --wallet <id>"
				return m, nil
			}
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  T E C T R A   A R C A D E  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := "Select a game"
	if m.walletID != "" {
		subtitle = fmt.Sprintf("Wallet %s  |  Select a game", m.walletID)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// This is the top-level model for both local menu mode and SSH sessions.
type SessionModel struct {
	store     *wallet.Store
	config    core.RuntimeConfig
	walletID  string
	sessionID string
	menu      MenuModel
	gameModel *GameModel
	bjModel   *BlackjackModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *wallet.Store, cfg core.RuntimeConfig, walletID, sessionID string) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		walletID:  walletID,
		sessionID: sessionID,
		menu:      NewMenuModel(walletID, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.bjModel != nil:
		return m.updateBlackjack(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config() // Get possibly updated config from resize

	if selected.GameID == BlackjackID {
		bjCfg, err := config.LoadBlackjack("")
		if err != nil {
			bjCfg = config.DefaultBlackjackConfig()
		}
		table, err := blackjack.NewTable(bjCfg, m.store, m.walletID, time.Now().UnixNano())
		if err != nil {
			m.menu = NewMenuModel(m.walletID, m.config)
			return m, m.menu.Init()
		}
		bj := NewBlackjackModel(table)
		m.bjModel = &bj
		return m, m.bjModel.Init()
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		return m, nil
	}

	gameModel := NewGameModel(game, m.store, m.walletID, m.config)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when inside a tick-driven game.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.walletID, m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateBlackjack handles updates when at the blackjack table.
func (m SessionModel) updateBlackjack(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.bjModel.Update(msg)
	if bjModel, ok := newModel.(BlackjackModel); ok {
		m.bjModel = &bjModel
	}

	if m.bjModel.BackToMenu() {
		m.bjModel = nil
		m.menu = NewMenuModel(m.walletID, m.config)
		return m, m.menu.Init()
	}

	if m.bjModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.bjModel != nil:
		return m.bjModel.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the menu-driven session flow locally.
func RunSession(store *wallet.Store, cfg core.RuntimeConfig, walletID, sessionID string) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, walletID, sessionID),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
