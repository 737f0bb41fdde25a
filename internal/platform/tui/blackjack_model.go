package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tectra-games/tectra-arcade/internal/config"
	"github.com/tectra-games/tectra-arcade/internal/games/blackjack"
	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

// blackjackKeyMap defines the key bindings for the blackjack table.
type blackjackKeyMap struct {
	Deal    key.Binding
	Hit     key.Binding
	Stand   key.Binding
	Next    key.Binding
	BetUp   key.Binding
	BetDown key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newBlackjackKeyMap() blackjackKeyMap {
	return blackjackKeyMap{
		Deal: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("enter", "deal"),
		),
		Hit: key.NewBinding(
			key.WithKeys("h", " "),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "n"),
			key.WithHelp("enter", "next round"),
		),
		BetUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise bet"),
		),
		BetDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower bet"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k blackjackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, k.Hit, k.Stand, k.BetUp, k.BetDown, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k blackjackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Deal, k.Hit, k.Stand, k.Next},
		{k.BetUp, k.BetDown, k.Back, k.Quit},
	}
}

// Blackjack table styles.
var (
	bjTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	bjLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	bjCoinStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	bjCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))
	bjRedCardStyle = bjCardStyle.Foreground(lipgloss.Color("9"))
	bjHoleStyle    = bjCardStyle.Foreground(lipgloss.Color("13"))

	bjWinStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	bjLoseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	bjPushStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	bjErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// BlackjackModel is the Bubble Tea model for a blackjack table.
type BlackjackModel struct {
	table      *blackjack.Table
	keys       blackjackKeyMap
	help       help.Model
	width      int
	errText    string
	quitting   bool
	backToMenu bool
}

// NewBlackjackModel creates a model around an existing table.
func NewBlackjackModel(table *blackjack.Table) BlackjackModel {
	return BlackjackModel{
		table: table,
		keys:  newBlackjackKeyMap(),
		help:  help.New(),
		width: 80,
	}
}

// Init implements tea.Model.
func (m BlackjackModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the table.
func (m BlackjackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes input by round phase.
func (m BlackjackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.table.Phase() != blackjack.PhasePlayerTurn {
			m.backToMenu = true
		}
		return m, nil
	}

	switch m.table.Phase() {
	case blackjack.PhaseBetting:
		switch {
		case key.Matches(msg, m.keys.BetUp):
			m.apply(m.table.AdjustBet(m.table.BetStep()))
		case key.Matches(msg, m.keys.BetDown):
			m.apply(m.table.AdjustBet(-m.table.BetStep()))
		case key.Matches(msg, m.keys.Deal):
			m.apply(m.table.Deal())
		}
	case blackjack.PhasePlayerTurn:
		switch {
		case key.Matches(msg, m.keys.Hit):
			m.apply(m.table.Hit())
		case key.Matches(msg, m.keys.Stand):
			m.apply(m.table.Stand())
		}
	case blackjack.PhaseResolved:
		if key.Matches(msg, m.keys.Next) {
			m.apply(m.table.NextRound())
		}
	}

	return m, nil
}

// apply records an action error for display. Phase errors are expected when
// keys overlap between phases and are not shown.
func (m *BlackjackModel) apply(err error) {
	if err == nil || err == blackjack.ErrWrongPhase {
		return
	}
	m.errText = err.Error()
}

// View renders the table.
func (m BlackjackModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(bjTitleStyle.Render("  TECTRA BLACKJACK  "))
	b.WriteString("\n\n")

	b.WriteString(bjCoinStyle.Render(fmt.Sprintf("Coins: %d", m.table.TotalCoins())))
	b.WriteString(bjLabelStyle.Render(fmt.Sprintf("   Bet: %d", m.table.Bet())))
	b.WriteString("\n\n")

	b.WriteString(bjLabelStyle.Render("Dealer"))
	if m.table.Phase() != blackjack.PhaseBetting {
		if m.table.HoleConcealed() {
			b.WriteString("  score: ?")
		} else {
			b.WriteString(fmt.Sprintf("  score: %d", m.table.DealerScore()))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.renderDealerRow())
	b.WriteString("\n\n")

	b.WriteString(bjLabelStyle.Render("You"))
	if m.table.Phase() != blackjack.PhaseBetting {
		b.WriteString(fmt.Sprintf("  score: %d", m.table.PlayerScore()))
	}
	b.WriteString("\n")
	b.WriteString(renderCards(m.table.PlayerCards()))
	b.WriteString("\n\n")

	if msg := m.table.Message(); msg != "" && m.table.Phase() == blackjack.PhaseResolved {
		b.WriteString(m.outcomeStyle().Render(msg))
		b.WriteString("\n\n")
	}
	if m.errText != "" {
		b.WriteString(bjErrStyle.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderDealerRow shows the dealer's up-card plus a face-down card during
// the player's turn, and the full hand otherwise.
func (m BlackjackModel) renderDealerRow() string {
	if m.table.Phase() == blackjack.PhaseBetting {
		return bjLabelStyle.Render("Place your bet to start the round")
	}

	cards := make([]string, 0, len(m.table.DealerCards()))
	for _, c := range m.table.VisibleDealerCards() {
		cards = append(cards, renderCard(c))
	}
	if m.table.HoleConcealed() {
		cards = append(cards, bjHoleStyle.Render("?"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderCards lays a hand out horizontally.
func renderCards(cards []blackjack.Card) string {
	if len(cards) == 0 {
		return bjLabelStyle.Render("Cards are dealt when the round starts")
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, renderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderCard draws one card, red suits in red.
func renderCard(c blackjack.Card) string {
	if c.Red() {
		return bjRedCardStyle.Render(c.String())
	}
	return bjCardStyle.Render(c.String())
}

// outcomeStyle picks the banner style for the round result.
func (m BlackjackModel) outcomeStyle() lipgloss.Style {
	switch m.table.Outcome() {
	case blackjack.OutcomeWin:
		return bjWinStyle
	case blackjack.OutcomeLose:
		return bjLoseStyle
	default:
		return bjPushStyle
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m BlackjackModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m BlackjackModel) BackToMenu() bool {
	return m.backToMenu
}

// RunBlackjack starts a standalone blackjack session for the given wallet.
func RunBlackjack(cfg config.BlackjackConfig, store *wallet.Store, walletID string, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	table, err := blackjack.NewTable(cfg, store, walletID, seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewBlackjackModel(table),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
