package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

const menuCardWidth = 44

// MenuItem is one edition card in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
	Best   int // Best final score this session
}

var editionBlurbs = map[string]string{
	string(config.EditionClassic): "Orbs add 50 points. No effects.",
	string(config.EditionGlow):    "Orbs raise the multiplier. Neon glow.",
	string(config.EditionCosmos):  "Drifting platforms under a starfield.",
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonDim).
			Width(menuCardWidth).
			Padding(0, 1)
	activeCardStyle = cardStyle.
			BorderForeground(neonPink)
)

// MenuResult is what the picker hands back to the caller.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig // Carries any resize seen while open
	WantsScoreboard bool
	Quit            bool
}

// MenuModel is the Bubble Tea model for the edition picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	keys   MenuKeyMap
	help   help.Model
	result MenuResult
	done   bool
}

// NewMenuModel lists the registered editions. Best scores come from the
// ledger when store is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Blurb: editionBlurbs[g.ID]}
		if store != nil {
			if best, err := store.Best(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		result: MenuResult{Config: cfg},
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.result.Config.ScreenW = msg.Width
		m.result.Config.ScreenH = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.finish(func(r *MenuResult) { r.Quit = true })
		case key.Matches(msg, m.keys.Scores):
			return m.finish(func(r *MenuResult) { r.WantsScoreboard = true })
		case key.Matches(msg, m.keys.Select) && len(m.items) > 0:
			id := m.items[m.cursor].GameID
			return m.finish(func(r *MenuResult) { r.GameID = id })
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(m.items)-1)
		}
	}
	return m, nil
}

// finish records the outcome and stops the program.
func (m MenuModel) finish(set func(*MenuResult)) (tea.Model, tea.Cmd) {
	set(&m.result)
	m.done = true
	return m, tea.Quit
}

// Result returns the outcome. A picker that closed without a choice
// reports Quit.
func (m MenuModel) Result() MenuResult {
	r := m.result
	if r.GameID == "" && !r.WantsScoreboard {
		r.Quit = true
	}
	return r
}

func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	width := m.result.Config.ScreenW

	var cards []string
	for i, item := range m.items {
		style, title := cardStyle, mutedStyle.Render(item.Title)
		if i == m.cursor {
			style, title = activeCardStyle, accentStyle.Render("> "+item.Title)
		}
		body := title + "\n" + item.Blurb
		if item.Best > 0 {
			body += "\n" + numbers.Sprintf("best %d", item.Best)
		}
		cards = append(cards, style.Render(body))
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		"",
		neonTitleStyle.Render("N E O N   R U N N E R"),
		mutedStyle.Render("pick an edition"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		"",
		m.help.View(m.keys),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, page)
}

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu shows the edition picker until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
