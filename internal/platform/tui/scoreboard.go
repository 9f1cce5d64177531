package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

const (
	scoreboardRows = 100 // Runs loaded per edition
	narrowTable    = 60  // Below this width the table drops its last columns
)

var numbers = message.NewPrinter(language.English)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonDim).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(neonMuted).
			Padding(0, 1)
	activeTabStyle = selectedStyle.
			Padding(0, 1)
)

var runColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 10},
	{Title: "Mult", Width: 5},
	{Title: "Ended by", Width: 10},
	{Title: "Ticks", Width: 8},
	{Title: "Time", Width: 8},
}

// scoreboard lists the runs recorded this session, one edition at a time.
type scoreboard struct {
	editions []registry.GameInfo
	current  int
	store    *storage.Store
	stats    storage.Stats
	runs     table.Model
	help     help.Model
	keys     ScoreKeyMap
	width    int
	height   int
	back     bool
	done     bool
}

func newScoreboard(store *storage.Store, width, height int) scoreboard {
	sb := scoreboard{
		editions: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     DefaultScoreKeyMap(),
	}
	sb.resize(width, height)
	sb.load()
	return sb
}

// resize rebuilds the table for a new terminal size.
func (sb *scoreboard) resize(width, height int) {
	sb.width, sb.height = width, height
	sb.help.Width = width

	cols := runColumns
	if width < narrowTable {
		cols = runColumns[:4]
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(neonDim).
		BorderBottom(true).
		Foreground(neonPink)
	styles.Selected = selectedStyle

	rows := sb.runs.Rows()
	sb.runs = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 3)),
		table.WithStyles(styles),
	)
	sb.runs.SetRows(trimRows(rows, len(cols)))
}

// load reads the selected edition's runs and stats from the ledger.
func (sb *scoreboard) load() {
	sb.stats = storage.Stats{}
	var rows []table.Row
	if sb.store != nil && len(sb.editions) > 0 {
		edition := sb.editions[sb.current].ID
		sb.stats, _ = sb.store.Stats(edition)
		runs, _ := sb.store.TopRuns(edition, scoreboardRows)
		for i, r := range runs {
			rows = append(rows, runRow(i+1, r))
		}
	}
	sb.runs.SetRows(trimRows(rows, len(sb.runs.Columns())))
	sb.runs.GotoTop()
}

func runRow(rank int, r storage.Run) table.Row {
	return table.Row{
		fmt.Sprint(rank),
		numbers.Sprintf("%d", r.FinalScore),
		fmt.Sprintf("x%d", r.Multiplier),
		r.Cause,
		numbers.Sprintf("%d", r.Frames),
		r.CreatedAt.Format("15:04:05"),
	}
}

func trimRows(rows []table.Row, cols int) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = r[:min(cols, len(r))]
	}
	return out
}

func (sb scoreboard) Init() tea.Cmd {
	return nil
}

func (sb scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sb.resize(msg.Width, msg.Height)
		return sb, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, sb.keys.Quit):
			sb.done = true
			return sb, tea.Quit
		case key.Matches(msg, sb.keys.Back):
			sb.done, sb.back = true, true
			return sb, tea.Quit
		case key.Matches(msg, sb.keys.Next):
			sb.cycle(1)
			return sb, nil
		case key.Matches(msg, sb.keys.Prev):
			sb.cycle(-1)
			return sb, nil
		}
	}

	var cmd tea.Cmd
	sb.runs, cmd = sb.runs.Update(msg)
	return sb, cmd
}

// cycle moves the edition selection by step, wrapping around.
func (sb *scoreboard) cycle(step int) {
	n := len(sb.editions)
	if n == 0 {
		return
	}
	sb.current = (sb.current + step + n) % n
	sb.load()
}

func (sb scoreboard) View() string {
	if sb.done {
		return ""
	}

	tabs := make([]string, len(sb.editions))
	for i, e := range sb.editions {
		if i == sb.current {
			tabs[i] = activeTabStyle.Render(e.ID)
		} else {
			tabs[i] = tabStyle.Render(e.ID)
		}
	}

	body := mutedStyle.Italic(true).Render("No runs this session.\nScores live until you quit.")
	if len(sb.runs.Rows()) > 0 {
		body = sb.runs.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		"",
		neonTitleStyle.Render("SESSION SCORES"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		mutedStyle.Render(sb.statsLine()),
		"",
		panelStyle.Render(body),
		"",
		sb.help.View(sb.keys),
	)
	return lipgloss.PlaceHorizontal(sb.width, lipgloss.Center, page)
}

// statsLine summarizes the selected edition.
func (sb scoreboard) statsLine() string {
	if sb.stats.Runs == 0 {
		return "no runs yet"
	}
	return numbers.Sprintf("%d runs  best %d  avg %.0f  %d ticks survived",
		sb.stats.Runs, sb.stats.Best, sb.stats.AvgScore, sb.stats.TotalFrames)
}

// RunScoreboard shows the session scoreboard. It reports whether the player
// asked to go back to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(newScoreboard(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	sb, ok := final.(scoreboard)
	return ok && sb.back, nil
}
