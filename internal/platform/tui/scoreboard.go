package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/square-chase/internal/storage"
)

const (
	maxScores  = 100 // History rows loaded into the table
	dateLayout = "Jan 02 15:04"
)

var boardStyle = struct {
	title, stats, frame, empty, help lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	stats: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),
	empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

type boardKeys struct {
	Up, Down, Back, Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

var defaultBoardKeys = boardKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Back: key.NewBinding(key.WithKeys("esc", "b", "tab"), key.WithHelp("esc/tab", "back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the finished rounds of one game, best first, under
// a line of statistics. Embedded in a game Model it closes instead of
// quitting the program.
type ScoreboardModel struct {
	gameID, title string
	store         *storage.Store

	scores  []storage.ScoreEntry
	stats   *storage.GameStats
	record  int
	loadErr error

	table table.Model
	help  help.Model

	width, height int
	embedded      bool
	quitting      bool
	closed        bool
}

// NewScoreboardModel loads the history of gameID. store may be nil.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.layout()
	return m
}

// load reads history, statistics and the stored record.
func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	m.scores, m.loadErr = m.store.TopScores(m.gameID, maxScores)
	if m.loadErr == nil {
		m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
	}
	m.record = m.store.Slot(storage.HighScoreRecord).Load()
}

// layout rebuilds the table for the current size.
func (m *ScoreboardModel) layout() {
	scoreW, dateW := 10, 18
	if room := m.width - 4; room > 40 {
		scoreW, dateW = 12, min(room-22, 20)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(dateLayout)}
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: scoreW},
			{Title: "Date", Width: dateW},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
		table.WithStyles(styles),
	)
	m.help.Width = m.width
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultBoardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, defaultBoardKeys.Back):
			m.closed = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, defaultBoardKeys.Up, defaultBoardKeys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	}
	return m, nil
}

func (m ScoreboardModel) View() string {
	if m.quitting || (m.closed && !m.embedded) {
		return ""
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardStyle.empty.Render("No scores recorded yet.\nPlay a round to set one!")
	}

	return strings.Join([]string{
		boardStyle.title.Render(centerText("HIGH SCORES - "+m.title, m.width)),
		"",
		boardStyle.stats.Render(centerText(m.statsLine(), m.width)),
		"",
		boardStyle.frame.Render(body),
		boardStyle.help.Render(m.help.View(defaultBoardKeys)),
	}, "\n")
}

// statsLine summarizes the history in one line.
func (m ScoreboardModel) statsLine() string {
	switch {
	case m.store == nil:
		return "Scores are not being saved"
	case m.loadErr != nil:
		return "Cannot load scores: " + m.loadErr.Error()
	case m.stats == nil || m.stats.GamesCount == 0:
		return fmt.Sprintf("Best: %d", m.record)
	}

	line := fmt.Sprintf("Best: %d   Games: %d   Average: %.1f",
		max(m.record, m.stats.HighScore), m.stats.GamesCount, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "   Last: " + m.stats.LastPlayed.Format(dateLayout)
	}
	return line
}

// Closed reports whether the user left the scoreboard.
func (m ScoreboardModel) Closed() bool { return m.closed }

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard as its own program.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, gameID, title, width, height), tea.WithAltScreen()).Run()
	return err
}

func centerText(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}
