package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-blocks/internal/storage"
)

// Session log layout constants
const (
	maxSessions   = 50 // Max sessions to load
	logMinHeight  = 5  // Smallest table body
	logChromeRows = 9  // Title, border, header and hint around the table
)

// sessionLog is the overlay listing the sessions played in this process.
// It shows either the newest sessions or the best ones; b switches.
type sessionLog struct {
	store   *storage.Store
	gameID  string
	best    bool
	total   int
	records []storage.SessionRecord
	table   table.Model
	width   int
	height  int
}

// newSessionLog creates the overlay. store may be nil.
func newSessionLog(store *storage.Store, gameID string, width, height int) sessionLog {
	l := sessionLog{
		store:  store,
		gameID: gameID,
		width:  width,
		height: height,
	}
	l.table = l.createTable()
	return l
}

// createTable creates a new table sized to the terminal.
func (l *sessionLog) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 10},
		{Title: "Mode", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "End", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(l.height-logChromeRows, logMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// refresh reloads the current view from the store.
func (l *sessionLog) refresh() {
	l.records = nil
	l.total = 0
	if l.store != nil {
		load := l.store.RecentSessions
		if l.best {
			load = l.store.TopSessions
		}
		if records, err := load(l.gameID, maxSessions); err == nil {
			l.records = records
		}
		if n, err := l.store.Count(l.gameID); err == nil {
			l.total = n
		}
	}
	l.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (l *sessionLog) updateTableRows() {
	rows := make([]table.Row, len(l.records))
	for i, r := range l.records {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Player,
			r.Mode,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.Reason,
		}
	}
	l.table.SetRows(rows)
	l.table.GotoTop()
}

// resize adapts the table to a new terminal size.
func (l *sessionLog) resize(width, height int) {
	l.width = width
	l.height = height
	l.table = l.createTable()
	l.updateTableRows()
}

// update switches between recent and best on b and passes
// scrolling keys to the table.
func (l sessionLog) update(msg tea.Msg) (sessionLog, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "b" {
		l.best = !l.best
		l.refresh()
		return l, nil
	}

	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// view renders the overlay centered on the terminal.
func (l sessionLog) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(l.title()))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(l.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No sessions yet.\nFinish a game to see it here!")))
	} else {
		b.WriteString(tableStyle.Render(l.table.View()))
	}

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("b: recent/best • tab/esc: close"))

	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, b.String())
}

// title names the current view and the number of sessions played.
func (l sessionLog) title() string {
	view := "RECENT"
	if l.best {
		view = "BEST"
	}
	return fmt.Sprintf("SESSION LOG - %s (%d played)", view, l.total)
}
