package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gamelife/internal/engine"
)

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	day      engine.Day
	hasDay   bool
	stats    engine.Stats
	profile  engine.Profile
	diamonds int
	quests   []engine.Quest

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	day      engine.Day
	hasDay   bool
	stats    engine.Stats
	profile  engine.Profile
	diamonds int
	quests   []engine.Quest
}

type actionMsg struct {
	log string
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		m.svc.SyncDayForToday()
		day, hasDay := m.svc.Today()
		return loadedMsg{
			day:      day,
			hasDay:   hasDay,
			stats:    m.svc.CurrentStats(),
			profile:  m.svc.Profile(),
			diamonds: m.svc.Diamonds(),
			quests:   m.svc.TodayQuests(),
		}
	}
}

func (m dashboardModel) actionCmd(log string, fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		if err := m.svc.Save(m.ctx); err != nil {
			return actionMsg{log: log, err: err}
		}
		return actionMsg{log: log}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.day = msg.day
		m.hasDay = msg.hasDay
		m.stats = msg.stats
		m.profile = msg.profile
		m.diamonds = msg.diamonds
		m.quests = msg.quests
		if m.selected >= len(m.quests) {
			m.selected = len(m.quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = msg.log + " (save failed: " + msg.err.Error() + ")"
		} else {
			m.lastLog = msg.log
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "s":
			if m.hasDay && m.day.Status == engine.DayActive {
				m.lastLog = "Day already active."
				return m, nil
			}
			stats := m.stats
			return m, m.actionCmd("Day started.", func() {
				m.svc.StartDay(stats, "")
			})
		case "c", " ":
			q, ok := m.selectedQuest()
			if !ok {
				return m, nil
			}
			if q.Status != engine.StatusActive {
				m.lastLog = "Select an active quest to complete."
				return m, nil
			}
			id := q.ID
			return m, m.actionCmd("Completed "+q.Title+".", func() {
				m.svc.CompleteQuest(id)
			})
		case "f":
			q, ok := m.selectedQuest()
			if !ok {
				return m, nil
			}
			if q.Status != engine.StatusActive && q.Status != engine.StatusPlanned {
				m.lastLog = "Select a pending quest to fail."
				return m, nil
			}
			id := q.ID
			return m, m.actionCmd("Failed "+q.Title+".", func() {
				m.svc.FailQuest(id, 0)
			})
		case "m":
			q, ok := m.selectedQuest()
			if !ok {
				return m, nil
			}
			id := q.ID
			return m, m.actionCmd("Main quest: "+q.Title+".", func() {
				m.svc.SetMainQuest(id)
			})
		}
	}
	return m, nil
}

func (m dashboardModel) selectedQuest() (engine.Quest, bool) {
	if m.selected < 0 || m.selected >= len(m.quests) {
		return engine.Quest{}, false
	}
	return m.quests[m.selected], true
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	dayStatus := "no day"
	theme := ""
	if m.hasDay {
		dayStatus = string(m.day.Status)
		theme = strings.ReplaceAll(string(m.day.Theme), "_", " ")
	}
	return fmt.Sprintf("GameLife | Level %d | XP %d | 💎 %d | Day: %s (%s)",
		m.profile.Level, m.profile.XPTotal, m.diamonds, dayStatus, theme)
}

func (m dashboardModel) renderSidebar() string {
	lines := []string{"Stats"}
	lines = append(lines, renderStat("Mood", m.stats.Mood))
	lines = append(lines, renderStat("Energy", m.stats.Energy))
	lines = append(lines, renderStat("Motiv", m.stats.Motivation))
	lines = append(lines, renderStat("Stress", m.stats.Stress))
	lines = append(lines, renderStat("Moment", m.stats.Momentum))
	lines = append(lines, fmt.Sprintf("- Money  $%d", m.stats.Money))
	lines = append(lines, fmt.Sprintf("- Sleep  %dh", m.stats.SleepHours))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- s: start day")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- f: fail")
	lines = append(lines, "- m: main quest")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today's Quests")
	if !m.hasDay || m.day.Status != engine.DayActive {
		out = append(out, "(day not started — press s)")
		return strings.Join(out, "\n")
	}
	if len(m.quests) == 0 {
		out = append(out, "(nothing planned for today)")
		return strings.Join(out, "\n")
	}
	for i, q := range m.quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		star := ""
		if q.IsMainQuest {
			star = "★ "
		}
		out = append(out, fmt.Sprintf("%s%s%s [%s] (xp=%d)", cursor, star, q.Title, q.Status, q.Rewards.XP))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func renderStat(label string, value int) string {
	return fmt.Sprintf("- %-6s %s %d", label, progressBar(value, 100, 10), value)
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
