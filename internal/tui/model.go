package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyquest/internal/engine"
	"studyquest/internal/storage"
)

type boardModel struct {
	ctx  context.Context
	repo *engine.Repository

	width  int
	height int

	month int
	year  int

	user  storage.UserData
	tasks []storage.Task
	stats engine.MonthlyStats

	selected int

	lastLog string
	loading bool
}

type loadedMsg struct {
	user  storage.UserData
	tasks []storage.Task
	stats engine.MonthlyStats
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
}

func newBoardModel(ctx context.Context, repo *engine.Repository) boardModel {
	now := time.Now()
	return boardModel{
		ctx:     ctx,
		repo:    repo,
		month:   int(now.Month()),
		year:    now.Year(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	month, year := m.month, m.year
	return func() tea.Msg {
		state := m.repo.Load(m.ctx)
		return loadedMsg{
			user:  state.UserData,
			tasks: m.repo.TasksForPeriod(m.ctx, month, year),
			stats: m.repo.MonthlyStatistics(m.ctx, month, year),
		}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res := m.repo.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.user = msg.user
		m.tasks = msg.tasks
		m.stats = msg.stats
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.res == nil {
			m.lastLog = "Nothing to do."
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Completed: +%d pts (streak %d)", msg.res.PointsAwarded, msg.res.CurrentStreak)
		if msg.res.StreakRecord {
			m.lastLog += " — new longest streak!"
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
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "left", "h":
			m.month--
			if m.month < 1 {
				m.month = 12
				m.year--
			}
			m.selected = 0
			m.loading = true
			return m, m.loadCmd()
		case "right", "l":
			m.month++
			if m.month > 12 {
				m.month = 1
				m.year++
			}
			m.selected = 0
			m.loading = true
			return m, m.loadCmd()
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", t.Title)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
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

func (m boardModel) renderHeader() string {
	return fmt.Sprintf("StudyQuest | %s %d | 🪙 %d pts (lifetime %d) | 🔥 streak %d (best %d)",
		engine.MonthName(m.month), m.year,
		m.user.AvailablePoints, m.user.TotalPoints,
		m.user.CurrentStreak, m.user.LongestStreak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"This Month"}
	lines = append(lines, fmt.Sprintf("- tasks: %d/%d done", m.stats.CompletedTasks, m.stats.TotalTasks))
	lines = append(lines, fmt.Sprintf("- earned: %d pts", m.stats.PointsEarned))
	lines = append(lines, "- "+progressBar(m.stats.CompletionRate, 100, 14)+fmt.Sprintf(" %d%%", m.stats.CompletionRate))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- ←/→ or h/l: month")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Tasks")
	if len(m.tasks) == 0 {
		out = append(out, "(no tasks this month)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		due := ""
		if t.DueDate != nil && !t.Completed {
			due = " due " + t.DueDate.Format("Jan 2")
		}
		out = append(out, fmt.Sprintf("%s%s %s (%s, %d pts)%s", cursor, box, t.Title, t.Category, t.Points, due))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
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
