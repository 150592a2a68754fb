package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
	"github.com/inkwise/writertools/internal/parser"
)

// timerPhase tracks where the user is in the session workflow.
type timerPhase int

const (
	phaseRunning timerPhase = iota
	phaseFinishing
	phaseDone
)

// TimerModel is the terminal session timer. It mirrors the web timer
// workflow: the session record already exists in progress, and finishing
// closes it out with an end time and word count.
type TimerModel struct {
	width  int
	height int

	user    *models.User
	project *models.Project
	session *models.WorkSession

	phase       timerPhase
	elapsedTime time.Duration
	startedAt   time.Time

	wordInput textinput.Model
	inputErr  string

	// Set once the session has been closed out.
	finished *models.WorkSession
	// True when the user left without finishing; the session stays in
	// progress and can be closed out from the web form later.
	abandoned bool

	err error
}

// timerTickMsg is sent every second to update the clock
type timerTickMsg struct{}

// NewTimerModel creates the timer model for an in-progress session.
func NewTimerModel(user *models.User, project *models.Project, session *models.WorkSession, startedAt time.Time) TimerModel {
	input := textinput.New()
	input.Placeholder = "words written (blank to skip)"
	input.CharLimit = 7
	input.Width = 30

	return TimerModel{
		user:      user,
		project:   project,
		session:   session,
		startedAt: startedAt,
		wordInput: input,
	}
}

// Init starts the clock ticker
func (m TimerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsedTime = time.Since(m.startedAt)
		if m.phase == phaseDone {
			return m, nil
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseRunning:
			switch msg.String() {
			case "f", "F", "s", "S":
				// Stop the clock and ask for the word count
				m.phase = phaseFinishing
				m.elapsedTime = time.Since(m.startedAt)
				m.wordInput.Focus()
				return m, textinput.Blink
			case "ctrl+c", "esc", "q":
				// Leave the session in progress
				m.abandoned = true
				m.phase = phaseDone
				return m, tea.Quit
			}

		case phaseFinishing:
			switch msg.String() {
			case "enter":
				return m.finishSession()
			case "esc":
				// Back to the running clock
				m.phase = phaseRunning
				m.wordInput.Blur()
				return m, tick()
			case "ctrl+c":
				m.abandoned = true
				m.phase = phaseDone
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.wordInput, cmd = m.wordInput.Update(msg)
				return m, cmd
			}
		}
	}

	return m, nil
}

// finishSession closes out the session through the same service path the web
// form uses, deriving the duration from the recorded start and end times.
func (m TimerModel) finishSession() (tea.Model, tea.Cmd) {
	wordCount, err := parser.ParseWordCount(m.wordInput.Value())
	if err != nil {
		m.inputErr = err.Error()
		return m, nil
	}
	m.inputErr = ""

	now := time.Now()
	end := models.Clock{Hour: now.Hour(), Minute: now.Minute()}
	endDate := models.DateOf(now)

	req := db.LogWorkRequest{
		UserID:    m.user.ID,
		StartDate: m.session.StartDate,
		StartTime: m.session.StartTime,
		EndDate:   &endDate,
		EndTime:   &end,
		WordCount: wordCount,
		Activity:  models.ActivityDrafting,
	}
	if m.project != nil {
		req.ProjectID = &m.project.ID
	}

	finished, err := db.FinishSession(m.user.ID, m.session.ID, req)
	if err != nil {
		m.err = err
		m.phase = phaseDone
		return m, tea.Quit
	}

	m.finished = finished
	m.phase = phaseDone
	return m, tea.Quit
}

// View renders the timer
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  WRITING SESSION  ⏱"))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)
	projectName := "no project"
	if m.project != nil {
		projectName = m.project.Name
	}
	components = append(components, detailStyle.Render(
		fmt.Sprintf("%s · %s", m.user.Username, projectName)))

	components = append(components, m.renderBigClock())

	startInfo := fmt.Sprintf("Started at %s", m.startedAt.Format("15:04:05"))
	startStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, startStyle.Render(startInfo))

	if m.phase == phaseFinishing {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, promptStyle.Render("How many words did you write?"))

		inputStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1)
		centered := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width)
		components = append(components, centered.Render(inputStyle.Render(m.wordInput.View())))

		if m.inputErr != "" {
			errStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError)).
				Align(lipgloss.Center).
				Width(m.width)
			components = append(components, errStyle.Render(m.inputErr))
		}
	}

	content := strings.Join(components, "\n\n")
	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(lipgloss.Left, panelStyle.Render(content), helpBar)
}

// renderBigClock renders the elapsed time as ASCII art digits
func (m TimerModel) renderBigClock() string {
	duration := m.elapsedTime
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	var timeStr string
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if art, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(art[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var rendered [5]string
	centered := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width)
	for i := 0; i < 5; i++ {
		rendered[i] = centered.Render(clockStyle.Render(lines[i].String()))
	}
	return strings.Join(rendered[:], "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch m.phase {
	case phaseFinishing:
		helpText = "enter save · esc back to timer · ctrl+c leave session open"
	default:
		helpText = "f finish & log words · esc/q leave session open · ctrl+c force quit"
	}

	return helpStyle.Render(helpText)
}

// RunSessionTimer starts an in-progress session for the user and runs the
// terminal timer against it.
func RunSessionTimer(user *models.User, project *models.Project) error {
	now := time.Now()
	session, err := db.StartTimerSession(user.ID, now)
	if err != nil {
		return err
	}

	model := NewTimerModel(user, project, session, now)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(TimerModel)
	switch {
	case m.err != nil:
		return m.err
	case m.finished != nil:
		fmt.Printf("⏹️  Session #%d saved (%s", m.finished.ID, formatDuration(m.finished.Duration()))
		if m.finished.WordCount != nil {
			fmt.Printf(", %d words", *m.finished.WordCount)
		}
		fmt.Printf(")\n")
	case m.abandoned:
		fmt.Printf("\n💡 Session #%d is still in progress.\n", session.ID)
		fmt.Printf("   Close it out from the log-work page or run the timer again.\n")
	}

	return nil
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
