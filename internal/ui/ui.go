package ui

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/strandedsim/stranded-tui/internal/engine"
	"github.com/strandedsim/stranded-tui/internal/knowledge"
	"github.com/strandedsim/stranded-tui/internal/text"
	"github.com/strandedsim/stranded-tui/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewBriefing = "briefing"
	viewScene    = "scene"
	viewOutcome  = "outcome"
	viewTimeline = "timeline"
	viewDebrief  = "debrief"
	viewHelp     = "help"
)

// RunArchiver mirrors runs and their turns into durable storage. Nil disables
// archiving; errors land in the status line and never block play.
type RunArchiver interface {
	StartRun(ctx context.Context, seed string, sc engine.Scenario) error
	RecordTurn(ctx context.Context, turn int, out engine.DecisionOutcome, m engine.PlayerMetrics) error
	FinishRun(ctx context.Context, s engine.GameState) error
}

var seedEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

func randomSeedText() string {
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "fallback-seed"
	}
	return strings.ToLower(seedEncoding.EncodeToString(buf))
}

type model struct {
	ctx      context.Context
	cfg      util.Config
	tracker  *knowledge.Tracker
	narrator text.Narrator
	archive  RunArchiver

	controller *engine.Controller
	seedText   string
	state      engine.GameState
	decisions  []engine.Decision

	view     string
	md       string // rendered markdown of the active view
	timeline strings.Builder
	vp       viewport.Model
	vpReady  bool
	theme    string
	status   string

	width  int
	height int

	styles struct {
		title  lipgloss.Style
		status lipgloss.Style
		footer lipgloss.Style
	}
}

func initialModel(ctx context.Context, tracker *knowledge.Tracker, narrator text.Narrator, archive RunArchiver, cfg util.Config) model {
	m := model{
		ctx:     ctx,
		cfg:     cfg,
		tracker: tracker,
		// The template narrator backstops whatever narrator was injected, so
		// a view is always rendered even when the primary fails.
		narrator: text.WithFallback(narrator, text.NewTemplateNarrator()),
		archive:  archive,
		view:     viewMainMenu,
		theme:    cfg.Theme,
	}
	m.applyTheme()
	return m
}

func (m *model) applyTheme() {
	p := paletteFor(m.theme)
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	m.styles.status = lipgloss.NewStyle().Foreground(p.Warning)
	m.styles.footer = lipgloss.NewStyle().Foreground(p.Muted)
}

func (m model) Init() tea.Cmd { return nil }

func renderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// startRun seeds a controller and generates the opening scenario.
func (m *model) startRun() {
	m.seedText = strings.TrimSpace(m.cfg.SeedText)
	if m.seedText == "" {
		m.seedText = randomSeedText()
	}
	seed, err := engine.NewRunSeed(m.seedText)
	if err != nil {
		seed, _ = engine.NewRunSeed("fallback-seed")
	}
	m.controller = engine.NewController(m.tracker, seed)
	m.state = m.controller.CreateNewGame()
	m.timeline.Reset()

	md, _ := m.narrator.Briefing(m.ctx, m.state.Scenario)
	m.md = renderMarkdown(md, m.width)
	m.view = viewBriefing
	m.status = fmt.Sprintf("seed: %s", m.seedText)

	if m.archive != nil {
		if err := m.archive.StartRun(m.ctx, m.seedText, m.state.Scenario); err != nil {
			m.status = "archive: " + err.Error()
		}
	}
}

// enterScene regenerates the decision list and renders the turn.
func (m *model) enterScene() {
	m.decisions = m.controller.AvailableDecisions(m.state)
	md, _ := m.narrator.Scene(m.ctx, m.state, m.decisions)
	m.md = renderMarkdown(md, m.width)
	m.view = viewScene
}

// choose resolves the numbered decision and shows its outcome, or the
// debrief when the run ends on this turn.
func (m *model) choose(idx int) {
	if idx < 0 || idx >= len(m.decisions) {
		return
	}
	next, err := m.controller.MakeDecision(m.state, m.decisions[idx])
	if err != nil {
		m.status = err.Error()
		return
	}
	m.state = next
	out := next.History[len(next.History)-1]
	rescue := engine.CalculateRescueStatus(next)

	if m.archive != nil {
		// TurnNumber already points at the next turn; the resolved one is
		// behind it.
		if err := m.archive.RecordTurn(m.ctx, next.TurnNumber-1, out, next.Metrics); err != nil {
			m.status = "archive: " + err.Error()
		}
	}

	md, _ := m.narrator.Outcome(m.ctx, out, rescue)
	m.timeline.WriteString(md)
	m.timeline.WriteString("\n---\n")

	if next.Status == engine.StatusEnded {
		if m.archive != nil {
			if err := m.archive.FinishRun(m.ctx, next); err != nil {
				m.status = "archive: " + err.Error()
			}
		}
		debrief, _ := m.narrator.Debrief(m.ctx, next, m.tracker.TotalStats())
		m.md = renderMarkdown(md+"\n"+debrief, m.width)
		m.view = viewDebrief
		return
	}
	m.md = renderMarkdown(md, m.width)
	m.view = viewOutcome
}

func (m *model) enterTimeline() {
	content := m.timeline.String()
	if content == "" {
		content = "Nothing has happened yet."
	}
	if !m.vpReady {
		m.vp = viewport.New(m.width, m.height-4)
		m.vpReady = true
	}
	m.vp.Width = m.width
	m.vp.Height = m.height - 4
	m.vp.SetContent(renderMarkdown(content, m.width))
	m.vp.GotoBottom()
	m.view = viewTimeline
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.vpReady {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 4
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewMainMenu:
		switch key {
		case "n":
			m.startRun()
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.applyTheme()
		case "h", "?":
			m.view = viewHelp
		case "q":
			return m, tea.Quit
		}
	case viewBriefing:
		switch key {
		case "enter", " ":
			m.enterScene()
		case "q", "esc":
			m.view = viewMainMenu
		}
	case viewScene:
		switch key {
		case "1", "2", "3", "4", "5", "6":
			m.choose(int(key[0] - '1'))
		case "l":
			m.enterTimeline()
		case "q", "esc":
			m.view = viewMainMenu
		}
	case viewOutcome:
		switch key {
		case "enter", " ":
			m.enterScene()
		case "l":
			m.enterTimeline()
		case "q", "esc":
			m.view = viewMainMenu
		}
	case viewTimeline:
		switch key {
		case "q", "esc":
			if m.state.Status == engine.StatusActive {
				m.enterScene()
			} else {
				m.view = viewMainMenu
			}
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	case viewDebrief:
		switch key {
		case "enter", "q", "esc":
			m.view = viewMainMenu
		case "l":
			m.enterTimeline()
		}
	case viewHelp:
		m.view = viewMainMenu
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	switch m.view {
	case viewMainMenu:
		b.WriteString(m.styles.title.Render("STRANDED") + "\n\n")
		b.WriteString("A wilderness survival ordeal. Every run teaches.\n\n")
		b.WriteString("  [n] new game\n")
		b.WriteString(fmt.Sprintf("  [t] theme (%s)\n", m.theme))
		b.WriteString("  [h] help\n")
		b.WriteString("  [q] quit\n")
		stats := m.tracker.TotalStats()
		if stats.TotalSessions > 0 {
			b.WriteString(fmt.Sprintf("\n%d past runs · %.0f%% survival · %d principles learned\n",
				stats.TotalSessions, stats.SurvivalRate*100, stats.TotalPrinciples))
		}
	case viewBriefing:
		b.WriteString(m.md)
		b.WriteString(m.styles.footer.Render("\n[enter] begin  [q] back"))
	case viewScene:
		b.WriteString(m.md)
		b.WriteString(m.styles.footer.Render("\n[1-6] choose  [l] log  [q] menu"))
	case viewOutcome:
		b.WriteString(m.md)
		b.WriteString(m.styles.footer.Render("\n[enter] next turn  [l] log  [q] menu"))
	case viewTimeline:
		b.WriteString(m.vp.View())
		b.WriteString(m.styles.footer.Render("\n[↑/↓] scroll  [q] back"))
	case viewDebrief:
		b.WriteString(m.md)
		b.WriteString(m.styles.footer.Render("\n[enter] menu  [l] log"))
	case viewHelp:
		b.WriteString(m.styles.title.Render("HOW TO PLAY") + "\n\n")
		b.WriteString("Each turn you pick one action from at most six. Actions cost energy\n")
		b.WriteString("and time; the environment takes its own toll on top. Win by being\n")
		b.WriteString("found (signals), walking out (navigation), or outlasting the ordeal.\n")
		b.WriteString("The game remembers what you have learned and builds the next run\n")
		b.WriteString("around what you have not.\n\n")
		b.WriteString(m.styles.footer.Render("[any key] back"))
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status))
	}
	return b.String()
}
