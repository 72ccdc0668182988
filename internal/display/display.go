// Package display provides the terminal front ends.
//
// The [UI] type runs a Bubble Tea program with a status bar and an input
// prompt at the bottom of the terminal. All application output is printed
// above the rendered area via Program.Println, so concurrent writes never
// garble the display. [Plain] offers the same print methods on a plain
// writer for piped input and tests.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/shopmania/internal/domain"
)

// Prompt is shown in front of the input line.
const Prompt = "shop> "

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	staleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is the muted slate used for the start-up banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may safely call
// the print methods and read from [UI.InputChan] after [UI.WaitReady]
// returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	store   domain.SessionStore
	done    atomic.Bool
}

// NewUI creates the display. The status bar summarises the active sessions
// in store. Call Run() to start.
func NewUI(store domain.SessionStore) *UI {
	return &UI{
		store:   store,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe. Before the program
// starts, or after it stops, output goes straight to stdout.
func (u *UI) Println(a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line.
func (u *UI) Printf(format string, a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns submitted input lines. Empty submissions are delivered
// too; recipe entry uses them as its terminator.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// PrintChat prints a conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHeading prints a section header such as "Meal plan".
func (u *UI) PrintHeading(text string) {
	u.Println(headingStyle.Render("  " + text))
}

// PrintEntry prints one item of a listing.
func (u *UI) PrintEntry(text string) {
	u.Println(primaryStyle.Render("    " + text))
}

// PrintHint prints a secondary, dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintTable prints a rendered table without extra styling.
func (u *UI) PrintTable(rendered string) {
	u.Println(strings.TrimRight(rendered, "\n"))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("shop") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt: styled prompts add ANSI bytes that break the
	// textinput width math for long input.
	ti.Prompt = Prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		store:   u.store,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn:  u.PrintUserInput,
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	close(u.inputCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	store   domain.SessionStore
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string)
	status  status
	width   int
}

// status is the status bar snapshot of the active session.
type status struct {
	active    bool
	recipes   int
	items     int
	generated bool
}

type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			m.inputCh <- v
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			// Echo from a Cmd so it runs outside Update.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if promptLen := len(Prompt); msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case tickMsg:
		m.status = readStatus(m.store)
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(m.status.title()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// readStatus summarises the most recently started active session.
func readStatus(store domain.SessionStore) status {
	sessions, err := store.ListActive(context.Background())
	if err != nil || len(sessions) == 0 {
		return status{}
	}
	s := sessions[len(sessions)-1]
	return status{
		active:    true,
		recipes:   len(s.Plan),
		items:     len(s.List),
		generated: s.Generated,
	}
}

func (s status) title() string {
	if !s.active {
		return "ShopMania"
	}
	return fmt.Sprintf("ShopMania | %s | %s", plural(s.recipes, "recipe"), plural(s.items, "item"))
}

func (m model) View() string {
	var b strings.Builder

	if m.status.active {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	parts := []string{
		labelStyle.Render("plan: ") + countStyle.Render(plural(m.status.recipes, "recipe")),
	}
	if m.status.generated {
		parts = append(parts, labelStyle.Render("list: ")+countStyle.Render(plural(m.status.items, "item")))
	} else {
		parts = append(parts, staleStyle.Render("list: not generated"))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
