package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lambdalex/internal/driver"
)

const labelWidth = 9

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	busyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

type fileRow struct {
	path    string
	stage   driver.Stage
	status  driver.Status
	tokens  int
	elapsed time.Duration
}

func (r fileRow) label() string {
	switch r.status {
	case driver.StatusDone:
		if r.stage == driver.StageCache {
			return "cached"
		}
		return "done"
	case driver.StatusError:
		return "error"
	case driver.StatusWorking:
		return workingLabel(r.stage)
	}
	return "queued"
}

func workingLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageCache:
		return "checking"
	case driver.StageScan:
		return "scanning"
	}
	return "loading"
}

// weight is how far along the file is, from 0 to 1.
func (r fileRow) weight() float64 {
	switch {
	case r.status.Finished():
		return 1
	case r.status == driver.StatusWorking && r.stage == driver.StageScan:
		return 0.5
	case r.status == driver.StatusWorking && r.stage == driver.StageCache:
		return 0.2
	}
	return 0
}

func (r fileRow) style() lipgloss.Style {
	switch r.status {
	case driver.StatusDone:
		return okStyle
	case driver.StatusError:
		return failStyle
	case driver.StatusWorking:
		return busyStyle
	}
	return idleStyle
}

type progressModel struct {
	title  string
	events <-chan driver.Event
	abort  func()

	spin   spinner.Model
	bar    progress.Model
	rows   []fileRow
	byPath map[string]int
	batch  string // подпись для событий без файла
	width  int

	done    bool
	aborted bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows a directory
// tokenization. It quits when events is closed. abort, if set, is called once
// when the user presses ctrl+c or q.
func NewProgressModel(title string, files []string, events <-chan driver.Event, abort func()) tea.Model {
	m := &progressModel{
		title:  title,
		events: events,
		abort:  abort,
		spin:   spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(busyStyle)),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:   make([]fileRow, len(files)),
		byPath: make(map[string]int, len(files)),
		width:  80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			if !m.aborted && m.abort != nil {
				m.abort()
			}
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		m.batch = fileRow{stage: ev.Stage, status: ev.Status}.label()
		return nil
	}
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	row.stage, row.status = ev.Stage, ev.Status
	if ev.Status.Finished() {
		row.tokens, row.elapsed = ev.Tokens, ev.Elapsed
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += r.weight()
	}
	return sum / float64(len(m.rows))
}

// tally counts finished, cached and failed files and the tokens seen so far.
func (m *progressModel) tally() (finished, cached, failed, tokens int) {
	for _, r := range m.rows {
		if !r.status.Finished() {
			continue
		}
		finished++
		tokens += r.tokens
		switch {
		case r.status == driver.StatusError:
			failed++
		case r.stage == driver.StageCache:
			cached++
		}
	}
	return finished, cached, failed, tokens
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder

	head := m.title
	if m.batch != "" {
		head += " (" + m.batch + ")"
	}
	switch {
	case m.aborted:
		head = "aborted: " + head
	case m.done:
		head = "done: " + head
	default:
		head = m.spin.View() + " " + head
	}
	b.WriteString(titleStyle.Render(head))
	b.WriteString("\n\n")

	nameWidth := max(m.width-labelWidth-18, 20)
	for _, r := range m.rows {
		label := r.style().Render(fmt.Sprintf("%*s", labelWidth, r.label()))
		fmt.Fprintf(&b, "  %s %s", label, truncate(r.path, nameWidth))
		if r.status == driver.StatusDone {
			b.WriteString(summaryStyle.Render(fmt.Sprintf("  %d tok %s", r.tokens, r.elapsed.Round(time.Millisecond))))
		}
		b.WriteByte('\n')
	}

	finished, cached, failed, tokens := m.tally()
	fmt.Fprintf(&b, "\n%s\n", summaryStyle.Render(fmt.Sprintf(
		"%d/%d files, %d cached, %d failed, %d tokens", finished, len(m.rows), cached, failed, tokens)))
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// truncate shortens value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
