// Package station is the interactive scan station: a barcode input that
// stores one record per Enter, with per-shift counters and the latest
// records underneath.
package station

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

// RecentLimit is how many records the station lists under the input.
const RecentLimit = 5

// MessageTTL is how long a status message stays on screen.
const MessageTTL = 3 * time.Second

type keyMap struct {
	Quit        key.Binding
	ToggleShift key.Binding
	AutoShift   key.Binding
	ResetT1     key.Binding
	ResetT2     key.Binding
	Yes         key.Binding
	No          key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	ToggleShift: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch shift")),
	AutoShift:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "shift by clock")),
	ResetT1:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "reset T1")),
	ResetT2:     key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "reset T2")),
	Yes:         key.NewBinding(key.WithKeys("y", "Y", "s", "S", "enter")),
	No:          key.NewBinding(key.WithKeys("n", "N", "esc")),
}

type (
	savedMsg struct{ rec *domain.WorkRecord }
	recentMsg struct{ records []*domain.WorkRecord }
	errMsg    struct{ err error }
	// clearMsg removes the status message if no newer one replaced it.
	clearMsg struct{ seq int }
)

type Model struct {
	records service.RecordService
	clock   domain.Clock
	lang    language.Tag

	input   textinput.Model
	session domain.Session
	counts  map[domain.Shift]int
	recent  []*domain.WorkRecord

	message    string
	messageErr bool
	messageSeq int

	// pendingReset is the counter awaiting y/n confirmation, if any.
	pendingReset domain.Shift

	width    int
	quitting bool
}

func New(records service.RecordService, clock domain.Clock, lang language.Tag) Model {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "▸ "
	ti.Placeholder = pick(lang, "escanea un código", "scan a barcode")
	ti.CharLimit = 128

	return Model{
		records: records,
		clock:   clock,
		lang:    lang,
		input:   ti,
		session: domain.AutoSession(clock),
		counts:  map[domain.Shift]int{domain.ShiftT1: 0, domain.ShiftT2: 0},
	}
}

// Count returns the station counter for shift s.
func (m Model) Count(s domain.Shift) int { return m.counts[s] }

func (m Model) Session() domain.Session { return m.session }

func (m Model) Recent() []*domain.WorkRecord { return m.recent }

func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecent())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		if m.pendingReset != "" {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)

	case savedMsg:
		m.counts[msg.rec.Shift]++
		m.recent = append([]*domain.WorkRecord{msg.rec}, m.recent...)
		if len(m.recent) > RecentLimit {
			m.recent = m.recent[:RecentLimit]
		}
		text := fmt.Sprintf(pick(m.lang, "Código registrado - %s: %d", "Barcode saved - %s: %d"),
			msg.rec.Shift, m.counts[msg.rec.Shift])
		cmd := m.setMessage(text, false)
		return m, cmd

	case recentMsg:
		m.recent = msg.records
		return m, nil

	case errMsg:
		cmd := m.setMessage(m.describeError(msg.err), true)
		return m, cmd

	case clearMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.ToggleShift):
		next := domain.ShiftT2
		if m.session.Shift == domain.ShiftT2 {
			next = domain.ShiftT1
		}
		m.session = m.session.WithShift(next)
		return m, nil
	case key.Matches(msg, keys.AutoShift):
		m.session = domain.AutoSession(m.clock)
		return m, nil
	case key.Matches(msg, keys.ResetT1):
		m.pendingReset = domain.ShiftT1
		return m, nil
	case key.Matches(msg, keys.ResetT2):
		m.pendingReset = domain.ShiftT2
		return m, nil
	case msg.Type == tea.KeyEnter:
		code := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		var cmd tea.Cmd
		if code == "" {
			cmd = m.setMessage(pick(m.lang, "Completa código de barras y turno", "Enter a barcode and shift"), true)
		} else {
			cmd = m.scan(code)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shift := m.pendingReset
	switch {
	case key.Matches(msg, keys.Yes):
		m.pendingReset = ""
		m.counts[shift] = 0
		cmd := m.setMessage(fmt.Sprintf(pick(m.lang, "Contador %s reiniciado", "%s counter reset"), shift), false)
		return m, cmd
	case key.Matches(msg, keys.No):
		m.pendingReset = ""
		return m, nil
	}
	return m, nil
}

// scan refreshes the session when it follows the clock, so a station left
// open across 14:00 switches to T2 on its own.
func (m *Model) scan(code string) tea.Cmd {
	if !m.session.Manual {
		m.session = domain.AutoSession(m.clock)
	}
	session := m.session
	svc := m.records
	return func() tea.Msg {
		rec, err := svc.Scan(context.Background(), session, code)
		if err != nil {
			return errMsg{err: err}
		}
		return savedMsg{rec: rec}
	}
}

func (m Model) loadRecent() tea.Cmd {
	svc := m.records
	return func() tea.Msg {
		records, err := svc.Recent(context.Background(), RecentLimit)
		if err != nil {
			return errMsg{err: err}
		}
		return recentMsg{records: records}
	}
}

func (m *Model) setMessage(text string, isErr bool) tea.Cmd {
	m.messageSeq++
	m.message = text
	m.messageErr = isErr
	seq := m.messageSeq
	return tea.Tick(MessageTTL, func(time.Time) tea.Msg {
		return clearMsg{seq: seq}
	})
}

func (m Model) describeError(err error) string {
	if domain.IsValidationError(err) {
		return pick(m.lang, "Completa código de barras y turno", "Enter a barcode and shift")
	}
	return pick(m.lang, "Error guardando registro: ", "Error saving record: ") + err.Error()
}

func pick(lang language.Tag, spanish, english string) string {
	if base, _ := lang.Base(); base.String() == "es" {
		return spanish
	}
	return english
}
