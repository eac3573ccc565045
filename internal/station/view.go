package station

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/cli/formatter"
	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var counterBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(0, 2).
	Align(lipgloss.Center)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header(pick(m.lang, "Estación de escaneo", "Scan station")))
	b.WriteString("\n\n")
	b.WriteString(m.shiftLine())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.counterView(domain.ShiftT1), " ", m.counterView(domain.ShiftT2)))
	b.WriteString("\n")

	if m.pendingReset != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleYellow.Render(fmt.Sprintf(
			pick(m.lang, "¿Deseas reiniciar el contador de %s? (s/n)", "Reset the %s counter? (y/n)"),
			m.pendingReset)))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(formatter.Failure(m.message))
		} else {
			b.WriteString(formatter.Success(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim(pick(m.lang, "Últimos registros", "Latest records")))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(formatter.Dim("—"))
		b.WriteString("\n")
	} else {
		b.WriteString(formatter.FormatRecordTable(m.recent))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("tab " + pick(m.lang, "cambiar turno", "switch shift") +
		" · ctrl+a auto · f1/f2 reset · esc " + pick(m.lang, "salir", "quit")))
	b.WriteString("\n")
	return b.String()
}

func (m Model) shiftLine() string {
	start, end := m.session.Shift.Window()
	mode := pick(m.lang, "automático", "automatic")
	if m.session.Manual {
		mode = "manual"
	}
	return fmt.Sprintf("%s %s  %s",
		formatter.ShiftBadge(m.session.Shift),
		formatter.Dim(start+"-"+end),
		formatter.Dim("("+mode+")"))
}

func (m Model) counterView(s domain.Shift) string {
	body := formatter.ShiftStyle(s).Render(string(s)) + "\n" +
		formatter.Bold(fmt.Sprintf("%d", m.counts[s]))
	return counterBox.Render(body)
}
