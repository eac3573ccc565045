package cli

import (
	"log/slog"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Records service.RecordService
	Reports service.ReportService

	// Backend is the store selected at startup; import and backend read it.
	Backend     *repository.Backend
	DBPath      string
	FallbackDir string

	Clock  domain.Clock
	Lang   language.Tag
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Prompts and forms
	// are only shown when it returns true.
	IsInteractive func() bool
	// RunForm and RunProgram default to running on the real terminal.
	RunForm    func(form *huh.Form) error
	RunProgram func(model tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(form *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(form)
	}
	return form.Run()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a *App) clock() domain.Clock {
	if a.Clock == nil {
		return domain.SystemClock{}
	}
	return a.Clock
}

// NewRootCmd creates the top-level "shiftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftlog",
		Short:         "Barcode work log with per-shift reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newScanCmd(app),
		newRegisterCmd(app),
		newListCmd(app),
		newRecentCmd(app),
		newDeleteCmd(app),
		newReportCmd(app),
		newShiftCmd(app),
		newStationCmd(app),
		newImportCmd(app),
		newBackendCmd(app),
	)

	return root
}
