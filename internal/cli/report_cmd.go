package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/shiftlog/internal/cli/formatter"
	"github.com/alexanderramin/shiftlog/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate records by barcode and shift for a period",
	}

	cmd.AddCommand(
		newReportKindCmd(app, report.KindDaily, "daily [YYYY-MM-DD]", "Report for one day (default today)"),
		newReportKindCmd(app, report.KindWeekly, "weekly [YYYY-Www]", "Report for one week (default this week)"),
		newReportKindCmd(app, report.KindMonthly, "monthly [YYYY-MM]", "Report for one month (default this month)"),
		newReportKindCmd(app, report.KindAnnual, "annual [YYYY]", "Report for one year (default this year)"),
	)

	return cmd
}

func newReportKindCmd(app *App, kind report.Kind, use, short string) *cobra.Command {
	var csvPath, xlsxPath string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := ""
			if len(args) == 1 {
				period = args[0]
			}

			view, err := app.Reports.Generate(context.Background(), kind, period)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(view, app.Lang))

			if csvPath == "" && xlsxPath == "" {
				return nil
			}
			if view.Result.Empty() {
				return fmt.Errorf("exporting %s report %s: %w", kind, view.Period, report.ErrNoData)
			}

			title := view.Title + " - " + view.Subtitle
			if csvPath != "" {
				if err := writeExport(csvPath, func(w io.Writer) error {
					return report.WriteCSV(w, title, view.Result.Report)
				}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+csvPath))
			}
			if xlsxPath != "" {
				if err := writeExport(xlsxPath, func(w io.Writer) error {
					return report.WriteXLSX(w, title, view.Result.Report)
				}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+xlsxPath))
			}
			return nil
		},
	}

	addExportFlags(cmd.Flags(), &csvPath, &xlsxPath)

	return cmd
}

func addExportFlags(fs *pflag.FlagSet, csvPath, xlsxPath *string) {
	fs.StringVar(csvPath, "csv", "", "Also write the report as CSV to this file")
	fs.StringVar(xlsxPath, "xlsx", "", "Also write the report as an Excel workbook to this file")
	_ = fs.SetAnnotation("csv", cobra.BashCompFilenameExt, []string{"csv"})
	_ = fs.SetAnnotation("xlsx", cobra.BashCompFilenameExt, []string{"xlsx"})
}

func writeExport(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
