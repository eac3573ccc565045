package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/cli/formatter"
	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/service"
	"github.com/spf13/cobra"
)

func newScanCmd(app *App) *cobra.Command {
	var shiftFlag string

	cmd := &cobra.Command{
		Use:   "scan [BARCODE...]",
		Short: "Record one scan per barcode (reads stdin when no barcode is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			session := domain.AutoSession(app.clock())
			if shiftFlag != "" {
				s, err := domain.ParseShift(shiftFlag)
				if err != nil {
					return err
				}
				session = session.WithShift(s)
			}

			codes := args
			if len(codes) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						codes = append(codes, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("reading barcodes: %w", err)
				}
			}
			if len(codes) == 0 {
				return &domain.ValidationError{Missing: []string{"barcode"}}
			}

			for _, code := range codes {
				rec, err := app.Records.Scan(ctx, session, code)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatSaved(rec))
			}
			if len(codes) > 1 {
				fmt.Fprintln(out, formatter.Dim(formatter.Plural(len(codes), "record", "records")+" saved"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shiftFlag, "shift", "", "Shift (T1 or T2); defaults to the shift of the current hour")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var f registerFields
	var t1, t2 int
	var now bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a record with explicit date, time, shift and counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if now {
				at := app.clock().Now()
				if f.Date == "" {
					f.Date = domain.FormatDate(at)
				}
				if f.Time == "" {
					f.Time = domain.FormatClock(at)
				}
				if f.Shift == "" {
					f.Shift = string(domain.ShiftForTime(at))
				}
			}

			in := service.RegisterInput{
				Barcode: f.Barcode,
				Date:    f.Date,
				Time:    f.Time,
				Shift:   f.Shift,
				CountT1: t1,
				CountT2: t2,
			}

			if f.Barcode == "" && app.interactive() {
				at := app.clock().Now()
				fields := registerFields{
					Date:  domain.FormatDate(at),
					Time:  domain.FormatClock(at),
					Shift: string(domain.ShiftForTime(at)),
				}
				if err := app.runForm(registerForm(&fields)); err != nil {
					return err
				}
				in = service.RegisterInput{
					Barcode: fields.Barcode,
					Date:    fields.Date,
					Time:    fields.Time,
					Shift:   fields.Shift,
					CountT1: parseCount(fields.T1),
					CountT2: parseCount(fields.T2),
				}
			}

			rec, err := app.Records.Register(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSaved(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Barcode, "barcode", "", "Barcode")
	cmd.Flags().StringVar(&f.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Time, "time", "", "Time (HH:MM)")
	cmd.Flags().StringVar(&f.Shift, "shift", "", "Shift (T1 or T2)")
	cmd.Flags().IntVar(&t1, "t1", 0, "T1 count")
	cmd.Flags().IntVar(&t2, "t2", 0, "T2 count")
	cmd.Flags().BoolVar(&now, "now", false, "Fill empty date, time and shift from the clock")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var filter service.ListFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest date first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Records.List(context.Background(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList("Records", records))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Month, "month", "", "Only records of this month (YYYY-MM)")
	cmd.Flags().StringVar(&filter.Date, "date", "", "Only records of this date (YYYY-MM-DD)")

	return cmd
}

func newRecentCmd(app *App) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the latest records",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Records.Recent(context.Background(), n)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList("Latest records", records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "number", "n", 5, "Number of records to show")

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete record %d without --yes", id)
				}
				confirmed := false
				if err := app.runForm(confirmForm(fmt.Sprintf("Delete record %d?", id), &confirmed)); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Records.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Deleted record %d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
