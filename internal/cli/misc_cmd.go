package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/shiftlog/internal/cli/formatter"
	"github.com/alexanderramin/shiftlog/internal/db"
	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/kvstore"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/station"
	"github.com/spf13/cobra"
)

func newShiftCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shift",
		Short: "Show the shift for the current hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.clock().Now()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShiftInfo(domain.ShiftForTime(now), domain.FormatClock(now)))
			return nil
		},
	}
}

func newStationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "station",
		Short: "Open the interactive scan station",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runProgram(station.New(app.Records, app.clock(), app.Lang))
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import [FILE]",
		Short: "Copy fallback records into the database (default: the fallback store)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Backend == nil || app.Backend.DB == nil {
				return repository.ErrNoDatabase
			}

			var blob string
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}
				blob = string(data)
			} else {
				kv, err := kvstore.NewFileStore(app.FallbackDir)
				if err != nil {
					return fmt.Errorf("opening fallback store: %w", err)
				}
				v, ok, err := kv.Get(repository.BlobKey)
				if err != nil {
					return fmt.Errorf("reading fallback store: %w", err)
				}
				if !ok {
					return errors.New("fallback store holds no records")
				}
				blob = v
			}

			records, err := repository.DecodeBlob(blob)
			if err != nil {
				return err
			}
			n, err := repository.ImportRecords(context.Background(), db.NewSQLiteUnitOfWork(app.Backend.DB), records)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Imported "+formatter.Plural(n, "record", "records")))
			return nil
		},
	}
}

func newBackendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Show which record store is in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Backend == nil {
				return errors.New("no backend configured")
			}

			fmt.Fprintln(out, formatter.Header("Record store"))
			switch app.Backend.Kind {
			case repository.BackendSQLite:
				fmt.Fprintf(out, "%s  %s\n", formatter.StyleGreen.Render("sqlite"), formatter.Dim(app.DBPath))
			default:
				fmt.Fprintf(out, "%s  %s\n", formatter.StyleYellow.Render("blob fallback"), formatter.Dim(app.FallbackDir))
				if app.Backend.OpenErr != nil {
					fmt.Fprintf(out, "%s %v\n", formatter.Dim("reason:"), app.Backend.OpenErr)
				}
			}

			records, err := app.Backend.Store.ListAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Dim(formatter.Plural(len(records), "record", "records")))
			return nil
		},
	}
}
